package pages

import (
	"fmt"

	"github.com/themizzi/storefront-e2e/internal/models"
)

// Cart page locators
const (
	cartPath                 = "/cart.html"
	cartListSelector         = ".cart_list"
	cartItemSelector         = ".cart_item"
	cartQuantitySelector     = ".cart_quantity"
	checkoutButtonSelector   = "#checkout"
	continueShoppingSelector = "#continue-shopping"
)

// CartPage wraps the shopping cart screen
type CartPage struct {
	BasePage
}

// Open navigates to the cart screen and waits for the cart list
func (c *CartPage) Open() error {
	return c.Goto(cartPath, cartListSelector)
}

// ItemCount returns the number of cart lines
func (c *CartPage) ItemCount() (int, error) {
	return c.Count(cartItemSelector)
}

// Items reads every rendered cart line. Quantities that fail to parse are
// recorded as 0.
func (c *CartPage) Items() ([]models.CartItem, error) {
	lines, err := c.Page().Locator(cartItemSelector).All()
	if err != nil {
		return nil, fmt.Errorf("failed to locate cart lines: %w", err)
	}

	items := make([]models.CartItem, 0, len(lines))
	for n, line := range lines {
		name, err := line.Locator(itemNameSelector).TextContent()
		if err != nil {
			return nil, fmt.Errorf("failed to read name of cart line %d: %w", n, err)
		}
		price, err := line.Locator(itemPriceSelector).TextContent()
		if err != nil {
			return nil, fmt.Errorf("failed to read price of cart line %d: %w", n, err)
		}
		quantity, err := line.Locator(cartQuantitySelector).TextContent()
		if err != nil {
			return nil, fmt.Errorf("failed to read quantity of cart line %d: %w", n, err)
		}
		items = append(items, models.CartItem{
			ProductName: name,
			Price:       price,
			Quantity:    ParseQuantity(quantity),
		})
	}
	return items, nil
}

// TotalQuantity sums the quantities of every cart line
func (c *CartPage) TotalQuantity() (int, error) {
	items, err := c.Items()
	if err != nil {
		return 0, err
	}
	return models.TotalQuantity(items), nil
}

// Remove clicks the remove button of the named product's cart line
func (c *CartPage) Remove(name string) error {
	return c.Click(fmt.Sprintf(`[data-test="remove-%s"]`, itemSlug(name)))
}

// Checkout starts the checkout flow and waits for the information step
func (c *CartPage) Checkout() error {
	if err := c.Click(checkoutButtonSelector); err != nil {
		return err
	}
	return c.WaitVisible(checkoutInfoContainerSelector)
}

// ContinueShopping returns to the inventory listing
func (c *CartPage) ContinueShopping() error {
	if err := c.Click(continueShoppingSelector); err != nil {
		return err
	}
	return c.WaitVisible(inventoryContainerSelector)
}

// AssertEmpty fails unless the cart shows no lines and the header badge is
// hidden
func (c *CartPage) AssertEmpty() error {
	count, err := c.ItemCount()
	if err != nil {
		return err
	}
	if count != 0 {
		return fmt.Errorf("expected empty cart, found %d line(s)", count)
	}
	badgeVisible, err := c.Visible(badgeSelector)
	if err != nil {
		return err
	}
	if badgeVisible {
		return fmt.Errorf("expected cart badge to be hidden for an empty cart")
	}
	return nil
}
