package pages

import "fmt"

// Selectors shared across every authenticated screen
const (
	titleSelector    = ".title"
	cartLinkSelector = ".shopping_cart_link"
	badgeSelector    = ".shopping_cart_badge"
)

// CommonElements wraps the elements present on every authenticated screen:
// the secondary header title and the shopping cart link with its badge.
type CommonElements struct {
	BasePage
}

// Title returns the secondary header title of the current screen
func (c *CommonElements) Title() (string, error) {
	return c.Text(titleSelector)
}

// BadgeCount returns the cart badge count. A hidden or absent badge counts
// as 0, matching an empty cart.
func (c *CommonElements) BadgeCount() (int, error) {
	count, err := c.Count(badgeSelector)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}
	text, err := c.Text(badgeSelector)
	if err != nil {
		return 0, err
	}
	return ParseQuantity(text), nil
}

// GoToCart clicks the cart link and waits for the cart list to render
func (c *CommonElements) GoToCart() error {
	if err := c.Click(cartLinkSelector); err != nil {
		return err
	}
	if err := c.WaitVisible(cartListSelector); err != nil {
		return fmt.Errorf("cart page did not render: %w", err)
	}
	return nil
}

// AssertTitle fails when the current screen title differs from expected
func (c *CommonElements) AssertTitle(expected string) error {
	title, err := c.Title()
	if err != nil {
		return err
	}
	if title != expected {
		return fmt.Errorf("expected title %q, got %q at %s", expected, title, c.URL())
	}
	return nil
}
