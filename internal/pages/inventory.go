package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Inventory page locators
const (
	inventoryPath              = "/inventory.html"
	inventoryContainerSelector = ".inventory_list"
	inventoryItemSelector      = ".inventory_item"
	itemNameSelector           = ".inventory_item_name"
	itemPriceSelector          = ".inventory_item_price"
	itemDescSelector           = ".inventory_item_desc"
	sortSelectSelector         = `[data-test="product-sort-container"]`
)

// SortOption is a value of the inventory sort dropdown
type SortOption string

// Sort dropdown values
const (
	SortNameAZ    SortOption = "az"
	SortNameZA    SortOption = "za"
	SortPriceLoHi SortOption = "lohi"
	SortPriceHiLo SortOption = "hilo"
)

// InventoryPage wraps the product listing screen
type InventoryPage struct {
	BasePage
}

// Open navigates to the inventory screen and waits for the product list
func (i *InventoryPage) Open() error {
	return i.Goto(inventoryPath, inventoryContainerSelector)
}

// ItemCount returns the number of listed products
func (i *InventoryPage) ItemCount() (int, error) {
	return i.Count(inventoryItemSelector)
}

// ItemNames returns the displayed product names in page order
func (i *InventoryPage) ItemNames() ([]string, error) {
	return i.Texts(itemNameSelector)
}

// ItemPrices returns the displayed product prices in page order
func (i *InventoryPage) ItemPrices() ([]string, error) {
	return i.Texts(itemPriceSelector)
}

// SortBy selects an option in the sort dropdown
func (i *InventoryPage) SortBy(option SortOption) error {
	values := []string{string(option)}
	if _, err := i.Page().Locator(sortSelectSelector).SelectOption(playwright.SelectOptionValues{
		Values: &values,
	}); err != nil {
		return fmt.Errorf("failed to select sort option %q: %w", option, err)
	}
	return nil
}

// VerifySortedByName fails on the first adjacent name pair out of order
func (i *InventoryPage) VerifySortedByName(order SortOrder) error {
	names, err := i.ItemNames()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no product names displayed at %s", i.URL())
	}
	return NamesInOrder(names, order)
}

// VerifySortedByPrice fails on the first adjacent price pair out of order
func (i *InventoryPage) VerifySortedByPrice(order SortOrder) error {
	prices, err := i.ItemPrices()
	if err != nil {
		return err
	}
	if len(prices) == 0 {
		return fmt.Errorf("no product prices displayed at %s", i.URL())
	}
	return PricesInOrder(prices, order)
}

// AddToCart clicks the add-to-cart button of the named product
func (i *InventoryPage) AddToCart(name string) error {
	return i.Click(fmt.Sprintf(`[data-test="add-to-cart-%s"]`, itemSlug(name)))
}

// RemoveFromCart clicks the remove button of the named product
func (i *InventoryPage) RemoveFromCart(name string) error {
	return i.Click(fmt.Sprintf(`[data-test="remove-%s"]`, itemSlug(name)))
}

// OpenProduct clicks a product name to open its details page
func (i *InventoryPage) OpenProduct(name string) error {
	selector := fmt.Sprintf(`%s:text-is("%s")`, itemNameSelector, name)
	if err := i.Click(selector); err != nil {
		return err
	}
	return i.WaitVisible(detailsContainerSelector)
}

// itemSlug derives the data-test button suffix the storefront generates for a
// product name: lowercased with spaces replaced by hyphens
func itemSlug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}
