package pages

import (
	"fmt"

	"github.com/themizzi/storefront-e2e/internal/models"
)

// Product details page locators
const (
	detailsContainerSelector = ".inventory_details_container"
	detailsNameSelector      = ".inventory_details_name"
	detailsPriceSelector     = ".inventory_details_price"
	detailsDescSelector      = ".inventory_details_desc"
	backToProductsSelector   = "#back-to-products"
)

// ProductDetailsPage wraps the single-product detail screen
type ProductDetailsPage struct {
	BasePage
}

// Details reads the displayed product back as a record, for comparison
// against the inventory listing or the product fixture
func (d *ProductDetailsPage) Details() (models.Product, error) {
	name, err := d.Text(detailsNameSelector)
	if err != nil {
		return models.Product{}, err
	}
	price, err := d.Text(detailsPriceSelector)
	if err != nil {
		return models.Product{}, err
	}
	desc, err := d.Text(detailsDescSelector)
	if err != nil {
		return models.Product{}, err
	}
	return models.Product{Name: name, Price: price, Description: desc}, nil
}

// AssertMatches fails when the displayed product differs from expected
func (d *ProductDetailsPage) AssertMatches(expected models.Product) error {
	got, err := d.Details()
	if err != nil {
		return err
	}
	if got != expected {
		return fmt.Errorf("product details mismatch: got %+v, want %+v", got, expected)
	}
	return nil
}

// AddToCart clicks the detail page's add-to-cart button
func (d *ProductDetailsPage) AddToCart() error {
	return d.Click(`[data-test^="add-to-cart"]`)
}

// BackToProducts returns to the inventory listing
func (d *ProductDetailsPage) BackToProducts() error {
	if err := d.Click(backToProductsSelector); err != nil {
		return err
	}
	return d.WaitVisible(inventoryContainerSelector)
}
