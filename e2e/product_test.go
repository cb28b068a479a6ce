package e2e

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestProductDetailsMatchCatalog compares the detail view to the fixture
// Feature: Product details
//
//	As a customer
//	I want to open a product from the listing
//	So that I can read its full description before buying
//
//	Scenario: Detail page shows the listed product
//	  Given I am logged in on the inventory page
//	  When I click a product's name
//	  Then the detail page should show the same name, price, and description
//	  as the catalog fixture
func TestProductDetailsMatchCatalog(t *testing.T) {
	s := requireSuite(t)

	for _, product := range s.products[:2] {
		t.Run(product.Name, func(t *testing.T) {
			p := openInventory(t)

			require.NoError(t, p.Inventory().OpenProduct(product.Name))
			require.NoError(t, p.ProductDetails().AssertMatches(product))
		})
	}
}

// TestProductDetailsBackToProducts verifies the return navigation
// Feature: Product details
//
//	Scenario: Back button returns to the listing
//	  Given I am viewing a product's details
//	  When I click "Back to products"
//	  Then I should see the inventory listing again
func TestProductDetailsBackToProducts(t *testing.T) {
	s := requireSuite(t)
	p := openInventory(t)

	require.NoError(t, p.Inventory().OpenProduct(s.products[0].Name))
	require.NoError(t, p.ProductDetails().BackToProducts())

	require.NoError(t, p.Common().AssertTitle(s.data.Messages.ProductsTitle))
}

// TestProductDetailsAddToCart adds from the detail page
// Feature: Product details
//
//	Scenario: Adding from the detail page updates the badge
//	  Given I am viewing a product's details
//	  When I click add to cart
//	  Then the cart badge should show 1
func TestProductDetailsAddToCart(t *testing.T) {
	s := requireSuite(t)
	p := openInventory(t)

	require.NoError(t, p.Inventory().OpenProduct(s.products[0].Name))
	require.NoError(t, p.ProductDetails().AddToCart())

	count, err := p.Common().BadgeCount()
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
