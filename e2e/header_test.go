package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMenuOpenClose exercises the animated burger menu synchronization
// Feature: Header menu
//
//	As a customer
//	I want the navigation menu to open and close reliably
//	So that I can reach the sidebar links
//
//	Scenario: Menu opens and closes
//	  Given I am logged in on the inventory page
//	  When I open the burger menu
//	  Then the close button should become visible
//	  And the menu should list at least the all-items, about, logout, and
//	  reset links
//	  When I close the menu
//	  Then the close button should be hidden again
func TestMenuOpenClose(t *testing.T) {
	p := openInventory(t)
	header := p.Header()

	require.NoError(t, header.OpenMenu())

	count, err := header.MenuItemCount()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 4)

	require.NoError(t, header.CloseMenu())
}

// TestResetAppState clears the cart through the menu
// Feature: Header menu
//
//	Scenario: Reset app state empties the cart
//	  Given the cart badge shows 1
//	  When I reset the app state through the menu
//	  Then the cart badge should be gone
func TestResetAppState(t *testing.T) {
	s := requireSuite(t)
	p := openInventory(t)

	require.NoError(t, p.Inventory().AddToCart(s.products[0].Name))

	count, err := p.Common().BadgeCount()
	require.NoError(t, err)
	require.Equal(t, 1, count)

	require.NoError(t, p.Header().ResetAppState())

	count, err = p.Common().BadgeCount()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

// TestMenuAllItemsNavigation navigates back to the listing from the cart
// Feature: Header menu
//
//	Scenario: All Items link returns to the inventory
//	  Given I am on the cart page
//	  When I open the menu and click All Items
//	  Then I should see the inventory listing
func TestMenuAllItemsNavigation(t *testing.T) {
	s := requireSuite(t)
	p := newAuthedPages(t)

	require.NoError(t, p.Cart().Open())
	require.NoError(t, p.Header().GoToAllItems())

	require.NoError(t, p.Common().AssertTitle(s.data.Messages.ProductsTitle))
}
