package pages

import (
	"fmt"
	"time"
)

// Header and burger menu locators
const (
	menuOpenSelector     = "#react-burger-menu-btn"
	menuCloseSelector    = "#react-burger-cross-btn"
	menuItemSelector     = ".bm-item-list a"
	logoutLinkSelector   = "#logout_sidebar_link"
	resetLinkSelector    = "#reset_sidebar_link"
	allItemsLinkSelector = "#inventory_sidebar_link"
)

// menuSettleDelay gives the menu slide animation time to start before the
// visibility polls below. The storefront's menu widget lags the click, so
// polling alone can observe the pre-click state and pass spuriously.
const menuSettleDelay = 300 * time.Millisecond

// HeaderComponents wraps the top navigation bar and its burger menu
type HeaderComponents struct {
	BasePage
}

// OpenMenu opens the burger menu and waits for it to finish animating in,
// detected by the close button becoming visible
func (h *HeaderComponents) OpenMenu() error {
	if err := h.Click(menuOpenSelector); err != nil {
		return err
	}
	time.Sleep(menuSettleDelay)
	if err := h.WaitVisible(menuCloseSelector); err != nil {
		return fmt.Errorf("burger menu did not open: %w", err)
	}
	return nil
}

// CloseMenu closes the burger menu and waits for it to finish animating out
func (h *HeaderComponents) CloseMenu() error {
	if err := h.Click(menuCloseSelector); err != nil {
		return err
	}
	time.Sleep(menuSettleDelay)
	if err := h.WaitHidden(menuCloseSelector); err != nil {
		return fmt.Errorf("burger menu did not close: %w", err)
	}
	return nil
}

// MenuItemCount returns the number of links in the opened menu
func (h *HeaderComponents) MenuItemCount() (int, error) {
	return h.Count(menuItemSelector)
}

// Logout opens the menu, clicks the logout link, and waits for the login
// screen to return
func (h *HeaderComponents) Logout() error {
	if err := h.OpenMenu(); err != nil {
		return err
	}
	if err := h.Click(logoutLinkSelector); err != nil {
		return err
	}
	if err := h.WaitVisible(loginButtonSelector); err != nil {
		return fmt.Errorf("logout did not return to the login screen: %w", err)
	}
	return nil
}

// ResetAppState clears the application state (cart contents and button
// states) through the menu, then closes the menu again
func (h *HeaderComponents) ResetAppState() error {
	if err := h.OpenMenu(); err != nil {
		return err
	}
	if err := h.Click(resetLinkSelector); err != nil {
		return err
	}
	return h.CloseMenu()
}

// GoToAllItems navigates to the inventory listing through the menu
func (h *HeaderComponents) GoToAllItems() error {
	if err := h.OpenMenu(); err != nil {
		return err
	}
	if err := h.Click(allItemsLinkSelector); err != nil {
		return err
	}
	return h.WaitVisible(inventoryContainerSelector)
}
