package pages

import "fmt"

// Checkout completion locators
const (
	completePath              = "/checkout-complete.html"
	completeContainerSelector = "#checkout_complete_container"
	completeHeaderSelector    = ".complete-header"
	backHomeSelector          = "#back-to-products"
)

// CheckoutCompletePage wraps the order confirmation screen
type CheckoutCompletePage struct {
	BasePage
}

// Open navigates directly to the completion screen
func (c *CheckoutCompletePage) Open() error {
	return c.Goto(completePath, completeContainerSelector)
}

// Header returns the confirmation header text
func (c *CheckoutCompletePage) Header() (string, error) {
	return c.Text(completeHeaderSelector)
}

// AssertComplete verifies the confirmation header text
func (c *CheckoutCompletePage) AssertComplete(expectedHeader string) error {
	header, err := c.Header()
	if err != nil {
		return err
	}
	if header != expectedHeader {
		return fmt.Errorf("expected completion header %q, got %q", expectedHeader, header)
	}
	return nil
}

// BackHome returns to the inventory listing
func (c *CheckoutCompletePage) BackHome() error {
	if err := c.Click(backHomeSelector); err != nil {
		return err
	}
	return c.WaitVisible(inventoryContainerSelector)
}
