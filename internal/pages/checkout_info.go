package pages

import (
	"fmt"

	"github.com/themizzi/storefront-e2e/internal/models"
)

// Checkout step one locators
const (
	checkoutInfoPath              = "/checkout-step-one.html"
	checkoutInfoContainerSelector = ".checkout_info"
	firstNameSelector             = "#first-name"
	lastNameSelector              = "#last-name"
	postalCodeSelector            = "#postal-code"
	continueButtonSelector        = "#continue"
	checkoutCancelSelector        = "#cancel"
	checkoutErrorSelector         = `[data-test="error"]`
)

// CheckoutInfoPage wraps the customer information step of checkout
type CheckoutInfoPage struct {
	BasePage
}

// Open navigates directly to checkout step one
func (c *CheckoutInfoPage) Open() error {
	return c.Goto(checkoutInfoPath, checkoutInfoContainerSelector)
}

// FillForm enters the customer information. Empty fields are filled too, so
// a partially blank form can be submitted for validation scenarios.
func (c *CheckoutInfoPage) FillForm(form models.CheckoutForm) error {
	if err := c.Fill(firstNameSelector, form.FirstName); err != nil {
		return err
	}
	if err := c.Fill(lastNameSelector, form.LastName); err != nil {
		return err
	}
	return c.Fill(postalCodeSelector, form.PostalCode)
}

// FormValues reads the current field values back, for round-trip checks
func (c *CheckoutInfoPage) FormValues() (models.CheckoutForm, error) {
	firstName, err := c.InputValue(firstNameSelector)
	if err != nil {
		return models.CheckoutForm{}, err
	}
	lastName, err := c.InputValue(lastNameSelector)
	if err != nil {
		return models.CheckoutForm{}, err
	}
	postalCode, err := c.InputValue(postalCodeSelector)
	if err != nil {
		return models.CheckoutForm{}, err
	}
	return models.CheckoutForm{FirstName: firstName, LastName: lastName, PostalCode: postalCode}, nil
}

// Continue submits the form and waits for the overview step
func (c *CheckoutInfoPage) Continue() error {
	if err := c.Click(continueButtonSelector); err != nil {
		return err
	}
	return c.WaitVisible(overviewContainerSelector)
}

// Submit clicks continue without waiting for the next step, for scenarios
// where the form is expected to be rejected
func (c *CheckoutInfoPage) Submit() error {
	return c.Click(continueButtonSelector)
}

// Cancel returns to the cart
func (c *CheckoutInfoPage) Cancel() error {
	if err := c.Click(checkoutCancelSelector); err != nil {
		return err
	}
	return c.WaitVisible(cartListSelector)
}

// ErrorText returns the form validation error banner text
func (c *CheckoutInfoPage) ErrorText() (string, error) {
	if err := c.WaitVisible(checkoutErrorSelector); err != nil {
		return "", err
	}
	return c.Text(checkoutErrorSelector)
}

// AssertRejected verifies the validation error text and that the browser
// stayed on the information step
func (c *CheckoutInfoPage) AssertRejected(expectedError string) error {
	text, err := c.ErrorText()
	if err != nil {
		return err
	}
	if text != expectedError {
		return fmt.Errorf("expected validation error %q, got %q", expectedError, text)
	}
	visible, err := c.Visible(firstNameSelector)
	if err != nil {
		return err
	}
	if !visible {
		return fmt.Errorf("expected to remain on checkout step one, at %s", c.URL())
	}
	return nil
}
