package pages

import (
	"fmt"
	"math"
	"strings"
)

// Checkout overview locators
const (
	overviewPath              = "/checkout-step-two.html"
	overviewContainerSelector = ".checkout_summary_container"
	subtotalLabelSelector     = ".summary_subtotal_label"
	taxLabelSelector          = ".summary_tax_label"
	totalLabelSelector        = ".summary_total_label"
	finishButtonSelector      = "#finish"
	overviewCancelSelector    = "#cancel"
)

// totalTolerance absorbs the storefront's two-decimal rounding of the
// displayed amounts
const totalTolerance = 0.005

// CheckoutOverviewPage wraps the order summary step of checkout
type CheckoutOverviewPage struct {
	BasePage
}

// Open navigates directly to the checkout overview
func (o *CheckoutOverviewPage) Open() error {
	return o.Goto(overviewPath, overviewContainerSelector)
}

// ItemCount returns the number of summarized cart lines
func (o *CheckoutOverviewPage) ItemCount() (int, error) {
	return o.Count(cartItemSelector)
}

// Subtotal returns the pre-tax item total
func (o *CheckoutOverviewPage) Subtotal() (float64, error) {
	return o.summaryAmount(subtotalLabelSelector)
}

// Tax returns the displayed tax amount
func (o *CheckoutOverviewPage) Tax() (float64, error) {
	return o.summaryAmount(taxLabelSelector)
}

// Total returns the displayed grand total
func (o *CheckoutOverviewPage) Total() (float64, error) {
	return o.summaryAmount(totalLabelSelector)
}

func (o *CheckoutOverviewPage) summaryAmount(selector string) (float64, error) {
	text, err := o.Text(selector)
	if err != nil {
		return 0, err
	}
	return parseSummaryAmount(text)
}

// VerifyTotal fails unless total = subtotal + tax within the display rounding
// tolerance
func (o *CheckoutOverviewPage) VerifyTotal() error {
	subtotal, err := o.Subtotal()
	if err != nil {
		return err
	}
	tax, err := o.Tax()
	if err != nil {
		return err
	}
	total, err := o.Total()
	if err != nil {
		return err
	}
	if math.Abs(subtotal+tax-total) > totalTolerance {
		return fmt.Errorf("checkout total mismatch: subtotal %.2f + tax %.2f != total %.2f",
			subtotal, tax, total)
	}
	return nil
}

// Finish places the order and waits for the completion screen
func (o *CheckoutOverviewPage) Finish() error {
	if err := o.Click(finishButtonSelector); err != nil {
		return err
	}
	return o.WaitVisible(completeContainerSelector)
}

// Cancel abandons checkout and returns to the inventory listing
func (o *CheckoutOverviewPage) Cancel() error {
	if err := o.Click(overviewCancelSelector); err != nil {
		return err
	}
	return o.WaitVisible(inventoryContainerSelector)
}

// parseSummaryAmount extracts the numeric amount from a summary label such
// as "Item total: $29.99" or "Tax: $2.40"
func parseSummaryAmount(text string) (float64, error) {
	idx := strings.Index(text, "$")
	if idx < 0 {
		return 0, fmt.Errorf("no amount found in summary label %q", text)
	}
	return ParsePrice(text[idx:])
}
