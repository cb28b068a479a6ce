package pages

import (
	"github.com/playwright-community/playwright-go"
)

// Options configures how page objects are bound to a browser page
type Options struct {
	// BaseURL of the storefront deployment under test
	BaseURL string
	// TimeoutMs bounds every navigation and locator wait
	TimeoutMs float64
	// ArtifactsDir receives diagnostic screenshots
	ArtifactsDir string
}

// Pages is the facade exposing every page object bound to one browser page.
// Page objects are constructed lazily on first use.
type Pages struct {
	base BasePage

	login            *LoginPage
	inventory        *InventoryPage
	productDetails   *ProductDetailsPage
	cart             *CartPage
	checkoutInfo     *CheckoutInfoPage
	checkoutOverview *CheckoutOverviewPage
	checkoutComplete *CheckoutCompletePage
	header           *HeaderComponents
	common           *CommonElements
}

// New binds a facade to one browser page
func New(page playwright.Page, opts Options) *Pages {
	return &Pages{
		base: BasePage{
			page:         page,
			baseURL:      opts.BaseURL,
			timeoutMs:    opts.TimeoutMs,
			artifactsDir: opts.ArtifactsDir,
		},
	}
}

// Login returns the login page object
func (p *Pages) Login() *LoginPage {
	if p.login == nil {
		p.login = &LoginPage{BasePage: p.base}
	}
	return p.login
}

// Inventory returns the inventory page object
func (p *Pages) Inventory() *InventoryPage {
	if p.inventory == nil {
		p.inventory = &InventoryPage{BasePage: p.base}
	}
	return p.inventory
}

// ProductDetails returns the product details page object
func (p *Pages) ProductDetails() *ProductDetailsPage {
	if p.productDetails == nil {
		p.productDetails = &ProductDetailsPage{BasePage: p.base}
	}
	return p.productDetails
}

// Cart returns the cart page object
func (p *Pages) Cart() *CartPage {
	if p.cart == nil {
		p.cart = &CartPage{BasePage: p.base}
	}
	return p.cart
}

// CheckoutInfo returns the checkout customer information page object
func (p *Pages) CheckoutInfo() *CheckoutInfoPage {
	if p.checkoutInfo == nil {
		p.checkoutInfo = &CheckoutInfoPage{BasePage: p.base}
	}
	return p.checkoutInfo
}

// CheckoutOverview returns the checkout overview page object
func (p *Pages) CheckoutOverview() *CheckoutOverviewPage {
	if p.checkoutOverview == nil {
		p.checkoutOverview = &CheckoutOverviewPage{BasePage: p.base}
	}
	return p.checkoutOverview
}

// CheckoutComplete returns the checkout completion page object
func (p *Pages) CheckoutComplete() *CheckoutCompletePage {
	if p.checkoutComplete == nil {
		p.checkoutComplete = &CheckoutCompletePage{BasePage: p.base}
	}
	return p.checkoutComplete
}

// Header returns the header/burger-menu component object
func (p *Pages) Header() *HeaderComponents {
	if p.header == nil {
		p.header = &HeaderComponents{BasePage: p.base}
	}
	return p.header
}

// Common returns the elements shared across authenticated screens
func (p *Pages) Common() *CommonElements {
	if p.common == nil {
		p.common = &CommonElements{BasePage: p.base}
	}
	return p.common
}
