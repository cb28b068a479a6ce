// Package pages implements the page object model for the storefront under
// test. Each page object wraps the locators of one screen and exposes action,
// getter, and assertion helpers built on a shared BasePage. The Pages facade
// lazily constructs page objects bound to a single browser page.
package pages

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
)

// BasePage holds the browser page handle and the navigation/interaction
// helpers shared by every page object
type BasePage struct {
	page         playwright.Page
	baseURL      string
	timeoutMs    float64
	artifactsDir string
}

// Goto navigates to a path below the base URL and waits for DOMContentLoaded.
// When containerSelector is non-empty it additionally waits for that element
// to become visible, capturing a screenshot on timeout.
func (b *BasePage) Goto(path, containerSelector string) error {
	url := strings.TrimRight(b.baseURL, "/") + path
	if _, err := b.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(b.timeoutMs),
	}); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if containerSelector != "" {
		return b.WaitVisible(containerSelector)
	}
	return nil
}

// URL returns the page's current URL
func (b *BasePage) URL() string {
	return b.page.URL()
}

// Page exposes the underlying browser page handle
func (b *BasePage) Page() playwright.Page {
	return b.page
}

// WaitVisible waits for the first element matching selector to become
// visible. On timeout it captures a screenshot and returns an error carrying
// the current URL and the screenshot path.
func (b *BasePage) WaitVisible(selector string) error {
	return b.waitFor(selector, playwright.WaitForSelectorStateVisible)
}

// WaitHidden waits for the first element matching selector to be hidden or
// detached
func (b *BasePage) WaitHidden(selector string) error {
	return b.waitFor(selector, playwright.WaitForSelectorStateHidden)
}

func (b *BasePage) waitFor(selector string, state *playwright.WaitForSelectorState) error {
	err := b.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   state,
		Timeout: playwright.Float(b.timeoutMs),
	})
	if err != nil {
		shot, shotErr := b.Screenshot("wait-timeout")
		if shotErr != nil {
			shot = fmt.Sprintf("(screenshot failed: %v)", shotErr)
		}
		return fmt.Errorf("element %q did not reach state %q at %s (screenshot: %s): %w",
			selector, *state, b.page.URL(), shot, err)
	}
	return nil
}

// Click clicks the first element matching selector
func (b *BasePage) Click(selector string) error {
	if err := b.page.Locator(selector).First().Click(); err != nil {
		return fmt.Errorf("failed to click %q: %w", selector, err)
	}
	return nil
}

// Fill replaces the value of the first element matching selector
func (b *BasePage) Fill(selector, value string) error {
	if err := b.page.Locator(selector).First().Fill(value); err != nil {
		return fmt.Errorf("failed to fill %q: %w", selector, err)
	}
	return nil
}

// Text returns the text content of the first element matching selector
func (b *BasePage) Text(selector string) (string, error) {
	text, err := b.page.Locator(selector).First().TextContent()
	if err != nil {
		return "", fmt.Errorf("failed to read text of %q: %w", selector, err)
	}
	return text, nil
}

// Texts returns the text contents of every element matching selector
func (b *BasePage) Texts(selector string) ([]string, error) {
	texts, err := b.page.Locator(selector).AllTextContents()
	if err != nil {
		return nil, fmt.Errorf("failed to read texts of %q: %w", selector, err)
	}
	return texts, nil
}

// Count returns the number of elements matching selector
func (b *BasePage) Count(selector string) (int, error) {
	count, err := b.page.Locator(selector).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count %q: %w", selector, err)
	}
	return count, nil
}

// Visible reports whether the first element matching selector is visible
func (b *BasePage) Visible(selector string) (bool, error) {
	visible, err := b.page.Locator(selector).First().IsVisible()
	if err != nil {
		return false, fmt.Errorf("failed to check visibility of %q: %w", selector, err)
	}
	return visible, nil
}

// InputValue returns the current value of the first input matching selector
func (b *BasePage) InputValue(selector string) (string, error) {
	value, err := b.page.Locator(selector).First().InputValue()
	if err != nil {
		return "", fmt.Errorf("failed to read value of %q: %w", selector, err)
	}
	return value, nil
}

// Attribute returns an attribute of the first element matching selector
func (b *BasePage) Attribute(selector, name string) (string, error) {
	value, err := b.page.Locator(selector).First().GetAttribute(name)
	if err != nil {
		return "", fmt.Errorf("failed to read attribute %q of %q: %w", name, selector, err)
	}
	return value, nil
}

// WaitForURLGlob waits until the page URL matches a glob pattern
func (b *BasePage) WaitForURLGlob(pattern string) error {
	if err := b.page.WaitForURL(pattern, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(b.timeoutMs),
	}); err != nil {
		shot, shotErr := b.Screenshot("url-timeout")
		if shotErr != nil {
			shot = fmt.Sprintf("(screenshot failed: %v)", shotErr)
		}
		return fmt.Errorf("URL did not match %q, still at %s (screenshot: %s): %w",
			pattern, b.page.URL(), shot, err)
	}
	return nil
}

// Screenshot captures a full-page screenshot under the artifacts directory
// and returns its path. Each capture gets a unique name.
func (b *BasePage) Screenshot(label string) (string, error) {
	if err := os.MkdirAll(b.artifactsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create artifacts dir: %w", err)
	}
	path := filepath.Join(b.artifactsDir, fmt.Sprintf("%s-%s.png", label, uuid.New().String()))
	if _, err := b.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return "", fmt.Errorf("failed to capture screenshot: %w", err)
	}
	return path, nil
}
