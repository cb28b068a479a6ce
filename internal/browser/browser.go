// Package browser manages the Playwright and Chromium lifecycle shared by the
// suite and the management CLI.
package browser

import (
	"fmt"
	"os"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/storefront-e2e/internal/config"
)

// Fixture holds a running Playwright driver and a launched Chromium instance
type Fixture struct {
	PW      *playwright.Playwright
	Browser playwright.Browser

	cfg config.SuiteConfig
}

// Install downloads the Playwright driver and the Chromium browser.
// Equivalent to: go run github.com/playwright-community/playwright-go/cmd/playwright@latest install chromium
func Install() error {
	if err := playwright.Install(&playwright.RunOptions{
		Browsers: []string{"chromium"},
	}); err != nil {
		return fmt.Errorf("failed to install playwright browsers: %w", err)
	}
	return nil
}

// Launch starts Playwright and launches Chromium according to the suite
// configuration. Callers must Close the returned fixture.
func Launch(cfg config.SuiteConfig) (*Fixture, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	return &Fixture{PW: pw, Browser: b, cfg: cfg}, nil
}

// NewContext creates a browser context with isolated cookies and storage and
// the suite's default timeouts applied
func (f *Fixture) NewContext() (playwright.BrowserContext, error) {
	ctx, err := f.Browser.NewContext()
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	f.applyTimeouts(ctx)
	return ctx, nil
}

// NewAuthenticatedContext creates a browser context pre-loaded with the
// storage state persisted by global setup, so pages start already logged in
func (f *Fixture) NewAuthenticatedContext(statePath string) (playwright.BrowserContext, error) {
	if _, err := os.Stat(statePath); err != nil {
		return nil, fmt.Errorf("storage state %s not available: %w", statePath, err)
	}

	ctx, err := f.Browser.NewContext(playwright.BrowserNewContextOptions{
		StorageStatePath: playwright.String(statePath),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated context: %w", err)
	}
	f.applyTimeouts(ctx)
	return ctx, nil
}

func (f *Fixture) applyTimeouts(ctx playwright.BrowserContext) {
	ctx.SetDefaultTimeout(f.cfg.DefaultTimeoutMs)
	ctx.SetDefaultNavigationTimeout(f.cfg.DefaultTimeoutMs)
}

// Close releases the browser and the Playwright driver
func (f *Fixture) Close() error {
	var firstErr error
	if f.Browser != nil {
		if err := f.Browser.Close(); err != nil {
			firstErr = fmt.Errorf("failed to close browser: %w", err)
		}
	}
	if f.PW != nil {
		if err := f.PW.Stop(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to stop playwright: %w", err)
		}
	}
	return firstErr
}
