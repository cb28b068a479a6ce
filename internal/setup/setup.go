// Package setup performs the one-time authentication phase: it logs into the
// storefront once and persists the browser storage state to disk, so every
// authenticated test can start from a pre-logged-in context. The state file
// is written before any parallel test runs and treated as read-only after.
package setup

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/themizzi/storefront-e2e/internal/browser"
	"github.com/themizzi/storefront-e2e/internal/config"
	"github.com/themizzi/storefront-e2e/internal/models"
	"github.com/themizzi/storefront-e2e/internal/pages"
)

// Dependencies holds everything the setup phase needs
type Dependencies struct {
	Fixture     *browser.Fixture
	Environment models.Environment
	Credentials models.Credentials
	Suite       config.SuiteConfig
}

// Run logs into the storefront in a fresh browser context and writes the
// resulting storage state to the configured path
func Run(deps Dependencies) error {
	if err := deps.Environment.Validate(); err != nil {
		return err
	}
	if err := deps.Credentials.Validate(); err != nil {
		return err
	}

	ctx, err := deps.Fixture.NewContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	page, err := ctx.NewPage()
	if err != nil {
		return fmt.Errorf("failed to create page for setup: %w", err)
	}

	p := pages.New(page, pages.Options{
		BaseURL:      deps.Suite.ResolveBaseURL(deps.Environment),
		TimeoutMs:    deps.Suite.DefaultTimeoutMs,
		ArtifactsDir: deps.Suite.ArtifactsDir,
	})

	login := p.Login()
	if err := login.Open(); err != nil {
		return err
	}
	if err := login.Login(deps.Credentials); err != nil {
		return err
	}
	if err := login.AssertLoggedIn(); err != nil {
		return fmt.Errorf("setup login as %q failed: %w", deps.Credentials.Username, err)
	}

	statePath := deps.Suite.StorageStatePath
	if err := os.MkdirAll(filepath.Dir(statePath), 0o755); err != nil {
		return fmt.Errorf("failed to create storage state directory: %w", err)
	}
	if _, err := ctx.StorageState(statePath); err != nil {
		return fmt.Errorf("failed to persist storage state: %w", err)
	}

	log.Printf("Storage state for %q written to %s", deps.Credentials.Username, statePath)
	return nil
}
