// Package cli implements the suite's management commands: installing
// browsers, running the global authentication setup, and validating fixtures.
package cli

import (
	"fmt"
	"log"

	"github.com/themizzi/storefront-e2e/internal/browser"
	"github.com/themizzi/storefront-e2e/internal/config"
	"github.com/themizzi/storefront-e2e/internal/setup"
	"github.com/themizzi/storefront-e2e/internal/testdata"
)

// SetupOptions holds the inputs of the setup command
type SetupOptions struct {
	// FixturesDir is the directory holding the JSON fixture files
	FixturesDir string
	// UserType selects the users.json entry to authenticate as
	UserType string
	// Getenv resolves environment variables; injected for testability
	Getenv func(string) string
}

// RunInstall downloads the Playwright driver and Chromium
func RunInstall() error {
	log.Println("Installing Playwright driver and Chromium...")
	if err := browser.Install(); err != nil {
		return err
	}
	log.Println("Browsers installed")
	return nil
}

// RunSetup performs the global login and persists the storage state file
func RunSetup(opts SetupOptions) error {
	suiteCfg, err := config.LoadSuiteConfig(opts.Getenv)
	if err != nil {
		return err
	}

	loader := testdata.NewLoader(opts.FixturesDir, opts.Getenv)
	env, err := loader.Environment(suiteCfg.EnvironmentName)
	if err != nil {
		return err
	}
	creds, err := loader.Credentials(opts.UserType)
	if err != nil {
		return err
	}

	fixture, err := browser.Launch(suiteCfg)
	if err != nil {
		return err
	}
	defer fixture.Close()

	log.Printf("Authenticating as %q against %s", creds.Username, suiteCfg.ResolveBaseURL(env))
	return setup.Run(setup.Dependencies{
		Fixture:     fixture,
		Environment: env,
		Credentials: creds,
		Suite:       suiteCfg,
	})
}

// RunFixturesCheck parses every fixture file and resolves every credential,
// failing fast on anything a test run would trip over
func RunFixturesCheck(fixturesDir string, getenv func(string) string) error {
	loader := testdata.NewLoader(fixturesDir, getenv)
	if err := loader.ValidateAll(); err != nil {
		return fmt.Errorf("fixture validation failed: %w", err)
	}
	log.Printf("Fixtures in %s are valid", fixturesDir)
	return nil
}
