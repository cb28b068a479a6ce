package config

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/themizzi/storefront-e2e/internal/models"
)

// SuiteConfig holds runtime configuration for the browser test suite
type SuiteConfig struct {
	// EnvironmentName selects an entry from environments.json
	EnvironmentName string
	// BaseURLOverride, when set, wins over the selected environment's base URL
	BaseURLOverride string
	// Headless controls whether Chromium runs without a visible window
	Headless bool
	// DefaultTimeoutMs bounds every navigation and locator wait
	DefaultTimeoutMs float64
	// ArtifactsDir receives failure screenshots and the storage state file
	ArtifactsDir string
	// StorageStatePath is where global setup persists the authenticated session
	StorageStatePath string
}

// Defaults for the suite configuration
const (
	DefaultEnvironmentName = "prod"
	DefaultTimeoutMs       = 10000
	DefaultArtifactsDir    = "artifacts"
	storageStateFileName   = "storage-state.json"
)

// LoadSuiteConfig loads suite configuration from environment variables,
// falling back to defaults for anything unset
func LoadSuiteConfig(getenv func(string) string) (SuiteConfig, error) {
	cfg := SuiteConfig{
		EnvironmentName:  getenv("STORE_ENV"),
		BaseURLOverride:  getenv("STORE_BASE_URL"),
		Headless:         getenv("HEADLESS") != "false",
		DefaultTimeoutMs: DefaultTimeoutMs,
		ArtifactsDir:     getenv("E2E_ARTIFACTS_DIR"),
		StorageStatePath: getenv("E2E_STORAGE_STATE"),
	}

	if cfg.EnvironmentName == "" {
		cfg.EnvironmentName = DefaultEnvironmentName
	}
	if cfg.ArtifactsDir == "" {
		cfg.ArtifactsDir = DefaultArtifactsDir
	}
	if cfg.StorageStatePath == "" {
		cfg.StorageStatePath = filepath.Join(cfg.ArtifactsDir, storageStateFileName)
	}

	if raw := getenv("E2E_TIMEOUT_MS"); raw != "" {
		ms, err := strconv.ParseFloat(raw, 64)
		if err != nil || ms <= 0 {
			return cfg, fmt.Errorf("E2E_TIMEOUT_MS must be a positive number, got %q", raw)
		}
		cfg.DefaultTimeoutMs = ms
	}

	return cfg, nil
}

// ResolveBaseURL returns the base URL the suite should target: the explicit
// override when set, otherwise the selected environment's base URL
func (c SuiteConfig) ResolveBaseURL(env models.Environment) string {
	if c.BaseURLOverride != "" {
		return c.BaseURLOverride
	}
	return env.BaseURL
}
