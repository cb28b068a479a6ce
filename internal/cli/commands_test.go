package cli

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFixtures populates a temp directory with a minimal valid fixture set
func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"users.json":        `{"standard": {"username": "standard_user", "password": "secret_sauce"}}`,
		"environments.json": `{"prod": {"baseUrl": "https://www.saucedemo.com"}}`,
		"products.json":     `[{"name": "Sauce Labs Backpack", "price": "$29.99", "description": "carry.allTheThings()"}]`,
		"testdata.json":     `{"messages": {"completeHeader": "Thank you for your order!"}, "checkout": {"firstName": "Jane", "lastName": "Doe", "postalCode": "94105"}}`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write fixture %s: %v", name, err)
		}
	}
	return dir
}

func TestRunFixturesCheck(t *testing.T) {
	getenv := func(string) string { return "" }

	t.Run("valid fixtures pass", func(t *testing.T) {
		dir := writeFixtures(t)
		if err := RunFixturesCheck(dir, getenv); err != nil {
			t.Errorf("RunFixturesCheck() unexpected error = %v", err)
		}
	})

	t.Run("broken json fails", func(t *testing.T) {
		dir := writeFixtures(t)
		if err := os.WriteFile(filepath.Join(dir, "users.json"), []byte("{"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := RunFixturesCheck(dir, getenv); err == nil {
			t.Error("Expected error for broken users.json")
		}
	})

	t.Run("missing directory fails", func(t *testing.T) {
		if err := RunFixturesCheck(filepath.Join(t.TempDir(), "nope"), getenv); err == nil {
			t.Error("Expected error for missing fixtures directory")
		}
	})
}

func TestRunSetup_BadFixtures(t *testing.T) {
	getenv := func(string) string { return "" }

	t.Run("unknown user type", func(t *testing.T) {
		dir := writeFixtures(t)
		err := RunSetup(SetupOptions{FixturesDir: dir, UserType: "admin", Getenv: getenv})
		if err == nil {
			t.Error("Expected error for unknown user type")
		}
	})

	t.Run("unknown environment", func(t *testing.T) {
		dir := writeFixtures(t)
		err := RunSetup(SetupOptions{
			FixturesDir: dir,
			UserType:    "standard",
			Getenv:      func(key string) string { return map[string]string{"STORE_ENV": "staging"}[key] },
		})
		if err == nil {
			t.Error("Expected error for unknown environment")
		}
	})
}
