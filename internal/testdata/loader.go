// Package testdata loads the JSON fixture files that drive the browser suite
// and resolves credentials against process environment variables.
package testdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/themizzi/storefront-e2e/internal/models"
)

// Fixture file names, relative to the fixtures directory
const (
	UsersFile        = "users.json"
	EnvironmentsFile = "environments.json"
	ProductsFile     = "products.json"
	TestDataFile     = "testdata.json"
)

// Loader errors
var (
	ErrUnknownUserType    = errors.New("unknown user type")
	ErrUnknownEnvironment = errors.New("unknown environment")
	ErrUnresolvedValue    = errors.New("credential value not set in fixture or environment")
)

// userEntry mirrors one entry of users.json. Username and Password are
// fixture literals; the *Env fields name environment variables that, when
// set, take precedence over the literals.
type userEntry struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	UsernameEnv string `json:"usernameEnv"`
	PasswordEnv string `json:"passwordEnv"`
}

// environmentEntry mirrors one entry of environments.json
type environmentEntry struct {
	BaseURL string `json:"baseUrl"`
}

// Messages holds the expected UI strings asserted by the specs
type Messages struct {
	LockedOutError          string `json:"lockedOutError"`
	BadCredentialsError     string `json:"badCredentialsError"`
	FirstNameRequiredError  string `json:"firstNameRequiredError"`
	LastNameRequiredError   string `json:"lastNameRequiredError"`
	PostalCodeRequiredError string `json:"postalCodeRequiredError"`
	CompleteHeader          string `json:"completeHeader"`
	ProductsTitle           string `json:"productsTitle"`
	CartTitle               string `json:"cartTitle"`
	CheckoutInfoTitle       string `json:"checkoutInfoTitle"`
	CheckoutOverviewTitle   string `json:"checkoutOverviewTitle"`
	CheckoutCompleteTitle   string `json:"checkoutCompleteTitle"`
}

// TestData is the contents of testdata.json
type TestData struct {
	Messages Messages            `json:"messages"`
	Checkout models.CheckoutForm `json:"checkout"`
}

// Loader reads fixtures from one directory. Credential lookups consult the
// injected getenv so tests can supply a fake process environment.
type Loader struct {
	dir    string
	getenv func(string) string
}

// NewLoader creates a loader for the given fixtures directory
func NewLoader(dir string, getenv func(string) string) *Loader {
	return &Loader{dir: dir, getenv: getenv}
}

// DefaultDir resolves the repository's fixtures directory relative to this
// source file, so the suite works regardless of the test working directory
func DefaultDir() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("testdata: failed to resolve fixtures directory")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", "..", "fixtures"))
}

func (l *Loader) readJSON(name string, v any) error {
	path := filepath.Join(l.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse fixture %s: %w", name, err)
	}
	return nil
}

// Credentials resolves the credentials for a user type. An environment
// variable named by the fixture wins over the fixture literal.
func (l *Loader) Credentials(userType string) (models.Credentials, error) {
	var users map[string]userEntry
	if err := l.readJSON(UsersFile, &users); err != nil {
		return models.Credentials{}, err
	}

	entry, ok := users[userType]
	if !ok {
		return models.Credentials{}, fmt.Errorf("%w: %q", ErrUnknownUserType, userType)
	}

	username, err := l.resolve(userType, "username", entry.UsernameEnv, entry.Username)
	if err != nil {
		return models.Credentials{}, err
	}
	password, err := l.resolve(userType, "password", entry.PasswordEnv, entry.Password)
	if err != nil {
		return models.Credentials{}, err
	}

	creds := models.Credentials{Username: username, Password: password, Type: userType}
	if err := creds.Validate(); err != nil {
		return models.Credentials{}, err
	}
	return creds, nil
}

// resolve applies the env-over-fixture precedence for one credential field
func (l *Loader) resolve(userType, field, envName, literal string) (string, error) {
	if envName != "" {
		if value := l.getenv(envName); value != "" {
			return value, nil
		}
	}
	if literal != "" {
		return literal, nil
	}
	return "", fmt.Errorf("%w: %s for user type %q (env %q)", ErrUnresolvedValue, field, userType, envName)
}

// UserTypes returns every user type defined in users.json
func (l *Loader) UserTypes() ([]string, error) {
	var users map[string]userEntry
	if err := l.readJSON(UsersFile, &users); err != nil {
		return nil, err
	}
	types := make([]string, 0, len(users))
	for userType := range users {
		types = append(types, userType)
	}
	return types, nil
}

// Environments returns every deployment target defined in environments.json
func (l *Loader) Environments() (map[string]models.Environment, error) {
	var entries map[string]environmentEntry
	if err := l.readJSON(EnvironmentsFile, &entries); err != nil {
		return nil, err
	}
	envs := make(map[string]models.Environment, len(entries))
	for name, entry := range entries {
		envs[name] = models.Environment{Name: name, BaseURL: entry.BaseURL}
	}
	return envs, nil
}

// Environment returns one validated deployment target by name
func (l *Loader) Environment(name string) (models.Environment, error) {
	envs, err := l.Environments()
	if err != nil {
		return models.Environment{}, err
	}
	env, ok := envs[name]
	if !ok {
		return models.Environment{}, fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
	}
	if err := env.Validate(); err != nil {
		return models.Environment{}, err
	}
	return env, nil
}

// Products returns the expected product catalog from products.json
func (l *Loader) Products() ([]models.Product, error) {
	var products []models.Product
	if err := l.readJSON(ProductsFile, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// TestData returns the expected UI strings and checkout payload
func (l *Loader) TestData() (*TestData, error) {
	var data TestData
	if err := l.readJSON(TestDataFile, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ValidateAll parses every fixture file and resolves every credential entry.
// Used by the CLI to fail fast on broken fixtures before a run.
func (l *Loader) ValidateAll() error {
	types, err := l.UserTypes()
	if err != nil {
		return err
	}
	for _, userType := range types {
		if _, err := l.Credentials(userType); err != nil {
			return err
		}
	}

	envs, err := l.Environments()
	if err != nil {
		return err
	}
	for _, env := range envs {
		if err := env.Validate(); err != nil {
			return err
		}
	}

	if _, err := l.Products(); err != nil {
		return err
	}
	if _, err := l.TestData(); err != nil {
		return err
	}
	return nil
}
