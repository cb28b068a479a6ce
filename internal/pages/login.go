package pages

import (
	"fmt"

	"github.com/themizzi/storefront-e2e/internal/models"
)

// Login page locators
const (
	loginPath              = "/"
	loginContainerSelector = "#login_button_container"
	usernameSelector       = "#user-name"
	passwordSelector       = "#password"
	loginButtonSelector    = "#login-button"
	loginErrorSelector     = `[data-test="error"]`
)

// LoginPage wraps the storefront login screen
type LoginPage struct {
	BasePage
}

// Open navigates to the login screen and waits for the login form
func (l *LoginPage) Open() error {
	return l.Goto(loginPath, loginContainerSelector)
}

// Login fills the credential fields and submits the form
func (l *LoginPage) Login(creds models.Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}
	if err := l.Fill(usernameSelector, creds.Username); err != nil {
		return err
	}
	if err := l.Fill(passwordSelector, creds.Password); err != nil {
		return err
	}
	return l.Click(loginButtonSelector)
}

// ErrorText returns the login error banner text
func (l *LoginPage) ErrorText() (string, error) {
	if err := l.WaitVisible(loginErrorSelector); err != nil {
		return "", err
	}
	return l.Text(loginErrorSelector)
}

// AssertLoggedIn waits for the inventory screen to render after a login
func (l *LoginPage) AssertLoggedIn() error {
	if err := l.WaitForURLGlob("**/inventory.html"); err != nil {
		return fmt.Errorf("login did not reach the inventory page: %w", err)
	}
	return l.WaitVisible(inventoryContainerSelector)
}

// AssertLoginFailed verifies the error banner text and that the browser
// stayed on the login screen
func (l *LoginPage) AssertLoginFailed(expectedError string) error {
	text, err := l.ErrorText()
	if err != nil {
		return err
	}
	if text != expectedError {
		return fmt.Errorf("expected login error %q, got %q", expectedError, text)
	}
	visible, err := l.Visible(loginButtonSelector)
	if err != nil {
		return err
	}
	if !visible {
		return fmt.Errorf("expected to remain on the login screen, at %s", l.URL())
	}
	return nil
}
