package models

import (
	"errors"
	"fmt"
	"net/url"
)

// Domain errors
var (
	ErrMissingUsername = errors.New("credentials username cannot be empty")
	ErrMissingPassword = errors.New("credentials password cannot be empty")
	ErrMissingEnvName  = errors.New("environment name cannot be empty")
	ErrInvalidBaseURL  = errors.New("environment base URL must be absolute")
)

// Credentials identifies one login to the storefront. Type is the fixture key
// the credentials were loaded under (e.g. "standard", "locked_out").
type Credentials struct {
	Username string
	Password string
	Type     string
}

// Validate checks that the credentials are usable for a login attempt.
func (c Credentials) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("%w (type %q)", ErrMissingUsername, c.Type)
	}
	if c.Password == "" {
		return fmt.Errorf("%w (type %q)", ErrMissingPassword, c.Type)
	}
	return nil
}

// Environment selects one deployment target of the storefront.
type Environment struct {
	Name    string
	BaseURL string
}

// Validate checks that the environment names an absolute http(s) base URL.
func (e Environment) Validate() error {
	if e.Name == "" {
		return ErrMissingEnvName
	}
	u, err := url.Parse(e.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: %q (environment %q)", ErrInvalidBaseURL, e.BaseURL, e.Name)
	}
	return nil
}

// Product is a catalog entry as the storefront renders it. Price keeps the
// displayed form ("$29.99") so list and detail pages can be compared verbatim.
type Product struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// CheckoutForm is the customer information entered on checkout step one.
// The storefront validates it server-side; the suite only fills and reads it.
type CheckoutForm struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	PostalCode string `json:"postalCode"`
}

// CartItem is one rendered cart line. Quantity is already parsed from the DOM;
// an unparsable quantity cell is recorded as 0.
type CartItem struct {
	ProductName string
	Price       string
	Quantity    int
}

// TotalQuantity sums the quantities of all cart lines.
func TotalQuantity(items []CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}
