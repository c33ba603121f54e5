// Package customer provides the Customer catalog.
// Customers are the counterparties of sales invoices. The server owns the
// records; this package holds the view model and the client-side checks that
// run before any request is sent.
package customer

import (
	"regexp"
	"strings"

	"github.com/rafathanna/invento-app/internal/core/apperror"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Customer represents a sales counterparty.
type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address"`
}

// CreateCustomer is the payload for Customer/Create.
type CreateCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// EditCustomer is the payload for Customer/Edit (sent as query parameters, a
// server API quirk).
type EditCustomer struct {
	ID int64 `json:"id"`
	CreateCustomer
}

// Validate runs the form-level checks. Failing them blocks the request
// entirely, independent of server validation.
func (c CreateCustomer) Validate() error {
	if len(strings.TrimSpace(c.Name)) < 2 {
		return apperror.NewValidation("name must be at least 2 characters").
			WithDetail("field", "name")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return apperror.NewValidation("phone is required").
			WithDetail("field", "phone")
	}
	if strings.TrimSpace(c.Address) == "" {
		return apperror.NewValidation("address is required").
			WithDetail("field", "address")
	}
	if c.Email != "" && !emailRE.MatchString(c.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}
	return nil
}

// Validate checks the edit payload.
func (c EditCustomer) Validate() error {
	if c.ID <= 0 {
		return apperror.NewValidation("customer id is required").
			WithDetail("field", "id")
	}
	return c.CreateCustomer.Validate()
}
