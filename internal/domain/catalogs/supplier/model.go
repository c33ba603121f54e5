// Package supplier provides the Supplier catalog.
// Suppliers are the counterparties of purchase invoices.
package supplier

import (
	"regexp"
	"strings"

	"github.com/rafathanna/invento-app/internal/core/apperror"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Supplier represents a purchase counterparty.
type Supplier struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address"`
}

// CreateSupplier is the payload for Supplier/Create.
type CreateSupplier struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// EditSupplier is the payload for Supplier/Edit (query-parameter encoded).
type EditSupplier struct {
	ID int64 `json:"id"`
	CreateSupplier
}

func (s CreateSupplier) Validate() error {
	if len(strings.TrimSpace(s.Name)) < 2 {
		return apperror.NewValidation("name must be at least 2 characters").
			WithDetail("field", "name")
	}
	if strings.TrimSpace(s.Phone) == "" {
		return apperror.NewValidation("phone is required").
			WithDetail("field", "phone")
	}
	if strings.TrimSpace(s.Address) == "" {
		return apperror.NewValidation("address is required").
			WithDetail("field", "address")
	}
	if s.Email != "" && !emailRE.MatchString(s.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}
	return nil
}

func (s EditSupplier) Validate() error {
	if s.ID <= 0 {
		return apperror.NewValidation("supplier id is required").
			WithDetail("field", "id")
	}
	return s.CreateSupplier.Validate()
}
