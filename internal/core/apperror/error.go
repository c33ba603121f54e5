// Package apperror provides structured error handling for the client.
// All failures surfaced to the console must use AppError so callers can
// distinguish local validation from server rejections and transport faults.
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes
const (
	// Transport and decoding failures
	CodeTransport = "TRANSPORT_ERROR"
	CodeDecode    = "DECODE_ERROR"

	// Client-side validation (blocks the request entirely)
	CodeValidation = "VALIDATION_ERROR"

	// Server rejections, decoded from the API envelope
	CodeAPI      = "API_ERROR"
	CodeNotFound = "NOT_FOUND"

	// Business rule violations
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeAlreadyCancelled  = "INVOICE_ALREADY_CANCELLED"
	CodeHasStock          = "PRODUCT_HAS_STOCK"
	CodeHasProducts       = "WAREHOUSE_HAS_PRODUCTS"
)

// AppError is the standard error type for the client.
// It implements the error interface and carries the server's payload unchanged.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (field errors, quantities, etc.)
	Details map[string]any `json:"details,omitempty"`

	// ServerErrors holds the raw `errors` list from the API envelope
	ServerErrors []string `json:"errors,omitempty"`

	// HTTPStatus is the status the server answered with, when applicable
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions ---

// NewValidation creates a client-side validation error. Requests guarded by
// such a check are never sent.
func NewValidation(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewTransport creates an error for a request that never produced a response.
func NewTransport(err error) *AppError {
	return &AppError{
		Code:    CodeTransport,
		Message: "request failed",
		Err:     err,
	}
}

// NewDecode creates an error for an unreadable response body.
func NewDecode(err error) *AppError {
	return &AppError{
		Code:    CodeDecode,
		Message: "cannot decode server response",
		Err:     err,
	}
}

// NewNotFound creates a not found error
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: 404,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewInsufficientStock creates a stock shortage error
func NewInsufficientStock(productID int64, requested, available float64) *AppError {
	return &AppError{
		Code:    CodeInsufficientStock,
		Message: "insufficient stock",
		Details: map[string]any{
			"productId": productID,
			"requested": requested,
			"available": available,
		},
	}
}

// NewAlreadyCancelled is returned when cancelling an invoice a second time.
func NewAlreadyCancelled(invoiceID int64) *AppError {
	return &AppError{
		Code:    CodeAlreadyCancelled,
		Message: "invoice is already cancelled",
		Details: map[string]any{"invoiceId": invoiceID},
	}
}

// NewAPI creates an error from a server rejection. The server message and
// errors list are carried verbatim; Refine maps known wordings to friendlier
// codes.
func NewAPI(status int, message string, serverErrors []string) *AppError {
	e := &AppError{
		Code:         CodeAPI,
		Message:      message,
		ServerErrors: serverErrors,
		HTTPStatus:   status,
	}
	if message == "" {
		e.Message = "the server rejected the request"
	}
	if status == 404 {
		e.Code = CodeNotFound
	}
	return e.Refine()
}

// Refine pattern-matches known server wordings onto structured codes.
// The API reports referential-constraint violations only through free text,
// so this coupling is to the server's wording, not to an error code.
func (e *AppError) Refine() *AppError {
	lower := strings.ToLower(e.Message)
	for _, s := range e.ServerErrors {
		lower += " " + strings.ToLower(s)
	}
	switch {
	case strings.Contains(lower, "has stock") || strings.Contains(lower, "still has stock"):
		e.Code = CodeHasStock
	case strings.Contains(lower, "has products") || strings.Contains(lower, "contains products"):
		e.Code = CodeHasProducts
	case strings.Contains(lower, "insufficient") && strings.Contains(lower, "stock"):
		e.Code = CodeInsufficientStock
	case strings.Contains(lower, "already cancelled") || strings.Contains(lower, "already canceled"):
		e.Code = CodeAlreadyCancelled
	}
	return e
}

// FriendlyMessage returns a console-ready explanation for known failure
// shapes, falling back to the server's own message.
func (e *AppError) FriendlyMessage() string {
	switch e.Code {
	case CodeHasStock:
		return "This product still has stock in one or more warehouses. Move or adjust the stock before deleting it."
	case CodeHasProducts:
		return "This warehouse still holds products. Empty it before deleting."
	case CodeInsufficientStock:
		return "Not enough stock in the selected warehouse for this quantity."
	case CodeAlreadyCancelled:
		return "This invoice has already been cancelled."
	case CodeTransport:
		return "Could not reach the server. Check your connection and try again."
	}
	if e.Message != "" {
		return e.Message
	}
	return "Something went wrong. Please try again."
}

// --- Helper functions ---

// IsAppError checks if error is AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsValidation checks if error is a client-side validation failure
func IsValidation(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeValidation
	}
	return false
}

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeNotFound
	}
	return false
}
