package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPI_Refine(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
		errs    []string
		want    string
	}{
		{"plain rejection", 400, "something broke", nil, CodeAPI},
		{"not found status", 404, "Customer not found", nil, CodeNotFound},
		{"delete product with stock", 400, "Cannot delete: product has stock", nil, CodeHasStock},
		{"delete warehouse with products", 400, "Warehouse has products", nil, CodeHasProducts},
		{"insufficient stock wording", 400, "Insufficient stock in warehouse Main", nil, CodeInsufficientStock},
		{"already cancelled", 400, "Invoice is already cancelled", nil, CodeAlreadyCancelled},
		{"wording only in errors list", 400, "Request failed", []string{"Product has stock in 2 warehouses"}, CodeHasStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAPI(tt.status, tt.message, tt.errs)
			assert.Equal(t, tt.want, err.Code)
			assert.Equal(t, tt.status, err.HTTPStatus)
		})
	}
}

func TestNewAPI_EmptyMessage(t *testing.T) {
	err := NewAPI(500, "", nil)
	assert.Equal(t, "the server rejected the request", err.Message)
}

func TestFriendlyMessage(t *testing.T) {
	assert.Contains(t, NewAPI(400, "product has stock", nil).FriendlyMessage(), "still has stock")
	assert.Contains(t, NewTransport(errors.New("dial tcp")).FriendlyMessage(), "Could not reach")
	assert.Equal(t, "custom wording", NewAPI(400, "custom wording", nil).FriendlyMessage())
}

func TestAsAppError_ThroughWrapping(t *testing.T) {
	base := NewValidation("name is required").WithDetail("field", "name")
	wrapped := fmt.Errorf("create customer: %w", base)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, appErr.Code)
	assert.Equal(t, "name", appErr.Details["field"])

	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsNotFound(wrapped))
}

func TestErrorString(t *testing.T) {
	plain := NewValidation("bad input")
	assert.Equal(t, "VALIDATION_ERROR: bad input", plain.Error())

	caused := NewTransport(errors.New("dial tcp: refused"))
	assert.Contains(t, caused.Error(), "caused by")
	assert.ErrorContains(t, caused.Unwrap(), "refused")
}
