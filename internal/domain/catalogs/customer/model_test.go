package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafathanna/invento-app/internal/core/apperror"
)

func TestCreateCustomerValidate(t *testing.T) {
	valid := CreateCustomer{
		Name:    "Acme Corp",
		Phone:   "0100000000",
		Email:   "sales@acme.test",
		Address: "12 Main St",
	}
	require.NoError(t, valid.Validate())

	// Email is the only optional field.
	noEmail := valid
	noEmail.Email = ""
	assert.NoError(t, noEmail.Validate())

	bad := valid
	bad.Name = " a "
	err := bad.Validate()
	require.Error(t, err)
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "name", appErr.Details["field"])

	bad = valid
	bad.Phone = "  "
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Address = ""
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Email = "not-an-email"
	assert.Error(t, bad.Validate())
}

func TestEditCustomerValidate(t *testing.T) {
	edit := EditCustomer{
		CreateCustomer: CreateCustomer{
			Name:    "Acme Corp",
			Phone:   "0100000000",
			Address: "12 Main St",
		},
	}
	assert.Error(t, edit.Validate(), "id required")

	edit.ID = 3
	assert.NoError(t, edit.Validate())
}
