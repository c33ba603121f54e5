package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stocked() Product {
	return Product{
		ID:        1,
		Name:      "Olive Oil 1L",
		Threshold: 10,
		Warehouses: []WarehouseStock{
			{WarehouseID: 1, WarehouseName: "Main", Quantity: 4},
			{WarehouseID: 2, WarehouseName: "Annex", Quantity: 3},
		},
	}
}

func TestProductStockHelpers(t *testing.T) {
	p := stocked()

	assert.Equal(t, 7.0, p.TotalStock())
	assert.Equal(t, 4.0, p.AvailableIn(1))
	assert.Equal(t, 0.0, p.AvailableIn(99), "unlinked warehouse has no stock")
	assert.True(t, p.BelowThreshold())

	p.Threshold = 0
	assert.False(t, p.BelowThreshold(), "zero threshold disables the alert")
}

func TestCreateProductValidate(t *testing.T) {
	valid := CreateProduct{
		Name:           "Olive Oil 1L",
		Price:          120,
		Threshold:      10,
		ProductionDate: "2026-01-15",
		ExpirationDate: "2027-01-15",
		Quantity:       50,
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.Name = "x"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Price = -1
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Quantity = -1
	assert.Error(t, bad.Validate())

	bad = valid
	bad.ProductionDate, bad.ExpirationDate = "2027-01-15", "2026-01-15"
	assert.Error(t, bad.Validate(), "production after expiration")

	bad = valid
	bad.ProductionDate = "15/01/2026"
	assert.Error(t, bad.Validate())

	// Dates are optional as a pair.
	open := valid
	open.ProductionDate, open.ExpirationDate = "", ""
	assert.NoError(t, open.Validate())
}

func TestEditProductValidate(t *testing.T) {
	assert.Error(t, EditProduct{Name: "Olive Oil"}.Validate(), "id required")
	assert.NoError(t, EditProduct{ID: 3, Name: "Olive Oil"}.Validate())
}

func TestStockLinkValidate(t *testing.T) {
	require.NoError(t, StockLink{ProductID: 1, WarehouseID: 2, Quantity: 5}.Validate())
	assert.Error(t, StockLink{WarehouseID: 2, Quantity: 5}.Validate())
	assert.Error(t, StockLink{ProductID: 1, Quantity: 5}.Validate())
	assert.Error(t, StockLink{ProductID: 1, WarehouseID: 2, Quantity: -5}.Validate())
	assert.NoError(t, StockLink{ProductID: 1, WarehouseID: 2}.Validate(), "zero quantity empties the link")
}
