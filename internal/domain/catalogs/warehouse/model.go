// Package warehouse provides the Warehouse catalog.
// Warehouses are storage locations; products relate to them through
// per-warehouse quantity tuples owned by the Product catalog.
package warehouse

import (
	"strings"

	"github.com/rafathanna/invento-app/internal/core/apperror"
)

// Warehouse represents a storage location for goods.
type Warehouse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// CreateWarehouse is the payload for Warehouse/Create.
type CreateWarehouse struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// EditWarehouse is the payload for Warehouse/Edit. Unlike the other catalogs
// this edit goes out as a POST with a JSON body.
type EditWarehouse struct {
	ID int64 `json:"id"`
	CreateWarehouse
}

func (w CreateWarehouse) Validate() error {
	if len(strings.TrimSpace(w.Name)) < 2 {
		return apperror.NewValidation("name must be at least 2 characters").
			WithDetail("field", "name")
	}
	if strings.TrimSpace(w.Location) == "" {
		return apperror.NewValidation("location is required").
			WithDetail("field", "location")
	}
	return nil
}

func (w EditWarehouse) Validate() error {
	if w.ID <= 0 {
		return apperror.NewValidation("warehouse id is required").
			WithDetail("field", "id")
	}
	return w.CreateWarehouse.Validate()
}
