// Package product provides the Product catalog.
// A product carries a list of (warehouse, quantity) tuples describing where
// its stock sits; total stock is derived from those, never stored.
package product

import (
	"io"
	"strings"
	"time"

	"github.com/rafathanna/invento-app/internal/core/apperror"
	"github.com/rafathanna/invento-app/internal/core/types"
)

// DateLayout is how the API formats product dates.
const DateLayout = "2006-01-02"

// WarehouseStock is one per-warehouse quantity tuple.
type WarehouseStock struct {
	WarehouseID   int64   `json:"warehouseId"`
	WarehouseName string  `json:"warehouseName"`
	Quantity      float64 `json:"quantity"`
}

// Product represents a catalog item.
type Product struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	SKU            string           `json:"sku"`
	Description    string           `json:"description"`
	Price          float64          `json:"price"`
	Threshold      float64          `json:"threshold"`
	ProductionDate string           `json:"productionDate"`
	ExpirationDate string           `json:"expirationDate"`
	ImageURL       *string          `json:"imageUrl"`
	Warehouses     []WarehouseStock `json:"warehouses"`
}

// TotalStock sums the per-warehouse quantities.
func (p *Product) TotalStock() float64 {
	var total float64
	for _, w := range p.Warehouses {
		total += w.Quantity
	}
	return total
}

// AvailableIn returns the recorded quantity in one warehouse.
// This is the cached snapshot the sales draft checks against; the server
// remains authoritative at submit time.
func (p *Product) AvailableIn(warehouseID int64) float64 {
	for _, w := range p.Warehouses {
		if w.WarehouseID == warehouseID {
			return w.Quantity
		}
	}
	return 0
}

// BelowThreshold reports whether total stock sits at or under the low-stock
// alert level.
func (p *Product) BelowThreshold() bool {
	return p.Threshold > 0 && p.TotalStock() <= p.Threshold
}

// ListPrice returns the product's price as Money for draft defaulting.
func (p *Product) ListPrice() types.Money {
	return types.NewMoney(p.Price)
}

// Image is an optional upload attached to create/edit.
type Image struct {
	Filename string
	Content  io.Reader
}

// CreateProduct is the multipart payload for Products/Create. The initial
// warehouse and quantity seed the first stock tuple server-side.
type CreateProduct struct {
	Name           string
	SKU            string
	Description    string
	Price          float64
	Threshold      float64
	ProductionDate string
	ExpirationDate string
	WarehouseID    int64
	Quantity       float64
	Image          *Image
}

// EditProduct is the multipart payload for Products/Edit.
type EditProduct struct {
	ID             int64
	Name           string
	SKU            string
	Description    string
	Price          float64
	Threshold      float64
	ProductionDate string
	ExpirationDate string
	Image          *Image
}

// StockLink is the payload for the ProductWarehouse link endpoints.
type StockLink struct {
	ProductID   int64   `json:"productId"`
	WarehouseID int64   `json:"warehouseId"`
	Quantity    float64 `json:"quantity"`
}

func (c CreateProduct) Validate() error {
	if err := validateCommon(c.Name, c.Price, c.Threshold, c.ProductionDate, c.ExpirationDate); err != nil {
		return err
	}
	if c.Quantity < 0 {
		return apperror.NewValidation("quantity cannot be negative").
			WithDetail("field", "quantity")
	}
	return nil
}

func (e EditProduct) Validate() error {
	if e.ID <= 0 {
		return apperror.NewValidation("product id is required").
			WithDetail("field", "id")
	}
	return validateCommon(e.Name, e.Price, e.Threshold, e.ProductionDate, e.ExpirationDate)
}

func (l StockLink) Validate() error {
	if l.ProductID <= 0 {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}
	if l.WarehouseID <= 0 {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
	}
	if l.Quantity < 0 {
		return apperror.NewValidation("quantity cannot be negative").
			WithDetail("field", "quantity")
	}
	return nil
}

func validateCommon(name string, price, threshold float64, productionDate, expirationDate string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return apperror.NewValidation("name must be at least 2 characters").
			WithDetail("field", "name")
	}
	if price < 0 {
		return apperror.NewValidation("price cannot be negative").
			WithDetail("field", "price")
	}
	if threshold < 0 {
		return apperror.NewValidation("threshold cannot be negative").
			WithDetail("field", "threshold")
	}

	// Date ordering: production must not come after expiration.
	if productionDate != "" && expirationDate != "" {
		prod, err1 := time.Parse(DateLayout, productionDate)
		exp, err2 := time.Parse(DateLayout, expirationDate)
		if err1 != nil {
			return apperror.NewValidation("invalid production date").
				WithDetail("field", "productionDate")
		}
		if err2 != nil {
			return apperror.NewValidation("invalid expiration date").
				WithDetail("field", "expirationDate")
		}
		if prod.After(exp) {
			return apperror.NewValidation("production date must be before expiration date").
				WithDetail("field", "productionDate")
		}
	}
	return nil
}
