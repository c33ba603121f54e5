package documents

import (
	"time"

	"github.com/rafathanna/invento-app/internal/core/apperror"
	"github.com/rafathanna/invento-app/internal/core/types"
)

// DefaultTaxPercentage seeds new drafts.
const DefaultTaxPercentage = 14

// AvailabilityFunc answers how much stock the cached product snapshot records
// for (productID, warehouseID). Sales drafts check it before accepting a
// line; purchase drafts carry none because purchases add stock.
type AvailabilityFunc func(productID, warehouseID int64) float64

// Draft is the transient, client-only in-progress invoice. It is lost on
// exit and never persisted.
type Draft struct {
	Kind           Kind
	CounterpartyID int64
	CreatedBy      string
	TaxPercentage  types.Money
	Lines          []Line

	available AvailabilityFunc
}

// NewSalesDraft creates a sales draft guarded by the given stock snapshot.
func NewSalesDraft(available AvailabilityFunc) *Draft {
	return &Draft{
		Kind:          KindSales,
		TaxPercentage: types.NewMoney(DefaultTaxPercentage),
		Lines:         make([]Line, 0),
		available:     available,
	}
}

// NewPurchaseDraft creates a purchase draft. Any product and quantity are
// acceptable since purchasing adds stock.
func NewPurchaseDraft() *Draft {
	return &Draft{
		Kind:          KindPurchase,
		TaxPercentage: types.NewMoney(DefaultTaxPercentage),
		Lines:         make([]Line, 0),
	}
}

// SetTaxPercentage replaces the tax rate; values outside [0, 100] are
// rejected.
func (d *Draft) SetTaxPercentage(pct types.Money) error {
	if pct.IsNegative() || pct.GreaterThan(types.NewMoney(100)) {
		return apperror.NewValidation("tax percentage must be between 0 and 100").
			WithDetail("field", "taxPercentage")
	}
	d.TaxPercentage = pct
	return nil
}

// AddLine appends a staged line. On any rejection the line list is left
// unchanged. Two lines for the same product/warehouse pair may coexist; no
// merging happens.
func (d *Draft) AddLine(line Line) error {
	if line.ProductID <= 0 {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}
	if line.WarehouseID <= 0 {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
	}
	if line.Quantity <= 0 {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity")
	}
	if line.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price cannot be negative").
			WithDetail("field", "unitPrice")
	}

	if d.Kind == KindSales && d.available != nil {
		avail := d.available(line.ProductID, line.WarehouseID)
		if line.Quantity > avail {
			return apperror.NewInsufficientStock(line.ProductID, line.Quantity, avail)
		}
	}

	d.Lines = append(d.Lines, line)
	return nil
}

// RemoveLine splices the line at index out of the draft.
func (d *Draft) RemoveLine(index int) error {
	if index < 0 || index >= len(d.Lines) {
		return apperror.NewValidation("no such line").
			WithDetail("index", index)
	}
	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
	return nil
}

// Totals recomputes subtotal, tax and total from the current line list.
func (d *Draft) Totals() Totals {
	return ComputeTotals(d.Lines, d.TaxPercentage)
}

// Validate runs the submission gate. A failing draft produces no network
// call.
func (d *Draft) Validate() error {
	if d.CounterpartyID <= 0 {
		if d.Kind == KindPurchase {
			return apperror.NewValidation("supplier is required").
				WithDetail("field", "supplierId")
		}
		return apperror.NewValidation("customer is required").
			WithDetail("field", "customerId")
	}
	if d.CreatedBy == "" {
		return apperror.NewValidation("creator name is required").
			WithDetail("field", "createdBy")
	}
	if len(d.Lines) == 0 {
		return apperror.NewValidation("at least one line item is required").
			WithDetail("field", "items")
	}
	return nil
}

// Snapshot freezes the draft into the render model after a successful
// submission.
func (d *Draft) Snapshot(invoiceID int64, invoiceNumber, counterpartyName string, at time.Time) Snapshot {
	lines := make([]Line, len(d.Lines))
	copy(lines, d.Lines)
	return Snapshot{
		InvoiceID:        invoiceID,
		InvoiceNumber:    invoiceNumber,
		Kind:             d.Kind,
		CounterpartyID:   d.CounterpartyID,
		CounterpartyName: counterpartyName,
		CreatedBy:        d.CreatedBy,
		CreatedAt:        at,
		TaxPercentage:    d.TaxPercentage,
		Lines:            lines,
		Totals:           ComputeTotals(lines, d.TaxPercentage),
	}
}

// Reset returns the draft to its empty/default state. Called after a
// successful submission.
func (d *Draft) Reset() {
	d.CounterpartyID = 0
	d.CreatedBy = ""
	d.TaxPercentage = types.NewMoney(DefaultTaxPercentage)
	d.Lines = make([]Line, 0)
}
