// Package documents provides the shared machinery of sales and purchase
// invoices: line items, totals arithmetic, and the client-side draft.
package documents

import (
	"time"

	"github.com/rafathanna/invento-app/internal/core/types"
)

// Status is the invoice lifecycle state as the server reports it.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// CanCancel reports whether the client may request cancellation.
// Cancellation is the only transition the client can trigger, and it is
// irreversible.
func (s Status) CanCancel() bool {
	return s == StatusPending || s == StatusCompleted
}

// Line is one product/warehouse/quantity/price row of an invoice.
type Line struct {
	ProductID     int64       `json:"productId"`
	ProductName   string      `json:"productName"`
	WarehouseID   int64       `json:"warehouseId"`
	WarehouseName string      `json:"warehouseName"`
	Quantity      float64     `json:"quantity"`
	UnitPrice     types.Money `json:"unitPrice"`
	Total         types.Money `json:"total"`
}

// NewLine builds a line with its total computed as quantity × unitPrice.
func NewLine(productID int64, productName string, warehouseID int64, warehouseName string, quantity float64, unitPrice types.Money) Line {
	return Line{
		ProductID:     productID,
		ProductName:   productName,
		WarehouseID:   warehouseID,
		WarehouseName: warehouseName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		Total:         unitPrice.Mul(types.NewMoney(quantity)),
	}
}

// Totals are the derived amounts of a draft or submitted invoice.
type Totals struct {
	Subtotal  types.Money `json:"subTotal"`
	TaxAmount types.Money `json:"taxAmount"`
	Total     types.Money `json:"totalAmount"`
}

// ComputeTotals derives subtotal, tax and total from the full line list.
// It is a pure function of (lines, taxPercentage) and is recomputed on every
// read instead of being maintained incrementally.
func ComputeTotals(lines []Line, taxPercentage types.Money) Totals {
	subtotal := types.Zero()
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total)
	}
	taxAmount := subtotal.Mul(types.Percent(taxPercentage))
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
	}
}

// Snapshot is the last successfully submitted invoice, retained client-side
// solely to drive document rendering. It mirrors the submitted payload
// exactly: lines, tax, and computed totals.
type Snapshot struct {
	InvoiceID        int64
	InvoiceNumber    string
	Kind             Kind
	CounterpartyID   int64
	CounterpartyName string
	CreatedBy        string
	CreatedAt        time.Time
	// Status is empty for just-submitted drafts; only invoices fetched back
	// from the server carry one.
	Status        Status
	TaxPercentage types.Money
	Lines         []Line
	Totals        Totals
}

// Kind distinguishes the two invoice documents.
type Kind string

const (
	KindSales    Kind = "sales"
	KindPurchase Kind = "purchase"
)

// Title returns the document heading for rendering.
func (k Kind) Title() string {
	if k == KindPurchase {
		return "Purchase Invoice"
	}
	return "Sales Invoice"
}

// CounterpartyLabel returns the party caption for rendering.
func (k Kind) CounterpartyLabel() string {
	if k == KindPurchase {
		return "Supplier"
	}
	return "Customer"
}
