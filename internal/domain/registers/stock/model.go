// Package stock provides the read-only stock movement register.
// Movements are appended server-side as invoices post; the client only
// fetches and renders them, grouped by warehouse.
package stock

import (
	"sort"
	"strings"
	"time"

	"github.com/rafathanna/invento-app/internal/core/apperror"
)

// MovementType is the ledger entry kind, numbered as the API encodes it.
type MovementType int

const (
	PurchaseIn MovementType = 1
	SalesOut   MovementType = 2
	Transfer   MovementType = 3
	Adjustment MovementType = 4
)

// String returns the display name for a movement type.
func (t MovementType) String() string {
	switch t {
	case PurchaseIn:
		return "Purchase In"
	case SalesOut:
		return "Sales Out"
	case Transfer:
		return "Transfer"
	case Adjustment:
		return "Adjustment"
	}
	return "Unknown"
}

// Movement is one append-only stock ledger entry.
type Movement struct {
	MovementID    int64        `json:"movementId"`
	ProductID     int64        `json:"productId"`
	ProductName   string       `json:"productName"`
	MovementType  MovementType `json:"movementType"`
	Quantity      float64      `json:"quantity"`
	MovementDate  string       `json:"movementDate"`
	InvoiceID     *int64       `json:"invoiceId"`
	InvoiceNumber *string      `json:"invoiceNumber"`
	Notes         *string      `json:"notes"`
}

// WarehouseReport is the server-side per-warehouse grouping with its summary
// counters.
type WarehouseReport struct {
	WarehouseID    int64      `json:"warehouseId"`
	WarehouseName  string     `json:"warehouseName"`
	TotalMovements int        `json:"totalMovements"`
	InCount        int        `json:"inCount"`
	OutCount       int        `json:"outCount"`
	TransferCount  int        `json:"transferCount"`
	AdjustCount    int        `json:"adjustCount"`
	Movements      []Movement `json:"movements"`
}

// Report is the full movement report.
type Report struct {
	Warehouses []WarehouseReport `json:"warehouses"`
}

// Filter selects the report window and an optional warehouse.
type Filter struct {
	WarehouseID *int64
	FromDate    time.Time
	ToDate      time.Time
}

// Validate checks the window ordering.
func (f Filter) Validate() error {
	if f.FromDate.IsZero() || f.ToDate.IsZero() {
		return apperror.NewValidation("from and to dates are required")
	}
	if f.FromDate.After(f.ToDate) {
		return apperror.NewValidation("from date must be before to date")
	}
	return nil
}

// --- Client-side search and sort ---

// SearchMovements filters a warehouse's movements by product name, notes, or
// invoice number, case-insensitive.
func SearchMovements(movements []Movement, term string) []Movement {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return movements
	}
	var out []Movement
	for _, m := range movements {
		if strings.Contains(strings.ToLower(m.ProductName), term) {
			out = append(out, m)
			continue
		}
		if m.Notes != nil && strings.Contains(strings.ToLower(*m.Notes), term) {
			out = append(out, m)
			continue
		}
		if m.InvoiceNumber != nil && strings.Contains(strings.ToLower(*m.InvoiceNumber), term) {
			out = append(out, m)
		}
	}
	return out
}

// SortByDate orders movements by their movement date. Dates the server sends
// are ISO-ordered strings, so a lexical comparison is a date comparison.
func SortByDate(movements []Movement, ascending bool) {
	sort.SliceStable(movements, func(i, j int) bool {
		if ascending {
			return movements[i].MovementDate < movements[j].MovementDate
		}
		return movements[i].MovementDate > movements[j].MovementDate
	})
}
