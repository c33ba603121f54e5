package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/rafathanna/invento-app/internal/core/types"
	"github.com/rafathanna/invento-app/internal/domain/documents"
	"github.com/rafathanna/invento-app/internal/domain/documents/purchase"
	"github.com/rafathanna/invento-app/internal/domain/documents/sales"
)

// truncate clips s to at most n runes, replacing the tail with an ellipsis.
// Clipping on rune boundaries keeps Arabic and other multi-byte names valid
// UTF-8 in the output.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render: pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// serverDateLayouts covers the createdAt formats the API has been observed
// returning. Unparseable values fall back to the zero time, which the
// renderer prints as-is rather than failing the document.
var serverDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseServerDate(s string) time.Time {
	for _, layout := range serverDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SnapshotFromSales rebuilds a render snapshot from a fetched sales invoice
// so that previously submitted documents can be rendered, not only the one
// retained from the current session.
func SnapshotFromSales(inv *sales.Invoice) *documents.Snapshot {
	return &documents.Snapshot{
		InvoiceID:        inv.ID,
		InvoiceNumber:    inv.InvoiceNumber,
		Kind:             documents.KindSales,
		CounterpartyID:   inv.Customer.ID,
		CounterpartyName: inv.Customer.Name,
		CreatedBy:        inv.CreatedBy,
		CreatedAt:        parseServerDate(inv.CreatedAt),
		Status:           inv.Status,
		TaxPercentage:    types.NewMoney(inv.TaxPercentage),
		Lines:            inv.Items,
		Totals: documents.Totals{
			Subtotal:  types.NewMoney(inv.SubTotal),
			TaxAmount: types.NewMoney(inv.TaxAmount),
			Total:     types.NewMoney(inv.TotalAmount),
		},
	}
}

// SnapshotFromPurchase mirrors SnapshotFromSales for purchase invoices.
func SnapshotFromPurchase(inv *purchase.Invoice) *documents.Snapshot {
	return &documents.Snapshot{
		InvoiceID:        inv.ID,
		InvoiceNumber:    inv.InvoiceNumber,
		Kind:             documents.KindPurchase,
		CounterpartyID:   inv.Supplier.ID,
		CounterpartyName: inv.Supplier.Name,
		CreatedBy:        inv.CreatedBy,
		CreatedAt:        parseServerDate(inv.CreatedAt),
		Status:           inv.Status,
		TaxPercentage:    types.NewMoney(inv.TaxPercentage),
		Lines:            inv.Items,
		Totals: documents.Totals{
			Subtotal:  types.NewMoney(inv.SubTotal),
			TaxAmount: types.NewMoney(inv.TaxAmount),
			Total:     types.NewMoney(inv.TotalAmount),
		},
	}
}
