package render

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rafathanna/invento-app/internal/core/types"
	"github.com/rafathanna/invento-app/internal/domain/catalogs/customer"
	"github.com/rafathanna/invento-app/internal/domain/documents"
	"github.com/rafathanna/invento-app/internal/domain/documents/sales"
	"github.com/rafathanna/invento-app/internal/domain/registers/stock"
)

func sampleSnapshot(lineCount int) *documents.Snapshot {
	lines := make([]documents.Line, 0, lineCount)
	for i := 0; i < lineCount; i++ {
		lines = append(lines, documents.NewLine(int64(i+1), "Olive Oil 1L", 1, "Main", 2, types.MustMoney("120")))
	}
	return &documents.Snapshot{
		InvoiceID:        42,
		InvoiceNumber:    "SI-0042",
		Kind:             documents.KindSales,
		CounterpartyID:   3,
		CounterpartyName: "Acme Corp",
		CreatedBy:        "tester",
		CreatedAt:        time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		TaxPercentage:    types.NewMoney(14),
		Lines:            lines,
		Totals:           documents.ComputeTotals(lines, types.NewMoney(14)),
	}
}

func TestInvoicePDF(t *testing.T) {
	data, err := InvoicePDF(sampleSnapshot(3))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestInvoicePDF_LongLineListPaginates(t *testing.T) {
	// 120 lines does not fit one A4 page; the render must still succeed.
	data, err := InvoicePDF(sampleSnapshot(120))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 10_000)
}

func sampleReport() *stock.Report {
	notes := "rush order"
	invoice := "SI-0042"
	return &stock.Report{
		Warehouses: []stock.WarehouseReport{
			{
				WarehouseID:    1,
				WarehouseName:  "Main",
				TotalMovements: 2,
				InCount:        1,
				OutCount:       1,
				Movements: []stock.Movement{
					{MovementID: 1, ProductName: "Olive Oil", MovementType: stock.PurchaseIn, Quantity: 50, MovementDate: "2026-08-02T10:00:00"},
					{MovementID: 2, ProductName: "Olive Oil", MovementType: stock.SalesOut, Quantity: 2, MovementDate: "2026-08-10T09:30:00", InvoiceNumber: &invoice, Notes: &notes},
				},
			},
			{WarehouseID: 2, WarehouseName: "Annex", TotalMovements: 0},
		},
	}
}

func TestMovementPDF(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	data, err := MovementPDF(sampleReport(), from, to)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestMovementXLSX(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	data, err := MovementXLSX(sampleReport(), from, to)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Main", "Annex"}, f.GetSheetList())

	cell, err := f.GetCellValue("Main", "B6")
	require.NoError(t, err)
	assert.Equal(t, "Olive Oil", cell)
}

func TestSnapshotFromSales(t *testing.T) {
	inv := &sales.Invoice{
		ID:            9,
		InvoiceNumber: "SI-0009",
		SubTotal:      250,
		TaxPercentage: 14,
		TaxAmount:     35,
		TotalAmount:   285,
		CreatedAt:     "2026-08-15T10:30:00",
		CreatedBy:     "tester",
		Status:        documents.StatusCompleted,
		Customer:      customer.Customer{ID: 3, Name: "Acme Corp"},
		Items: []documents.Line{
			documents.NewLine(1, "Olive Oil", 1, "Main", 2, types.MustMoney("125")),
		},
	}

	snap := SnapshotFromSales(inv)

	assert.Equal(t, documents.KindSales, snap.Kind)
	assert.Equal(t, "Acme Corp", snap.CounterpartyName)
	assert.Equal(t, "285.00", types.FormatAmount(snap.Totals.Total))
	assert.Equal(t, documents.StatusCompleted, snap.Status)
	assert.Equal(t, 2026, snap.CreatedAt.Year())
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	arabic := strings.Repeat("مستودع القاهرة ", 4)

	got := truncate(arabic, 22)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 22, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "…"))

	assert.Equal(t, "short", truncate("short", 22))
}

func TestSheetNameClipsRunes(t *testing.T) {
	seen := map[string]int{}
	long := strings.Repeat("مخزن ", 10)

	got := sheetName(long, seen)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 28, utf8.RuneCountInString(got))

	// The same clipped name dedupes with a numeric suffix.
	assert.Equal(t, got+" 2", sheetName(long, seen))
	assert.Equal(t, "Warehouse", sheetName("", map[string]int{}))
}

func TestParseServerDate(t *testing.T) {
	assert.False(t, parseServerDate("2026-08-15T10:30:00").IsZero())
	assert.False(t, parseServerDate("2026-08-15T10:30:00Z").IsZero())
	assert.False(t, parseServerDate("2026-08-15").IsZero())
	assert.True(t, parseServerDate("15/08/2026").IsZero())
}
