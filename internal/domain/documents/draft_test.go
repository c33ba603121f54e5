package documents

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafathanna/invento-app/internal/core/apperror"
	"github.com/rafathanna/invento-app/internal/core/types"
)

func salesDraftWithStock(stock map[[2]int64]float64) *Draft {
	d := NewSalesDraft(func(productID, warehouseID int64) float64 {
		return stock[[2]int64{productID, warehouseID}]
	})
	d.CounterpartyID = 1
	d.CreatedBy = "tester"
	return d
}

func TestComputeTotals(t *testing.T) {
	lines := []Line{
		NewLine(1, "A", 1, "Main", 2, types.MustMoney("50")),
		NewLine(2, "B", 1, "Main", 3, types.MustMoney("50")),
	}

	totals := ComputeTotals(lines, types.NewMoney(14))

	assert.Equal(t, "250.00", types.FormatAmount(totals.Subtotal))
	assert.Equal(t, "35.00", types.FormatAmount(totals.TaxAmount))
	assert.Equal(t, "285.00", types.FormatAmount(totals.Total))
}

func TestComputeTotals_ZeroTax(t *testing.T) {
	lines := []Line{NewLine(1, "A", 1, "Main", 1, types.MustMoney("99.99"))}

	totals := ComputeTotals(lines, types.Zero())

	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.Subtotal.Equal(totals.Total))
}

func TestComputeTotals_NoDrift(t *testing.T) {
	// 0.1 * 3 must come out exact, not 0.30000000000000004.
	lines := []Line{NewLine(1, "A", 1, "Main", 3, types.MustMoney("0.1"))}

	totals := ComputeTotals(lines, types.Zero())

	assert.Equal(t, "0.30", types.FormatAmount(totals.Total))
}

func TestDraft_AddLine_StockGuard(t *testing.T) {
	d := salesDraftWithStock(map[[2]int64]float64{
		{7, 2}: 5,
	})

	err := d.AddLine(NewLine(7, "Olive Oil", 2, "Main", 6, types.MustMoney("120")))

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
	assert.Empty(t, d.Lines, "rejected line must not be staged")

	require.NoError(t, d.AddLine(NewLine(7, "Olive Oil", 2, "Main", 5, types.MustMoney("120"))))
	assert.Len(t, d.Lines, 1)
}

func TestDraft_AddLine_PurchaseSkipsStockGuard(t *testing.T) {
	d := NewPurchaseDraft()
	d.CounterpartyID = 1
	d.CreatedBy = "tester"

	// Purchases add stock, any quantity goes through.
	require.NoError(t, d.AddLine(NewLine(7, "Olive Oil", 2, "Main", 10000, types.MustMoney("80"))))
}

func TestDraft_AddLine_Validation(t *testing.T) {
	d := NewPurchaseDraft()

	assert.Error(t, d.AddLine(NewLine(0, "", 1, "Main", 1, types.MustMoney("1"))))
	assert.Error(t, d.AddLine(NewLine(1, "A", 0, "", 1, types.MustMoney("1"))))
	assert.Error(t, d.AddLine(NewLine(1, "A", 1, "Main", 0, types.MustMoney("1"))))
	assert.Error(t, d.AddLine(NewLine(1, "A", 1, "Main", 1, types.MustMoney("-1"))))
	assert.Empty(t, d.Lines)
}

func TestDraft_AddLine_DuplicatePairKeptSeparate(t *testing.T) {
	d := salesDraftWithStock(map[[2]int64]float64{{1, 1}: 100})

	require.NoError(t, d.AddLine(NewLine(1, "A", 1, "Main", 2, types.MustMoney("10"))))
	require.NoError(t, d.AddLine(NewLine(1, "A", 1, "Main", 3, types.MustMoney("10"))))

	assert.Len(t, d.Lines, 2, "same product/warehouse lines are not merged")
}

func TestDraft_RemoveLine(t *testing.T) {
	d := NewPurchaseDraft()
	require.NoError(t, d.AddLine(NewLine(1, "A", 1, "Main", 1, types.MustMoney("10"))))
	require.NoError(t, d.AddLine(NewLine(2, "B", 1, "Main", 1, types.MustMoney("20"))))

	require.NoError(t, d.RemoveLine(0))
	require.Len(t, d.Lines, 1)
	assert.Equal(t, int64(2), d.Lines[0].ProductID)

	assert.Error(t, d.RemoveLine(5))
	assert.Error(t, d.RemoveLine(-1))
}

func TestDraft_AddThenRemoveRestoresLines(t *testing.T) {
	d := NewPurchaseDraft()
	require.NoError(t, d.AddLine(NewLine(1, "A", 1, "Main", 1, types.MustMoney("10"))))
	require.NoError(t, d.AddLine(NewLine(2, "B", 2, "Annex", 3, types.MustMoney("20"))))

	before := append([]Line(nil), d.Lines...)
	totals := d.Totals()

	require.NoError(t, d.AddLine(NewLine(3, "C", 1, "Main", 5, types.MustMoney("7"))))
	require.NoError(t, d.RemoveLine(len(d.Lines)-1))

	assert.Equal(t, before, d.Lines, "removing the added line restores the list exactly")
	assert.Equal(t, totals, d.Totals())
}

func TestDraft_SetTaxPercentage(t *testing.T) {
	d := NewPurchaseDraft()

	assert.True(t, d.TaxPercentage.Equal(types.NewMoney(DefaultTaxPercentage)))

	require.NoError(t, d.SetTaxPercentage(types.Zero()))
	require.NoError(t, d.SetTaxPercentage(types.NewMoney(100)))
	assert.Error(t, d.SetTaxPercentage(types.NewMoney(-1)))
	assert.Error(t, d.SetTaxPercentage(types.NewMoney(101)))
}

func TestDraft_Validate(t *testing.T) {
	d := NewPurchaseDraft()

	assert.Error(t, d.Validate(), "empty draft is not submittable")

	d.CounterpartyID = 3
	assert.Error(t, d.Validate(), "creator required")

	d.CreatedBy = "tester"
	assert.Error(t, d.Validate(), "at least one line required")

	require.NoError(t, d.AddLine(NewLine(1, "A", 1, "Main", 1, types.MustMoney("10"))))
	assert.NoError(t, d.Validate())
}

func TestDraft_SnapshotAndReset(t *testing.T) {
	d := salesDraftWithStock(map[[2]int64]float64{{1, 1}: 10})
	require.NoError(t, d.AddLine(NewLine(1, "A", 1, "Main", 2, types.MustMoney("50"))))

	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	snap := d.Snapshot(42, "SI-0042", "Acme Corp", at)

	assert.Equal(t, int64(42), snap.InvoiceID)
	assert.Equal(t, "SI-0042", snap.InvoiceNumber)
	assert.Equal(t, KindSales, snap.Kind)
	assert.Equal(t, "Acme Corp", snap.CounterpartyName)
	assert.Equal(t, at, snap.CreatedAt)
	assert.Len(t, snap.Lines, 1)
	assert.Equal(t, "100.00", types.FormatAmount(snap.Totals.Subtotal))

	d.Reset()
	assert.Empty(t, d.Lines)
	assert.Zero(t, d.CounterpartyID)
	assert.True(t, d.TaxPercentage.Equal(types.NewMoney(DefaultTaxPercentage)))

	// The snapshot is detached from the reset draft.
	assert.Len(t, snap.Lines, 1)
}

func TestStatus_CanCancel(t *testing.T) {
	assert.True(t, StatusPending.CanCancel())
	assert.True(t, StatusCompleted.CanCancel())
	assert.False(t, StatusCancelled.CanCancel())
}

func TestWireItems(t *testing.T) {
	lines := []Line{
		NewLine(1, "A", 2, "Main", 3, types.MustMoney("12.50")),
	}

	items := WireItems(lines)

	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, int64(2), items[0].WarehouseID)
	assert.Equal(t, 3.0, items[0].Quantity)
	assert.Equal(t, 12.5, items[0].UnitPrice)
}
