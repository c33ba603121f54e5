package stock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleMovements() []Movement {
	return []Movement{
		{MovementID: 1, ProductName: "Olive Oil", MovementType: PurchaseIn, MovementDate: "2026-08-02T10:00:00", InvoiceNumber: strPtr("PI-0001")},
		{MovementID: 2, ProductName: "Sugar", MovementType: SalesOut, MovementDate: "2026-08-10T09:30:00", Notes: strPtr("rush order")},
		{MovementID: 3, ProductName: "Flour", MovementType: Transfer, MovementDate: "2026-08-05T15:00:00"},
	}
}

func TestSearchMovements(t *testing.T) {
	movements := sampleMovements()

	assert.Len(t, SearchMovements(movements, "OIL"), 1)
	assert.Len(t, SearchMovements(movements, "rush"), 1)
	assert.Len(t, SearchMovements(movements, "pi-0001"), 1)
	assert.Empty(t, SearchMovements(movements, "nothing"))
	assert.Len(t, SearchMovements(movements, "  "), 3, "blank term matches everything")
}

func TestSortByDate(t *testing.T) {
	movements := sampleMovements()

	SortByDate(movements, true)
	assert.Equal(t, int64(1), movements[0].MovementID)
	assert.Equal(t, int64(2), movements[2].MovementID)

	SortByDate(movements, false)
	assert.Equal(t, int64(2), movements[0].MovementID)
	assert.Equal(t, int64(1), movements[2].MovementID)
}

func TestMovementTypeString(t *testing.T) {
	assert.Equal(t, "Purchase In", PurchaseIn.String())
	assert.Equal(t, "Sales Out", SalesOut.String())
	assert.Equal(t, "Transfer", Transfer.String())
	assert.Equal(t, "Adjustment", Adjustment.String())
	assert.Equal(t, "Unknown", MovementType(99).String())
}

func TestFilterValidate(t *testing.T) {
	now := time.Now()

	require.NoError(t, Filter{FromDate: now.AddDate(0, 0, -7), ToDate: now}.Validate())
	assert.Error(t, Filter{ToDate: now}.Validate())
	assert.Error(t, Filter{FromDate: now}.Validate())
	assert.Error(t, Filter{FromDate: now, ToDate: now.AddDate(0, 0, -1)}.Validate())
}
