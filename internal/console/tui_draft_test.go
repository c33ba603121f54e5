package console

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafathanna/invento-app/internal/domain/catalogs/product"
	"github.com/rafathanna/invento-app/internal/domain/catalogs/warehouse"
	"github.com/rafathanna/invento-app/internal/domain/documents"
)

func press(t *testing.T, m draftModel, key tea.KeyType) draftModel {
	t.Helper()
	updated, _ := m.handleKey(tea.KeyMsg{Type: key})
	return updated.(draftModel)
}

func pressRune(t *testing.T, m draftModel, r rune) draftModel {
	t.Helper()
	updated, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(draftModel)
}

func purchaseModelWithCatalogs(t *testing.T, p product.Product) draftModel {
	t.Helper()
	m := newDraftModel(context.Background(), &Console{}, documents.KindPurchase, "tester")

	updated, _ := m.Update(productsMsg{products: []product.Product{p}})
	m = updated.(draftModel)
	updated, _ = m.Update(warehousesMsg{warehouses: []warehouse.Warehouse{
		{ID: 1, Name: "Main", Location: "Cairo"},
		{ID: 2, Name: "Annex", Location: "Giza"},
	}})
	m = updated.(draftModel)
	updated, _ = m.Update(counterpartiesMsg{entries: []pickEntry{{id: 7, name: "Acme Supplies"}}})
	return updated.(draftModel)
}

// A purchase may receive stock into a warehouse the product has never been
// in, so the picker must offer the full warehouse catalog even for a product
// with zero stock tuples.
func TestPurchaseStagesLineInUnlinkedWarehouse(t *testing.T) {
	unlinked := product.Product{ID: 4, Name: "Olive Oil", Price: 125}
	m := purchaseModelWithCatalogs(t, unlinked)

	m = press(t, m, tea.KeyEnter) // select supplier
	m = pressRune(t, m, 'a')      // add line
	m = press(t, m, tea.KeyEnter) // select product
	require.Equal(t, stepPickWarehouse, m.step)

	opts := m.warehouseOptions()
	require.Len(t, opts, 2)
	assert.Equal(t, "Main", opts[0].WarehouseName)
	assert.Equal(t, float64(0), opts[0].Quantity)

	m = press(t, m, tea.KeyEnter) // select first warehouse
	require.Equal(t, stepLineForm, m.step)
	require.NotNil(t, m.selStock)
	assert.Equal(t, int64(1), m.selStock.WarehouseID)

	m.inputs[0].SetValue("10")
	m = press(t, m, tea.KeyEnter)
	require.Equal(t, stepReview, m.step)
	require.Len(t, m.draft.Lines, 1)
	assert.Equal(t, int64(1), m.draft.Lines[0].WarehouseID)
	assert.Equal(t, "125.00", m.draft.Lines[0].UnitPrice.StringFixed(2))
}

// Sales keep drawing from the product's own stock tuples: selling out of a
// warehouse the product was never in makes no sense.
func TestSalesWarehousePickerOffersOnlyLinked(t *testing.T) {
	linked := product.Product{ID: 4, Name: "Olive Oil", Price: 125,
		Warehouses: []product.WarehouseStock{
			{WarehouseID: 2, WarehouseName: "Annex", Quantity: 5},
		}}

	m := newDraftModel(context.Background(), &Console{}, documents.KindSales, "tester")
	updated, _ := m.Update(productsMsg{products: []product.Product{linked}})
	m = updated.(draftModel)
	m.selProduct = &m.stock.products[0]

	opts := m.warehouseOptions()
	require.Len(t, opts, 1)
	assert.Equal(t, int64(2), opts[0].WarehouseID)
}

func TestPurchaseWaitsForWarehouseCatalog(t *testing.T) {
	m := newDraftModel(context.Background(), &Console{}, documents.KindPurchase, "tester")
	assert.False(t, m.whLoaded)

	sales := newDraftModel(context.Background(), &Console{}, documents.KindSales, "tester")
	assert.True(t, sales.whLoaded)
}
