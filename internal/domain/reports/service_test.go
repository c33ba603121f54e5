package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepo lets individual sections fail while the rest succeed.
type mockRepo struct {
	salesErr      error
	topSoldErr    error
	expiryErr     error
	lowStockCalls int
}

func (m *mockRepo) SalesInvoicesByDate(ctx context.Context, from, to time.Time) (*PeriodSummary, error) {
	if m.salesErr != nil {
		return nil, m.salesErr
	}
	return &PeriodSummary{TotalCount: 5, TotalAmount: 1425}, nil
}

func (m *mockRepo) PurchaseInvoicesByDate(ctx context.Context, from, to time.Time) (*PeriodSummary, error) {
	return &PeriodSummary{TotalCount: 2, TotalAmount: 600}, nil
}

func (m *mockRepo) TopSoldProducts(ctx context.Context, from, to time.Time, top int) ([]TopProduct, error) {
	if m.topSoldErr != nil {
		return nil, m.topSoldErr
	}
	return []TopProduct{{ProductID: 1, ProductName: "Olive Oil", TotalQuantity: 30}}, nil
}

func (m *mockRepo) TopPurchasedProducts(ctx context.Context, from, to time.Time, top int) ([]TopProduct, error) {
	return []TopProduct{{ProductID: 2, ProductName: "Flour", TotalQuantity: 80}}, nil
}

func (m *mockRepo) SlowMovingProducts(ctx context.Context, filter SlowMovingFilter) (*SlowMovingResult, error) {
	return &SlowMovingResult{}, nil
}

func (m *mockRepo) LowStockProducts(ctx context.Context, warehouseID *int64) ([]LowStockProduct, error) {
	m.lowStockCalls++
	return []LowStockProduct{{ProductID: 3, ProductName: "Sugar", RemainingQuantity: 2, Threshold: 10}}, nil
}

func (m *mockRepo) ExpiredAndNearExpiryProducts(ctx context.Context, daysBeforeExpiry int) (*ExpiryResult, error) {
	if m.expiryErr != nil {
		return nil, m.expiryErr
	}
	return &ExpiryResult{TotalNearExpiryProducts: 1}, nil
}

func window() (time.Time, time.Time) {
	to := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	return to.AddDate(0, 0, -30), to
}

func TestGetDashboard_AllSectionsLoaded(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	from, to := window()

	dash, err := svc.GetDashboard(context.Background(), from, to)

	require.NoError(t, err)
	assert.Empty(t, dash.Failed)
	assert.Equal(t, 5, dash.Sales.TotalCount)
	assert.Equal(t, 2, dash.Purchases.TotalCount)
	assert.Len(t, dash.TopSold, 1)
	assert.Len(t, dash.TopPurchased, 1)
	assert.Len(t, dash.LowStock, 1)
	assert.Equal(t, 1, dash.Expiry.TotalNearExpiryProducts)
}

func TestGetDashboard_PartialFailure(t *testing.T) {
	repo := &mockRepo{
		salesErr:   errors.New("timeout"),
		topSoldErr: errors.New("boom"),
	}
	svc := NewService(repo)
	from, to := window()

	dash, err := svc.GetDashboard(context.Background(), from, to)

	require.NoError(t, err, "section failures never fail the dashboard")
	assert.ElementsMatch(t, []string{"sales", "topSold"}, dash.Failed)

	// Failed sections keep their zero values, the rest are intact.
	assert.Zero(t, dash.Sales.TotalCount)
	assert.Empty(t, dash.TopSold)
	assert.Equal(t, 2, dash.Purchases.TotalCount)
	assert.Len(t, dash.LowStock, 1)
}

func TestGetDashboard_RejectsInvertedWindow(t *testing.T) {
	svc := NewService(&mockRepo{})
	from, to := window()

	_, err := svc.GetDashboard(context.Background(), to, from)

	assert.Error(t, err)
}

func TestGetExpiryMonitor_DefaultWindow(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	result, err := svc.GetExpiryMonitor(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalNearExpiryProducts)
}

func TestFormatAPIDate(t *testing.T) {
	d := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "08-05-2026", FormatAPIDate(d))
}

func TestParseInputDate(t *testing.T) {
	d, err := ParseInputDate("2026-08-05")
	require.NoError(t, err)
	assert.Equal(t, time.August, d.Month())

	_, err = ParseInputDate("05/08/2026")
	assert.Error(t, err)
}
