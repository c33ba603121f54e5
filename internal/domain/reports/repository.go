package reports

import (
	"context"
	"time"
)

// Repository is the remote API surface for the report endpoints.
type Repository interface {
	SalesInvoicesByDate(ctx context.Context, from, to time.Time) (*PeriodSummary, error)
	PurchaseInvoicesByDate(ctx context.Context, from, to time.Time) (*PeriodSummary, error)
	TopSoldProducts(ctx context.Context, from, to time.Time, top int) ([]TopProduct, error)
	TopPurchasedProducts(ctx context.Context, from, to time.Time, top int) ([]TopProduct, error)
	SlowMovingProducts(ctx context.Context, filter SlowMovingFilter) (*SlowMovingResult, error)
	LowStockProducts(ctx context.Context, warehouseID *int64) ([]LowStockProduct, error)
	ExpiredAndNearExpiryProducts(ctx context.Context, daysBeforeExpiry int) (*ExpiryResult, error)
}
