// Package reports provides the dashboard's aggregated report queries.
package reports

import (
	"time"
)

// APIDateLayout is the MM-DD-YYYY form the report endpoints expect. UI-side
// dates are ISO (YYYY-MM-DD); FormatAPIDate reformats before each request.
const APIDateLayout = "01-02-2006"

// InputDateLayout is the ISO form dates arrive in from console input.
const InputDateLayout = "2006-01-02"

// FormatAPIDate renders a date the way the report endpoints want it.
func FormatAPIDate(t time.Time) string {
	return t.Format(APIDateLayout)
}

// ParseInputDate parses an ISO console date.
func ParseInputDate(s string) (time.Time, error) {
	return time.Parse(InputDateLayout, s)
}

// DefaultRange returns the trailing n-day window ending today.
func DefaultRange(days int) (time.Time, time.Time) {
	to := time.Now()
	from := to.AddDate(0, 0, -days)
	return from, to
}

// --- Report payloads ---

// PeriodSummary aggregates one invoice kind over a date range.
type PeriodSummary struct {
	TotalCount  int     `json:"totalCount"`
	TotalAmount float64 `json:"totalAmount"`
}

// TopProduct is one row of the top sold/purchased lists.
type TopProduct struct {
	ProductID     int64   `json:"productId"`
	ProductName   string  `json:"productName"`
	TotalQuantity float64 `json:"totalQuantity"`
}

// LowStockProduct is a product at or below its alert threshold in a
// warehouse.
type LowStockProduct struct {
	ProductID         int64   `json:"productId"`
	ProductName       string  `json:"productName"`
	WarehouseID       int64   `json:"warehouseId"`
	WarehouseName     string  `json:"warehouseName"`
	RemainingQuantity float64 `json:"remainingQuantity"`
	Threshold         float64 `json:"threshold"`
}

// SlowMovingProduct is a product whose days since last movement exceed the
// reporting threshold.
type SlowMovingProduct struct {
	ProductID             int64   `json:"productId"`
	ProductName           string  `json:"productName"`
	TotalQuantityInStock  float64 `json:"totalQuantityInStock"`
	TotalSoldQuantity     float64 `json:"totalSoldQuantity"`
	LastMovementDate      *string `json:"lastMovementDate"`
	DaysSinceLastMovement int     `json:"daysSinceLastMovement"`
	WarehouseID           int64   `json:"warehouseId"`
	WarehouseName         string  `json:"warehouseName"`
	IsSlowMoving          bool    `json:"isSlowMoving"`
}

// SlowMovingResult is the slow-moving report payload.
type SlowMovingResult struct {
	TotalSlowProducts int                 `json:"totalSlowProducts"`
	Products          []SlowMovingProduct `json:"products"`
}

// ExpiryItem is one expired or near-expiry product row.
type ExpiryItem struct {
	ProductID      int64   `json:"productId"`
	ProductName    string  `json:"productName"`
	ExpirationDate string  `json:"expirationDate"`
	Quantity       float64 `json:"quantity"`
	WarehouseName  string  `json:"warehouseName"`
}

// ExpiryResult is the expiry monitor payload.
type ExpiryResult struct {
	TotalExpiredProducts    int          `json:"totalExpiredProducts"`
	TotalNearExpiryProducts int          `json:"totalNearExpiryProducts"`
	ExpiredProducts         []ExpiryItem `json:"expiredProducts"`
	NearExpiryProducts      []ExpiryItem `json:"nearExpiryProducts"`
}

// SlowMovingFilter selects the slow-moving query window.
type SlowMovingFilter struct {
	From        *time.Time
	To          *time.Time
	WarehouseID *int64
	Top         int
}

// Dashboard is the aggregated view the console renders. Sections whose query
// failed stay at their zero value and are listed in Failed.
type Dashboard struct {
	From time.Time
	To   time.Time

	Sales        PeriodSummary
	Purchases    PeriodSummary
	TopSold      []TopProduct
	TopPurchased []TopProduct
	SlowMoving   SlowMovingResult
	LowStock     []LowStockProduct
	Expiry       ExpiryResult

	// Failed names the sections whose queries errored.
	Failed []string
}
