package rest

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/rafathanna/invento-app/internal/api"
	"github.com/rafathanna/invento-app/internal/domain/reports"
)

// ReportsRepo implements reports.Repository.
type ReportsRepo struct {
	client *api.Client
}

// NewReportsRepo creates a reports repository.
func NewReportsRepo(client *api.Client) *ReportsRepo {
	return &ReportsRepo{client: client}
}

func rangeQuery(from, to time.Time) url.Values {
	return url.Values{
		"StartDate": {reports.FormatAPIDate(from)},
		"EndDate":   {reports.FormatAPIDate(to)},
	}
}

// SalesInvoicesByDate aggregates sales invoices over the window. The path
// carries the server's typo; it is the only spelling the server answers.
func (r *ReportsRepo) SalesInvoicesByDate(ctx context.Context, from, to time.Time) (*reports.PeriodSummary, error) {
	var out reports.PeriodSummary
	if err := r.client.GetJSON(ctx, "/Reports/getAGetSalesInvoicesByDatell", rangeQuery(from, to), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ReportsRepo) PurchaseInvoicesByDate(ctx context.Context, from, to time.Time) (*reports.PeriodSummary, error) {
	var out reports.PeriodSummary
	if err := r.client.GetJSON(ctx, "/Reports/GetPurchaseInvoicesByDate", rangeQuery(from, to), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ReportsRepo) TopSoldProducts(ctx context.Context, from, to time.Time, top int) ([]reports.TopProduct, error) {
	query := rangeQuery(from, to)
	query.Set("Top", strconv.Itoa(top))

	var out []reports.TopProduct
	if err := r.client.GetJSON(ctx, "/Reports/GetTopSoldProducts", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReportsRepo) TopPurchasedProducts(ctx context.Context, from, to time.Time, top int) ([]reports.TopProduct, error) {
	query := rangeQuery(from, to)
	query.Set("Top", strconv.Itoa(top))

	var out []reports.TopProduct
	if err := r.client.GetJSON(ctx, "/Reports/GetTopPurchasedProducts", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReportsRepo) SlowMovingProducts(ctx context.Context, filter reports.SlowMovingFilter) (*reports.SlowMovingResult, error) {
	query := url.Values{}
	if filter.From != nil {
		query.Set("FromDate", reports.FormatAPIDate(*filter.From))
	}
	if filter.To != nil {
		query.Set("ToDate", reports.FormatAPIDate(*filter.To))
	}
	if filter.WarehouseID != nil {
		query.Set("WarehouseId", strconv.FormatInt(*filter.WarehouseID, 10))
	}
	if filter.Top > 0 {
		query.Set("Top", strconv.Itoa(filter.Top))
	}

	var out reports.SlowMovingResult
	if err := r.client.GetJSON(ctx, "/Reports/GetSlowMovingProducts", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ReportsRepo) LowStockProducts(ctx context.Context, warehouseID *int64) ([]reports.LowStockProduct, error) {
	query := url.Values{}
	if warehouseID != nil {
		query.Set("WarehouseId", strconv.FormatInt(*warehouseID, 10))
	}

	var out []reports.LowStockProduct
	if err := r.client.GetJSON(ctx, "/Reports/GetLowStockProducts", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExpiredAndNearExpiryProducts queries the expiry monitor. The endpoint
// answers 400 even on success, so that status is tolerated when the body
// still carries data.
func (r *ReportsRepo) ExpiredAndNearExpiryProducts(ctx context.Context, daysBeforeExpiry int) (*reports.ExpiryResult, error) {
	query := url.Values{}
	if daysBeforeExpiry > 0 {
		query.Set("DaysBeforeExpiry", strconv.Itoa(daysBeforeExpiry))
	}

	var out reports.ExpiryResult
	err := r.client.GetJSON(ctx, "/Reports/GetExpiredAndNearExpiryProducts", query, &out,
		api.TolerateStatus(400))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

var _ reports.Repository = (*ReportsRepo)(nil)
