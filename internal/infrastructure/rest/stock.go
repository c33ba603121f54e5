package rest

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rafathanna/invento-app/internal/api"
	"github.com/rafathanna/invento-app/internal/domain/registers/stock"
	"github.com/rafathanna/invento-app/internal/domain/reports"
)

// StockMovementRepo implements stock.Repository.
type StockMovementRepo struct {
	client *api.Client
}

// NewStockMovementRepo creates a stock movement repository.
func NewStockMovementRepo(client *api.Client) *StockMovementRepo {
	return &StockMovementRepo{client: client}
}

// GetReport fetches the pre-grouped movement report. Dates go out in the
// MM-DD-YYYY form the report endpoints expect.
func (r *StockMovementRepo) GetReport(ctx context.Context, filter stock.Filter) (*stock.Report, error) {
	query := url.Values{
		"FromDate": {reports.FormatAPIDate(filter.FromDate)},
		"ToDate":   {reports.FormatAPIDate(filter.ToDate)},
	}
	if filter.WarehouseID != nil {
		query.Set("WarehouseId", strconv.FormatInt(*filter.WarehouseID, 10))
	}

	var out stock.Report
	if err := r.client.GetJSON(ctx, "/Reports/GetStockMovementReport", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ stock.Repository = (*StockMovementRepo)(nil)
