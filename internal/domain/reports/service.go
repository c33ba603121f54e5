package reports

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rafathanna/invento-app/pkg/logger"
)

// DefaultTop is the row cap for the top-product queries.
const DefaultTop = 10

// DefaultExpiryWindowDays is the near-expiry horizon.
const DefaultExpiryWindowDays = 30

// Service provides report queries and the dashboard aggregation.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetSalesByDate aggregates sales invoices over the window.
func (s *Service) GetSalesByDate(ctx context.Context, from, to time.Time) (*PeriodSummary, error) {
	if from.After(to) {
		return nil, fmt.Errorf("from date must be before to date")
	}
	sum, err := s.repo.SalesInvoicesByDate(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get sales by date: %w", err)
	}
	return sum, nil
}

// GetPurchasesByDate aggregates purchase invoices over the window.
func (s *Service) GetPurchasesByDate(ctx context.Context, from, to time.Time) (*PeriodSummary, error) {
	if from.After(to) {
		return nil, fmt.Errorf("from date must be before to date")
	}
	sum, err := s.repo.PurchaseInvoicesByDate(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get purchases by date: %w", err)
	}
	return sum, nil
}

// GetTopSoldProducts lists the best-selling products of the window.
func (s *Service) GetTopSoldProducts(ctx context.Context, from, to time.Time, top int) ([]TopProduct, error) {
	if top <= 0 {
		top = DefaultTop
	}
	products, err := s.repo.TopSoldProducts(ctx, from, to, top)
	if err != nil {
		return nil, fmt.Errorf("get top sold products: %w", err)
	}
	return products, nil
}

// GetTopPurchasedProducts lists the most purchased products of the window.
func (s *Service) GetTopPurchasedProducts(ctx context.Context, from, to time.Time, top int) ([]TopProduct, error) {
	if top <= 0 {
		top = DefaultTop
	}
	products, err := s.repo.TopPurchasedProducts(ctx, from, to, top)
	if err != nil {
		return nil, fmt.Errorf("get top purchased products: %w", err)
	}
	return products, nil
}

// GetSlowMovingProducts lists products without recent movements.
func (s *Service) GetSlowMovingProducts(ctx context.Context, filter SlowMovingFilter) (*SlowMovingResult, error) {
	if filter.Top <= 0 {
		filter.Top = DefaultTop
	}
	result, err := s.repo.SlowMovingProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get slow moving products: %w", err)
	}
	return result, nil
}

// GetLowStockProducts lists products at or under their alert threshold.
func (s *Service) GetLowStockProducts(ctx context.Context, warehouseID *int64) ([]LowStockProduct, error) {
	products, err := s.repo.LowStockProducts(ctx, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("get low stock products: %w", err)
	}
	return products, nil
}

// GetExpiryMonitor lists expired and near-expiry products.
func (s *Service) GetExpiryMonitor(ctx context.Context, daysBeforeExpiry int) (*ExpiryResult, error) {
	if daysBeforeExpiry <= 0 {
		daysBeforeExpiry = DefaultExpiryWindowDays
	}
	result, err := s.repo.ExpiredAndNearExpiryProducts(ctx, daysBeforeExpiry)
	if err != nil {
		return nil, fmt.Errorf("get expiry monitor: %w", err)
	}
	return result, nil
}

// GetDashboard fires all report queries concurrently and joins the results.
// Each query's failure is isolated: it is logged, the section keeps its zero
// value, and the section name lands in Failed. No failure fails the
// dashboard.
func (s *Service) GetDashboard(ctx context.Context, from, to time.Time) (*Dashboard, error) {
	if from.After(to) {
		return nil, fmt.Errorf("from date must be before to date")
	}

	dash := &Dashboard{From: from, To: to}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	fail := func(section string, err error) {
		logger.Warn(ctx, "dashboard query failed", "section", section, "error", err)
		mu.Lock()
		dash.Failed = append(dash.Failed, section)
		mu.Unlock()
	}

	run := func(section string, query func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := query(); err != nil {
				fail(section, err)
			}
		}()
	}

	run("sales", func() error {
		sum, err := s.repo.SalesInvoicesByDate(ctx, from, to)
		if err != nil {
			return err
		}
		dash.Sales = *sum
		return nil
	})
	run("purchases", func() error {
		sum, err := s.repo.PurchaseInvoicesByDate(ctx, from, to)
		if err != nil {
			return err
		}
		dash.Purchases = *sum
		return nil
	})
	run("topSold", func() error {
		products, err := s.repo.TopSoldProducts(ctx, from, to, DefaultTop)
		if err != nil {
			return err
		}
		dash.TopSold = products
		return nil
	})
	run("topPurchased", func() error {
		products, err := s.repo.TopPurchasedProducts(ctx, from, to, DefaultTop)
		if err != nil {
			return err
		}
		dash.TopPurchased = products
		return nil
	})
	run("slowMoving", func() error {
		result, err := s.repo.SlowMovingProducts(ctx, SlowMovingFilter{From: &from, To: &to, Top: DefaultTop})
		if err != nil {
			return err
		}
		dash.SlowMoving = *result
		return nil
	})
	run("lowStock", func() error {
		products, err := s.repo.LowStockProducts(ctx, nil)
		if err != nil {
			return err
		}
		dash.LowStock = products
		return nil
	})
	run("expiry", func() error {
		result, err := s.repo.ExpiredAndNearExpiryProducts(ctx, DefaultExpiryWindowDays)
		if err != nil {
			return err
		}
		dash.Expiry = *result
		return nil
	})

	wg.Wait()
	return dash, nil
}
