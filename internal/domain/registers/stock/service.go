package stock

import (
	"context"
	"fmt"
)

// Service provides the movement report.
type Service struct {
	repo Repository
}

// NewService creates a new stock register service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetReport fetches the pre-grouped-by-warehouse movement list for the
// window.
func (s *Service) GetReport(ctx context.Context, filter Filter) (*Report, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	report, err := s.repo.GetReport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get stock movement report: %w", err)
	}
	return report, nil
}
