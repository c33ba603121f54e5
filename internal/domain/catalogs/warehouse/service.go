package warehouse

import (
	"context"
	"fmt"

	"github.com/rafathanna/invento-app/internal/core/apperror"
)

// Service provides business logic for the Warehouse catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Warehouse service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetAll(ctx context.Context) ([]Warehouse, error) {
	warehouses, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get warehouses: %w", err)
	}
	return warehouses, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Warehouse, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("warehouse id is required")
	}
	wh, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get warehouse %d: %w", id, err)
	}
	return wh, nil
}

func (s *Service) Create(ctx context.Context, in CreateWarehouse) (*Warehouse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	wh, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create warehouse: %w", err)
	}
	return wh, nil
}

func (s *Service) Update(ctx context.Context, in EditWarehouse) (*Warehouse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	wh, err := s.repo.Update(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("update warehouse %d: %w", in.ID, err)
	}
	return wh, nil
}

// Delete removes a warehouse. A warehouse that still holds products is
// refused server-side; the free-text failure is refined in apperror so the
// console can explain it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperror.NewValidation("warehouse id is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete warehouse %d: %w", id, err)
	}
	return nil
}

func (s *Service) Search(ctx context.Context, name string) ([]Warehouse, error) {
	if name == "" {
		return s.GetAll(ctx)
	}
	warehouses, err := s.repo.Search(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("search warehouses: %w", err)
	}
	return warehouses, nil
}
