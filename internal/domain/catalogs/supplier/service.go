package supplier

import (
	"context"
	"fmt"

	"github.com/rafathanna/invento-app/internal/core/apperror"
)

// Service provides business logic for the Supplier catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Supplier service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetAll(ctx context.Context) ([]Supplier, error) {
	suppliers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get suppliers: %w", err)
	}
	return suppliers, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Supplier, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("supplier id is required")
	}
	sup, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get supplier %d: %w", id, err)
	}
	return sup, nil
}

func (s *Service) Create(ctx context.Context, in CreateSupplier) (*Supplier, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	sup, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return sup, nil
}

func (s *Service) Update(ctx context.Context, in EditSupplier) (*Supplier, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	sup, err := s.repo.Update(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("update supplier %d: %w", in.ID, err)
	}
	return sup, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperror.NewValidation("supplier id is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete supplier %d: %w", id, err)
	}
	return nil
}

func (s *Service) Search(ctx context.Context, term string) ([]Supplier, error) {
	if term == "" {
		return s.GetAll(ctx)
	}
	suppliers, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search suppliers: %w", err)
	}
	return suppliers, nil
}
