package customer

import (
	"context"
	"fmt"

	"github.com/rafathanna/invento-app/internal/core/apperror"
)

// Service provides business logic for the Customer catalog.
// All persistence lives server-side; the service validates locally, delegates,
// and surfaces server errors unchanged.
type Service struct {
	repo Repository
}

// NewService creates a new Customer service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetAll lists customers. The list is fetched wholesale; there is no local
// cache beyond the caller's copy.
func (s *Service) GetAll(ctx context.Context) ([]Customer, error) {
	customers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get customers: %w", err)
	}
	return customers, nil
}

// GetByID loads one customer.
func (s *Service) GetByID(ctx context.Context, id int64) (*Customer, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("customer id is required")
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return c, nil
}

// Create validates locally, then creates the customer on the server.
func (s *Service) Create(ctx context.Context, in CreateCustomer) (*Customer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}

// Update validates locally, then edits the customer on the server.
func (s *Service) Update(ctx context.Context, in EditCustomer) (*Customer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := s.repo.Update(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("update customer %d: %w", in.ID, err)
	}
	return c, nil
}

// Delete removes the customer. Referential failures come back from the server
// as free text and are refined into friendly codes by apperror.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperror.NewValidation("customer id is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	return nil
}

// Search asks the server for customers matching term.
func (s *Service) Search(ctx context.Context, term string) ([]Customer, error) {
	if term == "" {
		return s.GetAll(ctx)
	}
	customers, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return customers, nil
}
