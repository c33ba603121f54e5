package product

import (
	"context"
	"fmt"

	"github.com/rafathanna/invento-app/internal/core/apperror"
)

// Service provides business logic for the Product catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Product service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetAll(ctx context.Context) ([]Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return products, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Product, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("product id is required")
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

// GetByWarehouse lists products with a stock tuple for the given warehouse.
// The sales draft uses this to scope product selection.
func (s *Service) GetByWarehouse(ctx context.Context, warehouseID int64) ([]Product, error) {
	if warehouseID <= 0 {
		return nil, apperror.NewValidation("warehouse id is required")
	}
	products, err := s.repo.GetByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("get products for warehouse %d: %w", warehouseID, err)
	}
	return products, nil
}

// Create validates locally and creates the product. The payload goes out as a
// multipart form so an optional image can travel with it.
func (s *Service) Create(ctx context.Context, in CreateProduct) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, in); err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, in EditProduct) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, in); err != nil {
		return fmt.Errorf("update product %d: %w", in.ID, err)
	}
	return nil
}

// Delete removes the product. "Product still has stock" comes back from the
// server as free text and is refined in apperror.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperror.NewValidation("product id is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

func (s *Service) Search(ctx context.Context, term string) ([]Product, error) {
	if term == "" {
		return s.GetAll(ctx)
	}
	products, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

// AddToWarehouse creates a stock tuple linking a product to a warehouse.
func (s *Service) AddToWarehouse(ctx context.Context, link StockLink) error {
	if err := link.Validate(); err != nil {
		return err
	}
	if err := s.repo.AddToWarehouse(ctx, link); err != nil {
		return fmt.Errorf("add product %d to warehouse %d: %w", link.ProductID, link.WarehouseID, err)
	}
	return nil
}

// UpdateWarehouseQuantity rewrites the quantity of an existing stock tuple.
func (s *Service) UpdateWarehouseQuantity(ctx context.Context, link StockLink) error {
	if err := link.Validate(); err != nil {
		return err
	}
	if err := s.repo.UpdateWarehouseQuantity(ctx, link); err != nil {
		return fmt.Errorf("update stock of product %d in warehouse %d: %w", link.ProductID, link.WarehouseID, err)
	}
	return nil
}
