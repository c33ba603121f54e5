package product

import "context"

// Repository is the remote API surface for the Product catalog and the
// ProductWarehouse link.
type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	GetByWarehouse(ctx context.Context, warehouseID int64) ([]Product, error)
	Create(ctx context.Context, in CreateProduct) error
	Update(ctx context.Context, in EditProduct) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]Product, error)

	// ProductWarehouse link
	AddToWarehouse(ctx context.Context, link StockLink) error
	UpdateWarehouseQuantity(ctx context.Context, link StockLink) error
}
