package warehouse

import "context"

// Repository is the remote API surface for the Warehouse catalog.
type Repository interface {
	GetAll(ctx context.Context) ([]Warehouse, error)
	GetByID(ctx context.Context, id int64) (*Warehouse, error)
	Create(ctx context.Context, in CreateWarehouse) (*Warehouse, error)
	Update(ctx context.Context, in EditWarehouse) (*Warehouse, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, name string) ([]Warehouse, error)
}
