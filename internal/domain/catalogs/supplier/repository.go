package supplier

import "context"

// Repository is the remote API surface for the Supplier catalog.
type Repository interface {
	GetAll(ctx context.Context) ([]Supplier, error)
	GetByID(ctx context.Context, id int64) (*Supplier, error)
	Create(ctx context.Context, in CreateSupplier) (*Supplier, error)
	Update(ctx context.Context, in EditSupplier) (*Supplier, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]Supplier, error)
}
