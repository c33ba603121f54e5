package customer

import "context"

// Repository is the remote API surface for the Customer catalog.
type Repository interface {
	GetAll(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id int64) (*Customer, error)
	Create(ctx context.Context, in CreateCustomer) (*Customer, error)
	Update(ctx context.Context, in EditCustomer) (*Customer, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]Customer, error)
}
