package purchase

import "context"

// Repository is the remote API surface for purchase invoices.
type Repository interface {
	GetAll(ctx context.Context) (*ListResult, error)
	GetByID(ctx context.Context, id int64) (*Invoice, error)
	Create(ctx context.Context, in CreateInvoice) (int64, error)
	Cancel(ctx context.Context, invoiceID int64, cancelledBy string) error
}
