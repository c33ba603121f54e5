package sales

import "context"

// Repository is the remote API surface for sales invoices.
type Repository interface {
	GetAll(ctx context.Context) (*ListResult, error)
	GetByID(ctx context.Context, id int64) (*Invoice, error)

	// Create posts the whole draft atomically and returns the new invoice id.
	Create(ctx context.Context, in CreateInvoice) (int64, error)

	// Cancel records the actor; the server attaches it to the invoice.
	Cancel(ctx context.Context, invoiceID int64, cancelledBy string) error
}
