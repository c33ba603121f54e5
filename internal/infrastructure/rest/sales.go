package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rafathanna/invento-app/internal/api"
	"github.com/rafathanna/invento-app/internal/domain/documents/sales"
)

// SalesInvoiceRepo implements sales.Repository.
type SalesInvoiceRepo struct {
	client *api.Client
}

// NewSalesInvoiceRepo creates a sales invoice repository.
func NewSalesInvoiceRepo(client *api.Client) *SalesInvoiceRepo {
	return &SalesInvoiceRepo{client: client}
}

func (r *SalesInvoiceRepo) GetAll(ctx context.Context) (*sales.ListResult, error) {
	var out sales.ListResult
	if err := r.client.GetJSON(ctx, "/SalesInvoice/getAll", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *SalesInvoiceRepo) GetByID(ctx context.Context, id int64) (*sales.Invoice, error) {
	var out sales.Invoice
	if err := r.client.GetJSON(ctx, fmt.Sprintf("/SalesInvoice/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts the whole draft in one call; the envelope's data member is the
// new invoice id.
func (r *SalesInvoiceRepo) Create(ctx context.Context, in sales.CreateInvoice) (int64, error) {
	var id int64
	if err := r.client.PostJSON(ctx, "/SalesInvoice/Create", in, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// Cancel sends the id and the mandatory actor as query parameters.
func (r *SalesInvoiceRepo) Cancel(ctx context.Context, invoiceID int64, cancelledBy string) error {
	query := url.Values{
		"InvoiceId":   {strconv.FormatInt(invoiceID, 10)},
		"CancelledBy": {cancelledBy},
	}
	return r.client.PostQuery(ctx, "/SalesInvoice/CancelInvoice", query, nil)
}

var _ sales.Repository = (*SalesInvoiceRepo)(nil)
