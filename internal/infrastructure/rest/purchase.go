package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rafathanna/invento-app/internal/api"
	"github.com/rafathanna/invento-app/internal/domain/documents/purchase"
)

// PurchaseInvoiceRepo implements purchase.Repository.
type PurchaseInvoiceRepo struct {
	client *api.Client
}

// NewPurchaseInvoiceRepo creates a purchase invoice repository.
func NewPurchaseInvoiceRepo(client *api.Client) *PurchaseInvoiceRepo {
	return &PurchaseInvoiceRepo{client: client}
}

func (r *PurchaseInvoiceRepo) GetAll(ctx context.Context) (*purchase.ListResult, error) {
	var out purchase.ListResult
	if err := r.client.GetJSON(ctx, "/PurchaseInvoice/getAll", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PurchaseInvoiceRepo) GetByID(ctx context.Context, id int64) (*purchase.Invoice, error) {
	var out purchase.Invoice
	if err := r.client.GetJSON(ctx, fmt.Sprintf("/PurchaseInvoice/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create nests the payload under an Invoice key; the purchase endpoint
// expects that envelope where the sales one takes the payload bare.
func (r *PurchaseInvoiceRepo) Create(ctx context.Context, in purchase.CreateInvoice) (int64, error) {
	payload := struct {
		Invoice purchase.CreateInvoice `json:"Invoice"`
	}{Invoice: in}

	var id int64
	if err := r.client.PostJSON(ctx, "/PurchaseInvoice/Create", payload, &id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PurchaseInvoiceRepo) Cancel(ctx context.Context, invoiceID int64, cancelledBy string) error {
	query := url.Values{
		"InvoiceId":   {strconv.FormatInt(invoiceID, 10)},
		"CancelledBy": {cancelledBy},
	}
	return r.client.PostQuery(ctx, "/PurchaseInvoice/CancelInvoice", query, nil)
}

var _ purchase.Repository = (*PurchaseInvoiceRepo)(nil)
