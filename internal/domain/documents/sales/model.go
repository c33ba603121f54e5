// Package sales provides the sales invoice document.
// Sales issue stock from warehouses to customers; the draft therefore guards
// line quantities against the cached per-warehouse stock snapshot.
package sales

import (
	"github.com/rafathanna/invento-app/internal/domain/catalogs/customer"
	"github.com/rafathanna/invento-app/internal/domain/documents"
)

// Invoice is a submitted sales invoice as the server reports it.
// Once submitted, line items are immutable from the client's perspective;
// cancellation is the only transition left.
type Invoice struct {
	ID            int64             `json:"id"`
	InvoiceNumber string            `json:"invoiceNumber"`
	Status        documents.Status  `json:"status"`
	SubTotal      float64           `json:"subTotal"`
	TaxPercentage float64           `json:"taxPercentage"`
	TaxAmount     float64           `json:"taxAmount"`
	TotalAmount   float64           `json:"totalAmount"`
	CreatedAt     string            `json:"createdAt"`
	CreatedBy     string            `json:"createdBy"`
	CancelledBy   *string           `json:"cancelledBy,omitempty"`
	Customer      customer.Customer `json:"customer"`
	Items         []documents.Line  `json:"items"`
}

// ListResult is the GetAll payload.
type ListResult struct {
	TotalCount  int       `json:"totalCount"`
	TotalAmount float64   `json:"totalAmount"`
	Invoices    []Invoice `json:"invoices"`
}

// CreateInvoice is the atomic SalesInvoice/Create payload.
type CreateInvoice struct {
	CustomerID    int64                  `json:"customerId"`
	CreatedBy     string                 `json:"createdBy"`
	TaxPercentage float64                `json:"taxPercentage"`
	Items         []documents.CreateItem `json:"items"`
}
