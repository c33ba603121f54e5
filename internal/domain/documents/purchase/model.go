// Package purchase provides the purchase invoice document.
// Purchases receive stock into warehouses from suppliers, so the draft
// accepts any product and quantity.
package purchase

import (
	"github.com/rafathanna/invento-app/internal/domain/catalogs/supplier"
	"github.com/rafathanna/invento-app/internal/domain/documents"
)

// Invoice is a submitted purchase invoice as the server reports it.
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
	Supplier      supplier.Supplier `json:"supplier"`
	Items         []documents.Line  `json:"items"`
}

// ListResult is the GetAll payload.
type ListResult struct {
	TotalCount  int       `json:"totalCount"`
	TotalAmount float64   `json:"totalAmount"`
	Invoices    []Invoice `json:"invoices"`
}

// CreateInvoice is the PurchaseInvoice/Create payload. The server expects it
// nested under an "Invoice" key; the repository wraps it.
type CreateInvoice struct {
	SupplierID    int64                  `json:"supplierId"`
	CreatedBy     string                 `json:"createdBy"`
	TaxPercentage float64                `json:"taxPercentage"`
	Items         []documents.CreateItem `json:"items"`
}
