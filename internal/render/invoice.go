// Package render generates printable documents directly from structured
// invoice and report data using go-pdf/fpdf. Laying the PDF out from data
// rather than rasterizing rendered markup keeps the output byte-stable and
// paginates long documents with fpdf's automatic page breaks.
package render

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/rafathanna/invento-app/internal/core/types"
	"github.com/rafathanna/invento-app/internal/domain/documents"
)

// InvoicePDF renders a submitted invoice snapshot as a single A4 document
// (spilling to further pages when the line list is long enough).
// The output mirrors the snapshot exactly: same lines, same computed totals.
func InvoicePDF(snap *documents.Snapshot) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30 // total margins = 30mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, "InventoPro", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(contentW, 7, snap.Kind.Title(), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Invoice info ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 10)
	number := snap.InvoiceNumber
	if number == "" {
		number = fmt.Sprintf("#%d", snap.InvoiceID)
	}
	pdf.CellFormat(contentW/2, 6, "Invoice "+number, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, snap.CreatedAt.Format("02/01/2006 15:04"), "", 1, "R", false, 0, "")

	pdf.CellFormat(contentW/2, 6, snap.Kind.CounterpartyLabel()+": "+snap.CounterpartyName, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, "Created by: "+snap.CreatedBy, "", 1, "R", false, 0, "")
	if snap.Status != "" {
		pdf.CellFormat(contentW/2, 6, "Status: "+string(snap.Status), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// ── Separator ────────────────────────────────────────────────────────────
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Line table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.34 // product
	col2 := contentW * 0.22 // warehouse
	col3 := contentW * 0.12 // qty
	col4 := contentW * 0.16 // unit price
	col5 := contentW * 0.16 // total

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 7, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Warehouse", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 7, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col4, 7, "Unit Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 7, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range snap.Lines {
		pdf.CellFormat(col1, 6, truncate(line.ProductName, 34), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, truncate(line.WarehouseName, 22), "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, trimFloat(line.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col4, 6, types.FormatAmount(line.UnitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(col5, 6, types.FormatAmount(line.Total), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	labelW := col1 + col2 + col3 + col4

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(labelW, 6, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 6, types.FormatAmount(snap.Totals.Subtotal), "", 1, "R", false, 0, "")

	taxLabel := fmt.Sprintf("Tax (%s%%):", snap.TaxPercentage.String())
	pdf.CellFormat(labelW, 6, taxLabel, "", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 6, types.FormatAmount(snap.Totals.TaxAmount), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(labelW, 8, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 8, types.FormatAmount(snap.Totals.Total), "", 1, "R", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "Generated "+time.Now().Format("02/01/2006"), "", 1, "C", false, 0, "")

	return output(pdf)
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	// 2.00 reads better as 2 in the quantity column
	if s[len(s)-3:] == ".00" {
		return s[:len(s)-3]
	}
	return s
}
