package render

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/rafathanna/invento-app/internal/domain/registers/stock"
)

// MovementPDF renders the stock movement report, one section per warehouse.
// Long sections spill across pages with the table header reprinted.
func MovementPDF(report *stock.Report, from, to time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Stock Movement Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	window := fmt.Sprintf("%s to %s", from.Format("02/01/2006"), to.Format("02/01/2006"))
	pdf.CellFormat(contentW, 6, window, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	col1 := contentW * 0.20 // date
	col2 := contentW * 0.30 // product
	col3 := contentW * 0.16 // type
	col4 := contentW * 0.12 // qty
	col5 := contentW * 0.22 // invoice

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(col1, 7, "Date", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 7, "Product", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 7, "Type", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 7, "Qty", "B", 0, "C", false, 0, "")
		pdf.CellFormat(col5, 7, "Invoice", "B", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}

	for i, wh := range report.Warehouses {
		if i > 0 {
			pdf.Ln(5)
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(contentW, 8, wh.WarehouseName, "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		counts := fmt.Sprintf("%d movements   in %d   out %d   transfers %d   adjustments %d",
			wh.TotalMovements, wh.InCount, wh.OutCount, wh.TransferCount, wh.AdjustCount)
		pdf.CellFormat(contentW, 5, counts, "", 1, "L", false, 0, "")
		pdf.Ln(1)

		header()
		for _, m := range wh.Movements {
			name := truncate(m.ProductName, 30)
			invoice := "-"
			if m.InvoiceNumber != nil {
				invoice = *m.InvoiceNumber
			} else if m.InvoiceID != nil {
				invoice = fmt.Sprintf("#%d", *m.InvoiceID)
			}
			pdf.CellFormat(col1, 6, shortDate(m.MovementDate), "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 6, name, "", 0, "L", false, 0, "")
			pdf.CellFormat(col3, 6, m.MovementType.String(), "", 0, "L", false, 0, "")
			pdf.CellFormat(col4, 6, trimFloat(m.Quantity), "", 0, "C", false, 0, "")
			pdf.CellFormat(col5, 6, invoice, "", 1, "R", false, 0, "")
		}
	}

	if len(report.Warehouses) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(contentW, 8, "No movements in the selected window.", "", 1, "L", false, 0, "")
	}

	return output(pdf)
}

// shortDate trims a server timestamp to its date part for the table column.
func shortDate(s string) string {
	if t := parseServerDate(s); !t.IsZero() {
		return t.Format("02/01/2006")
	}
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}
