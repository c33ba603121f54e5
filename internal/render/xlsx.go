package render

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rafathanna/invento-app/internal/domain/registers/stock"
)

// MovementXLSX exports the movement report as a workbook with one sheet per
// warehouse. Sheet names are deduplicated and clipped to Excel's 31-char
// limit.
func MovementXLSX(report *stock.Report, from, to time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E2E8F0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("render: xlsx style: %w", err)
	}

	seen := map[string]int{}
	for i, wh := range report.Warehouses {
		sheet := sheetName(wh.WarehouseName, seen)
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("render: xlsx sheet %q: %w", sheet, err)
			}
		}

		f.SetCellValue(sheet, "A1", wh.WarehouseName)
		f.SetCellValue(sheet, "A2", fmt.Sprintf("%s to %s", from.Format("02/01/2006"), to.Format("02/01/2006")))
		f.SetCellValue(sheet, "A3", fmt.Sprintf("%d movements, in %d, out %d, transfers %d, adjustments %d",
			wh.TotalMovements, wh.InCount, wh.OutCount, wh.TransferCount, wh.AdjustCount))

		headers := []string{"Date", "Product", "Type", "Quantity", "Invoice", "Notes"}
		for col, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 5)
			f.SetCellValue(sheet, cell, h)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
		}

		for row, m := range wh.Movements {
			r := row + 6
			invoice := ""
			if m.InvoiceNumber != nil {
				invoice = *m.InvoiceNumber
			} else if m.InvoiceID != nil {
				invoice = fmt.Sprintf("#%d", *m.InvoiceID)
			}
			notes := ""
			if m.Notes != nil {
				notes = *m.Notes
			}
			f.SetCellValue(sheet, fmt.Sprintf("A%d", r), shortDate(m.MovementDate))
			f.SetCellValue(sheet, fmt.Sprintf("B%d", r), m.ProductName)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", r), m.MovementType.String())
			f.SetCellValue(sheet, fmt.Sprintf("D%d", r), m.Quantity)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", r), invoice)
			f.SetCellValue(sheet, fmt.Sprintf("F%d", r), notes)
		}

		f.SetColWidth(sheet, "A", "A", 14)
		f.SetColWidth(sheet, "B", "B", 32)
		f.SetColWidth(sheet, "C", "C", 14)
		f.SetColWidth(sheet, "E", "F", 20)
	}

	if len(report.Warehouses) == 0 {
		f.SetCellValue("Sheet1", "A1", "No movements in the selected window.")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render: xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func sheetName(name string, seen map[string]int) string {
	if name == "" {
		name = "Warehouse"
	}
	if r := []rune(name); len(r) > 28 {
		name = string(r[:28])
	}
	seen[name]++
	if n := seen[name]; n > 1 {
		return fmt.Sprintf("%s %d", name, n)
	}
	return name
}
