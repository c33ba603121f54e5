package console

import (
	"context"
	"fmt"

	"github.com/rafathanna/invento-app/internal/domain/registers/stock"
	"github.com/rafathanna/invento-app/internal/domain/reports"
	"github.com/rafathanna/invento-app/internal/render"
)

// CmdMovements handles the stock movement register: terminal report plus PDF
// and XLSX exports.
func (c *Console) CmdMovements(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: invento movements <subcommand> [args...]")
		fmt.Println("Subcommands: report, pdf, xlsx")
		fmt.Println()
		fmt.Println("Flags: --from=YYYY-MM-DD --to=YYYY-MM-DD [--warehouse=ID] [--search=term] [--asc]")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  invento movements report --from=2026-08-01 --to=2026-08-30")
		fmt.Println("  invento movements pdf --from=2026-08-01 --to=2026-08-30 --out=movements.pdf")
		fmt.Println("  invento movements xlsx --from=2026-08-01 --to=2026-08-30 --warehouse=2")
		return nil
	}

	sub := args[0]
	flags := args[1:]

	filter, err := movementFilter(flags)
	if err != nil {
		return err
	}

	fmt.Printf("%sFetching stock movements...%s\n", Blue, Reset)
	report, err := c.svc.Stock.GetReport(ctx, filter)
	if err != nil {
		return err
	}

	switch sub {
	case "report":
		printMovementReport(report, flagValue(flags, "search"), hasFlag(flags, "--asc"))
		return nil
	case "pdf":
		data, err := render.MovementPDF(report, filter.FromDate, filter.ToDate)
		if err != nil {
			return err
		}
		out := flagValue(flags, "out")
		if out == "" {
			out = "movements.pdf"
		}
		return saveFile(out, data)
	case "xlsx":
		data, err := render.MovementXLSX(report, filter.FromDate, filter.ToDate)
		if err != nil {
			return err
		}
		out := flagValue(flags, "out")
		if out == "" {
			out = "movements.xlsx"
		}
		return saveFile(out, data)
	default:
		return fmt.Errorf("unknown movements subcommand: %s", sub)
	}
}

// movementFilter builds the report window; defaults to the last 30 days.
func movementFilter(flags []string) (stock.Filter, error) {
	from, to := reports.DefaultRange(30)

	if v := flagValue(flags, "from"); v != "" {
		parsed, err := reports.ParseInputDate(v)
		if err != nil {
			return stock.Filter{}, err
		}
		from = parsed
	}
	if v := flagValue(flags, "to"); v != "" {
		parsed, err := reports.ParseInputDate(v)
		if err != nil {
			return stock.Filter{}, err
		}
		to = parsed
	}

	filter := stock.Filter{
		WarehouseID: flagInt64(flags, "warehouse"),
		FromDate:    from,
		ToDate:      to,
	}
	return filter, filter.Validate()
}

func printMovementReport(report *stock.Report, search string, ascending bool) {
	if len(report.Warehouses) == 0 {
		fmt.Printf("%sNo movements in the selected window%s\n", Yellow, Reset)
		return
	}

	for _, wh := range report.Warehouses {
		movements := wh.Movements
		if search != "" {
			movements = stock.SearchMovements(movements, search)
		}
		stock.SortByDate(movements, ascending)

		fmt.Printf("\n%s%s%s\n", Cyan, wh.WarehouseName, Reset)
		fmt.Printf("  %d movements | in %d | out %d | transfers %d | adjustments %d\n",
			wh.TotalMovements, wh.InCount, wh.OutCount, wh.TransferCount, wh.AdjustCount)

		if len(movements) == 0 {
			fmt.Printf("  %s(no matching movements)%s\n", Yellow, Reset)
			continue
		}
		for _, m := range movements {
			typeColor := Green
			if m.MovementType == stock.SalesOut {
				typeColor = Red
			}
			line := fmt.Sprintf("  %s  %s%-12s%s %6.0f  %s",
				shortMovementDate(m.MovementDate), typeColor, m.MovementType, Reset, m.Quantity, m.ProductName)
			if m.InvoiceNumber != nil {
				line += "  (" + *m.InvoiceNumber + ")"
			}
			fmt.Println(line)
			if m.Notes != nil && *m.Notes != "" {
				fmt.Printf("      %s\n", *m.Notes)
			}
		}
	}
}

func shortMovementDate(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}

func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}
