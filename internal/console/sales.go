package console

import (
	"context"
	"fmt"

	"github.com/rafathanna/invento-app/internal/domain/documents"
	"github.com/rafathanna/invento-app/internal/domain/documents/sales"
	"github.com/rafathanna/invento-app/internal/render"
)

// CmdSales handles sales invoice commands.
func (c *Console) CmdSales(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: invento sales <subcommand> [args...]")
		fmt.Println("Subcommands: list, get, new, cancel, pdf")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  invento sales list")
		fmt.Println("  invento sales get 12")
		fmt.Println("  invento sales new --by=\"R. Hanna\"")
		fmt.Println("  invento sales cancel 12 --by=\"R. Hanna\"")
		fmt.Println("  invento sales pdf 12 --out=invoice-12.pdf")
		return nil
	}

	switch args[0] {
	case "list":
		return c.salesList(ctx)
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento sales get <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		inv, err := c.svc.Sales.GetByID(ctx, id)
		if err != nil {
			return err
		}
		printSalesDetail(inv)
		return nil
	case "new":
		return c.runDraftBuilder(ctx, documents.KindSales, flagValue(args[1:], "by"))
	case "cancel":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento sales cancel <id> --by=<name>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		return c.salesCancel(ctx, id, flagValue(args[2:], "by"))
	case "pdf":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento sales pdf <id> [--out=path]")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		return c.salesPDF(ctx, id, flagValue(args[2:], "out"))
	default:
		return fmt.Errorf("unknown sales subcommand: %s", args[0])
	}
}

func (c *Console) salesList(ctx context.Context) error {
	fmt.Printf("%sFetching sales invoices...%s\n", Blue, Reset)

	result, err := c.svc.Sales.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(result.Invoices) == 0 {
		fmt.Printf("%sNo sales invoices found%s\n", Yellow, Reset)
		return nil
	}

	fmt.Printf("\n%sSales invoices (%d, total %.2f):%s\n", Cyan, result.TotalCount, result.TotalAmount, Reset)
	for _, inv := range result.Invoices {
		fmt.Printf("  #%d %s - %s\n", inv.ID, inv.InvoiceNumber, inv.Customer.Name)
		fmt.Printf("    Date: %s | Status: %s%s%s | Total: %.2f\n",
			inv.CreatedAt, statusColor(inv.Status), inv.Status, Reset, inv.TotalAmount)
	}
	return nil
}

func printSalesDetail(inv *sales.Invoice) {
	fmt.Printf("\n%sSales invoice #%d %s%s\n", Cyan, inv.ID, inv.InvoiceNumber, Reset)
	fmt.Printf("  Customer: %s\n", inv.Customer.Name)
	fmt.Printf("  Date: %s | Created by: %s\n", inv.CreatedAt, inv.CreatedBy)
	fmt.Printf("  Status: %s%s%s\n", statusColor(inv.Status), inv.Status, Reset)
	if inv.CancelledBy != nil {
		fmt.Printf("  Cancelled by: %s\n", *inv.CancelledBy)
	}

	if len(inv.Items) > 0 {
		fmt.Printf("\n  %sItems:%s\n", Yellow, Reset)
		for _, item := range inv.Items {
			fmt.Printf("    - %s @ %s: %.0f x %s = %s\n",
				item.ProductName, item.WarehouseName, item.Quantity,
				item.UnitPrice.StringFixed(2), item.Total.StringFixed(2))
		}
	}

	fmt.Printf("\n  Subtotal: %.2f\n", inv.SubTotal)
	fmt.Printf("  Tax (%.0f%%): %.2f\n", inv.TaxPercentage, inv.TaxAmount)
	fmt.Printf("  %sTotal: %.2f%s\n", Green, inv.TotalAmount, Reset)
}

func (c *Console) salesCancel(ctx context.Context, id int64, by string) error {
	inv, err := c.svc.Sales.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := c.svc.Sales.Cancel(ctx, inv, by); err != nil {
		return err
	}
	fmt.Printf("%s✓ Sales invoice #%d cancelled by %s%s\n", Green, id, by, Reset)
	return nil
}

func (c *Console) salesPDF(ctx context.Context, id int64, out string) error {
	inv, err := c.svc.Sales.GetByID(ctx, id)
	if err != nil {
		return err
	}

	data, err := render.InvoicePDF(render.SnapshotFromSales(inv))
	if err != nil {
		return err
	}
	if out == "" {
		out = fmt.Sprintf("sales-invoice-%d.pdf", id)
	}
	return saveFile(out, data)
}
