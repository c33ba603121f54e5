package console

import (
	"context"
	"fmt"

	"github.com/rafathanna/invento-app/internal/domain/documents"
	"github.com/rafathanna/invento-app/internal/domain/documents/purchase"
	"github.com/rafathanna/invento-app/internal/render"
)

// CmdPurchase handles purchase invoice commands.
func (c *Console) CmdPurchase(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: invento purchase <subcommand> [args...]")
		fmt.Println("Subcommands: list, get, new, cancel, pdf")
		return nil
	}

	switch args[0] {
	case "list":
		return c.purchaseList(ctx)
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento purchase get <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		inv, err := c.svc.Purchases.GetByID(ctx, id)
		if err != nil {
			return err
		}
		printPurchaseDetail(inv)
		return nil
	case "new":
		return c.runDraftBuilder(ctx, documents.KindPurchase, flagValue(args[1:], "by"))
	case "cancel":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento purchase cancel <id> --by=<name>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		inv, err := c.svc.Purchases.GetByID(ctx, id)
		if err != nil {
			return err
		}
		by := flagValue(args[2:], "by")
		if err := c.svc.Purchases.Cancel(ctx, inv, by); err != nil {
			return err
		}
		fmt.Printf("%s✓ Purchase invoice #%d cancelled by %s%s\n", Green, id, by, Reset)
		return nil
	case "pdf":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento purchase pdf <id> [--out=path]")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		inv, err := c.svc.Purchases.GetByID(ctx, id)
		if err != nil {
			return err
		}
		data, err := render.InvoicePDF(render.SnapshotFromPurchase(inv))
		if err != nil {
			return err
		}
		out := flagValue(args[2:], "out")
		if out == "" {
			out = fmt.Sprintf("purchase-invoice-%d.pdf", id)
		}
		return saveFile(out, data)
	default:
		return fmt.Errorf("unknown purchase subcommand: %s", args[0])
	}
}

func (c *Console) purchaseList(ctx context.Context) error {
	fmt.Printf("%sFetching purchase invoices...%s\n", Blue, Reset)

	result, err := c.svc.Purchases.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(result.Invoices) == 0 {
		fmt.Printf("%sNo purchase invoices found%s\n", Yellow, Reset)
		return nil
	}

	fmt.Printf("\n%sPurchase invoices (%d, total %.2f):%s\n", Cyan, result.TotalCount, result.TotalAmount, Reset)
	for _, inv := range result.Invoices {
		fmt.Printf("  #%d %s - %s\n", inv.ID, inv.InvoiceNumber, inv.Supplier.Name)
		fmt.Printf("    Date: %s | Status: %s%s%s | Total: %.2f\n",
			inv.CreatedAt, statusColor(inv.Status), inv.Status, Reset, inv.TotalAmount)
	}
	return nil
}

func printPurchaseDetail(inv *purchase.Invoice) {
	fmt.Printf("\n%sPurchase invoice #%d %s%s\n", Cyan, inv.ID, inv.InvoiceNumber, Reset)
	fmt.Printf("  Supplier: %s\n", inv.Supplier.Name)
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
