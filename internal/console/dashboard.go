package console

import (
	"context"
	"fmt"

	"github.com/rafathanna/invento-app/internal/domain/reports"
)

// CmdDashboard prints the aggregated period dashboard. Sections whose query
// failed are reported at the end instead of aborting the whole view.
func (c *Console) CmdDashboard(ctx context.Context, args []string) error {
	from, to := reports.DefaultRange(30)
	if v := flagValue(args, "from"); v != "" {
		parsed, err := reports.ParseInputDate(v)
		if err != nil {
			return err
		}
		from = parsed
	}
	if v := flagValue(args, "to"); v != "" {
		parsed, err := reports.ParseInputDate(v)
		if err != nil {
			return err
		}
		to = parsed
	}

	fmt.Printf("%sBuilding dashboard %s to %s...%s\n", Blue,
		from.Format(reports.InputDateLayout), to.Format(reports.InputDateLayout), Reset)

	dash, err := c.svc.Reports.GetDashboard(ctx, from, to)
	if err != nil {
		return err
	}

	fmt.Printf("\n%sSales%s      %d invoices, %.2f total\n", Cyan, Reset, dash.Sales.TotalCount, dash.Sales.TotalAmount)
	fmt.Printf("%sPurchases%s  %d invoices, %.2f total\n", Cyan, Reset, dash.Purchases.TotalCount, dash.Purchases.TotalAmount)

	if len(dash.TopSold) > 0 {
		fmt.Printf("\n%sTop sold products:%s\n", Cyan, Reset)
		for i, p := range dash.TopSold {
			fmt.Printf("  %d. %s (%.0f units)\n", i+1, p.ProductName, p.TotalQuantity)
		}
	}
	if len(dash.TopPurchased) > 0 {
		fmt.Printf("\n%sTop purchased products:%s\n", Cyan, Reset)
		for i, p := range dash.TopPurchased {
			fmt.Printf("  %d. %s (%.0f units)\n", i+1, p.ProductName, p.TotalQuantity)
		}
	}

	if dash.SlowMoving.TotalSlowProducts > 0 {
		fmt.Printf("\n%sSlow moving (%d):%s\n", Yellow, dash.SlowMoving.TotalSlowProducts, Reset)
		for _, p := range dash.SlowMoving.Products {
			if !p.IsSlowMoving {
				continue
			}
			last := "never"
			if p.LastMovementDate != nil {
				last = shortMovementDate(*p.LastMovementDate)
			}
			fmt.Printf("  - %s @ %s: %.0f in stock, last moved %s (%d days)\n",
				p.ProductName, p.WarehouseName, p.TotalQuantityInStock, last, p.DaysSinceLastMovement)
		}
	}

	if len(dash.LowStock) > 0 {
		fmt.Printf("\n%sLow stock (%d):%s\n", Red, len(dash.LowStock), Reset)
		for _, p := range dash.LowStock {
			fmt.Printf("  - %s @ %s: %.0f left (threshold %.0f)\n",
				p.ProductName, p.WarehouseName, p.RemainingQuantity, p.Threshold)
		}
	}

	if dash.Expiry.TotalExpiredProducts > 0 || dash.Expiry.TotalNearExpiryProducts > 0 {
		fmt.Printf("\n%sExpiry monitor:%s %d expired, %d near expiry\n", Red, Reset,
			dash.Expiry.TotalExpiredProducts, dash.Expiry.TotalNearExpiryProducts)
		for _, item := range dash.Expiry.ExpiredProducts {
			fmt.Printf("  - EXPIRED %s @ %s on %s (%.0f units)\n",
				item.ProductName, item.WarehouseName, shortMovementDate(item.ExpirationDate), item.Quantity)
		}
		for _, item := range dash.Expiry.NearExpiryProducts {
			fmt.Printf("  - %s @ %s expires %s (%.0f units)\n",
				item.ProductName, item.WarehouseName, shortMovementDate(item.ExpirationDate), item.Quantity)
		}
	}

	if len(dash.Failed) > 0 {
		fmt.Printf("\n%sSome sections failed to load: %v%s\n", Red, dash.Failed, Reset)
	}
	return nil
}
