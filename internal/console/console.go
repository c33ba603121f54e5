// Package console is the terminal front end: subcommand handlers for every
// catalog and document operation, plus an interactive invoice builder.
// It talks only to the domain services and never to the transport directly.
package console

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rafathanna/invento-app/internal/config"
	"github.com/rafathanna/invento-app/internal/domain/catalogs/customer"
	"github.com/rafathanna/invento-app/internal/domain/catalogs/product"
	"github.com/rafathanna/invento-app/internal/domain/catalogs/supplier"
	"github.com/rafathanna/invento-app/internal/domain/catalogs/warehouse"
	"github.com/rafathanna/invento-app/internal/domain/documents/purchase"
	"github.com/rafathanna/invento-app/internal/domain/documents/sales"
	"github.com/rafathanna/invento-app/internal/domain/registers/stock"
	"github.com/rafathanna/invento-app/internal/domain/reports"
	"github.com/rafathanna/invento-app/pkg/logger"
)

// Services bundles everything the console needs from the domain layer.
type Services struct {
	Customers  *customer.Service
	Suppliers  *supplier.Service
	Warehouses *warehouse.Service
	Products   *product.Service
	Sales      *sales.Service
	Purchases  *purchase.Service
	Stock      *stock.Service
	Reports    *reports.Service
}

// Console dispatches subcommands and owns the output styling.
type Console struct {
	svc   Services
	prefs *config.Preferences
	log   *logger.Logger
}

func New(svc Services, prefs *config.Preferences, log *logger.Logger) *Console {
	applyTheme(prefs)
	return &Console{svc: svc, prefs: prefs, log: log}
}

// Run executes one top-level command. args excludes the program name.
func (c *Console) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.usage()
		return nil
	}

	switch args[0] {
	case "customer":
		return c.CmdCustomer(ctx, args[1:])
	case "supplier":
		return c.CmdSupplier(ctx, args[1:])
	case "warehouse":
		return c.CmdWarehouse(ctx, args[1:])
	case "product":
		return c.CmdProduct(ctx, args[1:])
	case "sales":
		return c.CmdSales(ctx, args[1:])
	case "purchase":
		return c.CmdPurchase(ctx, args[1:])
	case "movements":
		return c.CmdMovements(ctx, args[1:])
	case "dashboard":
		return c.CmdDashboard(ctx, args[1:])
	case "theme":
		return c.CmdTheme(args[1:])
	case "help", "--help", "-h":
		c.usage()
		return nil
	default:
		return fmt.Errorf("unknown command: %s (run 'invento help')", args[0])
	}
}

func (c *Console) usage() {
	fmt.Println("Usage: invento <command> <subcommand> [args...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  customer    list, get, create, update, delete, search")
	fmt.Println("  supplier    list, get, create, update, delete, search")
	fmt.Println("  warehouse   list, get, create, update, delete, search")
	fmt.Println("  product     list, get, create, update, delete, search, link, restock")
	fmt.Println("  sales       list, get, new, cancel, pdf")
	fmt.Println("  purchase    list, get, new, cancel, pdf")
	fmt.Println("  movements   report, pdf, xlsx")
	fmt.Println("  dashboard   period summary with top, slow and low-stock sections")
	fmt.Println("  theme       show, accent, dark")
}

// --- shared argument helpers ---

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %s", s)
	}
	return id, nil
}

// flagValue scans args for --name=value.
func flagValue(args []string, name string) string {
	prefix := "--" + name + "="
	for _, arg := range args {
		if strings.HasPrefix(arg, prefix) {
			return arg[len(prefix):]
		}
	}
	return ""
}

func flagFloat(args []string, name string, fallback float64) float64 {
	if v := flagValue(args, name); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func flagInt64(args []string, name string) *int64 {
	if v := flagValue(args, name); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return &n
		}
	}
	return nil
}

// saveFile writes rendered output and reports the path.
func saveFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("%s✓ Saved: %s%s\n", Green, path, Reset)
	return nil
}
