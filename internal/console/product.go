package console

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rafathanna/invento-app/internal/domain/catalogs/product"
)

// CmdProduct handles product catalog commands, including the per-warehouse
// stock links.
func (c *Console) CmdProduct(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: invento product <subcommand> [args...]")
		fmt.Println("Subcommands: list, get, create, update, delete, search, link, restock")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  invento product list")
		fmt.Println("  invento product list --warehouse=2")
		fmt.Println("  invento product create \"Olive Oil 1L\" --sku=OO-1L --price=120 --threshold=10 \\")
		fmt.Println("      --produced=2026-01-15 --expires=2027-01-15 --warehouse=2 --qty=50 [--image=oil.png]")
		fmt.Println("  invento product link 7 --warehouse=3 --qty=25")
		fmt.Println("  invento product restock 7 --warehouse=3 --qty=40")
		return nil
	}

	switch args[0] {
	case "list":
		return c.productList(ctx, args[1:])
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento product get <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		p, err := c.svc.Products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		printProductDetail(p)
		return nil
	case "create":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento product create <name> --sku=X --price=X --threshold=X --produced=YYYY-MM-DD --expires=YYYY-MM-DD --warehouse=ID --qty=X [--image=path]")
		}
		return c.productCreate(ctx, args[1], args[2:])
	case "update":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento product update <id> [--name=X --sku=X --price=X ...]")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		return c.productUpdate(ctx, id, args[2:])
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento product delete <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := c.svc.Products.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("%s✓ Product deleted: #%d%s\n", Green, id, Reset)
		return nil
	case "search":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento product search <term>")
		}
		products, err := c.svc.Products.Search(ctx, args[1])
		if err != nil {
			return err
		}
		printProductList(products, fmt.Sprintf("Products matching %q", args[1]))
		return nil
	case "link":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento product link <id> --warehouse=ID --qty=X")
		}
		return c.productLink(ctx, args[1], args[2:], false)
	case "restock":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento product restock <id> --warehouse=ID --qty=X")
		}
		return c.productLink(ctx, args[1], args[2:], true)
	default:
		return fmt.Errorf("unknown product subcommand: %s", args[0])
	}
}

func (c *Console) productList(ctx context.Context, flags []string) error {
	fmt.Printf("%sFetching products...%s\n", Blue, Reset)

	var (
		products []product.Product
		err      error
	)
	if whID := flagInt64(flags, "warehouse"); whID != nil {
		products, err = c.svc.Products.GetByWarehouse(ctx, *whID)
	} else {
		products, err = c.svc.Products.GetAll(ctx)
	}
	if err != nil {
		return err
	}

	printProductList(products, "Products")
	return nil
}

func printProductList(products []product.Product, heading string) {
	if len(products) == 0 {
		fmt.Printf("%sNo products found%s\n", Yellow, Reset)
		return
	}

	fmt.Printf("\n%s%s (%d):%s\n", Cyan, heading, len(products), Reset)
	for _, p := range products {
		stockColor := Green
		if p.BelowThreshold() {
			stockColor = Red
		}
		fmt.Printf("  #%d - %s [%s]\n", p.ID, p.Name, p.SKU)
		fmt.Printf("    Price: %.2f | Stock: %s%.0f%s (threshold %.0f)\n",
			p.Price, stockColor, p.TotalStock(), Reset, p.Threshold)
	}
}

func printProductDetail(p *product.Product) {
	fmt.Printf("\n%sProduct #%d - %s%s\n", Cyan, p.ID, p.Name, Reset)
	fmt.Printf("  SKU: %s\n", p.SKU)
	if p.Description != "" {
		fmt.Printf("  Description: %s\n", p.Description)
	}
	fmt.Printf("  Price: %.2f | Threshold: %.0f\n", p.Price, p.Threshold)
	fmt.Printf("  Produced: %s | Expires: %s\n", p.ProductionDate, p.ExpirationDate)
	if p.ImageURL != nil {
		fmt.Printf("  Image: %s\n", *p.ImageURL)
	}
	if len(p.Warehouses) > 0 {
		fmt.Printf("\n  %sStock:%s\n", Yellow, Reset)
		for _, wh := range p.Warehouses {
			fmt.Printf("    - %s: %.0f\n", wh.WarehouseName, wh.Quantity)
		}
	}
	fmt.Printf("  Total: %.0f\n", p.TotalStock())
}

func (c *Console) productCreate(ctx context.Context, name string, flags []string) error {
	in := product.CreateProduct{
		Name:           name,
		SKU:            flagValue(flags, "sku"),
		Description:    flagValue(flags, "desc"),
		Price:          flagFloat(flags, "price", 0),
		Threshold:      flagFloat(flags, "threshold", 0),
		ProductionDate: flagValue(flags, "produced"),
		ExpirationDate: flagValue(flags, "expires"),
		Quantity:       flagFloat(flags, "qty", 0),
	}
	if whID := flagInt64(flags, "warehouse"); whID != nil {
		in.WarehouseID = *whID
	}

	if path := flagValue(flags, "image"); path != "" {
		img, err := loadImage(path)
		if err != nil {
			return err
		}
		in.Image = img
	}

	if err := c.svc.Products.Create(ctx, in); err != nil {
		return err
	}
	fmt.Printf("%s✓ Product created: %s%s\n", Green, name, Reset)
	return nil
}

func (c *Console) productUpdate(ctx context.Context, id int64, flags []string) error {
	current, err := c.svc.Products.GetByID(ctx, id)
	if err != nil {
		return err
	}

	in := product.EditProduct{
		ID:             id,
		Name:           orDefault(flagValue(flags, "name"), current.Name),
		SKU:            orDefault(flagValue(flags, "sku"), current.SKU),
		Description:    orDefault(flagValue(flags, "desc"), current.Description),
		Price:          flagFloat(flags, "price", current.Price),
		Threshold:      flagFloat(flags, "threshold", current.Threshold),
		ProductionDate: orDefault(flagValue(flags, "produced"), current.ProductionDate),
		ExpirationDate: orDefault(flagValue(flags, "expires"), current.ExpirationDate),
	}

	if path := flagValue(flags, "image"); path != "" {
		img, err := loadImage(path)
		if err != nil {
			return err
		}
		in.Image = img
	}

	if err := c.svc.Products.Update(ctx, in); err != nil {
		return err
	}
	fmt.Printf("%s✓ Product updated: %s (#%d)%s\n", Green, in.Name, id, Reset)
	return nil
}

func (c *Console) productLink(ctx context.Context, idArg string, flags []string, update bool) error {
	id, err := parseID(idArg)
	if err != nil {
		return err
	}
	whID := flagInt64(flags, "warehouse")
	if whID == nil {
		return fmt.Errorf("--warehouse=ID is required")
	}
	qty := flagValue(flags, "qty")
	if qty == "" {
		return fmt.Errorf("--qty=X is required")
	}
	quantity, err := strconv.ParseFloat(qty, 64)
	if err != nil {
		return fmt.Errorf("invalid quantity: %s", qty)
	}

	link := product.StockLink{ProductID: id, WarehouseID: *whID, Quantity: quantity}
	if update {
		if err := c.svc.Products.UpdateWarehouseQuantity(ctx, link); err != nil {
			return err
		}
		fmt.Printf("%s✓ Stock set: product #%d in warehouse #%d = %.0f%s\n", Green, id, *whID, quantity, Reset)
		return nil
	}

	if err := c.svc.Products.AddToWarehouse(ctx, link); err != nil {
		return err
	}
	fmt.Printf("%s✓ Product #%d linked to warehouse #%d with %.0f units%s\n", Green, id, *whID, quantity, Reset)
	return nil
}

func loadImage(path string) (*product.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	return &product.Image{
		Filename: filepath.Base(path),
		Content:  bytes.NewReader(data),
	}, nil
}
