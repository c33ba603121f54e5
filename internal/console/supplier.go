package console

import (
	"context"
	"fmt"

	"github.com/rafathanna/invento-app/internal/domain/catalogs/supplier"
)

// CmdSupplier handles supplier catalog commands.
func (c *Console) CmdSupplier(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: invento supplier <subcommand> [args...]")
		fmt.Println("Subcommands: list, get, create, update, delete, search")
		return nil
	}

	switch args[0] {
	case "list":
		return c.supplierList(ctx)
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento supplier get <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		sup, err := c.svc.Suppliers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		printSupplier(*sup)
		return nil
	case "create":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento supplier create <name> --phone=X --address=X [--email=X]")
		}
		in := supplier.CreateSupplier{
			Name:    args[1],
			Phone:   flagValue(args[2:], "phone"),
			Email:   flagValue(args[2:], "email"),
			Address: flagValue(args[2:], "address"),
		}
		sup, err := c.svc.Suppliers.Create(ctx, in)
		if err != nil {
			return err
		}
		fmt.Printf("%s✓ Supplier created: %s (#%d)%s\n", Green, sup.Name, sup.ID, Reset)
		return nil
	case "update":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento supplier update <id> --name=X --phone=X --address=X [--email=X]")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		return c.supplierUpdate(ctx, id, args[2:])
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento supplier delete <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := c.svc.Suppliers.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("%s✓ Supplier deleted: #%d%s\n", Green, id, Reset)
		return nil
	case "search":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento supplier search <term>")
		}
		suppliers, err := c.svc.Suppliers.Search(ctx, args[1])
		if err != nil {
			return err
		}
		if len(suppliers) == 0 {
			fmt.Printf("%sNo suppliers match %q%s\n", Yellow, args[1], Reset)
			return nil
		}
		fmt.Printf("\n%sSuppliers matching %q (%d):%s\n", Cyan, args[1], len(suppliers), Reset)
		for _, sup := range suppliers {
			printSupplier(sup)
		}
		return nil
	default:
		return fmt.Errorf("unknown supplier subcommand: %s", args[0])
	}
}

func (c *Console) supplierList(ctx context.Context) error {
	fmt.Printf("%sFetching suppliers...%s\n", Blue, Reset)

	suppliers, err := c.svc.Suppliers.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(suppliers) == 0 {
		fmt.Printf("%sNo suppliers found%s\n", Yellow, Reset)
		return nil
	}

	fmt.Printf("\n%sSuppliers (%d):%s\n", Cyan, len(suppliers), Reset)
	for _, sup := range suppliers {
		printSupplier(sup)
	}
	return nil
}

func (c *Console) supplierUpdate(ctx context.Context, id int64, flags []string) error {
	current, err := c.svc.Suppliers.GetByID(ctx, id)
	if err != nil {
		return err
	}

	in := supplier.EditSupplier{ID: id}
	in.Name = orDefault(flagValue(flags, "name"), current.Name)
	in.Phone = orDefault(flagValue(flags, "phone"), current.Phone)
	in.Email = orDefault(flagValue(flags, "email"), current.Email)
	in.Address = orDefault(flagValue(flags, "address"), current.Address)

	sup, err := c.svc.Suppliers.Update(ctx, in)
	if err != nil {
		return err
	}
	fmt.Printf("%s✓ Supplier updated: %s (#%d)%s\n", Green, sup.Name, sup.ID, Reset)
	return nil
}

func printSupplier(sup supplier.Supplier) {
	fmt.Printf("  #%d - %s\n", sup.ID, sup.Name)
	line := "    Phone: " + sup.Phone
	if sup.Email != "" {
		line += " | Email: " + sup.Email
	}
	fmt.Println(line)
	fmt.Printf("    Address: %s\n", sup.Address)
}
