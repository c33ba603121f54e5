package console

import (
	"context"
	"fmt"

	"github.com/rafathanna/invento-app/internal/domain/catalogs/warehouse"
)

// CmdWarehouse handles warehouse catalog commands.
func (c *Console) CmdWarehouse(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: invento warehouse <subcommand> [args...]")
		fmt.Println("Subcommands: list, get, create, update, delete, search")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  invento warehouse create \"Main Store\" --location=Cairo")
		fmt.Println("  invento warehouse update 2 --name=\"Main Store\" --location=Giza")
		return nil
	}

	switch args[0] {
	case "list":
		fmt.Printf("%sFetching warehouses...%s\n", Blue, Reset)
		warehouses, err := c.svc.Warehouses.GetAll(ctx)
		if err != nil {
			return err
		}
		if len(warehouses) == 0 {
			fmt.Printf("%sNo warehouses found%s\n", Yellow, Reset)
			return nil
		}
		fmt.Printf("\n%sWarehouses (%d):%s\n", Cyan, len(warehouses), Reset)
		for _, wh := range warehouses {
			fmt.Printf("  #%d - %s (%s)\n", wh.ID, wh.Name, wh.Location)
		}
		return nil
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento warehouse get <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		wh, err := c.svc.Warehouses.GetByID(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("  #%d - %s (%s)\n", wh.ID, wh.Name, wh.Location)
		return nil
	case "create":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento warehouse create <name> --location=X")
		}
		wh, err := c.svc.Warehouses.Create(ctx, warehouse.CreateWarehouse{
			Name:     args[1],
			Location: flagValue(args[2:], "location"),
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s✓ Warehouse created: %s (#%d)%s\n", Green, wh.Name, wh.ID, Reset)
		return nil
	case "update":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento warehouse update <id> --name=X --location=X")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		current, err := c.svc.Warehouses.GetByID(ctx, id)
		if err != nil {
			return err
		}
		in := warehouse.EditWarehouse{ID: id}
		in.Name = orDefault(flagValue(args[2:], "name"), current.Name)
		in.Location = orDefault(flagValue(args[2:], "location"), current.Location)
		wh, err := c.svc.Warehouses.Update(ctx, in)
		if err != nil {
			return err
		}
		fmt.Printf("%s✓ Warehouse updated: %s (#%d)%s\n", Green, wh.Name, wh.ID, Reset)
		return nil
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento warehouse delete <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := c.svc.Warehouses.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("%s✓ Warehouse deleted: #%d%s\n", Green, id, Reset)
		return nil
	case "search":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento warehouse search <name>")
		}
		warehouses, err := c.svc.Warehouses.Search(ctx, args[1])
		if err != nil {
			return err
		}
		if len(warehouses) == 0 {
			fmt.Printf("%sNo warehouses match %q%s\n", Yellow, args[1], Reset)
			return nil
		}
		for _, wh := range warehouses {
			fmt.Printf("  #%d - %s (%s)\n", wh.ID, wh.Name, wh.Location)
		}
		return nil
	default:
		return fmt.Errorf("unknown warehouse subcommand: %s", args[0])
	}
}
