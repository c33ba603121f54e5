package console

import (
	"context"
	"fmt"

	"github.com/rafathanna/invento-app/internal/domain/catalogs/customer"
)

// CmdCustomer handles customer catalog commands.
func (c *Console) CmdCustomer(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: invento customer <subcommand> [args...]")
		fmt.Println("Subcommands: list, get, create, update, delete, search")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  invento customer list")
		fmt.Println("  invento customer get 3")
		fmt.Println("  invento customer create \"Acme Corp\" --phone=0100000000 --address=\"12 Main St\" --email=sales@acme.test")
		fmt.Println("  invento customer update 3 --name=\"Acme Corp\" --phone=0100000000 --address=\"12 Main St\"")
		fmt.Println("  invento customer delete 3")
		fmt.Println("  invento customer search acme")
		return nil
	}

	switch args[0] {
	case "list":
		return c.customerList(ctx)
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento customer get <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		return c.customerGet(ctx, id)
	case "create":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento customer create <name> --phone=X --address=X [--email=X]")
		}
		return c.customerCreate(ctx, args[1], args[2:])
	case "update":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento customer update <id> --name=X --phone=X --address=X [--email=X]")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		return c.customerUpdate(ctx, id, args[2:])
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento customer delete <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		return c.customerDelete(ctx, id)
	case "search":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento customer search <term>")
		}
		return c.customerSearch(ctx, args[1])
	default:
		return fmt.Errorf("unknown customer subcommand: %s", args[0])
	}
}

func (c *Console) customerList(ctx context.Context) error {
	fmt.Printf("%sFetching customers...%s\n", Blue, Reset)

	customers, err := c.svc.Customers.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		fmt.Printf("%sNo customers found%s\n", Yellow, Reset)
		return nil
	}

	fmt.Printf("\n%sCustomers (%d):%s\n", Cyan, len(customers), Reset)
	for _, cust := range customers {
		printCustomer(cust)
	}
	return nil
}

func (c *Console) customerGet(ctx context.Context, id int64) error {
	cust, err := c.svc.Customers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	printCustomer(*cust)
	return nil
}

func (c *Console) customerCreate(ctx context.Context, name string, flags []string) error {
	in := customer.CreateCustomer{
		Name:    name,
		Phone:   flagValue(flags, "phone"),
		Email:   flagValue(flags, "email"),
		Address: flagValue(flags, "address"),
	}

	cust, err := c.svc.Customers.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Printf("%s✓ Customer created: %s (#%d)%s\n", Green, cust.Name, cust.ID, Reset)
	return nil
}

func (c *Console) customerUpdate(ctx context.Context, id int64, flags []string) error {
	// Missing flags are filled from the current record so a partial update
	// does not blank the other fields.
	current, err := c.svc.Customers.GetByID(ctx, id)
	if err != nil {
		return err
	}

	in := customer.EditCustomer{ID: id}
	in.Name = orDefault(flagValue(flags, "name"), current.Name)
	in.Phone = orDefault(flagValue(flags, "phone"), current.Phone)
	in.Email = orDefault(flagValue(flags, "email"), current.Email)
	in.Address = orDefault(flagValue(flags, "address"), current.Address)

	cust, err := c.svc.Customers.Update(ctx, in)
	if err != nil {
		return err
	}
	fmt.Printf("%s✓ Customer updated: %s (#%d)%s\n", Green, cust.Name, cust.ID, Reset)
	return nil
}

func (c *Console) customerDelete(ctx context.Context, id int64) error {
	if err := c.svc.Customers.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Printf("%s✓ Customer deleted: #%d%s\n", Green, id, Reset)
	return nil
}

func (c *Console) customerSearch(ctx context.Context, term string) error {
	customers, err := c.svc.Customers.Search(ctx, term)
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		fmt.Printf("%sNo customers match %q%s\n", Yellow, term, Reset)
		return nil
	}

	fmt.Printf("\n%sCustomers matching %q (%d):%s\n", Cyan, term, len(customers), Reset)
	for _, cust := range customers {
		printCustomer(cust)
	}
	return nil
}

func printCustomer(cust customer.Customer) {
	fmt.Printf("  #%d - %s\n", cust.ID, cust.Name)
	line := "    Phone: " + cust.Phone
	if cust.Email != "" {
		line += " | Email: " + cust.Email
	}
	fmt.Println(line)
	fmt.Printf("    Address: %s\n", cust.Address)
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
