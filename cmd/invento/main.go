// Package main is the InventoPro console entry point. It wires the REST
// transport to the domain services and hands control to the command
// dispatcher.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rafathanna/invento-app/internal/api"
	"github.com/rafathanna/invento-app/internal/config"
	"github.com/rafathanna/invento-app/internal/console"
	"github.com/rafathanna/invento-app/internal/core/apperror"
	"github.com/rafathanna/invento-app/internal/domain/catalogs/customer"
	"github.com/rafathanna/invento-app/internal/domain/catalogs/product"
	"github.com/rafathanna/invento-app/internal/domain/catalogs/supplier"
	"github.com/rafathanna/invento-app/internal/domain/catalogs/warehouse"
	"github.com/rafathanna/invento-app/internal/domain/documents/purchase"
	"github.com/rafathanna/invento-app/internal/domain/documents/sales"
	"github.com/rafathanna/invento-app/internal/domain/registers/stock"
	"github.com/rafathanna/invento-app/internal/domain/reports"
	"github.com/rafathanna/invento-app/internal/infrastructure/rest"
	"github.com/rafathanna/invento-app/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.Development,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := api.New(cfg, log)

	svc := console.Services{
		Customers:  customer.NewService(rest.NewCustomerRepo(client)),
		Suppliers:  supplier.NewService(rest.NewSupplierRepo(client)),
		Warehouses: warehouse.NewService(rest.NewWarehouseRepo(client)),
		Products:   product.NewService(rest.NewProductRepo(client)),
		Sales:      sales.NewService(rest.NewSalesInvoiceRepo(client)),
		Purchases:  purchase.NewService(rest.NewPurchaseInvoiceRepo(client)),
		Stock:      stock.NewService(rest.NewStockMovementRepo(client)),
		Reports:    reports.NewService(rest.NewReportsRepo(client)),
	}

	prefs := config.LoadPreferences()
	c := console.New(svc, &prefs, log)

	if err := c.Run(ctx, os.Args[1:]); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	if appErr, ok := apperror.AsAppError(err); ok {
		fmt.Fprintf(os.Stderr, "\033[31mError: %s\033[0m\n", appErr.FriendlyMessage())
		for _, detail := range appErr.ServerErrors {
			fmt.Fprintf(os.Stderr, "  - %s\n", detail)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "\033[31mError: %v\033[0m\n", err)
}
