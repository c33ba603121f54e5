package rest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rafathanna/invento-app/internal/api"
	"github.com/rafathanna/invento-app/internal/domain/catalogs/warehouse"
)

// WarehouseRepo implements warehouse.Repository.
type WarehouseRepo struct {
	client *api.Client
}

// NewWarehouseRepo creates a warehouse repository.
func NewWarehouseRepo(client *api.Client) *WarehouseRepo {
	return &WarehouseRepo{client: client}
}

func (r *WarehouseRepo) GetAll(ctx context.Context) ([]warehouse.Warehouse, error) {
	var out []warehouse.Warehouse
	if err := r.client.GetJSON(ctx, "/Warehouse/getAll", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *WarehouseRepo) GetByID(ctx context.Context, id int64) (*warehouse.Warehouse, error) {
	var out warehouse.Warehouse
	if err := r.client.GetJSON(ctx, fmt.Sprintf("/Warehouse/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *WarehouseRepo) Create(ctx context.Context, in warehouse.CreateWarehouse) (*warehouse.Warehouse, error) {
	var out warehouse.Warehouse
	if err := r.client.PostJSON(ctx, "/Warehouse/Create", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update goes out as a POST with a JSON body, unlike the other catalog edits.
func (r *WarehouseRepo) Update(ctx context.Context, in warehouse.EditWarehouse) (*warehouse.Warehouse, error) {
	var out warehouse.Warehouse
	if err := r.client.PostJSON(ctx, "/Warehouse/Edit", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *WarehouseRepo) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/Warehouse/delete/%d", id), nil)
}

func (r *WarehouseRepo) Search(ctx context.Context, name string) ([]warehouse.Warehouse, error) {
	var out []warehouse.Warehouse
	query := url.Values{"name": {name}}
	if err := r.client.GetJSON(ctx, "/Warehouse/search", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ warehouse.Repository = (*WarehouseRepo)(nil)
