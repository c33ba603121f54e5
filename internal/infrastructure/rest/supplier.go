package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rafathanna/invento-app/internal/api"
	"github.com/rafathanna/invento-app/internal/domain/catalogs/supplier"
)

// SupplierRepo implements supplier.Repository.
type SupplierRepo struct {
	client *api.Client
}

// NewSupplierRepo creates a supplier repository.
func NewSupplierRepo(client *api.Client) *SupplierRepo {
	return &SupplierRepo{client: client}
}

func (r *SupplierRepo) GetAll(ctx context.Context) ([]supplier.Supplier, error) {
	var out []supplier.Supplier
	if err := r.client.GetJSON(ctx, "/Supplier/getAll", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*supplier.Supplier, error) {
	var out supplier.Supplier
	if err := r.client.GetJSON(ctx, fmt.Sprintf("/Supplier/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *SupplierRepo) Create(ctx context.Context, in supplier.CreateSupplier) (*supplier.Supplier, error) {
	var out supplier.Supplier
	if err := r.client.PostJSON(ctx, "/Supplier/Create", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update sends fields as query parameters, same quirk as Customer/Edit.
func (r *SupplierRepo) Update(ctx context.Context, in supplier.EditSupplier) (*supplier.Supplier, error) {
	query := url.Values{
		"Id":      {strconv.FormatInt(in.ID, 10)},
		"Name":    {in.Name},
		"Phone":   {in.Phone},
		"Email":   {in.Email},
		"Address": {in.Address},
	}
	var out supplier.Supplier
	if err := r.client.PutQuery(ctx, "/Supplier/Edit", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/Supplier/delete/%d", id), nil)
}

func (r *SupplierRepo) Search(ctx context.Context, term string) ([]supplier.Supplier, error) {
	var out []supplier.Supplier
	query := url.Values{"search": {term}}
	if err := r.client.GetJSON(ctx, "/Supplier/search", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ supplier.Repository = (*SupplierRepo)(nil)
