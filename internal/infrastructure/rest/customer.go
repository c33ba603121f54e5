// Package rest implements the domain repository interfaces against the
// InventoPro REST API. Each repo is a thin pass-through: endpoint paths and
// the handful of encoding quirks live here, nothing else.
package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rafathanna/invento-app/internal/api"
	"github.com/rafathanna/invento-app/internal/domain/catalogs/customer"
)

// CustomerRepo implements customer.Repository.
type CustomerRepo struct {
	client *api.Client
}

// NewCustomerRepo creates a customer repository.
func NewCustomerRepo(client *api.Client) *CustomerRepo {
	return &CustomerRepo{client: client}
}

func (r *CustomerRepo) GetAll(ctx context.Context) ([]customer.Customer, error) {
	var out []customer.Customer
	if err := r.client.GetJSON(ctx, "/Customer/getAll", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*customer.Customer, error) {
	var out customer.Customer
	if err := r.client.GetJSON(ctx, fmt.Sprintf("/Customer/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CustomerRepo) Create(ctx context.Context, in customer.CreateCustomer) (*customer.Customer, error) {
	var out customer.Customer
	if err := r.client.PostJSON(ctx, "/Customer/Create", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update sends fields as query parameters; the edit endpoint takes no body.
func (r *CustomerRepo) Update(ctx context.Context, in customer.EditCustomer) (*customer.Customer, error) {
	query := url.Values{
		"Id":      {strconv.FormatInt(in.ID, 10)},
		"Name":    {in.Name},
		"Phone":   {in.Phone},
		"Email":   {in.Email},
		"Address": {in.Address},
	}
	var out customer.Customer
	if err := r.client.PutQuery(ctx, "/Customer/Edit", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/Customer/delete/%d", id), nil)
}

func (r *CustomerRepo) Search(ctx context.Context, term string) ([]customer.Customer, error) {
	var out []customer.Customer
	query := url.Values{"search": {term}}
	if err := r.client.GetJSON(ctx, "/Customer/search", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ customer.Repository = (*CustomerRepo)(nil)
