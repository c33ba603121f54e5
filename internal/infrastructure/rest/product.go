package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rafathanna/invento-app/internal/api"
	"github.com/rafathanna/invento-app/internal/domain/catalogs/product"
)

// ProductRepo implements product.Repository.
type ProductRepo struct {
	client *api.Client
}

// NewProductRepo creates a product repository.
func NewProductRepo(client *api.Client) *ProductRepo {
	return &ProductRepo{client: client}
}

func (r *ProductRepo) GetAll(ctx context.Context) ([]product.Product, error) {
	var out []product.Product
	if err := r.client.GetJSON(ctx, "/Products/getAll", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	var out product.Product
	if err := r.client.GetJSON(ctx, fmt.Sprintf("/Products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ProductRepo) GetByWarehouse(ctx context.Context, warehouseID int64) ([]product.Product, error) {
	var out []product.Product
	query := url.Values{"WarehouseId": {strconv.FormatInt(warehouseID, 10)}}
	if err := r.client.GetJSON(ctx, "/Products/GetProductsByWarehouse", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create builds a multipart form so the optional image travels with the
// fields. Empty optionals stay out of the form entirely.
func (r *ProductRepo) Create(ctx context.Context, in product.CreateProduct) error {
	fields := map[string]string{"Name": in.Name}
	putIfSet(fields, "SKU", in.SKU)
	putIfSet(fields, "Description", in.Description)
	if in.Price > 0 {
		fields["Price"] = strconv.FormatFloat(in.Price, 'f', -1, 64)
	}
	if in.Threshold > 0 {
		fields["Threshold"] = strconv.FormatFloat(in.Threshold, 'f', -1, 64)
	}
	putIfSet(fields, "ProductionDate", in.ProductionDate)
	putIfSet(fields, "ExpirationDate", in.ExpirationDate)
	if in.WarehouseID > 0 {
		fields["WarehouseId"] = strconv.FormatInt(in.WarehouseID, 10)
	}
	if in.Quantity > 0 {
		fields["Quantity"] = strconv.FormatFloat(in.Quantity, 'f', -1, 64)
	}

	return r.client.PostMultipart(ctx, "/Products/Create", fields, imageUpload(in.Image), nil)
}

func (r *ProductRepo) Update(ctx context.Context, in product.EditProduct) error {
	fields := map[string]string{
		"Id":   strconv.FormatInt(in.ID, 10),
		"Name": in.Name,
	}
	putIfSet(fields, "SKU", in.SKU)
	putIfSet(fields, "Description", in.Description)
	fields["Price"] = strconv.FormatFloat(in.Price, 'f', -1, 64)
	fields["Threshold"] = strconv.FormatFloat(in.Threshold, 'f', -1, 64)
	putIfSet(fields, "ProductionDate", in.ProductionDate)
	putIfSet(fields, "ExpirationDate", in.ExpirationDate)

	return r.client.PutMultipart(ctx, "/Products/Edit", fields, imageUpload(in.Image), nil)
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/Products/delete/%d", id), nil)
}

func (r *ProductRepo) Search(ctx context.Context, term string) ([]product.Product, error) {
	var out []product.Product
	query := url.Values{"search": {term}}
	if err := r.client.GetJSON(ctx, "/Products/search", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProductRepo) AddToWarehouse(ctx context.Context, link product.StockLink) error {
	return r.client.PostJSON(ctx, "/ProductWarehouse/Create", link, nil)
}

// UpdateWarehouseQuantity sends the tuple as query parameters.
func (r *ProductRepo) UpdateWarehouseQuantity(ctx context.Context, link product.StockLink) error {
	query := url.Values{
		"ProductId":   {strconv.FormatInt(link.ProductID, 10)},
		"WarehouseId": {strconv.FormatInt(link.WarehouseID, 10)},
		"Quantity":    {strconv.FormatFloat(link.Quantity, 'f', -1, 64)},
	}
	return r.client.PutQuery(ctx, "/ProductWarehouse/Edit", query, nil)
}

func putIfSet(fields map[string]string, key, value string) {
	if value != "" {
		fields[key] = value
	}
}

// imageUpload maps the optional product image onto the multipart file part.
// The field name ImageUrl is what the server expects for the binary.
func imageUpload(img *product.Image) *api.FileUpload {
	if img == nil {
		return nil
	}
	return &api.FileUpload{
		Field:    "ImageUrl",
		Filename: img.Filename,
		Content:  img.Content,
	}
}

var _ product.Repository = (*ProductRepo)(nil)
