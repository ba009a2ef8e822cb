package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/carson-networks/fieldops-server/internal/models"
)

type SupplierInput struct {
	Name        string `json:"name" validate:"required"`
	ContactName string `json:"contactName,omitempty"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Location    string `json:"location,omitempty"`
}

type ProductInput struct {
	Name       string `json:"name" validate:"required"`
	Category   string `json:"category,omitempty"`
	Price      string `json:"price" validate:"required,numeric"`
	SupplierID string `json:"supplierId" validate:"required"`
	Stock      int    `json:"stock" validate:"gte=0"`
}

func (c *Client) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return list[models.Supplier](ctx, c, "/suppliers")
}

func (c *Client) GetSupplier(ctx context.Context, id string) (*models.Supplier, error) {
	var out models.Supplier
	if err := c.get(ctx, "/suppliers/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSupplier(ctx context.Context, in SupplierInput) (*models.Supplier, error) {
	var out models.Supplier
	if err := c.send(ctx, http.MethodPost, "/suppliers", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SupplierProducts(ctx context.Context, supplierID string) ([]models.Product, error) {
	return list[models.Product](ctx, c, "/suppliers/"+url.PathEscape(supplierID)+"/products")
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	return list[models.Product](ctx, c, "/products")
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	var out models.Product
	if err := c.send(ctx, http.MethodPost, "/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.delete(ctx, "/products/"+url.PathEscape(id))
}
