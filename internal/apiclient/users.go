package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/carson-networks/fieldops-server/internal/models"
)

type CreateUserInput struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role" validate:"required,oneof=admin branch_manager field_officer member"`
	Password    string `json:"password" validate:"required,min=8"`
}

type UpdateUserInput struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role,omitempty" validate:"omitempty,oneof=admin branch_manager field_officer member"`
}

func (c *Client) ListUsers(ctx context.Context, role string) ([]models.User, error) {
	endpoint := "/users"
	if role != "" {
		endpoint += "?" + url.Values{"role": {role}}.Encode()
	}
	return list[models.User](ctx, c, endpoint)
}

func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, "/users/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	var out models.User
	if err := c.send(ctx, http.MethodPost, "/users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*models.User, error) {
	var out models.User
	if err := c.send(ctx, http.MethodPut, "/users/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeactivateUser(ctx context.Context, id string) error {
	return c.patch(ctx, "/users/"+url.PathEscape(id)+"/deactivate", nil, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/users/"+url.PathEscape(id))
}
