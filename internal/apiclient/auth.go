package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/carson-networks/fieldops-server/internal/models"
	"github.com/carson-networks/fieldops-server/internal/session"
)

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User         models.User `json:"user"`
	Token        string      `json:"token,omitempty"`
	RefreshToken string      `json:"refreshToken,omitempty"`
}

type RegisterInput struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required,min=8"`
	Role        string `json:"role,omitempty"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,nefield=CurrentPassword"`
}

// Login signs in and stores the returned user and tokens in the session store.
func (c *Client) Login(ctx context.Context, in LoginInput) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.send(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return nil, err
	}

	s := &session.Session{
		User:         &out.User,
		AuthToken:    out.Token,
		RefreshToken: out.RefreshToken,
	}
	if err := c.sessions.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &out, nil
}

// Logout ends the upstream session. The local session is cleared even when the
// upstream call fails.
func (c *Client) Logout(ctx context.Context) error {
	upstreamErr := c.post(ctx, "/auth/logout", nil, nil)
	if err := c.sessions.Clear(ctx); err != nil {
		return errors.Join(upstreamErr, fmt.Errorf("clear session: %w", err))
	}
	return upstreamErr
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	var out models.User
	if err := c.send(ctx, http.MethodPost, "/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, "/auth/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, in ChangePasswordInput) error {
	return c.send(ctx, http.MethodPost, "/auth/change-password", in, nil)
}

// Session returns the stored session and whether it is still usable.
func (c *Client) Session(ctx context.Context) (*session.Session, bool, error) {
	s, err := c.sessions.Load(ctx)
	if errors.Is(err, session.ErrNoSession) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return s, s.Authenticated(c.now()), nil
}
