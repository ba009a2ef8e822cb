package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fieldops-server/internal/apiclient"
	"github.com/carson-networks/fieldops-server/internal/models"
	"github.com/carson-networks/fieldops-server/internal/session"
)

// SessionBody is the API response model for the stored upstream session.
// Tokens never leave the server.
type SessionBody struct {
	Authenticated bool         `json:"authenticated" doc:"True when a user is stored and the token has not expired"`
	User          *models.User `json:"user,omitempty" doc:"Signed-in user"`
}

type sessionClient interface {
	Login(ctx context.Context, in apiclient.LoginInput) (*apiclient.LoginResponse, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*session.Session, bool, error)
}

// AdminInput carries the admin credential every session operation requires.
type AdminInput struct {
	Authorization string `header:"Authorization" doc:"Bearer admin token"`
}

// AdminToken guards the session operations. The server holds one upstream
// service-account session used by every dashboard, report and scheduled
// export, so only an operator holding this token may replace, clear or read
// it. An empty token disables the operations.
type AdminToken string

func (a AdminToken) authorize(header string) error {
	if a == "" {
		return huma.Error403Forbidden("session management is disabled")
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(a)) != 1 {
		return huma.Error401Unauthorized("admin token required")
	}
	return nil
}
