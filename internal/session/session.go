// Package session keeps the signed-in user and their tokens between calls to
// the upstream API.
package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/carson-networks/fieldops-server/internal/models"
)

var ErrNoSession = errors.New("no session")

type Session struct {
	User         *models.User `json:"user,omitempty"`
	AuthToken    string       `json:"authToken,omitempty"`
	RefreshToken string       `json:"refreshToken,omitempty"`
}

// Authenticated reports whether the session has a user and, when it carries a
// bearer token, that the token has not expired.
func (s *Session) Authenticated(now time.Time) bool {
	if s == nil || s.User == nil {
		return false
	}
	return s.AuthToken == "" || !IsTokenExpired(s.AuthToken, now)
}

// Store persists a single session.
type Store interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}

// IsTokenExpired decodes the payload of a JWT and compares its exp claim
// with now. The signature is not checked. Anything that cannot be read as a
// token with an exp claim counts as expired.
func IsTokenExpired(token string, now time.Time) bool {
	exp, ok := tokenExpiry(token)
	if !ok {
		return true
	}
	return exp.Before(now)
}

func tokenExpiry(token string) (time.Time, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	segment := strings.TrimRight(parts[1], "=")
	payload, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		if payload, err = base64.RawStdEncoding.DecodeString(segment); err != nil {
			return time.Time{}, false
		}
	}

	var claims struct {
		Exp *json.Number `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil || claims.Exp == nil {
		return time.Time{}, false
	}
	exp, err := claims.Exp.Float64()
	if err != nil {
		return time.Time{}, false
	}

	return time.Unix(0, int64(exp*float64(time.Second))), true
}
