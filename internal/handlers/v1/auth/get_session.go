package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fieldops-server/internal/handlers/v1/errmap"
)

// GetSessionHandler handles GET /v1/session.
type GetSessionHandler struct {
	Client sessionClient
	Admin  AdminToken
}

func NewGetSessionHandler(client sessionClient, admin AdminToken) *GetSessionHandler {
	return &GetSessionHandler{Client: client, Admin: admin}
}

func (h *GetSessionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-session",
		Method:      http.MethodGet,
		Path:        "/v1/session",
		Summary:     "Current session",
		Description: "Reports whether a usable service-account session is stored. Requires the admin token.",
		Tags:        []string{"Session"},
	}, h.handle)
}

func (h *GetSessionHandler) handle(ctx context.Context, input *AdminInput) (*SessionOutput, error) {
	if err := h.Admin.authorize(input.Authorization); err != nil {
		return nil, err
	}
	s, ok, err := h.Client.Session(ctx)
	if err != nil {
		return nil, errmap.ToHuma(err, "failed to load session")
	}
	if s == nil {
		return &SessionOutput{}, nil
	}
	return &SessionOutput{Body: SessionBody{Authenticated: ok, User: s.User}}, nil
}
