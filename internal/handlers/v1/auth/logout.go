package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fieldops-server/internal/handlers/v1/errmap"
)

// LogoutHandler handles POST /v1/session/logout.
type LogoutHandler struct {
	Client sessionClient
	Admin  AdminToken
}

func NewLogoutHandler(client sessionClient, admin AdminToken) *LogoutHandler {
	return &LogoutHandler{Client: client, Admin: admin}
}

func (h *LogoutHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "logout",
		Method:        http.MethodPost,
		Path:          "/v1/session/logout",
		Summary:       "Sign out",
		Description:   "Ends the service-account session. The stored session is cleared even when the upstream call fails. Requires the admin token.",
		Tags:          []string{"Session"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *LogoutHandler) handle(ctx context.Context, input *AdminInput) (*struct{}, error) {
	if err := h.Admin.authorize(input.Authorization); err != nil {
		return nil, err
	}
	if err := h.Client.Logout(ctx); err != nil {
		return nil, errmap.ToHuma(err, "failed to sign out")
	}
	return nil, nil
}
