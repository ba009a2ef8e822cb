package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fieldops-server/internal/apiclient"
	"github.com/carson-networks/fieldops-server/internal/handlers/v1/errmap"
	"github.com/carson-networks/fieldops-server/internal/logging"
)

type LoginBody struct {
	Email    string `json:"email" required:"true" doc:"Upstream account email"`
	Password string `json:"password" required:"true" doc:"Upstream account password"`
}

type LoginInput struct {
	AdminInput
	Body LoginBody
}

type SessionOutput struct {
	Body SessionBody
}

// LoginHandler handles POST /v1/session/login.
type LoginHandler struct {
	Client sessionClient
	Admin  AdminToken
}

func NewLoginHandler(client sessionClient, admin AdminToken) *LoginHandler {
	return &LoginHandler{Client: client, Admin: admin}
}

func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/session/login",
		Summary:     "Sign in",
		Description: "Signs the server's service account in to the microfinance API. Requires the admin token.",
		Tags:        []string{"Session"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*SessionOutput, error) {
	if err := h.Admin.authorize(input.Authorization); err != nil {
		return nil, err
	}
	resp, err := h.Client.Login(ctx, apiclient.LoginInput{
		Email:    input.Body.Email,
		Password: input.Body.Password,
	})
	if err != nil {
		return nil, errmap.ToHuma(err, "failed to sign in")
	}
	logging.GetLogData(ctx).AddData("userID", resp.User.ID)

	user := resp.User
	return &SessionOutput{Body: SessionBody{Authenticated: true, User: &user}}, nil
}
