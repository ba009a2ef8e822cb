package exports

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fieldops-server/internal/handlers/v1/errmap"
	"github.com/carson-networks/fieldops-server/internal/service"
)

type GetExportInput struct {
	ID string `path:"id" format:"uuid" doc:"Export UUID"`
}

type GetExportOutput struct {
	Body Export
}

type exportGetter interface {
	GetExport(ctx context.Context, id uuid.UUID) (*service.Export, error)
}

// GetExportHandler handles GET /v1/exports/{id}.
type GetExportHandler struct {
	Exports exportGetter
}

func NewGetExportHandler(svc exportGetter) *GetExportHandler {
	return &GetExportHandler{Exports: svc}
}

func (h *GetExportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-export",
		Method:      http.MethodGet,
		Path:        "/v1/exports/{id}",
		Summary:     "Get export",
		Description: "Returns one export ledger entry.",
		Tags:        []string{"Exports"},
	}, h.handle)
}

func (h *GetExportHandler) handle(ctx context.Context, input *GetExportInput) (*GetExportOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	exp, err := h.Exports.GetExport(ctx, id)
	if err != nil {
		return nil, errmap.ToHuma(err, "failed to get export")
	}
	return &GetExportOutput{Body: exportFromService(*exp)}, nil
}
