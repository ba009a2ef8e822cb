package exports

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fieldops-server/internal/handlers/v1/errmap"
	"github.com/carson-networks/fieldops-server/internal/logging"
	"github.com/carson-networks/fieldops-server/internal/service"
)

// RequestExportBody is the request body for queueing an export.
type RequestExportBody struct {
	Kind        string `json:"kind" required:"true" enum:"groups,members,loans,transactions,suppliers,products,users,visits,branch" doc:"Report kind"`
	Format      string `json:"format,omitempty" enum:"csv,json,xlsx,xls" doc:"File format, defaults to xlsx; ignored for branch"`
	Destination string `json:"destination,omitempty" doc:"Sink name, defaults to local"`
	Wait        bool   `json:"wait,omitempty" doc:"Block until the file has been written"`
}

type RequestExportInput struct {
	Body RequestExportBody
}

type RequestExportOutput struct {
	Status int
	Body   Export
}

type exportRequester interface {
	RequestExport(ctx context.Context, req service.ExportRequest) (*service.Export, error)
}

// RequestExportHandler handles POST /v1/exports.
type RequestExportHandler struct {
	Exports exportRequester
}

func NewRequestExportHandler(svc exportRequester) *RequestExportHandler {
	return &RequestExportHandler{Exports: svc}
}

func (h *RequestExportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "request-export",
		Method:        http.MethodPost,
		Path:          "/v1/exports",
		Summary:       "Request export",
		Description:   "Records an export on the ledger and queues it. Returns 202 with the pending entry, or 201 with the finished entry when wait is set.",
		Tags:          []string{"Exports"},
		DefaultStatus: http.StatusAccepted,
	}, h.handle)
}

func (h *RequestExportHandler) handle(ctx context.Context, input *RequestExportInput) (*RequestExportOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("kind", input.Body.Kind)

	exp, err := h.Exports.RequestExport(ctx, service.ExportRequest{
		Kind:        input.Body.Kind,
		Format:      input.Body.Format,
		Destination: input.Body.Destination,
		Trigger:     service.TriggerRequest,
		Wait:        input.Body.Wait,
	})
	if err != nil {
		return nil, errmap.ToHuma(err, "failed to request export")
	}
	logData.AddData("exportID", exp.ID.String())

	status := http.StatusAccepted
	if input.Body.Wait {
		status = http.StatusCreated
	}
	return &RequestExportOutput{Status: status, Body: exportFromService(*exp)}, nil
}
