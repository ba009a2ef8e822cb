package exports

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fieldops-server/internal/logging"
	"github.com/carson-networks/fieldops-server/internal/service"
)

// ListExportsCursor represents a pagination cursor in request and response bodies.
// It bundles position, limit, maxCreationTime and the kind filter so
// subsequent pages use consistent parameters.
type ListExportsCursor struct {
	Position        int    `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit           int    `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
	MaxCreationTime string `json:"maxCreationTime" format:"date-time" doc:"Upper bound on created_at locked in from the first page"`
	Kind            string `json:"kind,omitempty" doc:"Kind filter locked in from the first page"`
}

// ListExportsBody is the request body for listing exports.
type ListExportsBody struct {
	Kind   string             `json:"kind,omitempty" doc:"Only list exports of this report kind"`
	Cursor *ListExportsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

type ListExportsInput struct {
	Body ListExportsBody
}

type ListExportsResponseBody struct {
	Exports    []Export           `json:"exports" doc:"Page of exports, newest first"`
	NextCursor *ListExportsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

type ListExportsOutput struct {
	Body ListExportsResponseBody
}

type exportLister interface {
	ListExports(ctx context.Context, kind string, cursor *service.ExportCursor) ([]service.Export, *service.ExportCursor, error)
}

// ListExportsHandler handles POST /v1/exports/list.
type ListExportsHandler struct {
	Exports exportLister
}

func NewListExportsHandler(svc exportLister) *ListExportsHandler {
	return &ListExportsHandler{Exports: svc}
}

func (h *ListExportsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-exports",
		Method:      http.MethodPost,
		Path:        "/v1/exports/list",
		Summary:     "List exports",
		Description: "Returns a paginated list of export ledger entries using cursor-based pagination.",
		Tags:        []string{"Exports"},
	}, h.handle)
}

// parseListExportsInput parses the cursor. Without one, the service uses its
// default limit.
func parseListExportsInput(input *ListExportsInput) (*service.ExportCursor, error) {
	if input.Body.Cursor == nil {
		return nil, nil
	}

	if input.Body.Cursor.Position < 0 {
		return nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
	}

	maxCreationTime, err := time.Parse(time.RFC3339, input.Body.Cursor.MaxCreationTime)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid cursor maxCreationTime", err)
	}

	return &service.ExportCursor{
		Position:        input.Body.Cursor.Position,
		Limit:           input.Body.Cursor.Limit,
		MaxCreationTime: maxCreationTime,
		Kind:            input.Body.Cursor.Kind,
	}, nil
}

func (h *ListExportsHandler) handle(ctx context.Context, input *ListExportsInput) (*ListExportsOutput, error) {
	logData := logging.GetLogData(ctx)
	requestCursor, err := parseListExportsInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("listExportsMs")
	exports, nextCursor, err := h.Exports.ListExports(ctx, input.Body.Kind, requestCursor)
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list exports", err)
	}
	logData.AddData("exportCount", len(exports))

	resp := ListExportsResponseBody{
		Exports: make([]Export, len(exports)),
	}
	for i, e := range exports {
		resp.Exports[i] = exportFromService(e)
	}

	if nextCursor != nil {
		resp.NextCursor = &ListExportsCursor{
			Position:        nextCursor.Position,
			Limit:           nextCursor.Limit,
			MaxCreationTime: nextCursor.MaxCreationTime.Format(time.RFC3339),
			Kind:            nextCursor.Kind,
		}
	}

	return &ListExportsOutput{Body: resp}, nil
}
