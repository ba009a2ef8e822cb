package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fieldops-server/internal/aggregate"
	"github.com/carson-networks/fieldops-server/internal/handlers/v1/errmap"
	"github.com/carson-networks/fieldops-server/internal/logging"
)

// FieldOfficerOutput is the Huma output for the field officer dashboard.
type FieldOfficerOutput struct {
	Body aggregate.FieldOfficerStats
}

type fieldOfficerSummarizer interface {
	FieldOfficer(ctx context.Context) (aggregate.FieldOfficerStats, error)
}

// FieldOfficerHandler handles GET /v1/dashboard/field-officer.
type FieldOfficerHandler struct {
	Dashboards fieldOfficerSummarizer
}

func NewFieldOfficerHandler(svc fieldOfficerSummarizer) *FieldOfficerHandler {
	return &FieldOfficerHandler{Dashboards: svc}
}

func (h *FieldOfficerHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "field-officer-dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/field-officer",
		Summary:     "Field officer dashboard",
		Description: "Totals across the signed-in officer's groups, visits this month and pending loans.",
		Tags:        []string{"Dashboards"},
	}, h.handle)
}

func (h *FieldOfficerHandler) handle(ctx context.Context, _ *struct{}) (*FieldOfficerOutput, error) {
	stopTimer := logging.GetLogData(ctx).AddTiming("fieldOfficerMs")
	stats, err := h.Dashboards.FieldOfficer(ctx)
	stopTimer()
	if err != nil {
		return nil, errmap.ToHuma(err, "failed to build field officer dashboard")
	}
	logging.GetLogData(ctx).AddData("atRiskGroups", len(stats.AtRiskGroups))

	return &FieldOfficerOutput{Body: stats}, nil
}
