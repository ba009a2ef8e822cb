package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fieldops-server/internal/aggregate"
	"github.com/carson-networks/fieldops-server/internal/handlers/v1/errmap"
	"github.com/carson-networks/fieldops-server/internal/logging"
)

type BranchManagerOutput struct {
	Body aggregate.BranchManagerStats
}

type branchManagerSummarizer interface {
	BranchManager(ctx context.Context) (aggregate.BranchManagerStats, error)
}

// BranchManagerHandler handles GET /v1/dashboard/branch-manager.
type BranchManagerHandler struct {
	Dashboards branchManagerSummarizer
}

func NewBranchManagerHandler(svc branchManagerSummarizer) *BranchManagerHandler {
	return &BranchManagerHandler{Dashboards: svc}
}

func (h *BranchManagerHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "branch-manager-dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/branch-manager",
		Summary:     "Branch manager dashboard",
		Description: "Portfolio totals, collection rate and pending approvals for the branch.",
		Tags:        []string{"Dashboards"},
	}, h.handle)
}

func (h *BranchManagerHandler) handle(ctx context.Context, _ *struct{}) (*BranchManagerOutput, error) {
	stopTimer := logging.GetLogData(ctx).AddTiming("branchManagerMs")
	stats, err := h.Dashboards.BranchManager(ctx)
	stopTimer()
	if err != nil {
		return nil, errmap.ToHuma(err, "failed to build branch manager dashboard")
	}

	return &BranchManagerOutput{Body: stats}, nil
}
