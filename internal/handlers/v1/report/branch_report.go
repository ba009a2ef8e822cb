package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fieldops-server/internal/handlers/v1/errmap"
)

// BranchReportHandler handles GET /v1/reports/branch.
type BranchReportHandler struct {
	Reports branchReporter
}

func NewBranchReportHandler(svc branchReporter) *BranchReportHandler {
	return &BranchReportHandler{Reports: svc}
}

func (h *BranchReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "download-branch-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/branch",
		Summary:     "Download branch report",
		Description: "Plain-text branch performance report built from the branch manager stats.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *BranchReportHandler) handle(ctx context.Context, _ *struct{}) (*FileOutput, error) {
	file, err := h.Reports.BranchReport(ctx)
	if err != nil {
		return nil, errmap.ToHuma(err, "failed to build branch report")
	}
	return newFileOutput(file), nil
}
