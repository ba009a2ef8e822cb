package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fieldops-server/internal/handlers/v1/errmap"
	"github.com/carson-networks/fieldops-server/internal/logging"
)

// DownloadReportInput is the Huma input for downloading a tabular report.
type DownloadReportInput struct {
	Kind   string `path:"kind" enum:"groups,members,loans,transactions,suppliers,products,users,visits" doc:"Report kind"`
	Format string `query:"format" enum:"csv,json,xlsx,xls" default:"xlsx" doc:"File format; xls is the legacy HTML table"`
}

// DownloadReportHandler handles GET /v1/reports/{kind}.
type DownloadReportHandler struct {
	Reports reportRenderer
}

func NewDownloadReportHandler(svc reportRenderer) *DownloadReportHandler {
	return &DownloadReportHandler{Reports: svc}
}

func (h *DownloadReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "download-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/{kind}",
		Summary:     "Download report",
		Description: "Fetches the records for a report kind and returns them as a file attachment named {kind}-{date}.{ext}.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *DownloadReportHandler) handle(ctx context.Context, input *DownloadReportInput) (*FileOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("kind", input.Kind)
	logData.AddData("format", input.Format)

	stopTimer := logData.AddTiming("renderMs")
	file, err := h.Reports.Render(ctx, input.Kind, input.Format)
	stopTimer()
	if err != nil {
		return nil, errmap.ToHuma(err, "failed to render report")
	}
	logData.AddData("rows", file.Rows)

	return newFileOutput(file), nil
}
