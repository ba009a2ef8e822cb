package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fieldops-server/internal/aggregate"
	"github.com/carson-networks/fieldops-server/internal/handlers/v1/errmap"
	"github.com/carson-networks/fieldops-server/internal/logging"
)

type GroupSummaryInput struct {
	GroupID string `path:"groupID" minLength:"1" doc:"Upstream group ID"`
}

type GroupSummaryOutput struct {
	Body aggregate.GroupMembersStats
}

type groupSummarizer interface {
	GroupMembers(ctx context.Context, groupID string) (aggregate.GroupMembersStats, error)
}

// GroupSummaryHandler handles GET /v1/groups/{groupID}/summary.
type GroupSummaryHandler struct {
	Dashboards groupSummarizer
}

func NewGroupSummaryHandler(svc groupSummarizer) *GroupSummaryHandler {
	return &GroupSummaryHandler{Dashboards: svc}
}

func (h *GroupSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "group-summary",
		Method:      http.MethodGet,
		Path:        "/v1/groups/{groupID}/summary",
		Summary:     "Group member summary",
		Description: "Member counts by status plus savings and drawdown totals for one group.",
		Tags:        []string{"Dashboards"},
	}, h.handle)
}

func (h *GroupSummaryHandler) handle(ctx context.Context, input *GroupSummaryInput) (*GroupSummaryOutput, error) {
	logging.GetLogData(ctx).AddData("groupID", input.GroupID)

	stats, err := h.Dashboards.GroupMembers(ctx, input.GroupID)
	if err != nil {
		return nil, errmap.ToHuma(err, "failed to summarise group")
	}

	return &GroupSummaryOutput{Body: stats}, nil
}
