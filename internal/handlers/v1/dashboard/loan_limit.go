package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fieldops-server/internal/aggregate"
	"github.com/carson-networks/fieldops-server/internal/handlers/v1/errmap"
	"github.com/carson-networks/fieldops-server/internal/logging"
)

type LoanLimitInput struct {
	MemberID string `path:"memberID" minLength:"1" doc:"Upstream member ID"`
}

// LoanLimit is the API response model for a member's borrowing capacity.
// Amounts are decimal strings.
type LoanLimit struct {
	MemberID    string `json:"memberId"`
	Savings     string `json:"savings"`
	Multiplier  string `json:"multiplier"`
	Outstanding string `json:"outstanding"`
	Limit       string `json:"limit"`
}

type LoanLimitOutput struct {
	Body LoanLimit
}

type loanLimitCalculator interface {
	MemberLoanLimit(ctx context.Context, memberID string) (aggregate.LoanLimit, error)
}

// LoanLimitHandler handles GET /v1/members/{memberID}/loan-limit.
type LoanLimitHandler struct {
	Dashboards loanLimitCalculator
}

func NewLoanLimitHandler(svc loanLimitCalculator) *LoanLimitHandler {
	return &LoanLimitHandler{Dashboards: svc}
}

func (h *LoanLimitHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "member-loan-limit",
		Method:      http.MethodGet,
		Path:        "/v1/members/{memberID}/loan-limit",
		Summary:     "Member loan limit",
		Description: "Savings times the branch multiplier, less the member's outstanding loan balances.",
		Tags:        []string{"Dashboards"},
	}, h.handle)
}

func (h *LoanLimitHandler) handle(ctx context.Context, input *LoanLimitInput) (*LoanLimitOutput, error) {
	logging.GetLogData(ctx).AddData("memberID", input.MemberID)

	limit, err := h.Dashboards.MemberLoanLimit(ctx, input.MemberID)
	if err != nil {
		return nil, errmap.ToHuma(err, "failed to compute loan limit")
	}

	return &LoanLimitOutput{Body: LoanLimit{
		MemberID:    limit.MemberID,
		Savings:     limit.Savings.StringFixed(2),
		Multiplier:  limit.Multiplier.String(),
		Outstanding: limit.Outstanding.StringFixed(2),
		Limit:       limit.Limit.StringFixed(2),
	}}, nil
}
