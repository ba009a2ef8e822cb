package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/fieldops-server/internal/aggregate"
	"github.com/carson-networks/fieldops-server/internal/apiclient"
	"github.com/carson-networks/fieldops-server/internal/models"
)

// DashboardService fans out to the upstream API and folds the results into
// the dashboard summaries.
type DashboardService struct {
	upstream   Upstream
	multiplier decimal.Decimal
	now        func() time.Time
}

func NewDashboardService(upstream Upstream, loanLimitMultiplier decimal.Decimal) *DashboardService {
	return &DashboardService{
		upstream:   upstream,
		multiplier: loanLimitMultiplier,
		now:        time.Now,
	}
}

func (s *DashboardService) FieldOfficer(ctx context.Context) (aggregate.FieldOfficerStats, error) {
	var (
		groups []models.Group
		visits []models.Visit
		loans  []models.Loan
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		groups, err = s.upstream.FieldOfficerGroups(gctx)
		return err
	})
	g.Go(func() (err error) {
		visits, err = s.upstream.FieldOfficerVisits(gctx)
		return err
	})
	g.Go(func() (err error) {
		loans, err = s.upstream.FieldOfficerLoans(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return aggregate.FieldOfficerStats{}, err
	}

	return aggregate.FieldOfficerSummary(groups, visits, loans, s.now()), nil
}

func (s *DashboardService) BranchManager(ctx context.Context) (aggregate.BranchManagerStats, error) {
	var (
		groups       []models.Group
		loans        []models.Loan
		transactions []models.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		groups, err = s.upstream.ListGroups(gctx)
		return err
	})
	g.Go(func() (err error) {
		loans, err = s.upstream.ListLoans(gctx, apiclient.LoanFilter{})
		return err
	})
	g.Go(func() (err error) {
		transactions, err = s.upstream.ListTransactions(gctx, apiclient.TransactionFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return aggregate.BranchManagerStats{}, err
	}

	return aggregate.BranchManagerSummary(groups, loans, transactions), nil
}

func (s *DashboardService) GroupMembers(ctx context.Context, groupID string) (aggregate.GroupMembersStats, error) {
	members, err := s.upstream.GroupMembers(ctx, groupID)
	if err != nil {
		return aggregate.GroupMembersStats{}, err
	}
	return aggregate.GroupMembersSummary(members), nil
}

// MemberLoanLimit computes how much more a member may borrow.
func (s *DashboardService) MemberLoanLimit(ctx context.Context, memberID string) (aggregate.LoanLimit, error) {
	var (
		member *models.Member
		loans  []models.Loan
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		member, err = s.upstream.GetMember(gctx, memberID)
		return err
	})
	g.Go(func() (err error) {
		loans, err = s.upstream.MemberLoans(gctx, memberID)
		return err
	})
	if err := g.Wait(); err != nil {
		return aggregate.LoanLimit{}, err
	}
	if member == nil {
		member = &models.Member{ID: memberID}
	}

	return aggregate.MemberLoanLimit(*member, loans, s.multiplier), nil
}
