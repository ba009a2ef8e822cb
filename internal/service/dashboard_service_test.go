package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fieldops-server/internal/apiclient"
	"github.com/carson-networks/fieldops-server/internal/models"
)

func newTestDashboardService(t *testing.T) (*DashboardService, *mockUpstream) {
	t.Helper()
	upstream := newMockUpstream(t)
	svc := NewDashboardService(upstream, decimal.NewFromInt(3))
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) }
	return svc, upstream
}

// -- FieldOfficer tests --

func TestFieldOfficer_Aggregates(t *testing.T) {
	svc, upstream := newTestDashboardService(t)

	upstream.On("FieldOfficerGroups", mock.Anything).Return([]models.Group{
		{Name: "Umoja", TotalMembers: 10, TotalSavings: "1000", RepaymentRate: 95},
		{Name: "Tujenge", TotalMembers: 5, TotalSavings: "500.50", RepaymentRate: 70},
	}, nil)
	upstream.On("FieldOfficerVisits", mock.Anything).Return([]models.Visit{
		{VisitDate: models.NewTimestamp(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))},
		{VisitDate: models.NewTimestamp(time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC))},
	}, nil)
	upstream.On("FieldOfficerLoans", mock.Anything).Return([]models.Loan{
		{Status: models.LoanStatusPending},
		{Status: models.LoanStatusActive},
	}, nil)

	stats, err := svc.FieldOfficer(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalGroups)
	assert.Equal(t, 15, stats.TotalMembers)
	assert.InDelta(t, 1500.50, stats.TotalSavings, 0.001)
	assert.InDelta(t, 82.5, stats.AverageRepaymentRate, 0.001)
	assert.Equal(t, 1, stats.VisitsThisMonth)
	assert.Equal(t, 1, stats.PendingLoans)
	assert.Equal(t, []string{"Tujenge"}, stats.AtRiskGroups)
}

func TestFieldOfficer_FirstErrorWins(t *testing.T) {
	svc, upstream := newTestDashboardService(t)

	upstream.On("FieldOfficerGroups", mock.Anything).Return(nil, errors.New("groups unavailable"))
	upstream.On("FieldOfficerVisits", mock.Anything).Return([]models.Visit{}, nil).Maybe()
	upstream.On("FieldOfficerLoans", mock.Anything).Return([]models.Loan{}, nil).Maybe()

	_, err := svc.FieldOfficer(context.Background())

	assert.EqualError(t, err, "groups unavailable")
}

// -- BranchManager tests --

func TestBranchManager_Aggregates(t *testing.T) {
	svc, upstream := newTestDashboardService(t)

	upstream.On("ListGroups", mock.Anything).Return([]models.Group{
		{TotalMembers: 8, TotalSavings: "2000"},
	}, nil)
	upstream.On("ListLoans", mock.Anything, apiclient.LoanFilter{}).Return([]models.Loan{
		{Status: models.LoanStatusActive, PrincipleAmount: "1000", OutstandingBalance: "400"},
		{Status: models.LoanStatusDefaulted, PrincipleAmount: "500", OutstandingBalance: "500"},
		{Status: models.LoanStatusPending, PrincipleAmount: "300"},
	}, nil)
	upstream.On("ListTransactions", mock.Anything, apiclient.TransactionFilter{}).Return([]models.Transaction{
		{TransactionType: models.TransactionTypeDeposit, Amount: "250", Status: models.TransactionStatusApproved},
		{TransactionType: models.TransactionTypeDeposit, Amount: "999", Status: models.TransactionStatusPending},
	}, nil)

	stats, err := svc.BranchManager(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalGroups)
	assert.Equal(t, 8, stats.TotalMembers)
	assert.Equal(t, 2, stats.ActiveLoans, "defaulted loans are still open")
	assert.Equal(t, 1, stats.DefaultedLoans)
	assert.Equal(t, 2, stats.PendingApprovals)
	assert.InDelta(t, 900, stats.TotalOutstanding, 0.001)
	assert.InDelta(t, 250, stats.DepositsTotal, 0.001)
}

// -- GroupMembers tests --

func TestGroupMembers_Summary(t *testing.T) {
	svc, upstream := newTestDashboardService(t)

	upstream.On("GroupMembers", mock.Anything, "grp-1").Return([]models.Member{
		{Status: models.MemberStatusActive, SavingsBalance: "100"},
		{Status: models.MemberStatusPending, SavingsBalance: ""},
	}, nil)

	stats, err := svc.GroupMembers(context.Background(), "grp-1")

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalMembers)
	assert.Equal(t, 1, stats.ActiveMembers)
	assert.Equal(t, 1, stats.PendingMembers)
	assert.InDelta(t, 100, stats.TotalSavings, 0.001)
}

// -- MemberLoanLimit tests --

func TestMemberLoanLimit(t *testing.T) {
	svc, upstream := newTestDashboardService(t)

	upstream.On("GetMember", mock.Anything, "mem-1").
		Return(&models.Member{ID: "mem-1", SavingsBalance: "1000"}, nil)
	upstream.On("MemberLoans", mock.Anything, "mem-1").Return([]models.Loan{
		{MemberID: "mem-1", Status: models.LoanStatusActive, OutstandingBalance: "1200"},
		{MemberID: "mem-1", Status: models.LoanStatusCompleted, OutstandingBalance: "900"},
	}, nil)

	limit, err := svc.MemberLoanLimit(context.Background(), "mem-1")

	require.NoError(t, err)
	assert.Equal(t, "mem-1", limit.MemberID)
	assert.True(t, limit.Limit.Equal(decimal.NewFromInt(1800)), limit.Limit.String())
}

func TestMemberLoanLimit_UpstreamError(t *testing.T) {
	svc, upstream := newTestDashboardService(t)

	upstream.On("GetMember", mock.Anything, "missing").
		Return(nil, &apiclient.APIError{Status: 404, Message: "Member not found"})
	upstream.On("MemberLoans", mock.Anything, "missing").Return([]models.Loan{}, nil).Maybe()

	_, err := svc.MemberLoanLimit(context.Background(), "missing")

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}
