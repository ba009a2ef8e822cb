package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/fieldops-server/internal/models"
)

// AtRiskRepaymentRate is the repayment rate below which a group is flagged on
// the field officer dashboard.
const AtRiskRepaymentRate = 80.0

// FieldOfficerStats is the headline row of the field officer dashboard.
type FieldOfficerStats struct {
	TotalGroups          int      `json:"totalGroups"`
	TotalMembers         int      `json:"totalMembers"`
	TotalSavings         float64  `json:"totalSavings"`
	TotalOutstanding     float64  `json:"totalOutstanding"`
	AverageRepaymentRate float64  `json:"averageRepaymentRate"`
	VisitsThisMonth      int      `json:"visitsThisMonth"`
	PendingLoans         int      `json:"pendingLoans"`
	AtRiskGroups         []string `json:"atRiskGroups"`
}

func FieldOfficerSummary(groups []models.Group, visits []models.Visit, loans []models.Loan, now time.Time) FieldOfficerStats {
	stats := FieldOfficerStats{
		TotalGroups:          len(groups),
		TotalSavings:         Sum(groups, func(g models.Group) string { return g.TotalSavings }),
		TotalOutstanding:     Sum(groups, func(g models.Group) string { return g.TotalLoansOutstanding }),
		AverageRepaymentRate: AverageRepaymentRate(groups),
		AtRiskGroups:         []string{},
	}

	for _, g := range groups {
		stats.TotalMembers += g.TotalMembers
		if g.RepaymentRate < AtRiskRepaymentRate {
			stats.AtRiskGroups = append(stats.AtRiskGroups, g.Name)
		}
	}

	year, month, _ := now.Date()
	stats.VisitsThisMonth = Count(visits, func(v models.Visit) bool {
		y, m, _ := v.VisitDate.Date()
		return !v.VisitDate.IsZero() && y == year && m == month
	})
	stats.PendingLoans = Count(loans, func(l models.Loan) bool { return l.Status == models.LoanStatusPending })

	return stats
}

// BranchManagerStats summarises the whole branch portfolio.
type BranchManagerStats struct {
	TotalGroups          int     `json:"totalGroups"`
	TotalMembers         int     `json:"totalMembers"`
	TotalSavings         float64 `json:"totalSavings"`
	TotalDisbursed       float64 `json:"totalDisbursed"`
	TotalOutstanding     float64 `json:"totalOutstanding"`
	CollectionRate       float64 `json:"collectionRate"`
	AverageRepaymentRate float64 `json:"averageRepaymentRate"`
	ActiveLoans          int     `json:"activeLoans"`
	DefaultedLoans       int     `json:"defaultedLoans"`
	PendingApprovals     int     `json:"pendingApprovals"`
	DepositsTotal        float64 `json:"depositsTotal"`
	RepaymentsTotal      float64 `json:"repaymentsTotal"`
	TransfersTotal       float64 `json:"transfersTotal"`
}

func BranchManagerSummary(groups []models.Group, loans []models.Loan, transactions []models.Transaction) BranchManagerStats {
	stats := BranchManagerStats{
		TotalGroups:          len(groups),
		TotalSavings:         Sum(groups, func(g models.Group) string { return g.TotalSavings }),
		AverageRepaymentRate: AverageRepaymentRate(groups),
	}
	for _, g := range groups {
		stats.TotalMembers += g.TotalMembers
	}

	disbursed := Filter(loans, func(l models.Loan) bool {
		return l.IsOpen() || l.Status == models.LoanStatusCompleted
	})
	open := Filter(loans, models.Loan.IsOpen)

	stats.TotalDisbursed = Sum(disbursed, func(l models.Loan) string { return l.PrincipleAmount })
	stats.TotalOutstanding = Sum(open, func(l models.Loan) string { return l.OutstandingBalance })
	stats.ActiveLoans = len(open)
	stats.DefaultedLoans = Count(loans, func(l models.Loan) bool { return l.Status == models.LoanStatusDefaulted })

	due := SumDecimal(disbursed, func(l models.Loan) string { return l.TotalAmount })
	unpaid := SumDecimal(disbursed, func(l models.Loan) string { return l.OutstandingBalance })
	stats.CollectionRate = Rate(due.Sub(unpaid).InexactFloat64(), due.InexactFloat64())

	pendingLoans := Count(loans, func(l models.Loan) bool { return l.Status == models.LoanStatusPending })
	pendingTx := Count(transactions, func(t models.Transaction) bool { return t.Status == models.TransactionStatusPending })
	stats.PendingApprovals = pendingLoans + pendingTx

	approved := Filter(transactions, func(t models.Transaction) bool { return t.Status == models.TransactionStatusApproved })
	stats.DepositsTotal = sumByType(approved, models.TransactionTypeDeposit)
	stats.RepaymentsTotal = sumByType(approved, models.TransactionTypeLoanRepayment)
	stats.TransfersTotal = sumByType(approved, models.TransactionTypeTransfer)

	return stats
}

func sumByType(transactions []models.Transaction, txType models.TransactionType) float64 {
	matching := Filter(transactions, func(t models.Transaction) bool { return t.TransactionType == txType })
	return Sum(matching, func(t models.Transaction) string { return t.Amount })
}

// GroupMembersStats backs the group members page.
type GroupMembersStats struct {
	TotalMembers     int     `json:"totalMembers"`
	ActiveMembers    int     `json:"activeMembers"`
	InactiveMembers  int     `json:"inactiveMembers"`
	PendingMembers   int     `json:"pendingMembers"`
	TotalSavings     float64 `json:"totalSavings"`
	TotalDrawdown    float64 `json:"totalDrawdown"`
	AverageRiskScore float64 `json:"averageRiskScore"`
}

func GroupMembersSummary(members []models.Member) GroupMembersStats {
	stats := GroupMembersStats{
		TotalMembers:  len(members),
		TotalSavings:  Sum(members, func(m models.Member) string { return m.SavingsBalance }),
		TotalDrawdown: Sum(members, func(m models.Member) string { return m.DrawdownBalance }),
	}

	risk := decimal.Zero
	for _, m := range members {
		switch m.Status {
		case models.MemberStatusActive:
			stats.ActiveMembers++
		case models.MemberStatusInactive:
			stats.InactiveMembers++
		case models.MemberStatusPending:
			stats.PendingMembers++
		}
		risk = risk.Add(decimal.NewFromFloat(m.RiskScore))
	}
	if len(members) > 0 {
		stats.AverageRiskScore = risk.Div(decimal.NewFromInt(int64(len(members)))).InexactFloat64()
	}

	return stats
}
