package models

// BranchStats is the payload of the branch manager stats endpoint. Every field
// is optional upstream, so numbers are pointers and collections may be nil.
type BranchStats struct {
	BranchName         string           `json:"branchName,omitempty"`
	TotalGroups        *int             `json:"totalGroups,omitempty"`
	TotalMembers       *int             `json:"totalMembers,omitempty"`
	ActiveLoans        *int             `json:"activeLoans,omitempty"`
	PendingApprovals   *int             `json:"pendingApprovals,omitempty"`
	Portfolio          *PortfolioTotals `json:"portfolio,omitempty"`
	Officers           []OfficerSummary `json:"officers,omitempty"`
	RecentLoans        []Loan           `json:"recentLoans,omitempty"`
	RecentTransactions []Transaction    `json:"recentTransactions,omitempty"`
}

type PortfolioTotals struct {
	TotalSavings     *string  `json:"totalSavings,omitempty"`
	TotalDisbursed   *string  `json:"totalDisbursed,omitempty"`
	TotalOutstanding *string  `json:"totalOutstanding,omitempty"`
	RepaymentRate    *float64 `json:"repaymentRate,omitempty"`
}

type OfficerSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	GroupCount    int     `json:"groupCount"`
	MemberCount   int     `json:"memberCount"`
	RepaymentRate float64 `json:"repaymentRate"`
}
