package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/carson-networks/fieldops-server/internal/models"
)

const reportRule = "========================================"

// BranchReport renders the branch manager's plain-text report. Missing counts
// and totals print as 0 and missing collections print an empty-state line.
func BranchReport(stats models.BranchStats, now time.Time) []byte {
	var b strings.Builder

	name := stats.BranchName
	if name == "" {
		name = "Branch"
	}

	fmt.Fprintln(&b, reportRule)
	fmt.Fprintf(&b, "%s PERFORMANCE REPORT\n", strings.ToUpper(name))
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("1/2/2006 15:04"))
	fmt.Fprintln(&b, reportRule)

	section(&b, "SUMMARY")
	fmt.Fprintf(&b, "Total Groups: %d\n", intOrZero(stats.TotalGroups))
	fmt.Fprintf(&b, "Total Members: %d\n", intOrZero(stats.TotalMembers))
	fmt.Fprintf(&b, "Active Loans: %d\n", intOrZero(stats.ActiveLoans))
	fmt.Fprintf(&b, "Pending Approvals: %d\n", intOrZero(stats.PendingApprovals))

	portfolio := models.PortfolioTotals{}
	if stats.Portfolio != nil {
		portfolio = *stats.Portfolio
	}
	section(&b, "PORTFOLIO")
	fmt.Fprintf(&b, "Total Savings: KES %s\n", Currency(stringOrEmpty(portfolio.TotalSavings)))
	fmt.Fprintf(&b, "Total Disbursed: KES %s\n", Currency(stringOrEmpty(portfolio.TotalDisbursed)))
	fmt.Fprintf(&b, "Total Outstanding: KES %s\n", Currency(stringOrEmpty(portfolio.TotalOutstanding)))
	fmt.Fprintf(&b, "Repayment Rate: %s%%\n", Percent(floatOrZero(portfolio.RepaymentRate)))

	section(&b, "FIELD OFFICERS")
	if len(stats.Officers) == 0 {
		fmt.Fprintln(&b, "No field officers assigned.")
	}
	for _, o := range stats.Officers {
		fmt.Fprintf(&b, "- %s: %d groups, %d members, %s%% repayment\n",
			o.Name, o.GroupCount, o.MemberCount, Percent(o.RepaymentRate))
	}

	section(&b, "RECENT LOANS")
	if len(stats.RecentLoans) == 0 {
		fmt.Fprintln(&b, "No recent loans.")
	}
	for _, l := range stats.RecentLoans {
		member := l.MemberID
		if l.Member != nil {
			member = l.Member.DisplayName()
		}
		fmt.Fprintf(&b, "- %s | %s | KES %s | %s\n", l.LoanNumber, member, Currency(l.PrincipleAmount), l.Status)
	}

	section(&b, "RECENT TRANSACTIONS")
	if len(stats.RecentTransactions) == 0 {
		fmt.Fprintln(&b, "No recent transactions.")
	}
	for _, t := range stats.RecentTransactions {
		fmt.Fprintf(&b, "- %s | %s | KES %s | %s\n", Date(t.CreatedAt), t.TransactionType, Currency(t.Amount), t.Status)
	}

	return []byte(b.String())
}

// BranchReportFile wraps BranchReport as a downloadable text file.
func BranchReportFile(stats models.BranchStats, now time.Time) *File {
	return &File{
		Name:        FileName("branch-report", "txt", now),
		ContentType: "text/plain; charset=utf-8",
		Data:        BranchReport(stats, now),
	}
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
