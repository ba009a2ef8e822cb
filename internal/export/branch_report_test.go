package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/fieldops-server/internal/models"
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestBranchReport_MissingFieldsDefault(t *testing.T) {
	now := time.Date(2025, 2, 3, 14, 5, 0, 0, time.UTC)

	out := string(BranchReport(models.BranchStats{}, now))

	assert.Contains(t, out, "BRANCH PERFORMANCE REPORT")
	assert.Contains(t, out, "Generated: 2/3/2025 14:05")
	assert.Contains(t, out, "Total Groups: 0\n")
	assert.Contains(t, out, "Pending Approvals: 0\n")
	assert.Contains(t, out, "Total Savings: KES 0\n")
	assert.Contains(t, out, "Repayment Rate: 0.0%\n")
	assert.Contains(t, out, "No field officers assigned.")
	assert.Contains(t, out, "No recent loans.")
	assert.Contains(t, out, "No recent transactions.")
}

func TestBranchReport_FullStats(t *testing.T) {
	stats := models.BranchStats{
		BranchName:  "Kisumu",
		TotalGroups: intPtr(14),
		ActiveLoans: intPtr(52),
		Portfolio: &models.PortfolioTotals{
			TotalSavings:  strPtr("1250000"),
			RepaymentRate: floatPtr(92.34),
		},
		Officers: []models.OfficerSummary{{Name: "Peter Mwangi", GroupCount: 4, MemberCount: 61, RepaymentRate: 95}},
		RecentLoans: []models.Loan{{
			LoanNumber:      "LN-100",
			PrincipleAmount: "20000",
			Status:          models.LoanStatusActive,
			Member:          &models.Member{MemberCode: "M-7", User: &models.User{FirstName: "Grace"}},
		}},
		RecentTransactions: []models.Transaction{{
			TransactionType: models.TransactionTypeDeposit,
			Amount:          "500",
			Status:          models.TransactionStatusApproved,
			CreatedAt:       models.NewTimestamp(time.Date(2025, 1, 30, 8, 0, 0, 0, time.UTC)),
		}},
	}

	out := string(BranchReport(stats, time.Now()))

	assert.Contains(t, out, "KISUMU PERFORMANCE REPORT")
	assert.Contains(t, out, "Total Groups: 14\n")
	assert.Contains(t, out, "Total Members: 0\n")
	assert.Contains(t, out, "Active Loans: 52\n")
	assert.Contains(t, out, "Total Savings: KES 1,250,000\n")
	assert.Contains(t, out, "Total Disbursed: KES 0\n")
	assert.Contains(t, out, "Repayment Rate: 92.3%\n")
	assert.Contains(t, out, "- Peter Mwangi: 4 groups, 61 members, 95.0% repayment\n")
	assert.Contains(t, out, "- LN-100 | Grace | KES 20,000 | active\n")
	assert.Contains(t, out, "- 1/30/2025 | deposit | KES 500 | approved\n")
	assert.NotContains(t, out, "No recent loans.")
}

func TestBranchReportFile(t *testing.T) {
	now := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)

	file := BranchReportFile(models.BranchStats{}, now)

	assert.Equal(t, "branch-report-2025-02-03.txt", file.Name)
	assert.Equal(t, "text/plain; charset=utf-8", file.ContentType)
	assert.NotEmpty(t, file.Data)
}
