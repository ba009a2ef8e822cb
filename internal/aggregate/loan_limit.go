package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/fieldops-server/internal/models"
)

// DefaultLoanLimitMultiplier is how many times their savings a member may borrow.
var DefaultLoanLimitMultiplier = decimal.NewFromInt(3)

// LoanLimit is the breakdown shown next to a member's borrowing capacity.
type LoanLimit struct {
	MemberID    string          `json:"memberId"`
	Savings     decimal.Decimal `json:"savings"`
	Multiplier  decimal.Decimal `json:"multiplier"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Limit       decimal.Decimal `json:"limit"`
}

// MemberLoanLimit computes savings x multiplier minus the outstanding balance of
// the member's open loans, floored at zero. Loans belonging to other members
// are ignored. A non-positive multiplier falls back to the default.
func MemberLoanLimit(member models.Member, loans []models.Loan, multiplier decimal.Decimal) LoanLimit {
	if !multiplier.IsPositive() {
		multiplier = DefaultLoanLimitMultiplier
	}

	open := Filter(loans, func(l models.Loan) bool {
		return l.IsOpen() && (l.MemberID == "" || l.MemberID == member.ID)
	})
	savings := ParseAmount(member.SavingsBalance)
	outstanding := SumDecimal(open, func(l models.Loan) string { return l.OutstandingBalance })

	limit := savings.Mul(multiplier).Sub(outstanding)
	if limit.IsNegative() {
		limit = decimal.Zero
	}

	return LoanLimit{
		MemberID:    member.ID,
		Savings:     savings,
		Multiplier:  multiplier,
		Outstanding: outstanding,
		Limit:       limit,
	}
}
