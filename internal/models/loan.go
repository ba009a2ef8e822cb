package models

type LoanStatus string

const (
	LoanStatusPending   LoanStatus = "pending"
	LoanStatusApproved  LoanStatus = "approved"
	LoanStatusDisbursed LoanStatus = "disbursed"
	LoanStatusActive    LoanStatus = "active"
	LoanStatusCompleted LoanStatus = "completed"
	LoanStatusRejected  LoanStatus = "rejected"
	LoanStatusDefaulted LoanStatus = "defaulted"
)

// Loan mirrors the upstream loan record. PrincipleAmount keeps the upstream spelling.
type Loan struct {
	ID                 string     `json:"id"`
	LoanNumber         string     `json:"loanNumber"`
	MemberID           string     `json:"memberId,omitempty"`
	GroupID            string     `json:"groupId,omitempty"`
	ProductID          string     `json:"productId,omitempty"`
	PrincipleAmount    string     `json:"principleAmount"`
	TotalAmount        string     `json:"totalAmount"`
	OutstandingBalance string     `json:"outstandingBalance"`
	Status             LoanStatus `json:"status"`
	ApplicationDate    Timestamp  `json:"applicationDate"`
	DueDate            *Timestamp `json:"dueDate,omitempty"`
	Member             *Member    `json:"member,omitempty"`
}

// IsOpen reports whether the loan still carries a balance the branch expects to collect.
func (l Loan) IsOpen() bool {
	switch l.Status {
	case LoanStatusDisbursed, LoanStatusActive, LoanStatusDefaulted:
		return true
	}
	return false
}

// LoanProduct is a loan offering configured at the branch.
type LoanProduct struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	InterestRate float64 `json:"interestRate"`
	MinAmount    string  `json:"minAmount"`
	MaxAmount    string  `json:"maxAmount"`
	TermMonths   int     `json:"termMonths"`
	IsActive     bool    `json:"isActive"`
}
