package models

type TransactionType string

const (
	TransactionTypeDeposit       TransactionType = "deposit"
	TransactionTypeLoanRepayment TransactionType = "loan_repayment"
	TransactionTypeTransfer      TransactionType = "transfer"
)

type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusApproved TransactionStatus = "approved"
	TransactionStatusRejected TransactionStatus = "rejected"
)

type AccountType string

const (
	AccountTypeSavings  AccountType = "savings"
	AccountTypeDrawdown AccountType = "drawdown"
)

type Transaction struct {
	ID              string            `json:"id"`
	TransactionType TransactionType   `json:"transactionType"`
	Amount          string            `json:"amount"`
	AccountType     AccountType       `json:"accountType"`
	MpesaCode       string            `json:"mpesaCode,omitempty"`
	Status          TransactionStatus `json:"status"`
	MemberID        string            `json:"memberId,omitempty"`
	Description     string            `json:"description,omitempty"`
	CreatedAt       Timestamp         `json:"createdAt"`
}
