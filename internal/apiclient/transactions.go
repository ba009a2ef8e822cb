package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/carson-networks/fieldops-server/internal/models"
)

type TransactionFilter struct {
	Type     models.TransactionType
	Status   models.TransactionStatus
	MemberID string
}

func (f TransactionFilter) query() string {
	v := url.Values{}
	if f.Type != "" {
		v.Set("type", string(f.Type))
	}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if f.MemberID != "" {
		v.Set("memberId", f.MemberID)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

type DepositInput struct {
	MemberID    string             `json:"memberId" validate:"required"`
	Amount      string             `json:"amount" validate:"required,amount"`
	AccountType models.AccountType `json:"accountType" validate:"required,oneof=savings drawdown"`
	MpesaCode   string             `json:"mpesaCode,omitempty"`
	Description string             `json:"description,omitempty"`
}

type TransferInput struct {
	MemberID    string             `json:"memberId" validate:"required"`
	Amount      string             `json:"amount" validate:"required,amount"`
	FromAccount models.AccountType `json:"fromAccount" validate:"required,oneof=savings drawdown"`
	ToAccount   models.AccountType `json:"toAccount" validate:"required,oneof=savings drawdown,nefield=FromAccount"`
	Description string             `json:"description,omitempty"`
}

type RepaymentInput struct {
	LoanID    string `json:"loanId" validate:"required"`
	Amount    string `json:"amount" validate:"required,amount"`
	MpesaCode string `json:"mpesaCode,omitempty"`
}

// StkPushInput asks M-Pesa to prompt the member's phone for payment.
type StkPushInput struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,e164|numeric"`
	Amount      string `json:"amount" validate:"required,amount"`
	MemberID    string `json:"memberId" validate:"required"`
	Reference   string `json:"accountReference,omitempty"`
}

type StkPushResponse struct {
	CheckoutRequestID string `json:"checkoutRequestId"`
	ResponseCode      string `json:"responseCode"`
	CustomerMessage   string `json:"customerMessage"`
}

func (c *Client) ListTransactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error) {
	return list[models.Transaction](ctx, c, "/transactions"+filter.query())
}

func (c *Client) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.get(ctx, "/transactions/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PendingTransactions(ctx context.Context) ([]models.Transaction, error) {
	return c.ListTransactions(ctx, TransactionFilter{Status: models.TransactionStatusPending})
}

func (c *Client) Deposit(ctx context.Context, in DepositInput) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.send(ctx, http.MethodPost, "/transactions/deposit", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Transfer(ctx context.Context, in TransferInput) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.send(ctx, http.MethodPost, "/transactions/transfer", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RepayLoan(ctx context.Context, in RepaymentInput) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.send(ctx, http.MethodPost, "/transactions/loan-repayment", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) StkPush(ctx context.Context, in StkPushInput) (*StkPushResponse, error) {
	var out StkPushResponse
	if err := c.send(ctx, http.MethodPost, "/mpesa/stk-push", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ApproveTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.patch(ctx, "/transactions/"+url.PathEscape(id)+"/approve", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RejectTransaction(ctx context.Context, id string, in RejectInput) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.send(ctx, http.MethodPatch, "/transactions/"+url.PathEscape(id)+"/reject", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
