package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/carson-networks/fieldops-server/internal/models"
)

type LoanFilter struct {
	Status   models.LoanStatus
	GroupID  string
	MemberID string
}

func (f LoanFilter) query() string {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if f.GroupID != "" {
		v.Set("groupId", f.GroupID)
	}
	if f.MemberID != "" {
		v.Set("memberId", f.MemberID)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

type LoanApplicationInput struct {
	MemberID  string `json:"memberId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Amount    string `json:"amount" validate:"required,amount"`
	Purpose   string `json:"purpose" validate:"required"`
	Guarantor string `json:"guarantorId,omitempty"`
}

type RejectInput struct {
	Reason string `json:"reason" validate:"required"`
}

type LoanProductInput struct {
	Name         string  `json:"name" validate:"required"`
	InterestRate float64 `json:"interestRate" validate:"gte=0,lte=100"`
	MinAmount    string  `json:"minAmount" validate:"required,amount"`
	MaxAmount    string  `json:"maxAmount" validate:"required,amount"`
	TermMonths   int     `json:"termMonths" validate:"required,gt=0"`
}

func (c *Client) ListLoans(ctx context.Context, filter LoanFilter) ([]models.Loan, error) {
	return list[models.Loan](ctx, c, "/loans"+filter.query())
}

func (c *Client) GetLoan(ctx context.Context, id string) (*models.Loan, error) {
	var out models.Loan
	if err := c.get(ctx, "/loans/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PendingLoans(ctx context.Context) ([]models.Loan, error) {
	return c.ListLoans(ctx, LoanFilter{Status: models.LoanStatusPending})
}

func (c *Client) ApplyForLoan(ctx context.Context, in LoanApplicationInput) (*models.Loan, error) {
	var out models.Loan
	if err := c.send(ctx, http.MethodPost, "/loans", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ApproveLoan(ctx context.Context, id string) (*models.Loan, error) {
	var out models.Loan
	if err := c.patch(ctx, "/loans/"+url.PathEscape(id)+"/approve", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RejectLoan(ctx context.Context, id string, in RejectInput) (*models.Loan, error) {
	var out models.Loan
	if err := c.send(ctx, http.MethodPatch, "/loans/"+url.PathEscape(id)+"/reject", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DisburseLoan(ctx context.Context, id string) (*models.Loan, error) {
	var out models.Loan
	if err := c.patch(ctx, "/loans/"+url.PathEscape(id)+"/disburse", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListLoanProducts(ctx context.Context) ([]models.LoanProduct, error) {
	return list[models.LoanProduct](ctx, c, "/loan-products")
}

func (c *Client) CreateLoanProduct(ctx context.Context, in LoanProductInput) (*models.LoanProduct, error) {
	var out models.LoanProduct
	if err := c.send(ctx, http.MethodPost, "/loan-products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateLoanProduct(ctx context.Context, id string, in LoanProductInput) (*models.LoanProduct, error) {
	var out models.LoanProduct
	if err := c.send(ctx, http.MethodPut, "/loan-products/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
