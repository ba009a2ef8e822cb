package service

import (
	"context"

	"github.com/carson-networks/fieldops-server/internal/apiclient"
	"github.com/carson-networks/fieldops-server/internal/models"
)

// Upstream is the slice of the microfinance API the services read from.
// *apiclient.Client satisfies it.
type Upstream interface {
	ListGroups(ctx context.Context) ([]models.Group, error)
	GroupMembers(ctx context.Context, groupID string) ([]models.Member, error)
	ListMembers(ctx context.Context, status models.MemberStatus) ([]models.Member, error)
	GetMember(ctx context.Context, id string) (*models.Member, error)
	MemberLoans(ctx context.Context, memberID string) ([]models.Loan, error)
	ListLoans(ctx context.Context, filter apiclient.LoanFilter) ([]models.Loan, error)
	ListTransactions(ctx context.Context, filter apiclient.TransactionFilter) ([]models.Transaction, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListUsers(ctx context.Context, role string) ([]models.User, error)
	FieldOfficerGroups(ctx context.Context) ([]models.Group, error)
	FieldOfficerVisits(ctx context.Context) ([]models.Visit, error)
	FieldOfficerLoans(ctx context.Context) ([]models.Loan, error)
	BranchStats(ctx context.Context) (*models.BranchStats, error)
}

var _ Upstream = (*apiclient.Client)(nil)
