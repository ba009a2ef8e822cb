package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/fieldops-server/internal/apiclient"
	"github.com/carson-networks/fieldops-server/internal/models"
)

type mockUpstream struct {
	mock.Mock
}

var _ Upstream = (*mockUpstream)(nil)

func returns[T any](args mock.Arguments) (T, error) {
	v, _ := args.Get(0).(T)
	return v, args.Error(1)
}

func (m *mockUpstream) ListGroups(ctx context.Context) ([]models.Group, error) {
	return returns[[]models.Group](m.Called(ctx))
}

func (m *mockUpstream) GroupMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	return returns[[]models.Member](m.Called(ctx, groupID))
}

func (m *mockUpstream) ListMembers(ctx context.Context, status models.MemberStatus) ([]models.Member, error) {
	return returns[[]models.Member](m.Called(ctx, status))
}

func (m *mockUpstream) GetMember(ctx context.Context, id string) (*models.Member, error) {
	return returns[*models.Member](m.Called(ctx, id))
}

func (m *mockUpstream) MemberLoans(ctx context.Context, memberID string) ([]models.Loan, error) {
	return returns[[]models.Loan](m.Called(ctx, memberID))
}

func (m *mockUpstream) ListLoans(ctx context.Context, filter apiclient.LoanFilter) ([]models.Loan, error) {
	return returns[[]models.Loan](m.Called(ctx, filter))
}

func (m *mockUpstream) ListTransactions(ctx context.Context, filter apiclient.TransactionFilter) ([]models.Transaction, error) {
	return returns[[]models.Transaction](m.Called(ctx, filter))
}

func (m *mockUpstream) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return returns[[]models.Supplier](m.Called(ctx))
}

func (m *mockUpstream) ListProducts(ctx context.Context) ([]models.Product, error) {
	return returns[[]models.Product](m.Called(ctx))
}

func (m *mockUpstream) ListUsers(ctx context.Context, role string) ([]models.User, error) {
	return returns[[]models.User](m.Called(ctx, role))
}

func (m *mockUpstream) FieldOfficerGroups(ctx context.Context) ([]models.Group, error) {
	return returns[[]models.Group](m.Called(ctx))
}

func (m *mockUpstream) FieldOfficerVisits(ctx context.Context) ([]models.Visit, error) {
	return returns[[]models.Visit](m.Called(ctx))
}

func (m *mockUpstream) FieldOfficerLoans(ctx context.Context) ([]models.Loan, error) {
	return returns[[]models.Loan](m.Called(ctx))
}

func (m *mockUpstream) BranchStats(ctx context.Context) (*models.BranchStats, error) {
	return returns[*models.BranchStats](m.Called(ctx))
}

func newMockUpstream(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockUpstream {
	m := &mockUpstream{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
