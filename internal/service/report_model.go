package service

import (
	"errors"
	"slices"
)

var ErrUnknownKind = errors.New("unknown report kind")

// Report kinds accepted by ReportService.
const (
	KindGroups       = "groups"
	KindMembers      = "members"
	KindLoans        = "loans"
	KindTransactions = "transactions"
	KindSuppliers    = "suppliers"
	KindProducts     = "products"
	KindUsers        = "users"
	KindVisits       = "visits"
	// KindBranch is the plain-text branch report; it ignores the format.
	KindBranch = "branch"
)

var reportKinds = []string{
	KindGroups, KindMembers, KindLoans, KindTransactions,
	KindSuppliers, KindProducts, KindUsers, KindVisits, KindBranch,
}

// ReportKinds lists every kind that can be rendered or exported.
func ReportKinds() []string {
	return slices.Clone(reportKinds)
}

func IsReportKind(kind string) bool {
	return slices.Contains(reportKinds, kind)
}
