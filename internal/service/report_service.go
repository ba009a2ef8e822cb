package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fieldops-server/internal/apiclient"
	"github.com/carson-networks/fieldops-server/internal/export"
	"github.com/carson-networks/fieldops-server/internal/logging"
)

type recordsFunc func(ctx context.Context, upstream Upstream) ([]export.Record, error)

// flatten adapts a (records, err) fetch result to a flattening function.
func flatten[T any](fn func([]T) []export.Record) func([]T, error) ([]export.Record, error) {
	return func(items []T, err error) ([]export.Record, error) {
		if err != nil {
			return nil, err
		}
		return fn(items), nil
	}
}

var reportSources = map[string]recordsFunc{
	KindGroups: func(ctx context.Context, u Upstream) ([]export.Record, error) {
		return flatten(export.FlattenGroupData)(u.ListGroups(ctx))
	},
	KindMembers: func(ctx context.Context, u Upstream) ([]export.Record, error) {
		return flatten(export.FlattenMemberData)(u.ListMembers(ctx, ""))
	},
	KindLoans: func(ctx context.Context, u Upstream) ([]export.Record, error) {
		return flatten(export.FlattenLoanData)(u.ListLoans(ctx, apiclient.LoanFilter{}))
	},
	KindTransactions: func(ctx context.Context, u Upstream) ([]export.Record, error) {
		return flatten(export.FlattenTransactionData)(u.ListTransactions(ctx, apiclient.TransactionFilter{}))
	},
	KindSuppliers: func(ctx context.Context, u Upstream) ([]export.Record, error) {
		return flatten(export.FlattenSupplierData)(u.ListSuppliers(ctx))
	},
	KindProducts: func(ctx context.Context, u Upstream) ([]export.Record, error) {
		return flatten(export.FlattenProductData)(u.ListProducts(ctx))
	},
	KindUsers: func(ctx context.Context, u Upstream) ([]export.Record, error) {
		return flatten(export.FlattenUserData)(u.ListUsers(ctx, ""))
	},
	KindVisits: func(ctx context.Context, u Upstream) ([]export.Record, error) {
		return flatten(export.FlattenVisitData)(u.FieldOfficerVisits(ctx))
	},
}

// ReportService turns upstream records into downloadable files.
type ReportService struct {
	upstream Upstream
	logger   *logrus.Logger
	now      func() time.Time
}

func NewReportService(upstream Upstream, logger *logrus.Logger) *ReportService {
	return &ReportService{upstream: upstream, logger: logger, now: time.Now}
}

// Build fetches the records for kind and flattens them into a table.
func (s *ReportService) Build(ctx context.Context, kind string) (export.Table, error) {
	source, ok := reportSources[kind]
	if !ok {
		return export.Table{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	endTimer := logging.GetLogData(ctx).AddToExistingTiming("upstream")
	records, err := source(ctx, s.upstream)
	endTimer()
	if err != nil {
		return export.Table{}, fmt.Errorf("fetch %s: %w", kind, err)
	}
	return export.NewTable(records), nil
}

// Render builds kind and encodes it as format. The branch kind always renders
// as plain text. An empty report yields export.ErrNoData.
func (s *ReportService) Render(ctx context.Context, kind, format string) (*export.File, error) {
	if kind == KindBranch {
		return s.BranchReport(ctx)
	}
	if _, err := export.ExporterFor(export.Format(format)); err != nil {
		return nil, err
	}

	table, err := s.Build(ctx, kind)
	if err != nil {
		return nil, err
	}

	file, err := export.RenderFile(table, export.Format(format), kind, s.now())
	if errors.Is(err, export.ErrNoData) {
		s.logger.WithFields(logrus.Fields{
			"kind":   kind,
			"format": format,
		}).Warn("ReportService.Render.noData")
	}
	return file, err
}

// BranchReport renders the branch manager's plain-text performance report.
func (s *ReportService) BranchReport(ctx context.Context) (*export.File, error) {
	stats, err := s.upstream.BranchStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch branch stats: %w", err)
	}
	if stats == nil {
		s.logger.Warn("ReportService.BranchReport.noData")
		return nil, export.ErrNoData
	}
	return export.BranchReportFile(*stats, s.now()), nil
}
