package service

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fieldops-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Reports    *ReportService
	Dashboards *DashboardService
	Exports    *ExportService
}

// NewService wires the services over the upstream API, the export ledger and
// the operator queue.
func NewService(
	upstream Upstream,
	store *storage.Storage,
	queue exportQueue,
	destinations []string,
	loanLimitMultiplier decimal.Decimal,
	logger *logrus.Logger,
) *Service {
	return &Service{
		Reports:    NewReportService(upstream, logger),
		Dashboards: NewDashboardService(upstream, loanLimitMultiplier),
		Exports:    NewExportService(store, queue, destinations, logger),
	}
}
