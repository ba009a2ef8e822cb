package actions

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fieldops-server/internal/export"
	"github.com/carson-networks/fieldops-server/internal/metrics"
	"github.com/carson-networks/fieldops-server/internal/storage/sqlconfig"
)

// Reporter renders one report kind in the requested format.
type Reporter interface {
	Render(ctx context.Context, kind, format string) (*export.File, error)
}

// Dependencies is what every action may touch while it runs.
type Dependencies struct {
	Reports Reporter
	Sinks   map[string]export.Sink
	Exports sqlconfig.IExportTable
	Metrics *metrics.Collector
	Logger  *logrus.Logger
}

type IAction interface {
	Perform(ctx context.Context, deps *Dependencies) error
}
