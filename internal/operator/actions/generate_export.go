package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fieldops-server/internal/export"
	"github.com/carson-networks/fieldops-server/internal/storage/sqlconfig"
)

var ErrUnknownDestination = errors.New("unknown export destination")

// GenerateExport renders a report, writes it to a sink and records the outcome
// on the ledger row created when the export was requested.
type GenerateExport struct {
	ExportID    uuid.UUID
	Kind        string
	Format      string
	Destination string

	IAction
}

// Perform always drives the ledger row to a final status. Ledger writes are
// detached from ctx so a caller that stops waiting cannot strand the row.
func (g *GenerateExport) Perform(ctx context.Context, deps *Dependencies) error {
	ledgerCtx := context.WithoutCancel(ctx)
	if err := deps.Exports.MarkRunning(ledgerCtx, g.ExportID); err != nil {
		return err
	}

	var result *sqlconfig.ExportResult
	err := ctx.Err()
	if err == nil {
		result, err = g.generate(ctx, deps)
	}
	switch {
	case errors.Is(err, export.ErrNoData):
		result = &sqlconfig.ExportResult{Status: sqlconfig.ExportStatusEmpty}
	case err != nil:
		result = &sqlconfig.ExportResult{Status: sqlconfig.ExportStatusFailed, Error: err.Error()}
	}
	deps.Metrics.RecordExport(g.Kind, g.Format, string(result.Status))

	if finishErr := deps.Exports.Finish(ledgerCtx, g.ExportID, result); finishErr != nil {
		return errors.Join(err, finishErr)
	}
	return err
}

func (g *GenerateExport) generate(ctx context.Context, deps *Dependencies) (*sqlconfig.ExportResult, error) {
	sink, ok := deps.Sinks[g.Destination]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDestination, g.Destination)
	}

	file, err := deps.Reports.Render(ctx, g.Kind, g.Format)
	if err != nil {
		return nil, err
	}

	location, err := sink.Write(ctx, file.Name, file.ContentType, file.Data)
	if err != nil {
		return nil, fmt.Errorf("write %s: %w", file.Name, err)
	}

	return &sqlconfig.ExportResult{
		Status:   sqlconfig.ExportStatusDone,
		FileName: file.Name,
		Location: location,
		Rows:     file.Rows,
		Bytes:    int64(len(file.Data)),
	}, nil
}
