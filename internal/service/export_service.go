package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fieldops-server/internal/export"
	"github.com/carson-networks/fieldops-server/internal/operator"
	"github.com/carson-networks/fieldops-server/internal/operator/actions"
	"github.com/carson-networks/fieldops-server/internal/storage"
	"github.com/carson-networks/fieldops-server/internal/storage/sqlconfig"
)

const defaultLimit = 20

var ErrUnknownDestination = errors.New("unknown export destination")

type exportQueue interface {
	Enqueue(ctx context.Context, action actions.IAction) error
	Process(ctx context.Context, action actions.IAction) error
}

// ExportService records export requests on the ledger and hands them to the
// operator.
type ExportService struct {
	storage      *storage.Storage
	queue        exportQueue
	destinations []string
	logger       *logrus.Logger
	now          func() time.Time
}

func NewExportService(store *storage.Storage, queue exportQueue, destinations []string, logger *logrus.Logger) *ExportService {
	return &ExportService{
		storage:      store,
		queue:        queue,
		destinations: destinations,
		logger:       logger,
		now:          time.Now,
	}
}

// RequestExport records a pending export and queues it. With Wait set, the
// finished ledger row is returned; job failures are reflected in its status
// rather than returned.
func (s *ExportService) RequestExport(ctx context.Context, req ExportRequest) (*Export, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	id, err := s.storage.Exports.Insert(ctx, &sqlconfig.ExportCreate{
		Kind:        req.Kind,
		Format:      req.Format,
		Destination: req.Destination,
		Trigger:     req.Trigger,
	})
	if err != nil {
		return nil, fmt.Errorf("record export: %w", err)
	}

	action := &actions.GenerateExport{
		ExportID:    id,
		Kind:        req.Kind,
		Format:      req.Format,
		Destination: req.Destination,
	}

	if !req.Wait {
		if err := s.queue.Enqueue(ctx, action); err != nil {
			s.abandon(ctx, id, err)
			return nil, err
		}
		return &Export{
			ID:          id,
			Kind:        req.Kind,
			Format:      req.Format,
			Destination: req.Destination,
			Trigger:     req.Trigger,
			Status:      string(sqlconfig.ExportStatusPending),
			CreatedAt:   s.now(),
		}, nil
	}

	if err := s.queue.Process(ctx, action); err != nil {
		if errors.Is(err, operator.ErrNotQueued) {
			s.abandon(ctx, id, err)
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.WithError(err).WithField("exportId", id).Debug("ExportService.RequestExport.jobFailed")
	}
	return s.GetExport(ctx, id)
}

// abandon fails a ledger row whose action never reached a worker.
func (s *ExportService) abandon(ctx context.Context, id uuid.UUID, cause error) {
	err := s.storage.Exports.Finish(context.WithoutCancel(ctx), id, &sqlconfig.ExportResult{
		Status: sqlconfig.ExportStatusFailed,
		Error:  cause.Error(),
	})
	if err != nil {
		s.logger.WithError(err).WithField("exportId", id).Error("ExportService.abandon.finish error")
	}
}

func (s *ExportService) validate(req *ExportRequest) error {
	if !IsReportKind(req.Kind) {
		return fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}
	if req.Kind == KindBranch {
		req.Format = "txt"
	} else {
		if req.Format == "" {
			req.Format = string(export.FormatXLSX)
		}
		if _, err := export.ExporterFor(export.Format(req.Format)); err != nil {
			return err
		}
	}
	if req.Destination == "" {
		req.Destination = DestinationLocal
	}
	if !slices.Contains(s.destinations, req.Destination) {
		return fmt.Errorf("%w: %q", ErrUnknownDestination, req.Destination)
	}
	if req.Trigger == "" {
		req.Trigger = TriggerRequest
	}
	return nil
}

// GetExport retrieves a ledger entry by ID.
func (s *ExportService) GetExport(ctx context.Context, id uuid.UUID) (*Export, error) {
	row, err := s.storage.Exports.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	converted := exportFromStorage(row)
	return &converted, nil
}

// ListExports returns a page of ledger entries using cursor-based pagination.
func (s *ExportService) ListExports(ctx context.Context, kind string, cursor *ExportCursor) ([]Export, *ExportCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
		kind = cursor.Kind
	}

	filter := &sqlconfig.ExportFilter{
		Kind:            kind,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Exports.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *ExportCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &ExportCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
			Kind:            kind,
		}
	}

	converted := make([]Export, len(rows))
	for i, row := range rows {
		converted[i] = exportFromStorage(row)
	}

	return converted, nextCursor, nil
}
