package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fieldops-server/internal/export"
	"github.com/carson-networks/fieldops-server/internal/operator"
	"github.com/carson-networks/fieldops-server/internal/operator/actions"
	"github.com/carson-networks/fieldops-server/internal/storage"
	"github.com/carson-networks/fieldops-server/internal/storage/sqlconfig"
)

type recordingQueue struct {
	enqueued  []actions.IAction
	processed []actions.IAction
	err       error
}

func (q *recordingQueue) Enqueue(_ context.Context, action actions.IAction) error {
	q.enqueued = append(q.enqueued, action)
	return q.err
}

func (q *recordingQueue) Process(_ context.Context, action actions.IAction) error {
	q.processed = append(q.processed, action)
	return q.err
}

func newTestExportService(t *testing.T) (*ExportService, *sqlconfig.MockIExportTable, *recordingQueue) {
	t.Helper()
	mockTable := sqlconfig.NewMockIExportTable(t)
	queue := &recordingQueue{}
	logger, _ := test.NewNullLogger()
	svc := NewExportService(&storage.Storage{Exports: mockTable}, queue, []string{DestinationLocal, "s3"}, logger)
	return svc, mockTable, queue
}

// -- RequestExport tests --

func TestRequestExport_Enqueues(t *testing.T) {
	svc, mockTable, queue := newTestExportService(t)
	id := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().Insert(mock.Anything, &sqlconfig.ExportCreate{
		Kind:        KindLoans,
		Format:      "xlsx",
		Destination: DestinationLocal,
		Trigger:     TriggerRequest,
	}).Return(id, nil)

	exp, err := svc.RequestExport(context.Background(), ExportRequest{Kind: KindLoans})

	require.NoError(t, err)
	assert.Equal(t, id, exp.ID)
	assert.Equal(t, "pending", exp.Status)
	assert.Equal(t, "xlsx", exp.Format, "xlsx is the default format")
	require.Len(t, queue.enqueued, 1)
	assert.Equal(t, &actions.GenerateExport{
		ExportID:    id,
		Kind:        KindLoans,
		Format:      "xlsx",
		Destination: DestinationLocal,
	}, queue.enqueued[0])
}

func TestRequestExport_WaitReturnsFinishedRow(t *testing.T) {
	svc, mockTable, queue := newTestExportService(t)
	id := uuid.Must(uuid.NewV4())
	queue.err = export.ErrNoData

	mockTable.EXPECT().Insert(mock.Anything, mock.Anything).Return(id, nil)
	mockTable.EXPECT().FindByID(mock.Anything, id).Return(&sqlconfig.Export{
		ID:     id,
		Kind:   KindGroups,
		Format: "csv",
		Status: sqlconfig.ExportStatusEmpty,
	}, nil)

	exp, err := svc.RequestExport(context.Background(), ExportRequest{Kind: KindGroups, Format: "csv", Wait: true})

	require.NoError(t, err)
	assert.Equal(t, "empty", exp.Status)
	assert.Len(t, queue.processed, 1)
	assert.Empty(t, queue.enqueued)
}

func TestRequestExport_BranchIsText(t *testing.T) {
	svc, mockTable, _ := newTestExportService(t)

	mockTable.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.ExportCreate) bool {
		return c.Kind == KindBranch && c.Format == "txt" && c.Destination == "s3"
	})).Return(uuid.Must(uuid.NewV4()), nil)

	_, err := svc.RequestExport(context.Background(), ExportRequest{Kind: KindBranch, Format: "csv", Destination: "s3"})

	assert.NoError(t, err)
}

func TestRequestExport_RejectsBadInput(t *testing.T) {
	svc, _, queue := newTestExportService(t)

	_, err := svc.RequestExport(context.Background(), ExportRequest{Kind: "savings-goals"})
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = svc.RequestExport(context.Background(), ExportRequest{Kind: KindGroups, Format: "pdf"})
	assert.ErrorIs(t, err, export.ErrUnknownFormat)

	_, err = svc.RequestExport(context.Background(), ExportRequest{Kind: KindGroups, Destination: "gcs"})
	assert.ErrorIs(t, err, ErrUnknownDestination)

	assert.Empty(t, queue.enqueued)
}

func TestRequestExport_InsertError(t *testing.T) {
	svc, mockTable, queue := newTestExportService(t)

	mockTable.EXPECT().Insert(mock.Anything, mock.Anything).Return(uuid.Nil, errors.New("connection refused"))

	exp, err := svc.RequestExport(context.Background(), ExportRequest{Kind: KindGroups})

	assert.EqualError(t, err, "record export: connection refused")
	assert.Nil(t, exp)
	assert.Empty(t, queue.enqueued)
}

func TestRequestExport_NotQueuedMarksRowFailed(t *testing.T) {
	svc, mockTable, queue := newTestExportService(t)
	id := uuid.Must(uuid.NewV4())
	queue.err = fmt.Errorf("%w: %w", operator.ErrNotQueued, operator.ErrStopped)

	mockTable.EXPECT().Insert(mock.Anything, mock.Anything).Return(id, nil)
	mockTable.EXPECT().Finish(mock.Anything, id, &sqlconfig.ExportResult{
		Status: sqlconfig.ExportStatusFailed,
		Error:  "action not queued: operator stopped",
	}).Return(nil)

	exp, err := svc.RequestExport(context.Background(), ExportRequest{Kind: KindLoans})

	assert.ErrorIs(t, err, operator.ErrStopped)
	assert.Nil(t, exp)
}

func TestRequestExport_WaitNotQueuedMarksRowFailedOnLiveContext(t *testing.T) {
	svc, mockTable, queue := newTestExportService(t)
	id := uuid.Must(uuid.NewV4())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	queue.err = fmt.Errorf("%w: %w", operator.ErrNotQueued, ctx.Err())

	mockTable.EXPECT().Insert(mock.Anything, mock.Anything).Return(id, nil)
	mockTable.EXPECT().Finish(
		mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }),
		id,
		mock.MatchedBy(func(r *sqlconfig.ExportResult) bool { return r.Status == sqlconfig.ExportStatusFailed }),
	).Return(nil)

	_, err := svc.RequestExport(ctx, ExportRequest{Kind: KindGroups, Wait: true})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, queue.processed, 1)
}

func TestRequestExport_WaitCallerGoneLeavesRowToWorker(t *testing.T) {
	svc, mockTable, queue := newTestExportService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	queue.err = context.Canceled

	mockTable.EXPECT().Insert(mock.Anything, mock.Anything).Return(uuid.Must(uuid.NewV4()), nil)

	_, err := svc.RequestExport(ctx, ExportRequest{Kind: KindGroups, Wait: true})

	assert.ErrorIs(t, err, context.Canceled)
}

// -- GetExport tests --

func TestGetExport_NotFound(t *testing.T) {
	svc, mockTable, _ := newTestExportService(t)
	id := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().FindByID(mock.Anything, id).Return(nil, sqlconfig.ErrExportNotFound)

	exp, err := svc.GetExport(context.Background(), id)

	assert.ErrorIs(t, err, sqlconfig.ErrExportNotFound)
	assert.Nil(t, exp)
}

// -- ListExports tests --

func makeExportRows(n int, createdAt time.Time) []*sqlconfig.Export {
	rows := make([]*sqlconfig.Export, n)
	for i := range rows {
		rows[i] = &sqlconfig.Export{
			ID:        uuid.Must(uuid.NewV4()),
			Kind:      KindGroups,
			Format:    "csv",
			Status:    sqlconfig.ExportStatusDone,
			CreatedAt: createdAt,
		}
	}
	return rows
}

func TestListExports_NoResults(t *testing.T) {
	svc, mockTable, _ := newTestExportService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return([]*sqlconfig.Export{}, nil)

	exports, nextCursor, err := svc.ListExports(context.Background(), "", nil)

	assert.NoError(t, err)
	assert.Nil(t, exports)
	assert.Nil(t, nextCursor)
}

func TestListExports_HasNextPage(t *testing.T) {
	svc, mockTable, _ := newTestExportService(t)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeExportRows(defaultLimit+1, now)

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.ExportFilter) bool {
		return f.Limit == defaultLimit && f.Offset == 0 && f.Kind == KindGroups && f.MaxCreationTime == nil
	})).Return(rows, nil)

	exports, nextCursor, err := svc.ListExports(context.Background(), KindGroups, nil)

	assert.NoError(t, err)
	assert.Len(t, exports, defaultLimit, "truncated to default limit")
	assert.Equal(t, "done", exports[0].Status)

	require.NotNil(t, nextCursor)
	assert.Equal(t, defaultLimit, nextCursor.Position)
	assert.Equal(t, now, nextCursor.MaxCreationTime, "derived from first row")
	assert.Equal(t, KindGroups, nextCursor.Kind)
}

func TestListExports_WithCursor(t *testing.T) {
	svc, mockTable, _ := newTestExportService(t)

	cursorTime := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	rows := makeExportRows(2, cursorTime)

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.ExportFilter) bool {
		return f.Limit == 5 &&
			f.Offset == 10 &&
			f.Kind == KindLoans &&
			f.MaxCreationTime != nil &&
			f.MaxCreationTime.Equal(cursorTime)
	})).Return(rows, nil)

	exports, nextCursor, err := svc.ListExports(context.Background(), "ignored", &ExportCursor{
		Position:        10,
		Limit:           5,
		MaxCreationTime: cursorTime,
		Kind:            KindLoans,
	})

	assert.NoError(t, err)
	assert.Len(t, exports, 2)
	assert.Nil(t, nextCursor, "fewer rows than the limit")
}
