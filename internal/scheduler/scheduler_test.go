package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fieldops-server/internal/service"
)

type mockExports struct {
	mock.Mock
}

func (m *mockExports) RequestExport(ctx context.Context, req service.ExportRequest) (*service.Export, error) {
	args := m.Called(ctx, req)
	exp, _ := args.Get(0).(*service.Export)
	return exp, args.Error(1)
}

func writeSchedules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// -- Load --

func TestLoad_MissingFile(t *testing.T) {
	schedules, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.NoError(t, err)
	assert.Empty(t, schedules)
}

func TestLoad_Parses(t *testing.T) {
	path := writeSchedules(t, `
schedules:
  - name: nightly-loans
    cron: "0 2 * * *"
    kind: loans
    format: xlsx
    destination: s3
  - cron: "@weekly"
    kind: branch
`)

	schedules, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, []Schedule{
		{Name: "nightly-loans", Cron: "0 2 * * *", Kind: "loans", Format: "xlsx", Destination: "s3"},
		{Name: "branch-1", Cron: "@weekly", Kind: "branch"},
	}, schedules)
}

func TestLoad_MissingCron(t *testing.T) {
	path := writeSchedules(t, "schedules:\n  - name: broken\n    kind: groups\n")

	_, err := Load(path)

	assert.EqualError(t, err, `schedule "broken": cron and kind are required`)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeSchedules(t, "schedules: [")

	_, err := Load(path)

	assert.Error(t, err)
}

// -- New / run --

func TestNew_RegistersEntries(t *testing.T) {
	logger, _ := test.NewNullLogger()

	s, err := New([]Schedule{
		{Name: "a", Cron: "0 2 * * *", Kind: "loans"},
		{Name: "b", Cron: "@daily", Kind: "branch"},
	}, new(mockExports), logger)

	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestNew_InvalidCron(t *testing.T) {
	logger, _ := test.NewNullLogger()

	_, err := New([]Schedule{{Name: "bad", Cron: "every tuesday", Kind: "loans"}}, new(mockExports), logger)

	assert.ErrorContains(t, err, `schedule "bad"`)
}

func TestRun_RequestsScheduledExport(t *testing.T) {
	logger, hook := test.NewNullLogger()
	exports := new(mockExports)
	exports.On("RequestExport", mock.Anything, service.ExportRequest{
		Kind:        "loans",
		Format:      "csv",
		Destination: "s3",
		Trigger:     service.TriggerSchedule,
	}).Return(&service.Export{ID: uuid.Must(uuid.NewV4())}, nil)

	s, err := New(nil, exports, logger)
	require.NoError(t, err)
	s.run(context.Background(), Schedule{Name: "nightly", Kind: "loans", Format: "csv", Destination: "s3"})

	exports.AssertExpectations(t)
	assert.Equal(t, "Scheduler.run.queued", hook.LastEntry().Message)
}

func TestRun_LogsFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	exports := new(mockExports)
	exports.On("RequestExport", mock.Anything, mock.Anything).Return(nil, errors.New("operator stopped"))

	s, err := New(nil, exports, logger)
	require.NoError(t, err)
	s.run(context.Background(), Schedule{Name: "nightly", Kind: "loans"})

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "nightly", hook.LastEntry().Data["schedule"])
}
