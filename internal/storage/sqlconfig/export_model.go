package sqlconfig

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
)

var ErrExportNotFound = errors.New("export not found")

type ExportStatus string

const (
	ExportStatusPending ExportStatus = "pending"
	ExportStatusRunning ExportStatus = "running"
	ExportStatusDone    ExportStatus = "done"
	ExportStatusEmpty   ExportStatus = "empty"
	ExportStatusFailed  ExportStatus = "failed"
)

// Export is one row of the export ledger.
type Export struct {
	ID          uuid.UUID    `db:"id"`
	Kind        string       `db:"kind"`
	Format      string       `db:"format"`
	Destination string       `db:"destination"`
	Trigger     string       `db:"trigger"`
	Status      ExportStatus `db:"status"`
	FileName    string       `db:"file_name"`
	Location    string       `db:"location"`
	Rows        int          `db:"row_count"`
	Bytes       int64        `db:"byte_count"`
	Error       string       `db:"error"`
	CreatedAt   time.Time    `db:"created_at"`
	CompletedAt *time.Time   `db:"completed_at"`
}

// ExportCreate is the input for recording a requested export.
type ExportCreate struct {
	Kind        string
	Format      string
	Destination string
	Trigger     string
}

// ExportResult is written once an export job finishes, whatever the outcome.
type ExportResult struct {
	Status   ExportStatus
	FileName string
	Location string
	Rows     int
	Bytes    int64
	Error    string
}

// ExportFilter specifies filters for listing exports.
type ExportFilter struct {
	Kind            string
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// IExportTable defines the interface for export ledger operations.
//
//go:generate mockery --name IExportTable --inpackage --with-expecter --filename mock_IExportTable.go
type IExportTable interface {
	Insert(ctx context.Context, create *ExportCreate) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Export, error)
	List(ctx context.Context, filter *ExportFilter) ([]*Export, error)
	MarkRunning(ctx context.Context, id uuid.UUID) error
	Finish(ctx context.Context, id uuid.UUID, result *ExportResult) error
}
