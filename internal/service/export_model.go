package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fieldops-server/internal/storage/sqlconfig"
)

// Export triggers recorded on the ledger.
const (
	TriggerRequest  = "request"
	TriggerSchedule = "schedule"
)

// DestinationLocal is the sink every deployment has.
const DestinationLocal = "local"

// ExportRequest asks for a report to be rendered and written to a sink.
type ExportRequest struct {
	Kind        string
	Format      string
	Destination string
	Trigger     string
	// Wait blocks until the export has finished instead of returning the
	// pending ledger row.
	Wait bool
}

// Export is a ledger entry in the service layer.
type Export struct {
	ID          uuid.UUID
	Kind        string
	Format      string
	Destination string
	Trigger     string
	Status      string
	FileName    string
	Location    string
	Rows        int
	Bytes       int64
	Error       string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// ExportCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type ExportCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
	Kind            string
}

func exportFromStorage(row *sqlconfig.Export) Export {
	return Export{
		ID:          row.ID,
		Kind:        row.Kind,
		Format:      row.Format,
		Destination: row.Destination,
		Trigger:     row.Trigger,
		Status:      string(row.Status),
		FileName:    row.FileName,
		Location:    row.Location,
		Rows:        row.Rows,
		Bytes:       row.Bytes,
		Error:       row.Error,
		CreatedAt:   row.CreatedAt,
		CompletedAt: row.CompletedAt,
	}
}
