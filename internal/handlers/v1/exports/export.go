package exports

import (
	"time"

	"github.com/carson-networks/fieldops-server/internal/service"
)

// Export is the API response model for an export ledger entry.
type Export struct {
	ID          string `json:"id" doc:"Export UUID"`
	Kind        string `json:"kind" doc:"Report kind"`
	Format      string `json:"format" doc:"File format"`
	Destination string `json:"destination" doc:"Sink the file was written to"`
	Trigger     string `json:"trigger" doc:"request or schedule"`
	Status      string `json:"status" enum:"pending,running,done,empty,failed" doc:"Job status"`
	FileName    string `json:"fileName,omitempty" doc:"Name of the written file"`
	Location    string `json:"location,omitempty" doc:"Path or object URL of the written file"`
	Rows        int    `json:"rows" doc:"Data rows in the file"`
	Bytes       int64  `json:"bytes" doc:"File size"`
	Error       string `json:"error,omitempty" doc:"Failure reason"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 request time"`
	CompletedAt string `json:"completedAt,omitempty" doc:"RFC3339 completion time"`
}

func exportFromService(e service.Export) Export {
	out := Export{
		ID:          e.ID.String(),
		Kind:        e.Kind,
		Format:      e.Format,
		Destination: e.Destination,
		Trigger:     e.Trigger,
		Status:      e.Status,
		FileName:    e.FileName,
		Location:    e.Location,
		Rows:        e.Rows,
		Bytes:       e.Bytes,
		Error:       e.Error,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
	if e.CompletedAt != nil {
		out.CompletedAt = e.CompletedAt.Format(time.RFC3339)
	}
	return out
}
