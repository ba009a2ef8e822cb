package report

import (
	"context"
	"fmt"

	"github.com/carson-networks/fieldops-server/internal/export"
)

// FileOutput streams a rendered export as an attachment.
type FileOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

func newFileOutput(file *export.File) *FileOutput {
	return &FileOutput{
		ContentType:        file.ContentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", file.Name),
		Body:               file.Data,
	}
}

type reportRenderer interface {
	Render(ctx context.Context, kind, format string) (*export.File, error)
}

type branchReporter interface {
	BranchReport(ctx context.Context) (*export.File, error)
}
