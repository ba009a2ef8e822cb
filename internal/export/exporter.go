package export

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownFormat = errors.New("unknown export format")

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
)

// Exporter renders a Table into the bytes of a single file.
type Exporter interface {
	Extension() string
	ContentType() string
	Render(table Table) ([]byte, error)
}

// File is a rendered export ready to be streamed or written to a Sink.
type File struct {
	Name        string
	ContentType string
	Data        []byte
	// Rows is the number of data rows, 0 for free-form reports.
	Rows int
}

func ExporterFor(format Format) (Exporter, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatCSV:
		return CSV{}, nil
	case FormatJSON:
		return JSON{}, nil
	case FormatXLSX:
		return XLSX{}, nil
	case FormatXLS:
		return HTMLSpreadsheet{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// RenderFile renders table in the given format and names the result
// {prefix}-{date}.{ext}. An empty table yields ErrNoData and no file.
func RenderFile(table Table, format Format, prefix string, now time.Time) (*File, error) {
	exporter, err := ExporterFor(format)
	if err != nil {
		return nil, err
	}
	if table.Empty() {
		return nil, ErrNoData
	}

	data, err := exporter.Render(table)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", exporter.Extension(), err)
	}

	return &File{
		Name:        FileName(prefix, exporter.Extension(), now),
		ContentType: exporter.ContentType(),
		Data:        data,
		Rows:        len(table.Rows),
	}, nil
}

// FileName builds the download name used for every export. The date is the
// UTC calendar day.
func FileName(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", prefix, now.UTC().Format(time.DateOnly), ext)
}
