// Package export turns fetched records into downloadable files: CSV, JSON,
// spreadsheets and the plain-text branch report.
package export

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

var ErrNoData = errors.New("no data to export")

// Field is one labelled cell of a Record.
type Field struct {
	Label string
	Value any
}

// Record is an ordered set of labelled values, the shape every Flatten*
// function produces.
type Record []Field

func (r Record) Get(label string) (any, bool) {
	for _, f := range r {
		if f.Label == label {
			return f.Value, true
		}
	}
	return nil, false
}

// Table is a rectangular view over records. Columns come from the first
// record; later records missing a column get an empty cell.
type Table struct {
	Columns []string
	Rows    [][]any
}

func NewTable(records []Record) Table {
	if len(records) == 0 {
		return Table{}
	}

	columns := make([]string, len(records[0]))
	for i, f := range records[0] {
		columns[i] = f.Label
	}

	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(columns))
		for j, col := range columns {
			if v, ok := rec.Get(col); ok {
				row[j] = v
			} else {
				row[j] = ""
			}
		}
		rows[i] = row
	}

	return Table{Columns: columns, Rows: rows}
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case decimal.Decimal:
		return val.String()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
