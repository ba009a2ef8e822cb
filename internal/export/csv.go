package export

import (
	"bytes"
	"encoding/csv"
)

// CSV writes a header row followed by one line per row. Cells containing a
// comma, quote or newline, or starting with a space, are quoted and embedded
// quotes are doubled. Lines are joined with \n and there is no trailing
// newline.
type CSV struct{}

func (CSV) Extension() string   { return "csv" }
func (CSV) ContentType() string { return "text/csv" }

func (CSV) Render(table Table) ([]byte, error) {
	if table.Empty() {
		return nil, ErrNoData
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(table.Columns); err != nil {
		return nil, err
	}

	line := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, v := range row {
			line[i] = formatCell(v)
		}
		if err := w.Write(line); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
