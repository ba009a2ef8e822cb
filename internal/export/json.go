package export

import (
	"bytes"
	"encoding/json"
)

// JSON renders the table as an indented array of objects whose keys keep the
// column order.
type JSON struct{}

func (JSON) Extension() string   { return "json" }
func (JSON) ContentType() string { return "application/json" }

func (JSON) Render(table Table) ([]byte, error) {
	if table.Empty() {
		return nil, ErrNoData
	}

	var compact bytes.Buffer
	compact.WriteByte('[')
	for i, row := range table.Rows {
		if i > 0 {
			compact.WriteByte(',')
		}
		compact.WriteByte('{')
		for j, col := range table.Columns {
			if j > 0 {
				compact.WriteByte(',')
			}
			if err := writeJSONValue(&compact, col); err != nil {
				return nil, err
			}
			compact.WriteByte(':')
			if err := writeJSONValue(&compact, row[j]); err != nil {
				return nil, err
			}
		}
		compact.WriteByte('}')
	}
	compact.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode always terminates with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
