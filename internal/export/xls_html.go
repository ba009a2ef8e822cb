package export

import (
	"bytes"
	"html"
)

// HTMLSpreadsheet is the legacy .xls download: an HTML table served with the
// Excel content type, which spreadsheet tools open as a workbook.
type HTMLSpreadsheet struct{}

func (HTMLSpreadsheet) Extension() string   { return "xls" }
func (HTMLSpreadsheet) ContentType() string { return "application/vnd.ms-excel" }

func (HTMLSpreadsheet) Render(table Table) ([]byte, error) {
	if table.Empty() {
		return nil, ErrNoData
	}

	var buf bytes.Buffer
	buf.WriteString("<table><thead><tr>")
	for _, col := range table.Columns {
		buf.WriteString("<th>")
		buf.WriteString(html.EscapeString(col))
		buf.WriteString("</th>")
	}
	buf.WriteString("</tr></thead><tbody>")
	for _, row := range table.Rows {
		buf.WriteString("<tr>")
		for _, v := range row {
			buf.WriteString("<td>")
			buf.WriteString(html.EscapeString(formatCell(v)))
			buf.WriteString("</td>")
		}
		buf.WriteString("</tr>")
	}
	buf.WriteString("</tbody></table>")

	return buf.Bytes(), nil
}
