package output

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Table writes rows under a header: a box-drawn table in text mode and a
// markdown table otherwise. JSON callers should use JSON instead.
func (r *Renderer) Table(header []string, rows [][]any) {
	if len(rows) == 0 {
		r.Println("(0 rows)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, v := range row {
			tr[i] = formatValue(v)
		}
		t.AppendRow(tr)
	}

	if r.EffectiveMode() == ModeText {
		if r.isTTY {
			t.SetStyle(table.StyleLight)
		} else {
			t.SetStyle(table.StyleDefault)
		}
		t.Render()
		return
	}
	t.RenderMarkdown()
}

// formatValue prints floats without trailing zeros.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return fmt.Sprintf("%g", x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
