package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// row is one label/value line of a summary table.
type row struct {
	label string
	value string
}

// alignRows renders rows as two columns: labels padded on the right, values
// right-aligned. Widths are display cells, not bytes.
func alignRows(rows []row) []string {
	labelWidth, valueWidth := 0, 0
	for _, r := range rows {
		labelWidth = max(labelWidth, runewidth.StringWidth(r.label))
		valueWidth = max(valueWidth, runewidth.StringWidth(r.value))
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		var b strings.Builder
		b.WriteString(runewidth.FillRight(r.label, labelWidth))
		b.WriteByte(' ')
		b.WriteString(runewidth.FillLeft(r.value, valueWidth))
		lines = append(lines, b.String())
	}
	return lines
}
