package cli

import (
	"strings"
)

// Table renders report rows as plain-text columns whose widths grow to fit
// the widest cell. Report cells are short single values (filenames,
// lightness, categories, hex colours), so there is no wrapping.
type Table struct {
	headers    []string
	rows       [][]string
	padding    int
	rightAlign map[int]bool
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:    headers,
		padding:    2, // 2 spaces between columns
		rightAlign: make(map[int]bool),
	}
}

// AlignRight right-aligns the given column, for numeric cells.
func (t *Table) AlignRight(colIndex int) {
	t.rightAlign[colIndex] = true
}

// AddRow adds a row, padded or truncated to the header count.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)

	var result strings.Builder
	t.writeLine(&result, t.headers, widths, gap)

	sepParts := make([]string, len(widths))
	for i, w := range widths {
		sepParts[i] = strings.Repeat("-", w)
	}
	result.WriteString(strings.Join(sepParts, gap))
	result.WriteString("\n")

	for _, row := range t.rows {
		t.writeLine(&result, row, widths, gap)
	}

	return result.String()
}

// writeLine writes one padded row, honouring per-column alignment.
func (t *Table) writeLine(result *strings.Builder, cells []string, widths []int, gap string) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if t.rightAlign[i] {
			parts[i] = padLeft(cell, widths[i])
		} else {
			parts[i] = padRight(cell, widths[i])
		}
	}
	result.WriteString(strings.Join(parts, gap))
	result.WriteString("\n")
}

// padRight pads a string with spaces on the right to reach the desired width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string with spaces on the left to reach the desired width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
