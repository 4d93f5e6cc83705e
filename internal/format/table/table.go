package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes one table column.
type Column struct {
	Header string
	Align  Alignment
}

const gutter = "  "

// Format pads every cell to the widest entry of its column. Widths are
// measured in terminal cells. Trailing padding on the last column is dropped.
func Format(columns []Column, rows [][]string) []string {
	all := rows
	if hasHeaders(columns) {
		header := make([]string, len(columns))
		for i, c := range columns {
			header[i] = c.Header
		}
		all = append([][]string{header}, rows...)
	}
	if len(all) == 0 {
		return nil
	}
	widths := make([]int, len(columns))
	for _, row := range all {
		for c := 0; c < len(row) && c < len(widths); c++ {
			if w := lipgloss.Width(row[c]); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(all))
	for i, row := range all {
		var b strings.Builder
		for c, width := range widths {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString(gutter)
			}
			pad := width - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			if columns[c].Align == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if c < len(widths)-1 {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

// Write formats the rows and writes them to w, one per line.
func Write(w io.Writer, columns []Column, rows [][]string) error {
	for _, line := range Format(columns, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func hasHeaders(columns []Column) bool {
	for _, c := range columns {
		if c.Header != "" {
			return true
		}
	}
	return false
}
