package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Add padding between columns.
const colGap = 2

// columnWidths returns the visible width of the widest cell per column.
func columnWidths(headers []string, rows ...[][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, set := range rows {
		for _, row := range set {
			for i := 0; i < len(widths) && i < len(row); i++ {
				if w := lipgloss.Width(row[i]); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	return widths
}

func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

func padLeft(s string, width int) string {
	return strings.Repeat(" ", max(width-lipgloss.Width(s), 0)) + s
}

// RenderTable renders a simple aligned table with a header separator line.
// Headers are rendered with the Header style. Columns are padded to the
// maximum width found in each column across both headers and rows.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	widths := columnWidths(headers, rows)
	last := len(headers) - 1

	var b strings.Builder
	for i, h := range headers {
		if i < last {
			b.WriteString(StyleHeader.Render(padRight(h, widths[i]+colGap)))
		} else {
			b.WriteString(StyleHeader.Render(h))
		}
	}
	b.WriteString("\n")
	writeRule(&b, widths)

	for _, row := range rows {
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(cell)
			if i < last {
				b.WriteString(strings.Repeat(" ", max(widths[i]-lipgloss.Width(cell), 0)+colGap))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderStyledTable renders a table where every column carries its own
// style. The style covers the padded cell, so a background fills the whole
// column. The first column is left-aligned and the rest right-aligned. A
// non-nil footer is drawn below a rule and in bold.
func RenderStyledTable(headers []string, rows [][]string, styles []lipgloss.Style, footer []string) string {
	if len(headers) == 0 {
		return ""
	}
	var extra [][]string
	if footer != nil {
		extra = [][]string{footer}
	}
	widths := columnWidths(headers, rows, extra)

	styleAt := func(i int) lipgloss.Style {
		if i < len(styles) {
			return styles[i]
		}
		return lipgloss.NewStyle()
	}
	cellText := func(row []string, i int) string {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		// One space of breathing room inside coloured columns.
		if i == 0 {
			return " " + padRight(cell, widths[i]) + " "
		}
		return " " + padLeft(cell, widths[i]) + " "
	}
	writeRow := func(b *strings.Builder, row []string, bold bool) {
		for i := range headers {
			st := styleAt(i)
			if bold {
				st = st.Bold(true)
			}
			b.WriteString(st.Render(cellText(row, i)))
		}
		b.WriteString("\n")
	}

	var b strings.Builder
	for i, h := range headers {
		st := styleAt(i)
		if _, unset := st.GetBackground().(lipgloss.NoColor); unset {
			st = StyleHeader
		} else {
			st = st.Bold(true)
		}
		b.WriteString(st.Render(" " + padRight(h, widths[i]) + " "))
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(&b, row, false)
	}
	if footer != nil {
		total := 0
		for _, w := range widths {
			total += w + 2
		}
		b.WriteString(StyleDim.Render(strings.Repeat("─", total)))
		b.WriteString("\n")
		writeRow(&b, footer, true)
	}
	return b.String()
}

func writeRule(b *strings.Builder, widths []int) {
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}
