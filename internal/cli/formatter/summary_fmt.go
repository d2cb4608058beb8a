package formatter

import (
	"strings"

	"github.com/alexanderramin/bossboard/internal/domain"
	"github.com/alexanderramin/bossboard/internal/summary"
	"github.com/charmbracelet/lipgloss"
)

// FormatSummary renders the read-only overview: one row per member with
// per-boss averages and total hits, boss columns in the boss colours, and a
// guild total footer when totals is non-nil.
func FormatSummary(nameColumn string, bosses []domain.BossDefinition, rows []domain.SummaryRow, totals *domain.SummaryRow) string {
	columns := summary.Columns(nameColumn, bosses)
	styleMap := summary.StyleMap(columns, bosses)

	styles := make([]lipgloss.Style, len(columns))
	for i, col := range columns {
		if cs, ok := styleMap[col]; ok {
			styles[i] = ColumnStyle(cs)
		} else {
			styles[i] = lipgloss.NewStyle()
		}
	}

	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = summary.Cells(r)
	}
	var footer []string
	if totals != nil {
		footer = summary.Cells(*totals)
	}
	if len(rows) == 0 {
		return RenderStyledTable(columns, nil, styles, footer) + Dim("  no members yet") + "\n"
	}
	return RenderStyledTable(columns, cells, styles, footer)
}

// FormatBosses lists the configured bosses with their colours and the
// worksheet columns they own.
func FormatBosses(bosses []domain.BossDefinition) string {
	rows := make([][]string, len(bosses))
	for i, b := range bosses {
		rows[i] = []string{
			BossStyle(b).Render(" " + b.Name + " "),
			Swatch(b),
			b.DamageColumn(),
			b.HitsColumn(),
			b.AverageColumn(),
		}
	}
	var sb strings.Builder
	sb.WriteString(Header("Bosses"))
	sb.WriteString("\n")
	sb.WriteString(RenderTable([]string{"Boss", "Colour", "Damage", "Hits", "Summary"}, rows))
	return sb.String()
}
