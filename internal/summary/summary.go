// Package summary derives the per-member overview from the working table:
// average damage per hit for every boss and total hits across bosses.
// Everything here is a pure function of its inputs.
package summary

import (
	"strconv"

	"github.com/alexanderramin/bossboard/internal/domain"
)

// Summarize computes one SummaryRow per member in table order. The average
// for a boss is damage / hits, and exactly 0 when hits is 0 even if damage
// was recorded.
func Summarize(table *domain.WorkingTable) []domain.SummaryRow {
	if table == nil {
		return nil
	}
	rows := make([]domain.SummaryRow, 0, len(table.Rows))
	for _, r := range table.Rows {
		out := domain.SummaryRow{
			Name:     r.Name,
			Averages: make([]float64, len(table.Bosses)),
		}
		for i := range table.Bosses {
			out.Averages[i] = Average(r.Damage[i], r.Hits[i])
			out.TotalHits += r.Hits[i]
		}
		rows = append(rows, out)
	}
	return rows
}

// Average is damage per hit, 0 when there are no hits.
func Average(damage int64, hits int) float64 {
	if hits <= 0 {
		return 0
	}
	return float64(damage) / float64(hits)
}

// GuildTotals aggregates the whole roster into a single footer row: the
// average per hit over everyone's damage and hits for each boss, and the
// overall hit count.
func GuildTotals(table *domain.WorkingTable) domain.SummaryRow {
	out := domain.SummaryRow{Name: "Guild"}
	if table == nil {
		return out
	}
	out.Averages = make([]float64, len(table.Bosses))
	for i := range table.Bosses {
		var damage int64
		var hits int
		for _, r := range table.Rows {
			damage += r.Damage[i]
			hits += r.Hits[i]
		}
		out.Averages[i] = Average(damage, hits)
		out.TotalHits += hits
	}
	return out
}

// Columns returns the overview's column names: the identity column, one
// average column per boss, then the total hits column.
func Columns(nameColumn string, bosses []domain.BossDefinition) []string {
	cols := make([]string, 0, len(bosses)+2)
	cols = append(cols, nameColumn)
	for _, b := range bosses {
		cols = append(cols, b.AverageColumn())
	}
	return append(cols, domain.TotalHitsColumn)
}

// Cells renders a summary row as display strings aligned with Columns.
func Cells(row domain.SummaryRow) []string {
	cells := make([]string, 0, len(row.Averages)+2)
	cells = append(cells, row.Name)
	for _, avg := range row.Averages {
		cells = append(cells, FormatAverage(avg))
	}
	return append(cells, FormatTotal(row.TotalHits))
}

// FormatAverage renders an average with two decimals.
func FormatAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatTotal renders a hit count with no decimals.
func FormatTotal(n int) string {
	return strconv.Itoa(n)
}
