package summary

import (
	"strings"

	"github.com/alexanderramin/bossboard/internal/domain"
)

// Fixed highlight for the total hits column.
const (
	TotalHitsBackground = "#ffffcc"
	bossForeground      = "#000000"
)

// StyleMap assigns display styles to overview columns. A column whose name
// contains a boss name takes that boss's colour; the total hits column is
// highlighted and bold. The result depends on column names only, so it
// applies to whole columns regardless of the values in them. Columns without
// a style are absent from the map.
func StyleMap(columns []string, bosses []domain.BossDefinition) map[string]domain.ColumnStyle {
	styles := make(map[string]domain.ColumnStyle, len(columns))
	for _, col := range columns {
		key := domain.CanonicalHeader(col)
		for _, b := range bosses {
			if strings.Contains(key, domain.CanonicalHeader(b.Name)) {
				styles[col] = domain.ColumnStyle{Background: b.Color, Foreground: bossForeground}
			}
		}
		if strings.Contains(key, domain.TotalHitsColumn) {
			styles[col] = domain.ColumnStyle{Background: TotalHitsBackground, Bold: true}
		}
	}
	return styles
}
