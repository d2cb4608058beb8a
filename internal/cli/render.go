package cli

import (
	"github.com/alexanderramin/bossboard/internal/app"
	"github.com/alexanderramin/bossboard/internal/cli/formatter"
	"github.com/alexanderramin/bossboard/internal/summary"
)

// renderSessionSummary renders a session's overview with the guild footer.
func renderSessionSummary(s *app.Session) string {
	table := s.Table()
	totals := summary.GuildTotals(table)
	return formatter.FormatSummary(table.NameColumn, table.Bosses, s.Summary(), &totals)
}
