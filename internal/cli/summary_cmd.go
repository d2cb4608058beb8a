package cli

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/alexanderramin/bossboard/internal/app"
	"github.com/alexanderramin/bossboard/internal/summary"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print per-boss averages and total hits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := app.spin("Loading " + app.Config.Worksheet)
			session, err := app.Roster.Load(cmd.Context())
			stop()
			if err != nil {
				return err
			}
			switch format {
			case "table":
				fmt.Fprint(app.out(), renderSessionSummary(session))
				return nil
			case "csv":
				return writeSummaryCSV(app.out(), session)
			default:
				return fmt.Errorf("unknown format %q (want table or csv)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or csv")

	return cmd
}

// writeSummaryCSV writes the overview without styling, one member per line,
// in the same column order as the table.
func writeSummaryCSV(w io.Writer, s *app.Session) error {
	table := s.Table()
	cw := csv.NewWriter(w)
	if err := cw.Write(summary.Columns(table.NameColumn, table.Bosses)); err != nil {
		return err
	}
	for _, row := range s.Summary() {
		if err := cw.Write(summary.Cells(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
