package cli

import (
	"fmt"

	"github.com/alexanderramin/bossboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBossesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bosses",
		Short: "List configured bosses and their worksheet columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(app.out(), formatter.FormatBosses(app.Config.Bosses))
			return nil
		},
	}
}
