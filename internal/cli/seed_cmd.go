package cli

import (
	"fmt"

	"github.com/alexanderramin/bossboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <member>...",
		Short: "Create the roster worksheet with the given members",
		Long: `Create the roster worksheet in an empty store. Every member starts with
zero hits and damage against every boss. An existing worksheet is left
untouched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Roster.Seed(cmd.Context(), args); err != nil {
				return err
			}
			fmt.Fprintln(app.out(), formatter.Success(fmt.Sprintf("created %s with %d members", app.Config.Worksheet, len(args))))
			return nil
		},
	}
}
