package cli

import (
	"fmt"

	"github.com/alexanderramin/bossboard/internal/cli/formatter"
	"github.com/alexanderramin/bossboard/internal/domain"
	"github.com/alexanderramin/bossboard/internal/summary"
	"github.com/spf13/cobra"
)

func newSetCmd(app *App) *cobra.Command {
	var hits int
	var damage int64
	var save bool

	cmd := &cobra.Command{
		Use:   "set <member> <boss>",
		Short: "Record hits and damage for one member against one boss",
		Long: `Record hits and damage for one member against one boss. The boss is
named or given by its 1-based position. Values not passed keep what the
worksheet holds. Nothing is written unless --save is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			stop := app.spin("Loading " + app.Config.Worksheet)
			session, err := app.Roster.Load(ctx)
			stop()
			if err != nil {
				return err
			}
			table := session.Table()
			boss, err := domain.FindBoss(table.Bosses, args[1])
			if err != nil {
				return err
			}
			idx, ok := table.Find(args[0])
			if !ok {
				return fmt.Errorf("member %q: %w", args[0], domain.ErrMemberNotFound)
			}

			row := table.Rows[idx]
			edit := domain.CellEdit{Name: row.Name, Hits: row.Hits[boss.Index-1], Damage: row.Damage[boss.Index-1]}
			if cmd.Flags().Changed("hits") {
				edit.Hits = hits
			}
			if cmd.Flags().Changed("damage") {
				edit.Damage = damage
			}
			if err := app.Roster.Edit(ctx, session, boss, edit); err != nil {
				return err
			}

			avg := summary.Average(edit.Damage, edit.Hits)
			fmt.Fprintf(app.out(), "%s  %s: %d hits, %d damage, avg %s\n",
				formatter.Bold(row.Name), boss.Name, edit.Hits, edit.Damage, summary.FormatAverage(avg))
			fmt.Fprintf(app.out(), "  %s\n", formatter.RenderHitBar(edit.Hits, domain.MaxHits, domain.MaxHits))

			if !save {
				if session.Dirty() {
					fmt.Fprintln(app.out(), formatter.Dim("not saved (pass --save to write the worksheet)"))
				}
				return nil
			}
			if !session.Dirty() {
				fmt.Fprintln(app.out(), formatter.Dim("no change to save"))
				return nil
			}
			stop = app.spin("Saving " + session.Worksheet)
			err = app.Roster.Save(ctx, session)
			stop()
			if err != nil {
				return err
			}
			fmt.Fprintln(app.out(), formatter.Success("saved "+session.Worksheet))
			return nil
		},
	}

	cmd.Flags().IntVar(&hits, "hits", 0, fmt.Sprintf("Hits against the boss (0-%d)", domain.MaxHits))
	cmd.Flags().Int64Var(&damage, "damage", 0, "Total damage dealt to the boss")
	cmd.Flags().BoolVar(&save, "save", false, "Write the worksheet after the edit")

	return cmd
}
