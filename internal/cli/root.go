package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/bossboard/internal/cli/formatter"
	"github.com/alexanderramin/bossboard/internal/config"
	"github.com/alexanderramin/bossboard/internal/logging"
	"github.com/alexanderramin/bossboard/internal/metrics"
	"github.com/alexanderramin/bossboard/internal/repository"
	"github.com/alexanderramin/bossboard/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the configuration and services used by CLI commands. Roster,
// Logger and Metrics may be preset (tests do); otherwise the root command
// builds them from Config once flags are parsed.
type App struct {
	Config  *config.Config
	Roster  service.RosterService
	Logger  *zap.Logger
	Metrics *metrics.Metrics

	// OpenStore opens the roster store named by a store URL.
	OpenStore func(ctx context.Context, storeURL string) (repository.Workbook, error)
	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// RunProgram runs the dashboard model. Defaults to a full-screen
	// bubbletea program.
	RunProgram func(m tea.Model) error

	Out io.Writer

	store repository.Workbook
}

// globalFlags are bound to persistent flags on the root command and
// override the environment.
type globalFlags struct {
	store     string
	worksheet string
	bosses    string
	verbose   bool
}

// NewRootCmd creates the top-level "bossboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:   "bossboard",
		Short: "Guild boss-damage dashboard",
		Long: `bossboard records guild members' hits and damage per boss and shows
per-boss averages and total hits.

Run without arguments to open the dashboard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd.Context(), app)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.store, "store", "", "Roster store URL (sqlite path, csv://dir, postgres://, redis://)")
	pf.StringVar(&flags.worksheet, "worksheet", "", "Roster worksheet name (default \"Members\")")
	pf.StringVar(&flags.bosses, "bosses", "", "YAML file with the boss list")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Debug logging")

	root.AddCommand(
		newSummaryCmd(app),
		newSetCmd(app),
		newBossesCmd(app),
		newSeedCmd(app),
	)

	return root
}

// Execute runs root and then tears app down. Teardown also runs when the
// command fails, so error metrics still reach the textfile and the store is
// closed.
func Execute(ctx context.Context, app *App, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	return errors.Join(err, app.teardown())
}

// setup applies flag overrides, validates the configuration and wires the
// logger, metrics and roster service that were not preset.
func (a *App) setup(cmd *cobra.Command, flags globalFlags) error {
	if a.Config == nil {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		a.Config = cfg
	}
	cfg := a.Config
	if cmd.Flags().Changed("store") {
		cfg.Store = flags.store
	}
	if cmd.Flags().Changed("worksheet") {
		cfg.Worksheet = flags.worksheet
	}
	if cmd.Flags().Changed("bosses") {
		cfg.BossesFile = flags.bosses
		if err := cfg.ResolveBosses(); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if a.Logger == nil {
		logger, err := logging.New(cfg.LogFile, logging.Level(cfg.LogLevel, flags.verbose))
		if err != nil {
			return err
		}
		a.Logger = logger
	}
	if a.Metrics == nil {
		a.Metrics = metrics.New()
	}
	a.Logger.Debug("configuration loaded", zap.Stringer("config", cfg))

	if a.Roster != nil {
		return nil
	}
	open := a.OpenStore
	if open == nil {
		open = repository.Open
	}
	store, err := open(cmd.Context(), cfg.Store)
	if err != nil {
		return fmt.Errorf("opening roster store: %w", err)
	}
	a.store = store
	a.Roster = service.NewRosterService(store, cfg.Worksheet, cfg.Bosses,
		service.NewZapUseCaseObserver(a.Logger),
		service.NewMetricsUseCaseObserver(a.Metrics),
	)
	return nil
}

// teardown closes the store, writes the metrics textfile and flushes logs.
func (a *App) teardown() error {
	var firstErr error
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			firstErr = fmt.Errorf("closing roster store: %w", err)
		}
		a.store = nil
	}
	if a.Config != nil && a.Config.MetricsFile != "" && a.Metrics != nil {
		if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return firstErr
}

func (a *App) out() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stdout
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// spin shows a spinner on stderr while a store round trip runs. It only
// draws on a terminal.
func (a *App) spin(message string) func() {
	if !a.interactive() {
		return func() {}
	}
	return formatter.StartSpinner(os.Stderr, message)
}

func (a *App) runProgram(m tea.Model) error {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// runDashboard loads the roster and opens the dashboard. A load failure ends
// the run before any UI starts. Without a terminal it prints the summary.
func runDashboard(ctx context.Context, app *App) error {
	stop := app.spin("Loading " + app.Config.Worksheet)
	session, err := app.Roster.Load(ctx)
	stop()
	if err != nil {
		return err
	}
	if !app.interactive() {
		fmt.Fprint(app.out(), renderSessionSummary(session))
		return nil
	}
	return app.runProgram(newAppModel(app, session))
}
