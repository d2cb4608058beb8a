package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/bossboard/internal/cli"
	"github.com/alexanderramin/bossboard/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env, then BOSSBOARD_* variables; flags override in the root command.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	app := &cli.App{Config: cfg}

	// The dashboard needs a terminal; without one the root command prints
	// the summary instead.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.Execute(context.Background(), app, cli.NewRootCmd(app))
}
