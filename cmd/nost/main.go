package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nost-not/nost/internal/cli"
	"github.com/nost-not/nost/internal/config"
	"github.com/nost-not/nost/internal/notestore"
	"github.com/nost-not/nost/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}
	if cfg.NotPath == "" {
		return fmt.Errorf("no note path configured; set not_path in %s or NOST_NOT_PATH", config.DefaultPath())
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	store := notestore.New(cfg.NotPath)

	noteSvc := service.NewNoteService(store, cfg.Language)

	// Pipeline telemetry only when the configured level asks for it.
	var observers []service.PipelineObserver
	if cfg.SlogLevel() <= slog.LevelInfo {
		observers = append(observers, service.NewLogPipelineObserver(os.Stderr))
	}
	workSvc := service.NewWorkService(store, noteSvc, logger, observers...)

	app := &cli.App{
		Notes:      noteSvc,
		Work:       workSvc,
		Config:     cfg,
		AppendNote: store.Append,
	}

	// Prompt for input only on an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
