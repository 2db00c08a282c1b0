// Package launcher starts the interactive TUI.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/taskman/internal/app"
	"github.com/thenoetrevino/taskman/internal/config"
	"github.com/thenoetrevino/taskman/internal/logging"
	"github.com/thenoetrevino/taskman/internal/tui"
)

// Options tune a launch
type Options struct {
	// BaseURL overrides the configured API root when set
	BaseURL string
}

// Launch starts the TUI application
func Launch(opts Options) error {
	// Initialize logging to file before anything else
	logFile, err := logging.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.New(cfg,
		app.WithBaseURL(opts.BaseURL),
		app.WithLogger(logging.Logger),
	)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing application", "error", err)
		}
	}()

	cfg.API.BaseURL = application.BaseURL()
	slog.Info("starting tui", "api", cfg.API.BaseURL)

	model := tui.InitialModel(ctx, application.API, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
