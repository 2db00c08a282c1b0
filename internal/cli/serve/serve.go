// Package serve implements `taskman serve`, the reference task API.
package serve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskman/internal/cli"
	"github.com/thenoetrevino/taskman/internal/database"
	"github.com/thenoetrevino/taskman/internal/logging"
	"github.com/thenoetrevino/taskman/internal/server"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the task API server",
		Long: `Run the REST task API on a local SQLite database.

Examples:
  taskman serve
  taskman serve --addr=127.0.0.1:8080 --db=/tmp/tasks.db
  taskman serve --db=:memory:
`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", server.DefaultAddr, "Listen address")
	cmd.Flags().String("db", "", "SQLite database path (default ~/.taskman/tasks.db, :memory: for a throwaway store)")
	cmd.Flags().Bool("debug", false, "Log at debug level and run gin in debug mode")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	dbPath, _ := cmd.Flags().GetString("db")
	debug, _ := cmd.Flags().GetBool("debug")

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logFile := logging.InitStderr(level)
	defer func() { _ = logFile.Close() }()

	if debug {
		gin.SetMode(gin.DebugMode)
	} else if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if dbPath == "" {
		path, err := database.DefaultPath()
		if err != nil {
			return cli.WithExitCode(cli.ExitError, fmt.Errorf("failed to resolve database path: %w", err))
		}
		dbPath = path
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return cli.WithExitCode(cli.ExitError, fmt.Errorf("failed to initialize database: %w", err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	slog.Info("database ready", "path", dbPath)

	srv := server.NewServer(addr, database.NewTaskRepository(db), logging.Logger)
	if err := srv.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return cli.WithExitCode(cli.ExitError, err)
	}
	return nil
}
