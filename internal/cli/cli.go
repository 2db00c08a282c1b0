// Package cli holds the pieces shared by the scriptable commands: the
// application context, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskman/internal/app"
	"github.com/thenoetrevino/taskman/internal/config"
	"github.com/thenoetrevino/taskman/internal/logging"
)

// APIFlag is the persistent flag overriding the configured API root
const APIFlag = "api"

// CLI represents the CLI application context
type CLI struct {
	App *app.App
	ctx context.Context
}

type appKey struct{}

// WithApp returns a context carrying a prepared App. Commands run with
// such a context use it instead of building their own.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// GetCLIFromContext returns the CLI for cmd, preferring an App injected
// with WithApp over one built from config and the --api flag.
func GetCLIFromContext(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a, ctx: ctx}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	var opts []app.Option
	if f := cmd.Flag(APIFlag); f != nil && f.Value.String() != "" {
		opts = append(opts, app.WithBaseURL(f.Value.String()))
	}
	if logging.Logger != nil {
		opts = append(opts, app.WithLogger(logging.Logger))
	}

	a, err := app.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &CLI{App: a, ctx: ctx}, nil
}

// Context returns the command context
func (c *CLI) Context() context.Context {
	return c.ctx
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
