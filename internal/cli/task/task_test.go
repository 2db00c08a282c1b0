package task

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskman/internal/app"
	"github.com/thenoetrevino/taskman/internal/cli"
	"github.com/thenoetrevino/taskman/internal/config"
	"github.com/thenoetrevino/taskman/internal/testutil"
)

// setupCLITest starts the reference API and returns a context whose App targets it
func setupCLITest(t *testing.T) (*testutil.TestAPI, context.Context) {
	t.Helper()
	api := testutil.SetupTestAPI(t)

	a, err := app.New(config.Default(), app.WithBaseURL(api.BaseURL()))
	require.NoError(t, err)

	return api, cli.WithApp(context.Background(), a)
}

func run(t *testing.T, ctx context.Context, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	return testutil.ExecuteCommandContext(t, ctx, cmd, args...)
}

func TestTaskCmd_Subcommands(t *testing.T) {
	cmd := TaskCmd()

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"list", "show", "create", "update", "delete"} {
		require.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestTaskCmd_LogsToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})
	home := t.TempDir()
	t.Setenv("HOME", home)
	_, ctx := setupCLITest(t)

	output, err := run(t, ctx, TaskCmd(), "create", "--title", "Buy milk", "--quiet")
	require.NoError(t, err)
	id := strings.TrimSpace(output)
	require.NotEmpty(t, id)

	data, err := os.ReadFile(filepath.Join(home, ".taskman", "logs", "taskman.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "task created")
	assert.Contains(t, string(data), id)
}
