package serve

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskman/internal/cli"
	"github.com/thenoetrevino/taskman/internal/testutil"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(gin.EnvGinMode, gin.TestMode)

	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})
}

func TestServe_StopsOnCancel(t *testing.T) {
	isolate(t)
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := testutil.ExecuteCommandContext(t, ctx, ServeCmd(), "--addr", "127.0.0.1:0", "--db", ":memory:")

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestServe_FileDatabase(t *testing.T) {
	isolate(t)
	dbPath := filepath.Join(t.TempDir(), "tasks.db")
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	_, err := testutil.ExecuteCommandContext(t, ctx, ServeCmd(), "--addr", "127.0.0.1:0", "--db", dbPath)
	require.NoError(t, err)

	_, statErr := os.Stat(dbPath)
	assert.NoError(t, statErr)
}

// Edge case: the listen address is malformed
func TestServe_BadAddr(t *testing.T) {
	isolate(t)

	_, err := testutil.ExecuteCommandContext(t, context.Background(), ServeCmd(),
		"--addr", "not-an-address", "--db", ":memory:")

	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
}

func TestServe_RejectsArgs(t *testing.T) {
	isolate(t)

	_, err := testutil.ExecuteCommand(t, ServeCmd(), "extra")
	assert.Error(t, err)
}
