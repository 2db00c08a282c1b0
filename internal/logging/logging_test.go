package logging

import (
	"bytes"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefaults(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})
}

func TestInstall(t *testing.T) {
	restoreDefaults(t)
	var buf bytes.Buffer

	logger := Install(&buf, slog.LevelInfo)
	slog.Info("task saved", "id", "1")
	slog.Debug("hidden")
	log.Print("from std log")

	assert.Same(t, logger, Logger)
	out := buf.String()
	assert.Contains(t, out, "task saved")
	assert.Contains(t, out, "id=1")
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "from std log")
}

func TestInit_WritesUnderHome(t *testing.T) {
	restoreDefaults(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	closer, err := Init()
	require.NoError(t, err)
	slog.Debug("debug line")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(home, ".taskman", "logs", "taskman.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug line")
}
