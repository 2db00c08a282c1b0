// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Dir returns the log directory, ~/.taskman/logs
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".taskman", "logs"), nil
}

// Init initializes the logging system, writing logs to ~/.taskman/logs/taskman.log
// Uses text format for human readability. The returned closer releases the file.
func Init() (io.Closer, error) {
	file, err := openFile()
	if err != nil {
		return nil, err
	}
	Install(file, slog.LevelDebug)
	return file, nil
}

// InitStderr logs to stderr as well as the log file. Used by serve.
func InitStderr(level slog.Level) io.Closer {
	file, err := openFile()
	if err != nil {
		// A read-only home should not stop the server
		Install(os.Stderr, level)
		slog.Warn("file logging disabled", "error", err)
		return io.NopCloser(nil)
	}
	Install(io.MultiWriter(os.Stderr, file), level)
	return file
}

func openFile() (*os.File, error) {
	logDir, err := Dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open log file in append mode
	file, err := os.OpenFile(filepath.Join(logDir, "taskman.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Install points the default slog logger and the standard log package at w
func Install(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)
	return Logger
}
