package app

import (
	"log/slog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	api     TaskAPI
	baseURL string
	logger  *slog.Logger
}

// WithAPI replaces the HTTP client, mostly for tests
func WithAPI(api TaskAPI) Option {
	return func(cfg *appConfig) {
		cfg.api = api
	}
}

// WithBaseURL overrides the configured API root
func WithBaseURL(url string) Option {
	return func(cfg *appConfig) {
		cfg.baseURL = url
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
