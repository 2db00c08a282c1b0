// Package app wires configuration, the API client and logging into one
// container shared by the TUI and the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/taskman/internal/client"
	"github.com/thenoetrevino/taskman/internal/config"
	"github.com/thenoetrevino/taskman/internal/models"
)

// TaskAPI is the task repository used by every surface
type TaskAPI interface {
	List(ctx context.Context) (*models.APIResponse[[]models.Task], error)
	Get(ctx context.Context, id string) (*models.APIResponse[models.Task], error)
	Create(ctx context.Context, task models.Task) (*models.APIResponse[models.Task], error)
	Update(ctx context.Context, id string, task models.Task) (*models.APIResponse[models.Task], error)
	Remove(ctx context.Context, id string) (*models.APIResponse[any], error)
}

// App holds the shared dependencies of the application
type App struct {
	Config *config.Config
	API    TaskAPI
	Logger *slog.Logger

	baseURL string
}

// New creates an App. Unless WithAPI is given, an HTTP client is built
// from the API section of the config.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	options := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&options)
	}

	baseURL := cfg.API.BaseURL
	if options.baseURL != "" {
		baseURL = options.baseURL
	}

	a := &App{
		Config:  cfg,
		API:     options.api,
		Logger:  options.logger,
		baseURL: baseURL,
	}

	if a.API == nil {
		c, err := client.New(baseURL,
			client.WithTimeout(cfg.API.Timeout),
			client.WithLogger(options.logger),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create API client: %w", err)
		}
		a.API = c
		a.baseURL = c.BaseURL()
	}

	return a, nil
}

// BaseURL returns the API root the app targets
func (a *App) BaseURL() string {
	return a.baseURL
}

// Close releases application resources
func (a *App) Close() error {
	return nil
}
