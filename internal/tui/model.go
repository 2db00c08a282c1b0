// Package tui implements the interactive task list on bubbletea.
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/taskman/internal/config"
	"github.com/thenoetrevino/taskman/internal/models"
	"github.com/thenoetrevino/taskman/internal/tui/components"
	"github.com/thenoetrevino/taskman/internal/tui/state"
	"github.com/thenoetrevino/taskman/internal/tui/theme"
)

// TaskAPI is the task repository the TUI talks to
type TaskAPI interface {
	List(ctx context.Context) (*models.APIResponse[[]models.Task], error)
	Get(ctx context.Context, id string) (*models.APIResponse[models.Task], error)
	Create(ctx context.Context, task models.Task) (*models.APIResponse[models.Task], error)
	Update(ctx context.Context, id string, task models.Task) (*models.APIResponse[models.Task], error)
	Remove(ctx context.Context, id string) (*models.APIResponse[any], error)
}

// Model represents the application state for the TUI
type Model struct {
	ctx     context.Context
	api     TaskAPI
	Config  *config.Config
	timeout time.Duration
	keys    keyMap
	help    help.Model

	Session           *state.Session
	UiState           *state.UIState
	FormState         *state.FormState
	NotificationState *state.NotificationState
}

// InitialModel creates the TUI model. Nothing is fetched until Init runs.
func InitialModel(ctx context.Context, api TaskAPI, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	theme.Init(cfg.ColorScheme)
	components.InitStyles()

	return Model{
		ctx:               ctx,
		api:               api,
		Config:            cfg,
		timeout:           cfg.API.Timeout,
		keys:              newKeyMap(cfg.KeyMappings),
		help:              help.New(),
		Session:           state.NewSession(),
		UiState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
	}
}

// Init loads the task list
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.runEffect(m.Session.Start())
}

// requestContext bounds one API call
func (m Model) requestContext() (context.Context, context.CancelFunc) {
	if m.timeout <= 0 {
		return context.WithCancel(m.ctx)
	}
	return context.WithTimeout(m.ctx, m.timeout)
}

// selectedTask returns the highlighted task
func (m Model) selectedTask() (models.Task, bool) {
	tasks := m.Session.Tasks()
	idx := m.UiState.Selected()
	if idx < 0 || idx >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[idx], true
}
