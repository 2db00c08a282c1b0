package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/taskman/internal/models"
	"github.com/thenoetrevino/taskman/internal/tui/state"
)

// Completion messages carry API results back into Update

type tasksLoadedMsg struct {
	seq  uint64
	resp *models.APIResponse[[]models.Task]
	err  error
}

type taskSavedMsg struct {
	created bool
	resp    *models.APIResponse[models.Task]
	err     error
}

type taskRemovedMsg struct {
	id   string
	resp *models.APIResponse[any]
	err  error
}

// runEffect turns a session effect into a command calling the API
func (m Model) runEffect(eff state.Effect) tea.Cmd {
	switch e := eff.(type) {
	case state.LoadTasks:
		return func() tea.Msg {
			ctx, cancel := m.requestContext()
			defer cancel()
			resp, err := m.api.List(ctx)
			return tasksLoadedMsg{seq: e.Seq, resp: resp, err: err}
		}

	case state.CreateTask:
		return func() tea.Msg {
			ctx, cancel := m.requestContext()
			defer cancel()
			resp, err := m.api.Create(ctx, e.Draft)
			return taskSavedMsg{created: true, resp: resp, err: err}
		}

	case state.UpdateTask:
		return func() tea.Msg {
			ctx, cancel := m.requestContext()
			defer cancel()
			resp, err := m.api.Update(ctx, e.ID, e.Task)
			return taskSavedMsg{resp: resp, err: err}
		}

	case state.RemoveTask:
		return func() tea.Msg {
			ctx, cancel := m.requestContext()
			defer cancel()
			resp, err := m.api.Remove(ctx, e.ID)
			return taskRemovedMsg{id: e.ID, resp: resp, err: err}
		}

	case nil:
		return nil

	default:
		slog.Warn("unhandled effect", "effect", eff)
		return nil
	}
}

// surfaceNotice moves a session failure into the notification area
func (m Model) surfaceNotice(action string) bool {
	notice := m.Session.Notice()
	if notice == "" {
		return false
	}
	slog.Error("task api call failed", "action", action, "error", notice)
	m.NotificationState.Add(state.LevelError, notice)
	m.Session.ClearNotice()
	return true
}
