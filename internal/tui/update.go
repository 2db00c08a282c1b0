package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/taskman/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		m.help.SetWidth(msg.Width)
		return m, nil

	case tasksLoadedMsg:
		eff := m.Session.TasksLoaded(msg.seq, msg.resp, msg.err)
		m.surfaceNotice("list")
		m.UiState.ClampSelection(len(m.Session.Tasks()))
		return m, m.runEffect(eff)

	case taskSavedMsg:
		return m.handleTaskSaved(msg)

	case taskRemovedMsg:
		eff := m.Session.TaskRemoved(msg.id, msg.resp, msg.err)
		if !m.surfaceNotice("delete") {
			m.NotificationState.Add(state.LevelInfo, "Task deleted")
		}
		return m, m.runEffect(eff)
	}

	// Forms need every message, not just key presses
	if m.UiState.Mode() == state.FormMode {
		return m.updateTaskForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		return m.handleKeyMsg(keyMsg)
	}
	return m, nil
}

// handleKeyMsg dispatches key presses by mode
func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.DetailMode:
		return m.handleDetailMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleNormalMode handles the task list keys
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.UiState.MoveUp()

	case key.Matches(msg, m.keys.Down):
		m.UiState.MoveDown(len(m.Session.Tasks()))

	case key.Matches(msg, m.keys.Add):
		m.NotificationState.Clear()
		m.Session.ShowAddForm()
		return m.openTaskForm()

	case key.Matches(msg, m.keys.Edit):
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.NotificationState.Clear()
		m.Session.EditTask(task)
		return m.openTaskForm()

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.Session.RequestDelete(task.ID)
		m.UiState.SetMode(state.DeleteConfirmMode)

	case key.Matches(msg, m.keys.View):
		if task, ok := m.selectedTask(); ok {
			m.UiState.ShowDetail(task.ID)
		}

	case key.Matches(msg, m.keys.Reload):
		m.NotificationState.Clear()
		return m, m.runEffect(m.Session.Reload())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = true
		m.UiState.SetMode(state.HelpMode)

	case key.Matches(msg, m.keys.Cancel):
		m.NotificationState.Clear()
	}

	return m, nil
}

// handleDeleteConfirm handles task deletion confirmation.
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.UiState.SetMode(state.NormalMode)
		return m, m.runEffect(m.Session.ConfirmDelete(true))
	case "n", "N", "esc":
		m.UiState.SetMode(state.NormalMode)
		return m, m.runEffect(m.Session.ConfirmDelete(false))
	}
	return m, nil
}

// handleDetailMode handles keys while the detail pane is open
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		task, ok := m.Session.TaskByID(m.UiState.DetailTaskID())
		if !ok {
			m.UiState.SetMode(state.NormalMode)
			return m, nil
		}
		m.Session.EditTask(task)
		return m.openTaskForm()

	case key.Matches(msg, m.keys.Cancel, m.keys.View, m.keys.Quit):
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleHelpMode closes the help screen
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help, m.keys.Cancel, m.keys.Quit) {
		m.help.ShowAll = false
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}
