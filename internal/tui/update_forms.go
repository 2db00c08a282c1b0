package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/taskman/internal/models"
	"github.com/thenoetrevino/taskman/internal/tui/huhforms"
	"github.com/thenoetrevino/taskman/internal/tui/layers"
	"github.com/thenoetrevino/taskman/internal/tui/state"
)

// formChromeHeight is the modal space not available to the description field
const formChromeHeight = 22

// openTaskForm builds the huh form around the session's current draft
func (m Model) openTaskForm() (tea.Model, tea.Cmd) {
	m.FormState.LoadFrom(m.Session.CurrentTask())
	m.buildTaskForm()
	m.UiState.SetMode(state.FormMode)
	return m, m.FormState.TaskForm.Init()
}

// buildTaskForm binds a fresh form to the FormState values
func (m Model) buildTaskForm() {
	_, modalHeight := layers.ModalSize(m.UiState.Width(), m.UiState.Height())
	descriptionLines := max(modalHeight-formChromeHeight, 3)

	form := huhforms.CreateTaskForm(huhforms.TaskFields{
		Title:       &m.FormState.Title,
		Description: &m.FormState.Description,
		Status:      &m.FormState.Status,
		Priority:    &m.FormState.Priority,
		DueDate:     &m.FormState.DueDate,
	}, descriptionLines).WithTheme(huhforms.CreateTaskmanTheme(m.Config.ColorScheme))

	m.FormState.TaskForm = form
}

// updateTaskForm handles all messages when in FormMode
func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.Session.CancelEdit()
			m.FormState.Clear()
			m.UiState.SetMode(state.NormalMode)
			return m, tea.ClearScreen

		case key.Matches(keyMsg, m.keys.Save):
			return m.submitTaskForm()
		}
	}

	return m.handleFormUpdate(msg)
}

// handleFormUpdate forwards msg to the form and submits on completion
func (m Model) handleFormUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.FormState.TaskForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	model, cmd := m.FormState.TaskForm.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.FormState.TaskForm = form
	}

	if m.FormState.TaskForm.State == huh.StateCompleted {
		return m.submitTaskForm()
	}
	return m, cmd
}

// submitTaskForm copies the form into the draft and saves it
func (m Model) submitTaskForm() (tea.Model, tea.Cmd) {
	if m.Session.Saving() {
		return m, nil
	}

	if err := huhforms.ValidateTitle(m.FormState.Title); err != nil {
		return m.rejectForm(err)
	}
	if err := huhforms.ValidateDueDate(m.FormState.DueDate); err != nil {
		return m.rejectForm(err)
	}

	m.Session.UpdateDraft(func(t *models.Task) {
		m.FormState.ApplyTo(t)
	})
	return m, m.runEffect(m.Session.SaveTask())
}

// rejectForm keeps the form open with the error shown
func (m Model) rejectForm(err error) (tea.Model, tea.Cmd) {
	m.NotificationState.Add(state.LevelWarning, err.Error())
	if m.FormState.TaskForm == nil || m.FormState.TaskForm.State != huh.StateNormal {
		m.buildTaskForm()
		return m, m.FormState.TaskForm.Init()
	}
	return m, nil
}

// handleTaskSaved closes the form on success and reopens it on failure
func (m Model) handleTaskSaved(msg taskSavedMsg) (tea.Model, tea.Cmd) {
	eff := m.Session.TaskSaved(msg.resp, msg.err)

	if m.surfaceNotice("save") {
		if m.Session.ShowForm() {
			// A completed huh form ignores input, so rebuild it for a retry
			m.buildTaskForm()
			m.UiState.SetMode(state.FormMode)
			return m, m.FormState.TaskForm.Init()
		}
		return m, nil
	}

	m.FormState.Clear()
	if m.UiState.Mode() == state.FormMode {
		m.UiState.SetMode(state.NormalMode)
	}
	if msg.created {
		m.NotificationState.Add(state.LevelInfo, "Task created")
	} else {
		m.NotificationState.Add(state.LevelInfo, "Task updated")
	}
	return m, tea.Batch(tea.ClearScreen, m.runEffect(eff))
}
