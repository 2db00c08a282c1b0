package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/taskman/internal/tui/components"
	"github.com/thenoetrevino/taskman/internal/tui/layers"
	"github.com/thenoetrevino/taskman/internal/tui/theme"
)

// renderFormLayer renders the add/edit form modal as a layer
func (m Model) renderFormLayer() *lipgloss.Layer {
	if m.FormState.TaskForm == nil {
		return nil
	}

	width, _ := layers.ModalSize(m.UiState.Width(), m.UiState.Height())

	box := components.FormBoxStyle
	title := "New Task"
	if m.Session.IsEditing() {
		box = components.EditFormBoxStyle
		title = "Edit Task"
	}

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(m.Config.KeyMappings.SaveForm + ": save  esc: cancel  tab: next field")

	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(title),
		"",
		m.FormState.TaskForm.WithWidth(width-6).View(),
		"",
		hint,
	)

	return layers.CreateCenteredLayer(box.Width(width).Render(content), m.UiState.Width(), m.UiState.Height())
}

// renderDeleteConfirmLayer renders the y/n delete prompt
func (m Model) renderDeleteConfirmLayer() *lipgloss.Layer {
	id, ok := m.Session.PendingDelete()
	if !ok {
		return nil
	}

	title := id
	if task, found := m.Session.TaskByID(id); found {
		title = task.Title
	}

	warn := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Delete))
	content := lipgloss.JoinVertical(lipgloss.Center,
		warn.Render("Delete task?"),
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)).Render(`"`+title+`"`),
		"",
		components.SubtleStyle.Render("[y]es  [n]o"),
	)

	return layers.CreateCenteredLayer(components.DeleteConfirmBoxStyle.Render(content), m.UiState.Width(), m.UiState.Height())
}

// renderDetailLayer renders the full detail of one task
func (m Model) renderDetailLayer() *lipgloss.Layer {
	task, ok := m.Session.TaskByID(m.UiState.DetailTaskID())
	if !ok {
		return nil
	}

	width, height := layers.ModalSize(m.UiState.Width(), m.UiState.Height())
	content := components.RenderTaskDetail(task, width-8)

	box := components.DetailBoxStyle.Width(width).MaxHeight(height)
	return layers.CreateCenteredLayer(box.Render(content), m.UiState.Width(), m.UiState.Height())
}

// renderHelpLayer renders the full key binding list
func (m Model) renderHelpLayer() *lipgloss.Layer {
	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Keyboard shortcuts"),
		"",
		m.help.View(m.keys),
	)
	return layers.CreateCenteredLayer(components.HelpBoxStyle.Render(content), m.UiState.Width(), m.UiState.Height())
}
