package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/taskman/internal/tui/components"
	"github.com/thenoetrevino/taskman/internal/tui/notifications"
	"github.com/thenoetrevino/taskman/internal/tui/state"
)

// listChromeHeight covers the header, table header and status bar
const listChromeHeight = 5

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	if m.UiState.Width() == 0 {
		view := tea.NewView("Loading...")
		view.AltScreen = true
		return view
	}

	layerStack := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderTaskList()),
	}

	var modal *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.FormMode:
		modal = m.renderFormLayer()
	case state.DeleteConfirmMode:
		modal = m.renderDeleteConfirmLayer()
	case state.DetailMode:
		modal = m.renderDetailLayer()
	case state.HelpMode:
		modal = m.renderHelpLayer()
	}
	if modal != nil {
		layerStack = append(layerStack, modal)
	}

	layerStack = append(layerStack, m.NotificationState.GetLayers(notifications.RenderFromState)...)

	view := tea.NewView(lipgloss.NewCanvas(layerStack...).Render())
	view.AltScreen = true
	return view
}

// renderTaskList renders the header, the task table and the status bar
func (m Model) renderTaskList() string {
	width := m.UiState.Width()
	tasks := m.Session.Tasks()

	header := components.TitleStyle.Render("taskman") +
		components.SubtleStyle.Render(" "+m.Config.API.BaseURL)

	rows := []string{header, components.RenderTaskHeader(width)}

	visible := max(m.UiState.Height()-listChromeHeight, 1)
	switch {
	case len(tasks) == 0 && m.Session.Loading():
		rows = append(rows, components.SubtleStyle.Render("  Loading tasks..."))
	case len(tasks) == 0:
		rows = append(rows, components.SubtleStyle.Render(
			fmt.Sprintf("  No tasks yet. Press %s to add one.", m.Config.KeyMappings.AddTask)))
	default:
		selected := m.UiState.Selected()
		offset := max(selected-visible+1, 0)
		end := min(offset+visible, len(tasks))
		for i := offset; i < end; i++ {
			rows = append(rows, components.RenderTaskRow(tasks[i], width, i == selected))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	padding := max(m.UiState.Height()-lipgloss.Height(body)-1, 0)

	return body + strings.Repeat("\n", padding+1) + m.renderStatusBar()
}

// renderStatusBar shows the mode, count, and sync state
func (m Model) renderStatusBar() string {
	message := m.help.ShortHelpView(m.keys.ShortHelp())
	switch {
	case m.Session.Saving():
		message = "saving..."
	case m.Session.Loading():
		message = "loading..."
	}
	return components.RenderStatusBar(m.UiState.Mode().String(), len(m.Session.Tasks()), message, m.UiState.Width())
}
