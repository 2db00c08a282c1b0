// Package notifications renders notification banners for the TUI.
package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/taskman/internal/tui/state"
)

// Render renders a notification banner based on severity level
func Render(severity Severity, message string) string {
	style := severity.style()

	headerText := style.icon + " " + style.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.fg)).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.fg)).
		Width(maxWidth).
		Render(message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.bg)).
		Background(lipgloss.Color(style.bg)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderFromState renders a notification banner from a state.Notification
func RenderFromState(n state.Notification) string {
	return Render(severityOf(n.Level), n.Message)
}

func severityOf(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	default:
		return Info
	}
}
