// Package components provides reusable UI components and styles.
// Call InitStyles() after theme.Init to pick up the configured colors.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/taskman/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle is the app header
	TitleStyle lipgloss.Style

	// HeaderRowStyle is the table header line
	HeaderRowStyle lipgloss.Style

	// RowStyle and SelectedRowStyle are task rows
	RowStyle         lipgloss.Style
	SelectedRowStyle lipgloss.Style

	// SubtleStyle is muted text (empty states, hints)
	SubtleStyle lipgloss.Style

	// FormBoxStyle frames the add form (green border)
	FormBoxStyle lipgloss.Style

	// EditFormBoxStyle frames the edit form (blue border)
	EditFormBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle frames the delete prompt (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// DetailBoxStyle frames the task detail pane
	DetailBoxStyle lipgloss.Style

	// HelpBoxStyle frames the help screen
	HelpBoxStyle lipgloss.Style

	// StatusBarStyle is the bottom line
	StatusBarStyle lipgloss.Style
)

func init() {
	InitStyles()
}

// InitStyles rebuilds every style from the current theme colors
func InitStyles() {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title)).
		Padding(0, 1)

	HeaderRowStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Subtle)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(theme.Border))

	RowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	SelectedRowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(theme.SelectedBg)).
		Bold(true)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true)

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Background(lipgloss.Color(theme.Background))

	FormBoxStyle = modal.BorderForeground(lipgloss.Color(theme.Create))
	EditFormBoxStyle = modal.BorderForeground(lipgloss.Color(theme.Edit))
	DeleteConfirmBoxStyle = modal.BorderForeground(lipgloss.Color(theme.Delete))
	DetailBoxStyle = modal.BorderForeground(lipgloss.Color(theme.Highlight))
	HelpBoxStyle = modal.BorderForeground(lipgloss.Color(theme.Highlight))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)
}
