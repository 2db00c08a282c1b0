package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/taskman/internal/models"
)

// Column widths of the task table
const (
	statusWidth   = 13
	priorityWidth = 8
	dueWidth      = 10
	gutterWidth   = 2
	minTitleWidth = 10
)

// StatusBadge renders a status in its display color
func StatusBadge(status models.Status) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(models.StatusColor(string(status)))).
		Bold(true).
		Render(status.Label())
}

// PriorityBadge renders a priority in its display color
func PriorityBadge(priority models.Priority) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(models.PriorityColor(string(priority)))).
		Render(priority.Label())
}

// titleWidth is what remains for the title column at the given width
func titleWidth(width int) int {
	fixed := statusWidth + priorityWidth + dueWidth + 4*gutterWidth
	return max(width-fixed, minTitleWidth)
}

// RenderTaskHeader renders the table header line
func RenderTaskHeader(width int) string {
	line := joinCells(width,
		"TITLE",
		"STATUS",
		"PRIORITY",
		"DUE",
	)
	return HeaderRowStyle.MaxWidth(width).Render(line)
}

// RenderTaskRow renders one task as a table row
func RenderTaskRow(task models.Task, width int, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	due := task.DueDate
	if due == "" {
		due = "-"
	}

	line := joinCells(width,
		cursor+task.Title,
		StatusBadge(task.Status),
		PriorityBadge(task.Priority),
		due,
	)

	style := RowStyle
	if selected {
		style = SelectedRowStyle
	}
	return style.MaxWidth(width).Render(line)
}

// joinCells lays out the four table columns
func joinCells(width int, title, status, priority, due string) string {
	cell := func(s string, w int) string {
		return lipgloss.NewStyle().Width(w).MaxWidth(w).Render(truncate(s, w))
	}
	gutter := strings.Repeat(" ", gutterWidth)

	return cell(title, titleWidth(width)) + gutter +
		cell(status, statusWidth) + gutter +
		cell(priority, priorityWidth) + gutter +
		cell(due, dueWidth)
}

// truncate shortens plain text to w cells with an ellipsis
func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w || w < 2 {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > w {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// RenderTaskDetail renders every field of a task for the detail pane
func RenderTaskDetail(task models.Task, width int) string {
	label := lipgloss.NewStyle().Bold(true).Width(10)
	rows := []string{
		TitleStyle.Render(task.Title),
		"",
		label.Render("Status") + StatusBadge(task.Status),
		label.Render("Priority") + PriorityBadge(task.Priority),
		label.Render("Due") + valueOr(task.DueDate, "-"),
		label.Render("ID") + SubtleStyle.Render(task.ID),
	}
	if task.CreatedAt != nil {
		rows = append(rows, label.Render("Created")+task.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	if task.UpdatedAt != nil {
		rows = append(rows, label.Render("Updated")+task.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	rows = append(rows, "", RenderDescription(DescriptionProps{
		Description: task.Description,
		Width:       width,
	}))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderStatusBar renders the bottom line: mode, task count, and a message
func RenderStatusBar(mode string, count int, message string, width int) string {
	left := fmt.Sprintf(" %s  %d task(s)", mode, count)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(message)-2, 1)
	return StatusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + message)
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
