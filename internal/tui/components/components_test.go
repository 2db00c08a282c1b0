package components

import (
	"strings"
	"testing"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/taskman/internal/models"
)

func sampleTask() models.Task {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.Task{
		ID:          "abc",
		Title:       "Write report",
		Description: "Some **markdown**",
		Status:      models.StatusInProgress,
		Priority:    models.PriorityHigh,
		DueDate:     "2025-03-15",
		CreatedAt:   &created,
	}
}

func TestRenderTaskRow_ShowsFields(t *testing.T) {
	row := RenderTaskRow(sampleTask(), 80, false)

	assert.Contains(t, row, "Write report")
	assert.Contains(t, row, "In Progress")
	assert.Contains(t, row, "High")
	assert.Contains(t, row, "2025-03-15")
}

func TestRenderTaskRow_SelectedHasCursor(t *testing.T) {
	assert.Contains(t, RenderTaskRow(sampleTask(), 80, true), "> ")
	assert.NotContains(t, RenderTaskRow(sampleTask(), 80, false), "> ")
}

// Edge case: a missing due date renders a placeholder, not an empty cell
func TestRenderTaskRow_NoDueDate(t *testing.T) {
	task := sampleTask()
	task.DueDate = ""

	assert.Contains(t, RenderTaskRow(task, 80, false), "-")
}

// Edge case: narrow terminals truncate instead of wrapping rows
func TestRenderTaskRow_NarrowWidthStaysOneLine(t *testing.T) {
	task := sampleTask()
	task.Title = strings.Repeat("long ", 30)

	row := RenderTaskRow(task, 40, false)
	assert.Equal(t, 1, lipgloss.Height(row))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefghij", 5))
}

func TestRenderTaskDetail(t *testing.T) {
	out := RenderTaskDetail(sampleTask(), 60)

	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "markdown")
	assert.Contains(t, out, "Created")
}

func TestRenderDescription_Empty(t *testing.T) {
	assert.Contains(t, RenderDescription(DescriptionProps{Width: 40}), "No description")
}

func TestRenderStatusBar(t *testing.T) {
	bar := RenderStatusBar("NORMAL", 3, "saved", 60)

	assert.Contains(t, bar, "NORMAL")
	assert.Contains(t, bar, "3 task(s)")
	assert.Contains(t, bar, "saved")
}
