package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/taskman/internal/models"
)

// TestMoveUp_AtBoundary ensures moving up from the first row is a no-op.
// Edge case: User presses k on the first task.
// Security value: Prevents negative selection index.
func TestMoveUp_AtBoundary(t *testing.T) {
	s := NewUIState()

	assert.False(t, s.MoveUp())
	assert.Equal(t, 0, s.Selected())
}

// TestMoveDown_AtBoundary ensures moving down from the last row is a no-op.
// Edge case: User presses j on the last task.
// Security value: Prevents index out of range on render.
func TestMoveDown_AtBoundary(t *testing.T) {
	s := NewUIState()

	assert.True(t, s.MoveDown(2))
	assert.False(t, s.MoveDown(2))
	assert.Equal(t, 1, s.Selected())
}

// TestClampSelection_AfterListShrinks keeps the cursor on a real row.
// Edge case: The highlighted task was deleted and the list reloaded shorter.
func TestClampSelection_AfterListShrinks(t *testing.T) {
	s := NewUIState()
	s.SetSelected(5)

	s.ClampSelection(3)
	assert.Equal(t, 2, s.Selected())

	s.ClampSelection(0)
	assert.Equal(t, 0, s.Selected())
}

func TestSetSelected_RejectsNegative(t *testing.T) {
	s := NewUIState()
	s.SetSelected(-4)
	assert.Equal(t, 0, s.Selected())
}

func TestShowDetail(t *testing.T) {
	s := NewUIState()
	s.ShowDetail("abc")

	assert.Equal(t, DetailMode, s.Mode())
	assert.Equal(t, "abc", s.DetailTaskID())
	assert.Equal(t, "DETAIL", s.Mode().String())
}

func TestFormState_LoadAndApply(t *testing.T) {
	fs := NewFormState()
	src := models.NewDraft()
	src.Title = "  Title  "
	src.Status = models.StatusCompleted
	src.DueDate = "2025-06-01"

	fs.LoadFrom(src)
	assert.Equal(t, models.StatusCompleted, fs.Status)
	assert.Equal(t, models.PriorityMedium, fs.Priority)

	var dst models.Task
	fs.ApplyTo(&dst)
	assert.Equal(t, "Title", dst.Title)
	assert.Equal(t, "2025-06-01", dst.DueDate)

	fs.Clear()
	assert.False(t, fs.IsActive())
	assert.Empty(t, fs.Title)
}

// Edge case: unknown enum values from the server open with defaults selected
func TestFormState_LoadFromUnknownEnums(t *testing.T) {
	fs := NewFormState()
	fs.LoadFrom(models.Task{Status: "archived", Priority: "urgent"})

	assert.Equal(t, models.StatusPending, fs.Status)
	assert.Equal(t, models.PriorityMedium, fs.Priority)
}

func TestNotificationState_CapAndDedup(t *testing.T) {
	s := NewNotificationState()

	s.Add(LevelError, "boom")
	s.Add(LevelError, "boom")
	assert.Len(t, s.All(), 1)

	for _, msg := range []string{"a", "b", "c"} {
		s.Add(LevelInfo, msg)
	}
	all := s.All()
	assert.Len(t, all, maxNotifications)
	assert.Equal(t, "c", all[len(all)-1].Message)

	s.ClearLevel(LevelInfo)
	assert.False(t, s.HasAny())
}

func TestNotificationState_GetLayers(t *testing.T) {
	s := NewNotificationState()
	s.Add(LevelInfo, "hello")

	render := func(n Notification) string { return n.Message }

	assert.Empty(t, s.GetLayers(render), "no layers before the window size is known")

	s.SetWindowSize(80, 24)
	assert.Len(t, s.GetLayers(render), 1)
}
