package tui

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskman/internal/models"
	"github.com/thenoetrevino/taskman/internal/tui/state"
)

// ============================================================================
// STARTUP
// ============================================================================

// TestInit_LoadsTasks ensures the list is fetched once at startup.
func TestInit_LoadsTasks(t *testing.T) {
	m, api := setupTestModel(t, seededTask("1", "first"), seededTask("2", "second"))

	assert.Len(t, api.CallsTo("List"), 1)
	require.Len(t, m.Session.Tasks(), 2)
	assert.Equal(t, "first", m.Session.Tasks()[0].Title)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

// TestInit_LoadFailureShowsNotification surfaces transport errors.
// Edge case: API is down when the TUI starts.
// Security value: The failure is visible instead of an empty list.
func TestInit_LoadFailureShowsNotification(t *testing.T) {
	m, api := setupTestModel(t)
	api.Err = errors.New("connection refused")

	m = press(t, m, keyRune('r'))

	require.True(t, m.NotificationState.HasAny())
	last := m.NotificationState.All()[len(m.NotificationState.All())-1]
	assert.Equal(t, state.LevelError, last.Level)
	assert.Contains(t, last.Message, "connection refused")
}

// ============================================================================
// ADD FLOW
// ============================================================================

// TestAddTask_SaveCreatesAndReloads walks the add scenario end to end.
func TestAddTask_SaveCreatesAndReloads(t *testing.T) {
	m, api := setupTestModel(t)

	m = press(t, m, keyRune('a'))
	require.Equal(t, state.FormMode, m.UiState.Mode())
	require.True(t, m.Session.ShowForm())
	assert.False(t, m.Session.IsEditing())

	m.FormState.Title = "Buy milk"
	m = press(t, m, keyCtrl('s'))

	creates := api.CallsTo("Create")
	require.Len(t, creates, 1)
	assert.Equal(t, "Buy milk", creates[0].Task.Title)
	assert.Equal(t, models.StatusPending, creates[0].Task.Status)
	assert.Equal(t, models.PriorityMedium, creates[0].Task.Priority)

	assert.Len(t, api.CallsTo("List"), 2, "save must be followed by a reload")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.False(t, m.Session.ShowForm())
	require.Len(t, m.Session.Tasks(), 1)
	assert.Equal(t, "Buy milk", m.Session.Tasks()[0].Title)
}

// TestAddTask_BlankTitleRejected keeps the form open without calling the API.
// Edge case: User saves immediately after opening the form.
func TestAddTask_BlankTitleRejected(t *testing.T) {
	m, api := setupTestModel(t)

	m = press(t, m, keyRune('a'))
	m = press(t, m, keyCtrl('s'))

	assert.Empty(t, api.CallsTo("Create"))
	assert.Equal(t, state.FormMode, m.UiState.Mode())
	assert.True(t, m.NotificationState.HasAny())
}

// TestAddTask_ServerFailureKeepsDraft surfaces the envelope error and allows retry.
func TestAddTask_ServerFailureKeepsDraft(t *testing.T) {
	m, api := setupTestModel(t)
	api.FailWith = "title is too long"

	m = press(t, m, keyRune('a'))
	m.FormState.Title = "Retry me"
	m = press(t, m, keyCtrl('s'))

	assert.Equal(t, state.FormMode, m.UiState.Mode())
	assert.Equal(t, "Retry me", m.Session.CurrentTask().Title)
	assert.Equal(t, "Retry me", m.FormState.Title)
	require.NotNil(t, m.FormState.TaskForm)
	assert.False(t, m.Session.Saving())

	all := m.NotificationState.All()
	require.NotEmpty(t, all)
	assert.Equal(t, "title is too long", all[len(all)-1].Message)

	api.FailWith = ""
	m = press(t, m, keyCtrl('s'))
	assert.Len(t, api.CallsTo("Create"), 2)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

// ============================================================================
// EDIT FLOW
// ============================================================================

// TestEditTask_SaveUpdatesByID walks the edit scenario for task "1".
func TestEditTask_SaveUpdatesByID(t *testing.T) {
	m, api := setupTestModel(t, seededTask("1", "Old"))

	m = press(t, m, keyRune('e'))
	require.True(t, m.Session.IsEditing())
	assert.Equal(t, "Old", m.FormState.Title)

	m.FormState.Title = "New"
	m = press(t, m, keyCtrl('s'))

	updates := api.CallsTo("Update")
	require.Len(t, updates, 1)
	assert.Equal(t, "1", updates[0].ID)
	assert.Equal(t, "New", updates[0].Task.Title)
	assert.Equal(t, "New", m.Session.Tasks()[0].Title)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

// TestEditTask_EnterOpensForm ensures enter is an alias for edit.
func TestEditTask_TimestampDueDateSaves(t *testing.T) {
	task := seededTask("1", "Old")
	task.DueDate = "2025-05-01T00:00:00.000Z"
	m, api := setupTestModel(t, task)

	m = press(t, m, keyRune('e'))
	assert.Equal(t, "2025-05-01", m.FormState.DueDate)

	m.FormState.Title = "New"
	m = press(t, m, keyCtrl('s'))

	updates := api.CallsTo("Update")
	require.Len(t, updates, 1)
	assert.Equal(t, "2025-05-01", updates[0].Task.DueDate)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestEditTask_UnknownStatusAndPriorityKept(t *testing.T) {
	task := seededTask("1", "Imported")
	task.Status = models.Status("archived")
	task.Priority = models.Priority("urgent")
	m, api := setupTestModel(t, task)

	m = press(t, m, keyRune('e'))
	m = press(t, m, keyCtrl('s'))

	updates := api.CallsTo("Update")
	require.Len(t, updates, 1)
	assert.Equal(t, models.Status("archived"), updates[0].Task.Status)
	assert.Equal(t, models.Priority("urgent"), updates[0].Task.Priority)
}

func TestEditTask_EnterOpensForm(t *testing.T) {
	m, _ := setupTestModel(t, seededTask("1", "Old"))

	m = press(t, m, keyCode(tea.KeyEnter))

	assert.Equal(t, state.FormMode, m.UiState.Mode())
	assert.True(t, m.Session.IsEditing())
}

// TestCancelEdit_NoNetworkCall ensures esc discards without touching the API.
// Edge case: User edits a field then changes their mind.
// Security value: No partial write reaches the server.
func TestCancelEdit_NoNetworkCall(t *testing.T) {
	m, api := setupTestModel(t, seededTask("1", "Keep"))
	before := len(api.Calls())

	m = press(t, m, keyRune('e'))
	m.FormState.Title = "Discarded"
	m = press(t, m, keyCode(tea.KeyEsc))

	assert.Len(t, api.Calls(), before)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.False(t, m.FormState.IsActive())
	assert.Equal(t, "Keep", m.Session.Tasks()[0].Title)
}

// TestEdit_NoTasksIsNoop guards against editing an empty list.
// Edge case: User presses e before any task exists.
func TestEdit_NoTasksIsNoop(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, keyRune('e'))

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

// ============================================================================
// DELETE FLOW
// ============================================================================

// TestDelete_Declined issues no delete.
func TestDelete_Declined(t *testing.T) {
	m, api := setupTestModel(t, seededTask("1", "Stay"))

	m = press(t, m, keyRune('d'))
	require.Equal(t, state.DeleteConfirmMode, m.UiState.Mode())

	m = press(t, m, keyRune('n'))

	assert.Empty(t, api.CallsTo("Remove"))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Len(t, m.Session.Tasks(), 1)
}

// TestDelete_Confirmed removes the task and reloads.
func TestDelete_Confirmed(t *testing.T) {
	m, api := setupTestModel(t, seededTask("1", "Go"), seededTask("2", "Stay"))

	m = press(t, m, keyRune('d'))
	m = press(t, m, keyRune('y'))

	removes := api.CallsTo("Remove")
	require.Len(t, removes, 1)
	assert.Equal(t, "1", removes[0].ID)
	require.Len(t, m.Session.Tasks(), 1)
	assert.Equal(t, "2", m.Session.Tasks()[0].ID)
}

// TestDelete_EscapeDeclines treats esc as no.
func TestDelete_EscapeDeclines(t *testing.T) {
	m, api := setupTestModel(t, seededTask("1", "Stay"))

	m = press(t, m, keyRune('d'))
	m = press(t, m, keyCode(tea.KeyEsc))

	assert.Empty(t, api.CallsTo("Remove"))
	_, pending := m.Session.PendingDelete()
	assert.False(t, pending)
}

// ============================================================================
// NAVIGATION AND MODES
// ============================================================================

// TestNavigation_Bounds keeps the cursor on the list.
// Edge case: Pressing k at the top and j at the bottom.
// Security value: Prevents out of range selection.
func TestNavigation_Bounds(t *testing.T) {
	m, _ := setupTestModel(t, seededTask("1", "a"), seededTask("2", "b"))

	m = press(t, m, keyRune('k'))
	assert.Equal(t, 0, m.UiState.Selected())

	m = press(t, m, keyRune('j'))
	m = press(t, m, keyRune('j'))
	assert.Equal(t, 1, m.UiState.Selected())

	m = press(t, m, keyCode(tea.KeyUp))
	assert.Equal(t, 0, m.UiState.Selected())
}

// TestDetailMode_OpenAndEdit opens the detail pane then edits from it.
func TestDetailMode_OpenAndEdit(t *testing.T) {
	m, _ := setupTestModel(t, seededTask("1", "Read me"))

	m = press(t, m, keyRune('v'))
	require.Equal(t, state.DetailMode, m.UiState.Mode())
	assert.Equal(t, "1", m.UiState.DetailTaskID())

	m = press(t, m, keyRune('e'))
	assert.Equal(t, state.FormMode, m.UiState.Mode())
	assert.True(t, m.Session.IsEditing())
}

// TestHelpMode_Toggle opens and closes help.
func TestHelpMode_Toggle(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, keyRune('?'))
	assert.Equal(t, state.HelpMode, m.UiState.Mode())

	m = press(t, m, keyRune('?'))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

// TestQuit returns tea.Quit.
func TestQuit(t *testing.T) {
	m, _ := setupTestModel(t)

	_, cmd := m.Update(keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// TestStaleLoadIgnored ensures an older list response cannot overwrite a newer one.
// Edge case: Two reloads overlap and finish out of order.
func TestStaleLoadIgnored(t *testing.T) {
	m, _ := setupTestModel(t, seededTask("1", "current"))

	stale := tasksLoadedMsg{seq: 0, resp: listResponse(seededTask("x", "stale"))}
	m = UpdateModelWithMessage(m, stale)

	require.Len(t, m.Session.Tasks(), 1)
	assert.Equal(t, "current", m.Session.Tasks()[0].Title)
}

func listResponse(tasks ...models.Task) *models.APIResponse[[]models.Task] {
	resp := models.OK(tasks)
	return &resp
}
