package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Task list navigation
	FormMode                      // Add/edit form with huh
	DeleteConfirmMode             // Confirming task deletion
	DetailMode                    // Full task detail pane
	HelpMode                      // Displaying help screen
)

// String returns the mode name shown in the status line
func (m Mode) String() string {
	switch m {
	case FormMode:
		return "FORM"
	case DeleteConfirmMode:
		return "CONFIRM"
	case DetailMode:
		return "DETAIL"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// UIState manages the user interface state: the selected row,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selected is the index of the highlighted task row
	selected int

	width  int
	height int

	mode Mode

	// detailTaskID is the task shown in DetailMode
	detailTaskID string
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Selected returns the highlighted row index.
func (s *UIState) Selected() int {
	return s.selected
}

// SetSelected updates the highlighted row index.
func (s *UIState) SetSelected(index int) {
	s.selected = max(index, 0)
}

// MoveUp moves the selection up one row; it reports whether it moved.
func (s *UIState) MoveUp() bool {
	if s.selected == 0 {
		return false
	}
	s.selected--
	return true
}

// MoveDown moves the selection down one row within count rows.
func (s *UIState) MoveDown(count int) bool {
	if s.selected >= count-1 {
		return false
	}
	s.selected++
	return true
}

// ClampSelection keeps the selection inside a list of count rows.
func (s *UIState) ClampSelection(count int) {
	if count <= 0 {
		s.selected = 0
		return
	}
	s.selected = min(s.selected, count-1)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// DetailTaskID returns the task shown in DetailMode.
func (s *UIState) DetailTaskID() string {
	return s.detailTaskID
}

// ShowDetail switches to DetailMode for id.
func (s *UIState) ShowDetail(id string) {
	s.detailTaskID = id
	s.mode = DetailMode
}
