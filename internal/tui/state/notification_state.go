package state

import "charm.land/lipgloss/v2"

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warning notifications
	LevelWarning
	// LevelError represents error notifications
	LevelError
)

// maxNotifications caps how many banners stay on screen
const maxNotifications = 3

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState manages the user-facing notifications.
type NotificationState struct {
	notifications []Notification
	windowWidth   int
	windowHeight  int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{notifications: []Notification{}}
}

// Add adds a notification, dropping the oldest past the cap.
// Repeating the newest message is a no-op.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	if n := len(s.notifications); n > 0 {
		last := s.notifications[n-1]
		if last.Level == level && last.Message == message {
			return
		}
	}
	s.notifications = append(s.notifications, Notification{Level: level, Message: message})
	if over := len(s.notifications) - maxNotifications; over > 0 {
		s.notifications = s.notifications[over:]
	}
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// ClearLevel removes all notifications of a specific level.
func (s *NotificationState) ClearLevel(level NotificationLevel) {
	filtered := []Notification{}
	for _, n := range s.notifications {
		if n.Level != level {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// SetWindowSize updates the window dimensions for positioning calculations.
func (s *NotificationState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// GetLayers creates floating layers for all active notifications.
// Notifications are stacked vertically in the top-right corner of the screen.
func (s *NotificationState) GetLayers(renderFunc func(Notification) string) []*lipgloss.Layer {
	layers := []*lipgloss.Layer{}
	if s.windowWidth == 0 {
		return layers
	}

	row := 0
	for _, notification := range s.notifications {
		view := renderFunc(notification)
		height := lipgloss.Height(view)
		if row+height >= s.windowHeight {
			break
		}

		col := max(s.windowWidth-lipgloss.Width(view)-1, 0)
		layers = append(layers, lipgloss.NewLayer(view).X(col).Y(row).Z(1))
		row += height + 1
	}

	return layers
}
