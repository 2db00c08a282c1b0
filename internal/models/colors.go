package models

// ============================================================================
// DISPLAY COLORS
// ============================================================================

// FallbackColor is used for any status or priority that is not recognized
const FallbackColor = "#6c757d"

// StatusColor maps a status to its display color.
// Unknown values map to FallbackColor.
func StatusColor(status string) string {
	switch Status(status) {
	case StatusCompleted:
		return "#28a745"
	case StatusInProgress:
		return "#007bff"
	case StatusPending:
		return "#ffc107"
	default:
		return FallbackColor
	}
}

// PriorityColor maps a priority to its display color.
// Unknown values map to FallbackColor.
func PriorityColor(priority string) string {
	switch Priority(priority) {
	case PriorityHigh:
		return "#dc3545"
	case PriorityMedium:
		return "#fd7e14"
	case PriorityLow:
		return "#28a745"
	default:
		return FallbackColor
	}
}
