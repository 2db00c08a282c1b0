package notifications

import "github.com/thenoetrevino/taskman/internal/tui/theme"

type style struct {
	icon  string
	title string
	fg    string
	bg    string
}

// Info confirms a finished task operation, Warning flags form input the
// client refused, Error reports a failed API call.
func (s Severity) style() style {
	switch s {
	case Warning:
		return style{icon: "!", title: "Check the form", fg: theme.WarningFg, bg: theme.WarningBg}
	case Error:
		return style{icon: "✕", title: "Task API", fg: theme.ErrorFg, bg: theme.ErrorBg}
	default:
		return style{icon: "✓", title: "Tasks", fg: theme.InfoFg, bg: theme.InfoBg}
	}
}
