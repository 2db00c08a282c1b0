// Package theme holds the active color values, set once from config.
package theme

import "github.com/thenoetrevino/taskman/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight  string
	Background string
	Subtle     string
	Normal     string
	Title      string
	Border     string
	SelectedBg string
	Create     string
	Edit       string
	Delete     string
	InfoFg     string
	InfoBg     string
	WarningFg  string
	WarningBg  string
	ErrorFg    string
	ErrorBg    string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	scheme.ApplyDefaults()

	Highlight = scheme.Accent
	Background = scheme.Background
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Title = scheme.Title
	Border = scheme.Border
	SelectedBg = scheme.SelectedBg
	Create = scheme.Create
	Edit = scheme.Edit
	Delete = scheme.Delete
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}
