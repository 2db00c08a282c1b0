package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// CreateKeyMapWithShiftEnter creates a keymap that adds shift+enter for
// newlines in text fields. Esc is left to the caller, which uses it to cancel.
func CreateKeyMapWithShiftEnter() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter / alt+enter / ctrl+j", "new line"),
	)
	keymap.Quit = key.NewBinding(key.WithDisabled())

	return keymap
}
