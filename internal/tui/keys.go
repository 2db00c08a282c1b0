package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/taskman/internal/config"
)

// keyMap holds the bindings of the task list, built from config
type keyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	View   key.Binding
	Reload key.Binding
	Up     key.Binding
	Down   key.Binding
	Save   key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys(km.AddTask), key.WithHelp(km.AddTask, "add task")),
		Edit:   key.NewBinding(key.WithKeys(km.EditTask, "enter"), key.WithHelp(km.EditTask+"/enter", "edit task")),
		Delete: key.NewBinding(key.WithKeys(km.DeleteTask), key.WithHelp(km.DeleteTask, "delete task")),
		View:   key.NewBinding(key.WithKeys(km.ViewTask), key.WithHelp(km.ViewTask, "view details")),
		Reload: key.NewBinding(key.WithKeys(km.Reload), key.WithHelp(km.Reload, "reload")),
		Up:     key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask+"/↑", "up")),
		Down:   key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask+"/↓", "down")),
		Save:   key.NewBinding(key.WithKeys(km.SaveForm), key.WithHelp(km.SaveForm, "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:   key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "toggle help")),
		Quit:   key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.View, k.Reload},
		{k.Add, k.Edit, k.Delete},
		{k.Save, k.Cancel},
		{k.Help, k.Quit},
	}
}
