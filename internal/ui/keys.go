package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists the host-level bindings. Listbox keys are translated in
// navigation.go and only appear here for the help footer.
type keyMap struct {
	Navigate key.Binding
	Reorder  key.Binding
	Select   key.Binding
	Transfer key.Binding
	NextPane key.Binding
	PrevPane key.Binding
	Press    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Navigate: key.NewBinding(
			key.WithKeys("up", "down", "home", "end"),
			key.WithHelp("↑/↓", "focus"),
		),
		Reorder: key.NewBinding(
			key.WithKeys("ctrl+up", "ctrl+down", "pgup", "pgdown"),
			key.WithHelp("ctrl+↑/↓", "reorder"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "shift+up", "shift+down"),
			key.WithHelp("space", "select"),
		),
		Transfer: key.NewBinding(
			key.WithKeys("enter", "delete", "backspace"),
			key.WithHelp("enter/del", "move"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		PrevPane: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press button"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp is part of help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Reorder, k.Select, k.Transfer, k.NextPane, k.Quit}
}

// FullHelp is part of help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Reorder, k.Select},
		{k.Transfer, k.NextPane, k.PrevPane, k.Press, k.Quit},
	}
}
