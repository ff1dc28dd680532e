package listbox

import "strings"

// Control is an external button wired to a listbox operation. The listbox
// keeps Disabled in sync with whether the operation can currently apply.
type Control struct {
	ID    string
	Label string
	// KeyShortcuts lists space separated shortcut names the control answers
	// to from inside the listbox, e.g. "Delete" or "Enter".
	KeyShortcuts string
	Disabled     bool
}

// NewControl returns a control that starts disabled.
func NewControl(id, label, shortcuts string) *Control {
	return &Control{ID: id, Label: label, KeyShortcuts: shortcuts, Disabled: true}
}

// AcceptsShortcut reports whether name is one of the control's shortcuts.
func (c *Control) AcceptsShortcut(name string) bool {
	if c == nil {
		return false
	}
	for _, field := range strings.Fields(c.KeyShortcuts) {
		if strings.EqualFold(field, name) {
			return true
		}
	}
	return false
}

func (c *Control) setDisabled(disabled bool) {
	if c == nil {
		return
	}
	c.Disabled = disabled
}
