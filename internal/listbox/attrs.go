package listbox

// OptionAttributes is the observable state of a single option.
type OptionAttributes struct {
	ID       string
	Label    string
	Selected bool
	Checked  bool
	Focused  bool
}

// ControlAttributes is the observable state of a wired control.
type ControlAttributes struct {
	ID       string
	Label    string
	Disabled bool
}

// Attributes is a snapshot of everything a renderer or assistive technology
// may observe about a listbox.
type Attributes struct {
	ID               string
	Label            string
	ActiveDescendant string
	Multiselectable  bool
	Options          []OptionAttributes
	Controls         []ControlAttributes
	ViewportOffset   int
}

// Attributes renders the current state into a snapshot.
func (l *Listbox) Attributes() Attributes {
	attrs := Attributes{
		ID:               l.id,
		Label:            l.label,
		ActiveDescendant: l.active,
		Multiselectable:  l.multi,
		Options:          make([]OptionAttributes, len(l.items)),
		ViewportOffset:   l.viewport.offset,
	}
	for i, item := range l.items {
		attrs.Options[i] = OptionAttributes{
			ID:       item.ID,
			Label:    item.Label,
			Selected: item.Selected,
			Checked:  l.multi && item.Checked,
			Focused:  item.ID == l.active,
		}
	}
	for _, c := range l.Controls() {
		attrs.Controls = append(attrs.Controls, ControlAttributes{ID: c.ID, Label: c.Label, Disabled: c.Disabled})
	}
	return attrs
}

// Controls returns the wired controls in up, down, move order.
func (l *Listbox) Controls() []*Control {
	var controls []*Control
	for _, c := range []*Control{l.upButton, l.downButton, l.moveButton} {
		if c != nil {
			controls = append(controls, c)
		}
	}
	return controls
}
