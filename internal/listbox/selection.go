package listbox

// ToggleSelect flips the selection of the option with the given id. Only
// multi-select listboxes have independent selection; elsewhere it is a no-op.
func (l *Listbox) ToggleSelect(id string) bool {
	if !l.multi {
		return false
	}
	idx := l.IndexOf(id)
	if idx < 0 {
		return false
	}
	item := &l.items[idx]
	item.Selected = !item.Selected
	item.Checked = item.Selected
	l.updateMoveButton()
	return true
}

// ToggleFocused toggles the focused option, or the first option when nothing
// is focused.
func (l *Listbox) ToggleFocused() bool {
	if len(l.items) == 0 {
		return false
	}
	id := l.active
	if id == "" {
		id = l.items[0].ID
	}
	return l.ToggleSelect(id)
}

// Click focuses and toggle-selects the option, as a pointer press would.
// Ids that are not options are ignored.
func (l *Listbox) Click(id string) bool {
	idx := l.IndexOf(id)
	if idx < 0 {
		return false
	}
	l.focusIndex(idx)
	l.ToggleSelect(id)
	l.syncViewport()
	return true
}

// IsSelected reports whether the option with the given id is selected.
func (l *Listbox) IsSelected(id string) bool {
	idx := l.IndexOf(id)
	return idx >= 0 && l.items[idx].Selected
}

// HasSelection reports whether any option is selected.
func (l *Listbox) HasSelection() bool {
	for _, item := range l.items {
		if item.Selected {
			return true
		}
	}
	return false
}

// SelectedItems returns the selected options in display order.
func (l *Listbox) SelectedItems() []Item {
	var selected []Item
	for _, item := range l.items {
		if item.Selected {
			selected = append(selected, item)
		}
	}
	return selected
}
