package listbox

// FocusFirst focuses the first option.
func (l *Listbox) FocusFirst() bool {
	return l.focusIndex(0)
}

// FocusLast focuses the last option.
func (l *Listbox) FocusLast() bool {
	return l.focusIndex(len(l.items) - 1)
}

// FocusNext focuses the option after the current one. With nothing focused it
// focuses the first option; at the last option it does nothing.
func (l *Listbox) FocusNext() bool {
	idx := l.FocusedIndex()
	if idx < 0 {
		return l.FocusFirst()
	}
	if idx+1 >= len(l.items) {
		return false
	}
	return l.focusIndex(idx + 1)
}

// FocusPrevious focuses the option before the current one. With nothing
// focused it focuses the first option; at the first option it does nothing.
func (l *Listbox) FocusPrevious() bool {
	idx := l.FocusedIndex()
	if idx < 0 {
		return l.FocusFirst()
	}
	if idx == 0 {
		return false
	}
	return l.focusIndex(idx - 1)
}

// Focus focuses the option with the given id.
func (l *Listbox) Focus(id string) bool {
	return l.focusIndex(l.IndexOf(id))
}

func (l *Listbox) focusIndex(idx int) bool {
	if idx < 0 || idx >= len(l.items) {
		return false
	}
	l.defocus()
	item := &l.items[idx]
	if !l.multi {
		item.Selected = true
		if l.moveButton != nil {
			l.moveButton.setDisabled(false)
		}
	}
	l.active = item.ID
	l.viewport.reveal(idx, len(l.items))
	l.checkUpDownButtons()
	l.onFocus(*item)
	return true
}

func (l *Listbox) defocus() {
	idx := l.FocusedIndex()
	if idx < 0 {
		return
	}
	if !l.multi {
		l.items[idx].Selected = false
	}
}

func (l *Listbox) clearFocus() {
	l.defocus()
	l.active = ""
	l.updateMoveButton()
	l.checkUpDownButtons()
}
