package listbox

// AddItems appends items. Arriving items carry no selection. When nothing was
// focused, the first appended item receives focus.
func (l *Listbox) AddItems(items []Item) {
	if len(items) == 0 {
		return
	}
	start := len(l.items)
	for _, item := range items {
		item.Selected = false
		item.Checked = false
		l.items = append(l.items, item)
	}
	if l.active == "" {
		l.focusIndex(start)
	} else {
		l.checkUpDownButtons()
	}
	l.onChange(ChangeAdded, CloneItems(l.items[start:]))
}

// DeleteItems removes every selected option in multi-select mode, or the
// focused option in single-select mode, and returns what was removed.
func (l *Listbox) DeleteItems() []Item {
	var removed []Item
	kept := make([]Item, 0, len(l.items))
	focusRemoved := false
	for _, item := range l.items {
		if !l.deletable(item) {
			kept = append(kept, item)
			continue
		}
		removed = append(removed, item)
		if item.ID == l.active {
			focusRemoved = true
		}
	}
	if len(removed) == 0 {
		return nil
	}
	l.items = kept
	if focusRemoved {
		l.clearFocus()
	} else {
		l.updateMoveButton()
		l.checkUpDownButtons()
	}
	l.syncViewport()
	l.onChange(ChangeRemoved, CloneItems(removed))
	return removed
}

func (l *Listbox) deletable(item Item) bool {
	if l.multi {
		return item.Selected
	}
	return l.active != "" && item.ID == l.active
}

// MoveUpItems swaps the focused option with its predecessor.
func (l *Listbox) MoveUpItems() bool {
	idx := l.FocusedIndex()
	if idx <= 0 {
		return false
	}
	l.items[idx-1], l.items[idx] = l.items[idx], l.items[idx-1]
	l.viewport.reveal(idx-1, len(l.items))
	l.checkUpDownButtons()
	l.onChange(ChangeMovedUp, []Item{l.items[idx-1]})
	return true
}

// MoveDownItems swaps the focused option with its successor.
func (l *Listbox) MoveDownItems() bool {
	idx := l.FocusedIndex()
	if idx < 0 || idx+1 >= len(l.items) {
		return false
	}
	l.items[idx+1], l.items[idx] = l.items[idx], l.items[idx+1]
	l.viewport.reveal(idx+1, len(l.items))
	l.checkUpDownButtons()
	l.onChange(ChangeMovedDown, []Item{l.items[idx+1]})
	return true
}

// MoveItems deletes the qualifying options here and appends them to the
// sibling listbox, preserving their relative order.
func (l *Listbox) MoveItems() []Item {
	if l.sibling == nil || l.sibling == l {
		return nil
	}
	moved := l.DeleteItems()
	if len(moved) == 0 {
		return nil
	}
	l.sibling.AddItems(moved)
	return moved
}
