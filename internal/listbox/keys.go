package listbox

import "unicode"

// Key identifies the keys the listbox reacts to.
type Key int

const (
	KeyRune Key = iota
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeySpace
	KeyBackspace
	KeyDelete
	KeyReturn
)

// KeyEvent is a key press with its modifiers. Rune is only read for KeyRune.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Ctrl  bool
	Shift bool
	Alt   bool
}

// HandleKey applies the keyboard contract and reports whether the key was
// consumed, in which case the host should suppress any default behaviour.
func (l *Listbox) HandleKey(ev KeyEvent) bool {
	if len(l.items) == 0 {
		return false
	}
	switch ev.Key {
	case KeyUp, KeyDown:
		if l.active == "" {
			l.FocusFirst()
			return true
		}
		if ev.Ctrl && l.moveUpDownEnabled {
			l.reorder(ev.Key == KeyUp)
			return true
		}
		var moved bool
		if ev.Key == KeyUp {
			moved = l.FocusPrevious()
		} else {
			moved = l.FocusNext()
		}
		if moved && ev.Shift && l.multi {
			l.ToggleSelect(l.active)
		}
		return true
	case KeyPageUp, KeyPageDown:
		if !l.moveUpDownEnabled {
			return false
		}
		l.reorder(ev.Key == KeyPageUp)
		return true
	case KeyHome:
		l.FocusFirst()
		return true
	case KeyEnd:
		l.FocusLast()
		return true
	case KeySpace:
		l.ToggleFocused()
		return true
	case KeyBackspace, KeyDelete, KeyReturn:
		return l.moveShortcut(ev.Key)
	case KeyRune:
		if ev.Ctrl || ev.Alt || !unicode.IsPrint(ev.Rune) {
			return false
		}
		if idx := l.typeAheadFind(ev.Rune); idx >= 0 {
			l.focusIndex(idx)
		}
		return true
	}
	return false
}

func (l *Listbox) reorder(up bool) {
	if up {
		l.MoveUpItems()
	} else {
		l.MoveDownItems()
	}
	l.syncViewport()
}

// moveShortcut transfers options to the sibling when the move control lists
// the pressed key among its shortcuts. Focus then lands on the nearest
// unselected neighbour of the old focus if the list lost it.
func (l *Listbox) moveShortcut(key Key) bool {
	if l.moveButton == nil {
		return false
	}
	shortcut := "Delete"
	if key == KeyReturn {
		shortcut = "Enter"
	}
	if !l.moveButton.AcceptsShortcut(shortcut) {
		return false
	}
	next := l.nextUnselected()
	l.MoveItems()
	if l.active == "" && next != "" {
		l.Focus(next)
	}
	return true
}

func (l *Listbox) nextUnselected() string {
	origin := l.FocusedIndex()
	if origin < 0 {
		origin = 0
	}
	for i := origin + 1; i < len(l.items); i++ {
		if !l.items[i].Selected {
			return l.items[i].ID
		}
	}
	for i := origin - 1; i >= 0; i-- {
		if !l.items[i].Selected {
			return l.items[i].ID
		}
	}
	return ""
}
