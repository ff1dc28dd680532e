package listbox

// viewport mirrors the scroll position of a fixed-height option list.
type viewport struct {
	height int
	offset int
}

// SetViewportHeight sets the number of visible rows. Zero or less disables
// scrolling.
func (l *Listbox) SetViewportHeight(rows int) {
	l.viewport.height = rows
	l.syncViewport()
}

// ViewportHeight returns the configured number of visible rows.
func (l *Listbox) ViewportHeight() int { return l.viewport.height }

// ViewportOffset returns the index of the first visible option.
func (l *Listbox) ViewportOffset() int { return l.viewport.offset }

// VisibleRange returns the half-open range of visible option indexes.
func (l *Listbox) VisibleRange() (int, int) {
	start := l.viewport.offset
	end := len(l.items)
	if l.viewport.height > 0 && start+l.viewport.height < end {
		end = start + l.viewport.height
	}
	return start, end
}

func (l *Listbox) syncViewport() {
	l.viewport.reveal(l.FocusedIndex(), len(l.items))
}

// reveal scrolls so idx is visible. Nothing scrolls unless the options
// overflow the viewport. An option below the window ends up on the bottom
// row, one above it on the top row.
func (v *viewport) reveal(idx, total int) {
	if v.height <= 0 || total <= v.height {
		v.offset = 0
		return
	}
	maxOffset := total - v.height
	if v.offset > maxOffset {
		v.offset = maxOffset
	}
	if v.offset < 0 {
		v.offset = 0
	}
	if idx < 0 || idx >= total {
		return
	}
	if idx >= v.offset+v.height {
		v.offset = idx - v.height + 1
	} else if idx < v.offset {
		v.offset = idx
	}
}
