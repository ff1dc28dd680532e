package listbox

import (
	"strings"
	"time"
	"unicode"
)

// TypeAheadDelay is how long the type-ahead buffer survives without a keystroke.
const TypeAheadDelay = 500 * time.Millisecond

type typeAhead struct {
	buffer string
	// start is the focused index when the buffer began; searches resume after it.
	start int
	gen   uint64
}

// TypeAheadBuffer returns the characters typed since the buffer last cleared.
func (l *Listbox) TypeAheadBuffer() string { return l.typeAhead.buffer }

// TypeAheadGeneration changes on every type-ahead keystroke.
func (l *Listbox) TypeAheadGeneration() uint64 { return l.typeAhead.gen }

// ExpireTypeAhead clears the buffer if gen is still the latest generation.
func (l *Listbox) ExpireTypeAhead(gen uint64) bool {
	if gen != l.typeAhead.gen || l.typeAhead.buffer == "" {
		return false
	}
	l.typeAhead.buffer = ""
	l.typeAhead.start = -1
	return true
}

func (l *Listbox) typeAheadFind(r rune) int {
	if l.typeAhead.buffer == "" {
		l.typeAhead.start = l.FocusedIndex()
	}
	l.typeAhead.buffer += string(unicode.ToLower(r))
	l.typeAhead.gen++

	start := l.typeAhead.start
	if start >= len(l.items) {
		start = len(l.items) - 1
	}
	if idx := l.matchInRange(start+1, len(l.items)); idx >= 0 {
		return idx
	}
	return l.matchInRange(0, start)
}

func (l *Listbox) matchInRange(from, to int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < to && i < len(l.items); i++ {
		label := strings.ToLower(strings.TrimSpace(l.items[i].Label))
		if label != "" && strings.HasPrefix(label, l.typeAhead.buffer) {
			return i
		}
	}
	return -1
}
