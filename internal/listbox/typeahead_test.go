package listbox

import "testing"

func typeRune(l *Listbox, r rune) {
	l.HandleKey(KeyEvent{Key: KeyRune, Rune: r})
}

func TestTypeAheadPrefixWithoutMatchKeepsFocus(t *testing.T) {
	l := newTestListbox(false, "Apple", "Banana", "Cherry")
	l.FocusFirst()
	typeRune(l, 'b')
	assertFocused(t, l, "Banana")
	typeRune(l, 'c')
	if got := l.TypeAheadBuffer(); got != "bc" {
		t.Fatalf("expected buffer bc, got %q", got)
	}
	assertFocused(t, l, "Banana")
}

func TestTypeAheadIsCaseInsensitiveAndWraps(t *testing.T) {
	l := newTestListbox(false, "alpha", "Beta", "gamma", "beta two")
	l.FocusLast()
	typeRune(l, 'B')
	assertFocused(t, l, "Beta")
	l.ExpireTypeAhead(l.TypeAheadGeneration())
	typeRune(l, 'b')
	assertFocused(t, l, "beta two")
}

func TestTypeAheadAccumulatesPrefix(t *testing.T) {
	l := newTestListbox(false, "car", "cat", "cow")
	typeRune(l, 'c')
	assertFocused(t, l, "car")
	typeRune(l, 'o')
	assertFocused(t, l, "cow")
}

func TestExpireTypeAheadIgnoresStaleGeneration(t *testing.T) {
	l := newTestListbox(false, "Apple", "Avocado")
	typeRune(l, 'a')
	stale := l.TypeAheadGeneration()
	typeRune(l, 'v')
	if l.ExpireTypeAhead(stale) {
		t.Fatalf("expected stale generation to be ignored")
	}
	if l.TypeAheadBuffer() != "av" {
		t.Fatalf("expected buffer to survive, got %q", l.TypeAheadBuffer())
	}
	if !l.ExpireTypeAhead(l.TypeAheadGeneration()) {
		t.Fatalf("expected current generation to clear the buffer")
	}
	if l.TypeAheadBuffer() != "" {
		t.Fatalf("expected empty buffer, got %q", l.TypeAheadBuffer())
	}
	if l.ExpireTypeAhead(l.TypeAheadGeneration()) {
		t.Fatalf("expected expiring an empty buffer to report false")
	}
}

func TestTypeAheadSearchStartsAfterFocus(t *testing.T) {
	l := newTestListbox(false, "one", "two", "three")
	l.Focus("opt-2")
	typeRune(l, 't')
	assertFocused(t, l, "three")
	l.ExpireTypeAhead(l.TypeAheadGeneration())
	typeRune(l, 't')
	assertFocused(t, l, "two")
}
