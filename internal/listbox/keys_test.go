package listbox

import "testing"

func press(l *Listbox, key Key) bool {
	return l.HandleKey(KeyEvent{Key: key})
}

func TestArrowKeysFocusFirstWhenNothingFocused(t *testing.T) {
	l := newTestListbox(false, "a", "b", "c")
	if !press(l, KeyDown) {
		t.Fatalf("expected down to be consumed")
	}
	assertFocused(t, l, "a")

	up := newTestListbox(false, "a", "b", "c")
	press(up, KeyUp)
	assertFocused(t, up, "a")
}

func TestArrowKeysMoveFocus(t *testing.T) {
	l := newTestListbox(false, "a", "b", "c")
	press(l, KeyDown)
	press(l, KeyDown)
	press(l, KeyDown)
	assertFocused(t, l, "c")
	press(l, KeyDown)
	assertFocused(t, l, "c")
	press(l, KeyUp)
	assertFocused(t, l, "b")
}

func TestHomeEndKeys(t *testing.T) {
	l := newTestListbox(false, "a", "b", "c", "d")
	press(l, KeyEnd)
	assertFocused(t, l, "d")
	press(l, KeyHome)
	assertFocused(t, l, "a")
	l.Focus("opt-3")
	press(l, KeyHome)
	assertFocused(t, l, "a")
}

func TestCtrlArrowsReorderWhenEnabled(t *testing.T) {
	l := newTestListbox(false, "a", "b", "c")
	l.FocusFirst()
	l.HandleKey(KeyEvent{Key: KeyDown, Ctrl: true})
	assertLabels(t, l, "a", "b", "c")
	assertFocused(t, l, "b")

	l.EnableReorder(NewControl("up", "Up", ""), NewControl("down", "Down", ""))
	l.HandleKey(KeyEvent{Key: KeyDown, Ctrl: true})
	assertLabels(t, l, "a", "c", "b")
	assertFocused(t, l, "b")
	l.HandleKey(KeyEvent{Key: KeyUp, Ctrl: true})
	assertLabels(t, l, "a", "b", "c")
}

func TestPageKeysReorderOnlyWhenEnabled(t *testing.T) {
	l := newTestListbox(false, "a", "b", "c")
	l.FocusLast()
	if press(l, KeyPageUp) {
		t.Fatalf("expected page up to pass through without reorder controls")
	}
	l.EnableReorder(NewControl("up", "Up", ""), NewControl("down", "Down", ""))
	if !press(l, KeyPageUp) {
		t.Fatalf("expected page up to be consumed")
	}
	assertLabels(t, l, "a", "c", "b")
	press(l, KeyPageDown)
	assertLabels(t, l, "a", "b", "c")
}

func TestShiftArrowsExtendSelectionInMultiSelect(t *testing.T) {
	l := newTestListbox(true, "a", "b", "c")
	press(l, KeyDown)
	l.HandleKey(KeyEvent{Key: KeyDown, Shift: true})
	l.HandleKey(KeyEvent{Key: KeyDown, Shift: true})
	if l.IsSelected("opt-1") || !l.IsSelected("opt-2") || !l.IsSelected("opt-3") {
		t.Fatalf("unexpected selection %v", ItemIDs(l.SelectedItems()))
	}
	l.HandleKey(KeyEvent{Key: KeyDown, Shift: true})
	if !l.IsSelected("opt-3") {
		t.Fatalf("expected no toggle when focus does not move")
	}
}

func TestSpaceTogglesSelection(t *testing.T) {
	l := newTestListbox(true, "a", "b")
	press(l, KeySpace)
	if !l.IsSelected("opt-1") {
		t.Fatalf("expected space to select first item when nothing focused")
	}
	press(l, KeyEnd)
	press(l, KeySpace)
	if !l.IsSelected("opt-2") {
		t.Fatalf("expected space to select focused item")
	}
}

func TestDeleteKeyMovesWhenShortcutAccepted(t *testing.T) {
	source := newTestListbox(false, "a", "b", "c")
	target := New("target", Options{})
	source.SetupMove(NewControl("move", "Not important", "Delete"), target)
	source.FocusFirst()
	source.FocusNext()

	if press(source, KeyReturn) {
		t.Fatalf("expected return to be ignored when only Delete is accepted")
	}
	if !press(source, KeyDelete) {
		t.Fatalf("expected delete to be consumed")
	}
	assertLabels(t, source, "a", "c")
	assertLabels(t, target, "b")
	assertFocused(t, source, "c")

	press(source, KeyBackspace)
	assertLabels(t, source, "a")
	assertFocused(t, source, "a")
}

func TestReturnKeyMovesWhenEnterAccepted(t *testing.T) {
	source := newTestListbox(true, "a", "b", "c", "d")
	target := New("target", Options{MultiSelect: true})
	source.SetupMove(NewControl("move", "Add", "Enter"), target)
	source.Focus("opt-2")
	source.ToggleSelect("opt-2")
	source.ToggleSelect("opt-3")
	if press(source, KeyDelete) {
		t.Fatalf("expected delete to be ignored when only Enter is accepted")
	}
	if !press(source, KeyReturn) {
		t.Fatalf("expected return to be consumed")
	}
	assertLabels(t, source, "a", "d")
	assertLabels(t, target, "b", "c")
	assertFocused(t, source, "d")
}

func TestMoveShortcutWithoutControl(t *testing.T) {
	l := newTestListbox(false, "a")
	l.FocusFirst()
	for _, key := range []Key{KeyReturn, KeyDelete, KeyBackspace} {
		if press(l, key) {
			t.Fatalf("expected key %d to pass through without a move control", key)
		}
	}
	assertLabels(t, l, "a")
}

func TestEmptyListboxIgnoresKeys(t *testing.T) {
	l := newTestListbox(false)
	if press(l, KeyDown) || press(l, KeyHome) {
		t.Fatalf("expected keys to pass through an empty listbox")
	}
}

func TestModifiedRunesAreIgnored(t *testing.T) {
	l := newTestListbox(false, "apple")
	if l.HandleKey(KeyEvent{Key: KeyRune, Rune: 'a', Ctrl: true}) {
		t.Fatalf("expected ctrl+rune to pass through")
	}
	if l.TypeAheadBuffer() != "" {
		t.Fatalf("expected buffer untouched, got %q", l.TypeAheadBuffer())
	}
}
