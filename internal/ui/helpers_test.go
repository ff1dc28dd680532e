package ui

import (
	"reflect"
	"testing"

	"github.com/atomicstack/popup-listbox/internal/listbox"
)

func newTestPanes(multi bool) []Pane {
	left := listbox.New("left", listbox.Options{
		Label:       "Left",
		MultiSelect: multi,
		Items:       listbox.NewItems("l", "Apple", "Banana", "Cherry"),
	})
	right := listbox.New("right", listbox.Options{
		Label:       "Right",
		MultiSelect: multi,
		Items:       listbox.NewItems("r", "Date", "Elder"),
	})
	left.EnableReorder(listbox.NewControl("left-up", "Up", ""), listbox.NewControl("left-down", "Down", ""))
	left.SetupMove(listbox.NewControl("left-move", "Move right", "Delete"), right)
	right.SetupMove(listbox.NewControl("right-move", "Move left", "Enter"), left)
	return []Pane{NewPane(left), NewPane(right)}
}

func newTestHarness(multi bool, opts Options) (*Harness, *listbox.Listbox, *listbox.Listbox) {
	panes := newTestPanes(multi)
	h := NewHarness(NewModel(panes, opts))
	return h, panes[0].List, panes[1].List
}

func assertLabels(t *testing.T, l *listbox.Listbox, want ...string) {
	t.Helper()
	items := l.Items()
	got := make([]string, len(items))
	for i, item := range items {
		got[i] = item.Label
	}
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %s labels %v, got %v", l.ID(), want, got)
	}
}
