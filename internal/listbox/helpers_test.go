package listbox

import (
	"reflect"
	"testing"
)

func newTestListbox(multi bool, labels ...string) *Listbox {
	return New("test", Options{Label: "Test", MultiSelect: multi, Items: NewItems("opt", labels...)})
}

func labelsOf(l *Listbox) []string {
	items := l.Items()
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	return labels
}

func assertLabels(t *testing.T, l *Listbox, want ...string) {
	t.Helper()
	got := labelsOf(l)
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected labels %v, got %v", want, got)
	}
}

func assertFocused(t *testing.T, l *Listbox, label string) {
	t.Helper()
	item, ok := l.FocusedItem()
	if label == "" {
		if ok {
			t.Fatalf("expected no focus, got %q", item.Label)
		}
		return
	}
	if !ok {
		t.Fatalf("expected focus on %q, got none", label)
	}
	if item.Label != label {
		t.Fatalf("expected focus on %q, got %q", label, item.Label)
	}
}

func selectedCount(l *Listbox) int {
	return len(l.SelectedItems())
}
