package listbox

import "fmt"

// Item is a single option in a listbox.
type Item struct {
	ID       string
	Label    string
	Selected bool
	// Checked mirrors Selected in multi-select listboxes.
	Checked bool
}

// NewItems builds unselected items from labels, numbering identifiers
// sequentially as prefix-1, prefix-2, ...
func NewItems(prefix string, labels ...string) []Item {
	items := make([]Item, len(labels))
	for i, label := range labels {
		items[i] = Item{ID: fmt.Sprintf("%s-%d", prefix, i+1), Label: label}
	}
	return items
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

// ItemIDs returns the identifiers of items in order.
func ItemIDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
