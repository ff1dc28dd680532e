package app

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/atomicstack/popup-listbox/internal/listbox"
	"github.com/atomicstack/popup-listbox/internal/logging"
)

func labels(l *listbox.Listbox) []string {
	items := l.Items()
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

func TestBuildFeaturesDemo(t *testing.T) {
	panes, err := Build(Config{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(panes) != 2 {
		t.Fatalf("expected two panes, got %d", len(panes))
	}
	left, right := panes[0].List, panes[1].List
	if left.Label() != "Important features" || right.Label() != "Unimportant features" {
		t.Fatalf("unexpected titles %q / %q", left.Label(), right.Label())
	}
	if left.MultiSelect() || right.MultiSelect() {
		t.Fatalf("expected single-select listboxes")
	}
	if !reflect.DeepEqual(labels(left), importantFeatures) {
		t.Fatalf("unexpected left labels %v", labels(left))
	}
	if right.Len() != 0 {
		t.Fatalf("expected empty right listbox, got %d options", right.Len())
	}
	if !left.ReorderEnabled() || right.ReorderEnabled() {
		t.Fatalf("expected only the left listbox to reorder")
	}
	if left.Sibling() != right || right.Sibling() != left {
		t.Fatalf("expected listboxes to be siblings")
	}
	if move := left.MoveControl(); move.Label != "Not important" || !move.AcceptsShortcut("Delete") {
		t.Fatalf("unexpected left move control %+v", move)
	}
	if move := right.MoveControl(); move.Label != "Important" || !move.AcceptsShortcut("Enter") {
		t.Fatalf("unexpected right move control %+v", move)
	}
	if got := len(panes[0].Buttons); got != 3 {
		t.Fatalf("expected three left buttons, got %d", got)
	}
}

func TestBuildUpgradesDemo(t *testing.T) {
	panes, err := Build(Config{MultiSelect: true})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	left, right := panes[0].List, panes[1].List
	if left.Label() != "Available upgrades" || right.Label() != "Chosen upgrades" {
		t.Fatalf("unexpected titles %q / %q", left.Label(), right.Label())
	}
	if !left.MultiSelect() || !right.MultiSelect() {
		t.Fatalf("expected multi-select listboxes")
	}
	if left.ReorderEnabled() || !right.ReorderEnabled() {
		t.Fatalf("expected only the chosen listbox to reorder")
	}
	if move := left.MoveControl(); move.Label != "Add" || !move.AcceptsShortcut("Enter") {
		t.Fatalf("unexpected left move control %+v", move)
	}
	if move := right.MoveControl(); move.Label != "Remove" || !move.AcceptsShortcut("Delete") {
		t.Fatalf("unexpected right move control %+v", move)
	}
}

func TestBuildTransferKeepsIDsUnique(t *testing.T) {
	panes, err := Build(Config{MultiSelect: true})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	left, right := panes[0].List, panes[1].List
	right.AddItems(listbox.NewItems("extra", "Jet pack"))
	left.ToggleSelect("available-1")
	left.MoveItems()
	seen := map[string]bool{}
	for _, l := range []*listbox.Listbox{left, right} {
		for _, id := range listbox.ItemIDs(l.Items()) {
			if seen[id] {
				t.Fatalf("duplicate id %q", id)
			}
			seen[id] = true
		}
	}
	if got := labels(right); !reflect.DeepEqual(got, []string{"Jet pack", "Leather seats"}) {
		t.Fatalf("unexpected chosen labels %v", got)
	}
}

func TestBuildFocusOption(t *testing.T) {
	panes, err := Build(Config{Focus: "walkab"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	item, ok := panes[0].List.FocusedItem()
	if !ok || item.Label != "Neighborhood walkability" {
		t.Fatalf("expected walkability focused, got %+v", item)
	}
}

func TestBuildFocusWithoutMatchLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logging.Configure(path)
	t.Cleanup(func() { logging.Configure("") })

	panes, err := Build(Config{Focus: "zzzzzz"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := panes[0].List.ActiveDescendant(); got != "" {
		t.Fatalf("expected no focus, got %q", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected error logged: %v", err)
	}
}

func TestBuildWithItemsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	data := "left:\n  title: Fruit\n  items: [Apple, Banana]\nright:\n  items: [Cherry]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	panes, err := Build(Config{ItemsFile: path})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	left, right := panes[0].List, panes[1].List
	if left.Label() != "Fruit" || right.Label() != "Unimportant features" {
		t.Fatalf("unexpected titles %q / %q", left.Label(), right.Label())
	}
	if !reflect.DeepEqual(labels(left), []string{"Apple", "Banana"}) {
		t.Fatalf("unexpected left labels %v", labels(left))
	}
	if !reflect.DeepEqual(labels(right), []string{"Cherry"}) {
		t.Fatalf("unexpected right labels %v", labels(right))
	}
}

func TestBuildWithMissingItemsFile(t *testing.T) {
	if _, err := Build(Config{ItemsFile: filepath.Join(t.TempDir(), "missing.toml")}); err == nil {
		t.Fatalf("expected error for missing items file")
	}
}
