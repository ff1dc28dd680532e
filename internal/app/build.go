package app

import (
	"fmt"

	"github.com/atomicstack/popup-listbox/internal/listbox"
	"github.com/atomicstack/popup-listbox/internal/logging"
	"github.com/atomicstack/popup-listbox/internal/ui"
)

// demo describes the two listboxes and how they are wired together.
type demo struct {
	multi bool

	leftID, leftTitle   string
	leftLabels          []string
	leftMove            string
	leftShortcut        string
	leftReorder         bool
	rightID, rightTitle string
	rightLabels         []string
	rightMove           string
	rightShortcut       string
	rightReorder        bool
}

var featuresDemo = demo{
	leftID:        "important",
	leftTitle:     "Important features",
	leftLabels:    importantFeatures,
	leftMove:      "Not important",
	leftShortcut:  "Delete",
	leftReorder:   true,
	rightID:       "unimportant",
	rightTitle:    "Unimportant features",
	rightMove:     "Important",
	rightShortcut: "Enter",
}

var upgradesDemo = demo{
	multi:         true,
	leftID:        "available",
	leftTitle:     "Available upgrades",
	leftLabels:    availableUpgrades,
	leftMove:      "Add",
	leftShortcut:  "Enter",
	rightID:       "chosen",
	rightTitle:    "Chosen upgrades",
	rightMove:     "Remove",
	rightShortcut: "Delete",
	rightReorder:  true,
}

// Build constructs the two wired listboxes described by cfg.
func Build(cfg Config) ([]ui.Pane, error) {
	d := featuresDemo
	if cfg.MultiSelect {
		d = upgradesDemo
	}
	if cfg.ItemsFile != "" {
		file, err := LoadItemsFile(cfg.ItemsFile)
		if err != nil {
			return nil, err
		}
		d.leftTitle, d.leftLabels = file.Left.apply(d.leftTitle, d.leftLabels)
		d.rightTitle, d.rightLabels = file.Right.apply(d.rightTitle, d.rightLabels)
	}

	left := listbox.New(d.leftID, listbox.Options{
		Label:       d.leftTitle,
		MultiSelect: d.multi,
		Items:       listbox.NewItems(d.leftID, d.leftLabels...),
	})
	right := listbox.New(d.rightID, listbox.Options{
		Label:       d.rightTitle,
		MultiSelect: d.multi,
		Items:       listbox.NewItems(d.rightID, d.rightLabels...),
	})
	wire(left, right, d.leftMove, d.leftShortcut, d.leftReorder)
	wire(right, left, d.rightMove, d.rightShortcut, d.rightReorder)

	if cfg.Focus != "" && !left.FocusByLabel(cfg.Focus) {
		logging.Error(fmt.Errorf("focus %q: no matching option in %s", cfg.Focus, left.Label()))
	}
	return []ui.Pane{ui.NewPane(left), ui.NewPane(right)}, nil
}

func wire(l, sibling *listbox.Listbox, moveLabel, shortcut string, reorder bool) {
	if reorder {
		l.EnableReorder(
			listbox.NewControl(l.ID()+"-up", "Up", ""),
			listbox.NewControl(l.ID()+"-down", "Down", ""),
		)
	}
	l.SetupMove(listbox.NewControl(l.ID()+"-move", moveLabel, shortcut), sibling)
}
