package listbox

// ChangeKind describes how the item sequence was mutated.
type ChangeKind string

const (
	ChangeAdded     ChangeKind = "added"
	ChangeRemoved   ChangeKind = "removed"
	ChangeMovedUp   ChangeKind = "moved_up"
	ChangeMovedDown ChangeKind = "moved_down"
)

// FocusHandler is notified whenever an option receives focus.
type FocusHandler func(item Item)

// ItemChangeHandler is notified after options are added, removed or moved.
type ItemChangeHandler func(kind ChangeKind, items []Item)

// Options configures a new Listbox.
type Options struct {
	Label       string
	MultiSelect bool
	Items       []Item
}

// Listbox tracks options, focus, selection, and the controls wired to it.
type Listbox struct {
	id     string
	label  string
	items  []Item
	active string
	multi  bool

	upButton          *Control
	downButton        *Control
	moveUpDownEnabled bool
	moveButton        *Control
	sibling           *Listbox

	onFocus  FocusHandler
	onChange ItemChangeHandler

	typeAhead typeAhead
	viewport  viewport
}

// New constructs a listbox. Initial items start unfocused; in single-select
// mode any preset selection is dropped since selection follows focus.
func New(id string, opts Options) *Listbox {
	l := &Listbox{
		id:       id,
		label:    opts.Label,
		multi:    opts.MultiSelect,
		onFocus:  func(Item) {},
		onChange: func(ChangeKind, []Item) {},
	}
	l.items = CloneItems(opts.Items)
	for i := range l.items {
		if l.multi {
			l.items[i].Checked = l.items[i].Selected
		} else {
			l.items[i].Selected = false
			l.items[i].Checked = false
		}
	}
	l.typeAhead.start = -1
	return l
}

// ID returns the listbox identifier.
func (l *Listbox) ID() string { return l.id }

// Label returns the accessible name of the listbox.
func (l *Listbox) Label() string { return l.label }

// MultiSelect reports whether selection is independent of focus.
func (l *Listbox) MultiSelect() bool { return l.multi }

// Len returns the number of options.
func (l *Listbox) Len() int { return len(l.items) }

// Items returns a copy of the options in display order.
func (l *Listbox) Items() []Item { return CloneItems(l.items) }

// ActiveDescendant returns the focused option id, or "" when nothing is focused.
func (l *Listbox) ActiveDescendant() string { return l.active }

// IndexOf returns the position of the option with the given id, or -1.
func (l *Listbox) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// FocusedIndex returns the position of the focused option, or -1.
func (l *Listbox) FocusedIndex() int {
	return l.IndexOf(l.active)
}

// FocusedItem returns the focused option.
func (l *Listbox) FocusedItem() (Item, bool) {
	idx := l.FocusedIndex()
	if idx < 0 {
		return Item{}, false
	}
	return l.items[idx], true
}

// Sibling returns the listbox that MoveItems transfers to, if any.
func (l *Listbox) Sibling() *Listbox { return l.sibling }

// UpControl returns the control wired to MoveUpItems, if any.
func (l *Listbox) UpControl() *Control { return l.upButton }

// DownControl returns the control wired to MoveDownItems, if any.
func (l *Listbox) DownControl() *Control { return l.downButton }

// MoveControl returns the control wired to MoveItems, if any.
func (l *Listbox) MoveControl() *Control { return l.moveButton }

// SetFocusHandler installs the focus-change callback. Nil restores the no-op.
func (l *Listbox) SetFocusHandler(h FocusHandler) {
	if h == nil {
		h = func(Item) {}
	}
	l.onFocus = h
}

// SetItemChangeHandler installs the item-change callback. Nil restores the no-op.
func (l *Listbox) SetItemChangeHandler(h ItemChangeHandler) {
	if h == nil {
		h = func(ChangeKind, []Item) {}
	}
	l.onChange = h
}

// EnableReorder wires the up/down controls and enables the reorder keys.
// Both controls are required.
func (l *Listbox) EnableReorder(up, down *Control) {
	if up == nil || down == nil {
		return
	}
	l.upButton = up
	l.downButton = down
	l.moveUpDownEnabled = true
	l.checkUpDownButtons()
}

// ReorderEnabled reports whether EnableReorder has been called.
func (l *Listbox) ReorderEnabled() bool { return l.moveUpDownEnabled }

// SetupMove wires the control that transfers options to sibling. The two
// listboxes only reference each other; neither owns the other.
func (l *Listbox) SetupMove(button *Control, sibling *Listbox) {
	l.moveButton = button
	l.sibling = sibling
	l.updateMoveButton()
}

// Activate is called when the listbox itself receives focus. Without an
// active descendant the first option is focused.
func (l *Listbox) Activate() bool {
	if l.active != "" {
		return false
	}
	return l.FocusFirst()
}

func (l *Listbox) checkUpDownButtons() {
	if !l.moveUpDownEnabled {
		return
	}
	idx := l.FocusedIndex()
	if idx < 0 {
		l.upButton.setDisabled(true)
		l.downButton.setDisabled(true)
		return
	}
	l.upButton.setDisabled(idx == 0)
	l.downButton.setDisabled(idx == len(l.items)-1)
}

func (l *Listbox) updateMoveButton() {
	if l.moveButton == nil {
		return
	}
	l.moveButton.setDisabled(!l.HasSelection())
}
