package ui

import (
	"fmt"

	"github.com/atomicstack/popup-listbox/internal/listbox"
	"github.com/atomicstack/popup-listbox/internal/logging/events"
	"github.com/atomicstack/popup-listbox/internal/ui/command"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// typeAheadExpiredMsg fires TypeAheadDelay after a type-ahead keystroke.
type typeAheadExpiredMsg struct {
	list string
	gen  uint64
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.NextPane):
		m.moveFocus(1)
		return nil
	case key.Matches(keyMsg, m.keys.PrevPane):
		m.moveFocus(-1)
		return nil
	}

	if target := m.currentTarget(); target.button >= 0 {
		if key.Matches(keyMsg, m.keys.Press) {
			return m.activateButton(target.pane, target.button)
		}
		return nil
	}

	list := m.currentList()
	if list == nil {
		return nil
	}
	ev, ok := translateKey(keyMsg)
	if !ok {
		return nil
	}
	gen := list.TypeAheadGeneration()
	list.HandleKey(ev)
	if next := list.TypeAheadGeneration(); next != gen {
		events.Listbox.TypeAhead(list.ID(), list.TypeAheadBuffer())
		return m.schedule(listbox.TypeAheadDelay, typeAheadExpiredMsg{list: list.ID(), gen: next})
	}
	return nil
}

// translateKey maps a terminal key press onto the listbox keyboard contract.
func translateKey(msg tea.KeyMsg) (listbox.KeyEvent, bool) {
	ev := listbox.KeyEvent{Alt: msg.Alt}
	switch msg.Type {
	case tea.KeyUp:
		ev.Key = listbox.KeyUp
	case tea.KeyDown:
		ev.Key = listbox.KeyDown
	case tea.KeyCtrlUp:
		ev.Key, ev.Ctrl = listbox.KeyUp, true
	case tea.KeyCtrlDown:
		ev.Key, ev.Ctrl = listbox.KeyDown, true
	case tea.KeyShiftUp:
		ev.Key, ev.Shift = listbox.KeyUp, true
	case tea.KeyShiftDown:
		ev.Key, ev.Shift = listbox.KeyDown, true
	case tea.KeyPgUp:
		ev.Key = listbox.KeyPageUp
	case tea.KeyPgDown:
		ev.Key = listbox.KeyPageDown
	case tea.KeyHome:
		ev.Key = listbox.KeyHome
	case tea.KeyEnd:
		ev.Key = listbox.KeyEnd
	case tea.KeySpace:
		ev.Key = listbox.KeySpace
	case tea.KeyBackspace:
		ev.Key = listbox.KeyBackspace
	case tea.KeyDelete:
		ev.Key = listbox.KeyDelete
	case tea.KeyEnter:
		ev.Key = listbox.KeyReturn
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return ev, false
		}
		ev.Key = listbox.KeyRune
		ev.Rune = msg.Runes[0]
		if ev.Rune == ' ' {
			ev.Key = listbox.KeySpace
		}
	default:
		return ev, false
	}
	return ev, true
}

// moveFocus walks the focus ring. Landing on a listbox activates it.
func (m *Model) moveFocus(delta int) {
	if len(m.ring) == 0 {
		return
	}
	m.focus = (m.focus + delta + len(m.ring)) % len(m.ring)
	target := m.ring[m.focus]
	pane := m.panes[target.pane]
	if target.button < 0 {
		pane.List.Activate()
		events.UI.FocusRing(pane.List.ID())
		return
	}
	events.UI.FocusRing(pane.Buttons[target.button].Control.ID)
}

// focusList gives keyboard focus to the pane's listbox without activating it.
func (m *Model) focusList(pane int) {
	for i, target := range m.ring {
		if target.pane == pane && target.button < 0 {
			if m.focus != i {
				m.focus = i
				events.UI.FocusRing(m.panes[pane].List.ID())
			}
			return
		}
	}
}

func (m *Model) focusButton(pane, button int) {
	for i, target := range m.ring {
		if target.pane == pane && target.button == button {
			m.focus = i
			return
		}
	}
}

// activateButton queues the button's action unless the control is disabled.
func (m *Model) activateButton(pane, button int) tea.Cmd {
	if pane < 0 || pane >= len(m.panes) || button < 0 || button >= len(m.panes[pane].Buttons) {
		return nil
	}
	b := m.panes[pane].Buttons[button]
	if b.Control.Disabled {
		events.Command.Disabled(b.Control.ID, b.Control.Label)
		return nil
	}
	return m.bus.Execute(command.Request{
		ID:      b.Control.ID,
		Label:   b.Control.Label,
		Handler: b.Action,
	})
}

func (m *Model) handleActivationMsg(msg tea.Msg) tea.Cmd {
	m.bus.Run(msg.(command.Activation))
	return nil
}

func (m *Model) handleTypeAheadExpiredMsg(msg tea.Msg) tea.Cmd {
	expired := msg.(typeAheadExpiredMsg)
	list := m.listByID(expired.list)
	if list == nil {
		return nil
	}
	if list.ExpireTypeAhead(expired.gen) {
		events.Listbox.TypeAheadExpired(list.ID(), expired.gen)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.resizeViewports()
	events.UI.Resize(m.width, m.height)
	return nil
}

func changeSummary(l *listbox.Listbox, kind listbox.ChangeKind, items []listbox.Item) string {
	noun := "items"
	if len(items) == 1 {
		noun = "item"
	}
	switch kind {
	case listbox.ChangeAdded:
		return fmt.Sprintf("Added %d %s to %s", len(items), noun, l.Label())
	case listbox.ChangeRemoved:
		if sibling := l.Sibling(); sibling != nil {
			return fmt.Sprintf("Moved %d %s to %s", len(items), noun, sibling.Label())
		}
		return fmt.Sprintf("Removed %d %s from %s", len(items), noun, l.Label())
	case listbox.ChangeMovedUp, listbox.ChangeMovedDown:
		if len(items) == 1 {
			direction := "up"
			if kind == listbox.ChangeMovedDown {
				direction = "down"
			}
			return fmt.Sprintf("Moved %s %s", items[0].Label, direction)
		}
	}
	return ""
}
