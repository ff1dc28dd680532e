package ui

import (
	"github.com/atomicstack/popup-listbox/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// zone is a screen rectangle recorded while rendering, mapping mouse
// coordinates back to an option or a button.
type zone struct {
	x, y, width int
	pane        int
	option      string
	button      int
}

func (z zone) contains(x, y int) bool {
	return y == z.y && x >= z.x && x < z.x+z.width
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse := msg.(tea.MouseMsg)
	if mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft {
		return nil
	}
	for _, z := range m.zones {
		if !z.contains(mouse.X, mouse.Y) {
			continue
		}
		if z.option != "" {
			list := m.panes[z.pane].List
			m.focusList(z.pane)
			if list.Click(z.option) {
				events.Listbox.Click(list.ID(), z.option)
			}
			return nil
		}
		m.focusButton(z.pane, z.button)
		return m.activateButton(z.pane, z.button)
	}
	return nil
}
