package ui

import (
	"strings"

	"github.com/atomicstack/popup-listbox/internal/listbox"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultColumnWidth = 36
	minColumnWidth     = 8
	columnGap          = 2
	// title, blank, one button row, blank, status
	chromeRows = 5
)

const (
	focusMarker   = "▌ "
	noFocusMarker = "  "
	checkedBox    = "[x] "
	uncheckedBox  = "[ ] "
	emptyListText = "(empty)"
)

type styledLine struct {
	prefix      string
	prefixStyle *lipgloss.Style
	text        string
	style       *lipgloss.Style
	raw         bool // text is already styled; skip truncation and padding
}

// View implements tea.Model. Rendering also records the screen zones used for
// mouse hit testing, so clicks resolve against the last rendered frame.
func (m *Model) View() string {
	m.zones = m.zones[:0]
	colWidth := m.columnWidth()
	rows := m.renderedRows()

	columns := make([]string, 0, len(m.panes)*2)
	for i := range m.panes {
		if i > 0 {
			columns = append(columns, strings.Repeat(" ", columnGap))
		}
		x := i * (colWidth + columnGap)
		columns = append(columns, renderLines(m.paneLines(i, x, colWidth, rows)))
	}

	out := []string{lipgloss.JoinHorizontal(lipgloss.Top, columns...), ""}
	out = append(out, renderLines(applyWidth([]styledLine{m.statusLine()}, m.width)))
	if m.showFooter {
		m.help.Width = m.width
		out = append(out, styles.Footer.Render(m.help.View(m.keys)))
	}
	return strings.Join(out, "\n")
}

// paneLines renders one column and records its mouse zones. x is the column's
// left edge on screen.
func (m *Model) paneLines(idx, x, width, rows int) []styledLine {
	pane := m.panes[idx]
	attrs := pane.List.Attributes()
	target := m.currentTarget()
	active := target.pane == idx

	titleStyle := styles.Title
	if active && target.button < 0 {
		titleStyle = styles.ActiveTitle
	}
	lines := []styledLine{{text: attrs.Label, style: titleStyle}}

	start, end := pane.List.VisibleRange()
	if len(attrs.Options) == 0 {
		lines = append(lines, styledLine{prefix: noFocusMarker, text: emptyListText, style: styles.Empty})
	}
	for i := start; i < end; i++ {
		opt := attrs.Options[i]
		m.zones = append(m.zones, zone{x: x, y: len(lines), width: width, pane: idx, option: opt.ID})
		lines = append(lines, optionLine(opt, attrs.Multiselectable))
	}
	for len(lines) < rows+1 {
		lines = append(lines, styledLine{})
	}
	lines = append(lines, styledLine{})

	lines = applyWidth(lines, width)
	lines = padWidth(lines, width)
	return append(lines, m.buttonRows(idx, x, len(lines), width)...)
}

func optionLine(opt listbox.OptionAttributes, multi bool) styledLine {
	line := styledLine{prefix: noFocusMarker, prefixStyle: styles.ItemIndicator, style: styles.Item}
	if opt.Focused {
		line.prefix = focusMarker
		line.prefixStyle = styles.FocusedIndicator
	}
	text := opt.Label
	if multi {
		box := uncheckedBox
		if opt.Checked {
			box = checkedBox
		}
		text = box + text
	}
	line.text = text
	switch {
	case opt.Focused:
		line.style = styles.FocusedItem
	case opt.Selected:
		line.style = styles.SelectedItem
	}
	return line
}

// buttonSlot is a button's place in the wrapped button rows of a pane.
type buttonSlot struct {
	index int
	label string
	x     int
	width int
}

// layoutButtons wraps buttons onto as many rows as the column width needs.
// A label wider than the column is shortened so every button stays visible.
func layoutButtons(buttons []Button, width int) [][]buttonSlot {
	var rows [][]buttonSlot
	var row []buttonSlot
	used := 0
	for i, button := range buttons {
		label := "[ " + button.Control.Label + " ]"
		if w := ansi.StringWidth(label); w > width && width > 4 {
			label = "[ " + truncate.StringWithTail(button.Control.Label, uint(width-4), "…") + " ]"
		}
		w := ansi.StringWidth(label)
		x := used
		if len(row) > 0 {
			x++
		}
		if len(row) > 0 && x+w > width {
			rows = append(rows, row)
			row, x = nil, 0
		}
		row = append(row, buttonSlot{index: i, label: label, x: x, width: w})
		used = x + w
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// buttonRows renders the pane's buttons starting at screen row y, recording a
// zone for each one. There is always at least one row so columns line up.
func (m *Model) buttonRows(idx, x, y, width int) []styledLine {
	target := m.currentTarget()
	buttons := m.panes[idx].Buttons
	layout := layoutButtons(buttons, width)
	lines := make([]styledLine, 0, len(layout)+1)
	for r, row := range layout {
		var b strings.Builder
		used := 0
		for _, slot := range row {
			if gap := slot.x - used; gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			control := buttons[slot.index].Control
			style := styles.Button
			switch {
			case control.Disabled:
				style = styles.DisabledButton
			case target.pane == idx && target.button == slot.index:
				style = styles.FocusedButton
			}
			m.zones = append(m.zones, zone{x: x + slot.x, y: y + r, width: slot.width, pane: idx, button: slot.index})
			b.WriteString(style.Render(slot.label))
			used = slot.x + slot.width
		}
		if used < width {
			b.WriteString(strings.Repeat(" ", width-used))
		}
		lines = append(lines, styledLine{text: b.String(), raw: true})
	}
	if len(lines) == 0 {
		lines = append(lines, styledLine{text: strings.Repeat(" ", width), raw: true})
	}
	return lines
}

// buttonRowCount is the tallest wrapped button block across all panes.
func (m *Model) buttonRowCount() int {
	width := m.columnWidth()
	rows := 1
	for _, pane := range m.panes {
		if n := len(layoutButtons(pane.Buttons, width)); n > rows {
			rows = n
		}
	}
	return rows
}

func (m *Model) statusLine() styledLine {
	if list := m.currentList(); list != nil {
		if buf := list.TypeAheadBuffer(); buf != "" {
			return styledLine{text: "search: " + buf, style: styles.TypeAhead}
		}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: styles.Info}
	}
	return styledLine{}
}

func (m *Model) columnWidth() int {
	if m.width <= 0 || len(m.panes) == 0 {
		return defaultColumnWidth
	}
	w := (m.width - columnGap*(len(m.panes)-1)) / len(m.panes)
	if w < minColumnWidth {
		w = minColumnWidth
	}
	return w
}

// listRows returns the viewport height for every listbox; 0 shows all options.
func (m *Model) listRows() int {
	if m.height <= 0 {
		return 0
	}
	rows := m.height - chromeRows - (m.buttonRowCount() - 1)
	if m.showFooter {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// renderedRows is the number of option rows drawn per column so that every
// button row lines up.
func (m *Model) renderedRows() int {
	if rows := m.listRows(); rows > 0 {
		return rows
	}
	rows := 1
	for _, pane := range m.panes {
		if n := pane.List.Len(); n > rows {
			rows = n
		}
	}
	return rows
}

func (m *Model) resizeViewports() {
	rows := m.listRows()
	for _, pane := range m.panes {
		pane.List.SetViewportHeight(rows)
	}
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = line
		if line.raw {
			continue
		}
		room := width - ansi.StringWidth(line.prefix)
		if room < 1 {
			room = 1
		}
		if lipgloss.Width(line.text) > room {
			result[i].text = truncate.StringWithTail(line.text, uint(room), "…")
		}
	}
	return result
}

func padWidth(lines []styledLine, width int) []styledLine {
	for i, line := range lines {
		if line.raw {
			continue
		}
		if gap := width - ansi.StringWidth(line.prefix) - lipgloss.Width(line.text); gap > 0 {
			lines[i].text += strings.Repeat(" ", gap)
		}
	}
	return lines
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw {
			out[i] = line.text
			continue
		}
		prefix := line.prefix
		if prefix != "" && line.prefixStyle != nil {
			prefix = line.prefixStyle.Render(prefix)
		}
		text := line.text
		if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = prefix + text
	}
	return strings.Join(out, "\n")
}
