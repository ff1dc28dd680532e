package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/popup-listbox/internal/listbox"
	"github.com/atomicstack/popup-listbox/internal/logging/events"
	"github.com/atomicstack/popup-listbox/internal/theme"
	"github.com/atomicstack/popup-listbox/internal/ui/command"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// scheduler delivers msg after d.
type scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

func tickScheduler(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Options configures the model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Pane is a listbox rendered as one column together with its buttons.
type Pane struct {
	List    *listbox.Listbox
	Buttons []Button
}

// Button binds a control to the operation it triggers.
type Button struct {
	Control *listbox.Control
	Action  command.Action
}

// NewPane derives the buttons for every control wired to l.
func NewPane(l *listbox.Listbox) Pane {
	p := Pane{List: l}
	if c := l.UpControl(); c != nil {
		p.Buttons = append(p.Buttons, Button{Control: c, Action: func() { l.MoveUpItems() }})
	}
	if c := l.DownControl(); c != nil {
		p.Buttons = append(p.Buttons, Button{Control: c, Action: func() { l.MoveDownItems() }})
	}
	if c := l.MoveControl(); c != nil {
		p.Buttons = append(p.Buttons, Button{Control: c, Action: func() { l.MoveItems() }})
	}
	return p
}

// focusTarget is a stop in the tab order; button is -1 for the listbox itself.
type focusTarget struct {
	pane   int
	button int
}

// Model implements the Bubble Tea model for the listbox demo.
type Model struct {
	panes       []Pane
	ring        []focusTarget
	focus       int
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	infoMsg     string
	infoExpire  time.Time

	// noted is set once a change summary was recorded in the current update.
	noted bool
	// zones is rewritten by View and read by the mouse handler.
	zones []zone

	keys     keyMap
	help     help.Model
	bus      *command.Bus
	schedule scheduler
	handlers map[reflect.Type]msgHandler
}

// NewModel hosts panes left to right. The first listbox starts with keyboard
// focus.
func NewModel(panes []Pane, opts Options) *Model {
	m := &Model{
		panes:      panes,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		keys:       defaultKeyMap(),
		help:       help.New(),
		bus:        command.New(),
		schedule:   tickScheduler,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	for i, pane := range panes {
		m.ring = append(m.ring, focusTarget{pane: i, button: -1})
		for j := range pane.Buttons {
			m.ring = append(m.ring, focusTarget{pane: i, button: j})
		}
		m.watch(pane.List)
	}
	m.resizeViewports()
	if list := m.currentList(); list != nil {
		list.Activate()
	}
	m.registerHandlers()
	return m
}

// watch installs the focus and item-change handlers on l.
func (m *Model) watch(l *listbox.Listbox) {
	l.SetFocusHandler(func(item listbox.Item) {
		events.Listbox.Focus(l.ID(), item.ID, item.Label)
	})
	l.SetItemChangeHandler(func(kind listbox.ChangeKind, items []listbox.Item) {
		events.Listbox.Change(l.ID(), string(kind), listbox.ItemIDs(items))
		if !m.verbose || m.noted {
			return
		}
		if summary := changeSummary(l, kind, items); summary != "" {
			m.setInfo(summary)
			m.noted = true
		}
	})
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.noted = false
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):        m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(typeAheadExpiredMsg{}): m.handleTypeAheadExpiredMsg,
		reflect.TypeOf(command.Activation{}):  m.handleActivationMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) currentTarget() focusTarget {
	if len(m.ring) == 0 {
		return focusTarget{pane: -1, button: -1}
	}
	return m.ring[m.focus]
}

// currentList returns the listbox holding keyboard focus, or nil when a
// button has it.
func (m *Model) currentList() *listbox.Listbox {
	target := m.currentTarget()
	if target.pane < 0 || target.button >= 0 {
		return nil
	}
	return m.panes[target.pane].List
}

func (m *Model) listByID(id string) *listbox.Listbox {
	for _, pane := range m.panes {
		if pane.List.ID() == id {
			return pane.List
		}
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
