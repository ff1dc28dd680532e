package command

import (
	"github.com/atomicstack/popup-listbox/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Action performs the operation behind a control. It runs inside Update.
type Action func()

// Request encapsulates a control activation.
type Request struct {
	ID      string
	Label   string
	Handler Action
}

// Activation is delivered back to the model when a queued request is due.
type Activation struct {
	Request Request
}

// Bus queues control activations so they reach the model as messages, the
// same way any other input event does.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		return Activation{Request: req}
	}
}

// Run performs a delivered activation and reports whether anything ran.
func (b *Bus) Run(act Activation) bool {
	req := act.Request
	if req.Handler == nil {
		events.Command.Skip(req.ID, req.Label)
		return false
	}
	req.Handler()
	events.Command.Result(req.ID, req.Label)
	return true
}
