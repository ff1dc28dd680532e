package events

import "github.com/atomicstack/popup-listbox/internal/logging"

type UITracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Command = CommandTracer{}
)

func (UITracer) FocusRing(target string) {
	logging.Trace("ui.focus", map[string]interface{}{"target": target})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Disabled(id, label string) {
	logging.Trace("command.disabled", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label})
}
