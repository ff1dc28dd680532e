package events

import "github.com/atomicstack/popup-listbox/internal/logging"

type ListboxTracer struct{}

var Listbox = ListboxTracer{}

func (ListboxTracer) Focus(listID, itemID, label string) {
	logging.Trace("listbox.focus", map[string]interface{}{"list": listID, "item": itemID, "label": label})
}

func (ListboxTracer) Change(listID, kind string, itemIDs []string) {
	logging.Trace("listbox.change", map[string]interface{}{"list": listID, "kind": kind, "items": itemIDs})
}

func (ListboxTracer) Click(listID, itemID string) {
	logging.Trace("listbox.click", map[string]interface{}{"list": listID, "item": itemID})
}

func (ListboxTracer) TypeAhead(listID, buffer string) {
	logging.Trace("listbox.typeahead", map[string]interface{}{"list": listID, "buffer": buffer})
}

func (ListboxTracer) TypeAheadExpired(listID string, generation uint64) {
	logging.Trace("listbox.typeahead.expire", map[string]interface{}{"list": listID, "generation": generation})
}
