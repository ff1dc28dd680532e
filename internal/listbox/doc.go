// Package listbox implements the state machine behind an accessible listbox
// widget: an ordered set of options with a single focused option (the active
// descendant), single or multi selection, vertical reordering, and transfer of
// options to a sibling listbox.
//
// The package has no rendering or event-loop dependencies. Hosts translate
// their own input events into KeyEvent values or direct method calls, and read
// the observable state back through Attributes. Every operation is a no-op
// when its preconditions are not met; nothing here returns an error.
//
// Type-ahead search is debounced by generation: each keystroke bumps
// TypeAheadGeneration, and the host is expected to call ExpireTypeAhead with
// that generation once TypeAheadDelay has passed. Stale generations are
// ignored, which is how a newer keystroke cancels the pending clear.
package listbox
