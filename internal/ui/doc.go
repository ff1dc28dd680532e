// Package ui contains the Bubble Tea program that hosts a pair of listboxes.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (keys, mouse, resize, timers, control activations).
//   - Key presses on a listbox are translated into listbox.KeyEvent values
//     (keys.go) and applied by the listbox itself. Key presses on a button
//     activate it through the command bus, which hands the activation back as
//     a message so every mutation happens inside Update.
//   - Type-ahead keystrokes schedule a timer message carrying the listbox id
//     and type-ahead generation; when it arrives the listbox drops the buffer
//     unless a newer keystroke bumped the generation in the meantime.
//
// State ownership:
//   - Option, focus and selection state lives in internal/listbox. The model
//     only tracks which pane or button has keyboard focus, the terminal size,
//     and a transient status message.
//   - The model installs the focus and item-change handlers on every listbox
//     it hosts; they emit trace events and, in verbose mode, status messages.
//
// Rendering reads listbox.Attributes snapshots only, and records the screen
// regions of options and buttons so mouse clicks can be mapped back.
package ui
