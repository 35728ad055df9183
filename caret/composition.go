package caret

import tea "github.com/charmbracelet/bubbletea"

// CompositionStartMsg reports that IME composition began on the surface
// tracked by the extension with the given ID. Messages carrying another ID
// are ignored.
type CompositionStartMsg struct {
	ID int
}

// CompositionEndMsg reports that IME composition ended on the tracked
// surface.
type CompositionEndMsg struct {
	ID int
}

// startComposition enters the composing state: idle tracking is suspended,
// any pending debounce tick is superseded, and the marker set is emptied so
// the native caret renders intermediate composition text undisturbed.
func (e *Extension) startComposition() {
	if e.composing {
		return
	}
	e.composing = true
	e.idle.interrupt()
	e.markers = nil
}

// endComposition leaves the composing state, re-marks activity so idle
// scheduling restarts from zero, and rebuilds the markers.
func (e *Extension) endComposition() tea.Cmd {
	if !e.composing {
		return nil
	}
	e.composing = false
	cmd := e.MarkActivity()
	e.refresh()
	return cmd
}
