package caret

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval paces coalesced geometry recomputation for the floating
// title caret. Multiple refresh requests inside one interval collapse into a
// single recompute.
const frameInterval = time.Second / 60

// FrameMsg delivers a coalesced render frame to the title caret with the
// given ID. State is read when the frame fires, never captured at request
// time, so the frame always reflects the latest field geometry and
// configuration.
type FrameMsg struct {
	ID  int
	Tag int
}

func frameTick(id, tag int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return FrameMsg{ID: id, Tag: tag}
	})
}
