package caret

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// IdleTickMsg flips an extension to idle once the debounce delay elapses
// with no further activity. Tag identifies the scheduling generation: any
// later activity bumps the extension's tag, so a stale tick no-ops. ID
// scopes the message to one extension instance.
type IdleTickMsg struct {
	ID  int
	Tag int
}

// idleState is the debounced idle machine. There is at most one live
// generation; superseded ticks are identified by tag, which is the
// message-loop equivalent of resetting a single debounce timer.
type idleState struct {
	idle bool
	tag  int
}

// interrupt forces non-idle and supersedes any pending tick without
// scheduling a new one. Used when idle tracking is suspended (composition)
// or disabled (continuous blink).
func (s *idleState) interrupt() {
	s.idle = false
	s.tag++
}

// arm forces non-idle, supersedes any pending tick, and returns the tag a
// new tick must carry.
func (s *idleState) arm() int {
	s.idle = false
	s.tag++
	return s.tag
}

// fire transitions to idle if tag is still the live generation. It reports
// whether the state flipped.
func (s *idleState) fire(tag int) bool {
	if tag != s.tag || s.idle {
		return false
	}
	s.idle = true
	return true
}

// idleTick schedules the debounce tick for one extension generation.
func idleTick(id, tag int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return IdleTickMsg{ID: id, Tag: tag}
	})
}
