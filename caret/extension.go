package caret

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/filament/surface"
)

var lastExtensionID atomic.Int64

func nextExtensionID() int {
	return int(lastExtensionID.Add(1))
}

// Extension tracks the caret indicators of one editing surface. Attach one
// per surface; state never crosses surface boundaries.
//
// All methods are meant to run on the host's message loop. Timer work
// arrives as tagged messages through Update, so the extension has no
// goroutines of its own and Detach cancels everything synchronously.
type Extension struct {
	id   int
	surf surface.Surface
	src  Source

	cache renderCache
	idle  idleState

	composing bool
	detached  bool

	markers []Marker
}

// Attach creates an extension for surf reading its configuration live
// through src. A nil src falls back to DefaultConfig.
func Attach(surf surface.Surface, src Source) *Extension {
	if src == nil {
		src = DefaultConfig
	}
	return &Extension{
		id:   nextExtensionID(),
		surf: surf,
		src:  src,
	}
}

// ID identifies this extension in composition and idle messages.
func (e *Extension) ID() int { return e.id }

// Markers returns the current indicator set. It is empty while composing,
// after detach, and when no caret is inside the viewport.
func (e *Extension) Markers() []Marker { return e.markers }

// IsIdle reports whether the idle debounce has elapsed with no activity.
func (e *Extension) IsIdle() bool { return e.idle.idle }

// NativeCursor reports whether the host must show the platform caret
// instead of the custom markers: during composition and after detach.
func (e *Extension) NativeCursor() bool {
	return e.composing || e.detached
}

// HandleUpdate processes one change notification from the surface. It
// decides whether a rebuild is needed, recomputes the markers when it is,
// and marks activity for selection or document changes. The returned command
// schedules the idle debounce tick, if any.
func (e *Extension) HandleUpdate(u surface.Update) tea.Cmd {
	if e.detached {
		return nil
	}

	var cmd tea.Cmd
	if u.SelectionChanged || u.DocChanged {
		cmd = e.MarkActivity()
	}

	if e.cache.decide(u) == gateSkip {
		return cmd
	}

	heads := VisibleCarets(u.Selection, u.Viewport)
	e.markers = buildMarkers(e.surf, heads, e.src(), e.idle.idle, e.composing)
	return cmd
}

// MarkActivity records user activity: the caret leaves idle immediately and
// the debounce restarts. With IdleOnlyBlink off, or while composing, idle
// tracking stays suspended and no tick is scheduled.
func (e *Extension) MarkActivity() tea.Cmd {
	if e.detached {
		return nil
	}

	cfg := e.src().normalized()
	if e.composing || !cfg.IdleOnlyBlink {
		wasIdle := e.idle.idle
		e.idle.interrupt()
		if wasIdle {
			e.refresh()
		}
		return nil
	}

	wasIdle := e.idle.idle
	tag := e.idle.arm()
	if wasIdle {
		e.refresh()
	}
	return idleTick(e.id, tag, cfg.IdleDelay)
}

// Update consumes idle and composition messages scoped to this extension.
// Messages for other extensions pass through untouched.
func (e *Extension) Update(msg tea.Msg) tea.Cmd {
	if e.detached {
		return nil
	}

	switch msg := msg.(type) {
	case IdleTickMsg:
		if msg.ID != e.id {
			return nil
		}
		cfg := e.src().normalized()
		if e.composing || !cfg.IdleOnlyBlink {
			return nil
		}
		if e.idle.fire(msg.Tag) {
			e.refresh()
		}
	case CompositionStartMsg:
		if msg.ID != e.id {
			return nil
		}
		e.startComposition()
	case CompositionEndMsg:
		if msg.ID != e.id {
			return nil
		}
		return e.endComposition()
	}
	return nil
}

// Detach tears the extension down: pending ticks are superseded, the marker
// set and cache are dropped, and the native caret is released back to the
// host. The extension ignores all further calls.
func (e *Extension) Detach() {
	if e.detached {
		return
	}
	e.detached = true
	e.idle.interrupt()
	e.composing = false
	e.markers = nil
	e.cache.invalidate()
}

// refresh recomputes markers from the surface's on-demand state. Used when
// idle or composition state flips without a surface notification.
func (e *Extension) refresh() {
	if e.surf == nil {
		e.markers = nil
		return
	}
	heads := VisibleCarets(e.surf.Selection(), e.surf.Viewport())
	e.markers = buildMarkers(e.surf, heads, e.src(), e.idle.idle, e.composing)
}
