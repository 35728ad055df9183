package caret

import (
	"testing"
	"time"

	"github.com/iw2rmb/filament/surface"
)

// countingSurface wraps fakeSurface and counts geometry lookups, so tests
// can assert that skipped updates do no rebuild work.
type countingSurface struct {
	fakeSurface
	rectCalls int
}

func (s *countingSurface) CaretRect(off int) (surface.Rect, bool) {
	s.rectCalls++
	return s.fakeSurface.CaretRect(off)
}

func idleOnlyConfig() Config {
	c := testConfig()
	c.IdleOnlyBlink = true
	c.IdleDelay = 500 * time.Millisecond
	return c
}

func selectionUpdate(vp surface.Viewport, sel ...surface.Range) surface.Update {
	return surface.Update{
		SelectionChanged: true,
		Selection:        sel,
		Viewport:         vp,
	}
}

func TestExtension_BuildsMarkersOnSelectionChange(t *testing.T) {
	surf := &fakeSurface{lineH: 10, vp: surface.Viewport{From: 0, To: 100}}
	e := Attach(surf, func() Config { return testConfig() })

	e.HandleUpdate(selectionUpdate(surf.vp, surface.Point(5)))

	markers := e.Markers()
	if len(markers) != 1 {
		t.Fatalf("marker count: got %d, want 1", len(markers))
	}
	if markers[0].Offset != 5 {
		t.Fatalf("marker offset: got %d, want 5", markers[0].Offset)
	}
}

func TestExtension_IdenticalNotificationIsNoOp(t *testing.T) {
	surf := &countingSurface{fakeSurface: fakeSurface{lineH: 10, vp: surface.Viewport{From: 0, To: 100}}}
	e := Attach(surf, func() Config { return testConfig() })

	e.HandleUpdate(selectionUpdate(surf.vp, surface.Point(5)))
	calls := surf.rectCalls
	if calls == 0 {
		t.Fatalf("first update did no geometry work")
	}

	// Same payload with no change flags: must not rebuild.
	e.HandleUpdate(surface.Update{
		Selection: []surface.Range{surface.Point(5)},
		Viewport:  surf.vp,
	})
	if surf.rectCalls != calls {
		t.Fatalf("repeat notification rebuilt: %d extra geometry lookups", surf.rectCalls-calls)
	}
}

func TestExtension_TwoCaretsOneOutsideWindow(t *testing.T) {
	surf := &fakeSurface{lineH: 10, vp: surface.Viewport{From: 0, To: 50}}
	e := Attach(surf, func() Config { return testConfig() })

	e.HandleUpdate(selectionUpdate(surf.vp, surface.Point(25), surface.Point(101)))

	markers := e.Markers()
	if len(markers) != 1 {
		t.Fatalf("marker count: got %d, want 1", len(markers))
	}
	if markers[0].Offset != 25 {
		t.Fatalf("marker offset: got %d, want 25", markers[0].Offset)
	}
}

func TestExtension_DuplicateHeadsRenderTwice(t *testing.T) {
	surf := &fakeSurface{lineH: 10, vp: surface.Viewport{From: 0, To: 100}}
	e := Attach(surf, func() Config { return testConfig() })

	e.HandleUpdate(selectionUpdate(surf.vp, surface.Point(7), surface.Point(7)))

	if got := len(e.Markers()); got != 2 {
		t.Fatalf("duplicate heads: got %d markers, want 2", got)
	}
}

func TestExtension_IdleDebounce(t *testing.T) {
	surf := &fakeSurface{lineH: 10, vp: surface.Viewport{From: 0, To: 100}}
	surf.sel = []surface.Range{surface.Point(5)}
	e := Attach(surf, idleOnlyConfig)

	cmd := e.HandleUpdate(selectionUpdate(surf.vp, surface.Point(5)))
	if cmd == nil {
		t.Fatalf("activity must schedule an idle tick")
	}
	if e.IsIdle() {
		t.Fatalf("idle immediately after activity: got true, want false")
	}

	// The scheduled generation fires: idle flips.
	e.Update(IdleTickMsg{ID: e.ID(), Tag: e.idle.tag})
	if !e.IsIdle() {
		t.Fatalf("idle after tick: got false, want true")
	}
	if m := e.Markers(); len(m) != 1 || !m[0].Blink {
		t.Fatalf("idle markers must blink: %+v", m)
	}

	// New activity resets the wait and un-idles immediately.
	e.HandleUpdate(selectionUpdate(surf.vp, surface.Point(6)))
	if e.IsIdle() {
		t.Fatalf("idle after new activity: got true, want false")
	}
	if m := e.Markers(); len(m) != 1 || m[0].Blink {
		t.Fatalf("active markers must not blink under idle-only: %+v", m)
	}
}

func TestExtension_StaleIdleTickIgnored(t *testing.T) {
	surf := &fakeSurface{lineH: 10, vp: surface.Viewport{From: 0, To: 100}}
	surf.sel = []surface.Range{surface.Point(5)}
	e := Attach(surf, idleOnlyConfig)

	e.HandleUpdate(selectionUpdate(surf.vp, surface.Point(5)))
	stale := e.idle.tag

	// Activity within the window supersedes the first generation.
	e.HandleUpdate(selectionUpdate(surf.vp, surface.Point(6)))

	e.Update(IdleTickMsg{ID: e.ID(), Tag: stale})
	if e.IsIdle() {
		t.Fatalf("stale tick flipped idle: got true, want false")
	}

	e.Update(IdleTickMsg{ID: e.ID(), Tag: e.idle.tag})
	if !e.IsIdle() {
		t.Fatalf("live tick did not flip idle")
	}
}

func TestExtension_ForeignIdleTickIgnored(t *testing.T) {
	surf := &fakeSurface{lineH: 10, vp: surface.Viewport{From: 0, To: 100}}
	e := Attach(surf, idleOnlyConfig)

	e.HandleUpdate(selectionUpdate(surf.vp, surface.Point(5)))
	e.Update(IdleTickMsg{ID: e.ID() + 1, Tag: e.idle.tag})
	if e.IsIdle() {
		t.Fatalf("foreign tick flipped idle")
	}
}

func TestExtension_ContinuousBlinkSchedulesNoTick(t *testing.T) {
	surf := &fakeSurface{lineH: 10, vp: surface.Viewport{From: 0, To: 100}}
	e := Attach(surf, func() Config { return testConfig() }) // IdleOnlyBlink off

	cmd := e.HandleUpdate(selectionUpdate(surf.vp, surface.Point(5)))
	if cmd != nil {
		t.Fatalf("continuous blink scheduled an idle tick")
	}
	if m := e.Markers(); len(m) != 1 || !m[0].Blink {
		t.Fatalf("continuous blink markers must blink: %+v", m)
	}
}

func TestExtension_CompositionSuppressesMarkers(t *testing.T) {
	surf := &fakeSurface{lineH: 10, vp: surface.Viewport{From: 0, To: 100}}
	surf.sel = []surface.Range{surface.Point(5)}
	e := Attach(surf, idleOnlyConfig)

	e.HandleUpdate(selectionUpdate(surf.vp, surface.Point(5)))
	e.Update(IdleTickMsg{ID: e.ID(), Tag: e.idle.tag})
	if !e.IsIdle() {
		t.Fatalf("precondition: idle")
	}

	e.Update(CompositionStartMsg{ID: e.ID()})
	if e.IsIdle() {
		t.Fatalf("idle during composition: got true, want false")
	}
	if len(e.Markers()) != 0 {
		t.Fatalf("markers during composition: got %d, want 0", len(e.Markers()))
	}
	if !e.NativeCursor() {
		t.Fatalf("native cursor during composition: got false, want true")
	}

	// Updates keep flowing while composing; still no markers.
	e.HandleUpdate(selectionUpdate(surf.vp, surface.Point(6)))
	if len(e.Markers()) != 0 {
		t.Fatalf("markers after update while composing: got %d, want 0", len(e.Markers()))
	}

	// Composition end restarts idle scheduling from zero and re-renders.
	cmd := e.Update(CompositionEndMsg{ID: e.ID()})
	if cmd == nil {
		t.Fatalf("composition end must restart the idle debounce")
	}
	if e.IsIdle() {
		t.Fatalf("idle right after composition end: got true, want false")
	}
	if e.NativeCursor() {
		t.Fatalf("native cursor after composition end: got true, want false")
	}
	if len(e.Markers()) != 1 {
		t.Fatalf("markers after composition end: got %d, want 1", len(e.Markers()))
	}
}

func TestExtension_CompositionOnOtherSurfaceIgnored(t *testing.T) {
	surf := &fakeSurface{lineH: 10, vp: surface.Viewport{From: 0, To: 100}}
	e := Attach(surf, idleOnlyConfig)

	e.HandleUpdate(selectionUpdate(surf.vp, surface.Point(5)))
	e.Update(CompositionStartMsg{ID: e.ID() + 42})

	if e.NativeCursor() {
		t.Fatalf("composition on untracked surface engaged the guard")
	}
	if len(e.Markers()) != 1 {
		t.Fatalf("markers: got %d, want 1", len(e.Markers()))
	}
}

func TestExtension_DetachTearsDown(t *testing.T) {
	surf := &fakeSurface{lineH: 10, vp: surface.Viewport{From: 0, To: 100}}
	surf.sel = []surface.Range{surface.Point(5)}
	e := Attach(surf, idleOnlyConfig)

	e.HandleUpdate(selectionUpdate(surf.vp, surface.Point(5)))
	pending := e.idle.tag

	e.Detach()
	if len(e.Markers()) != 0 {
		t.Fatalf("markers after detach: got %d, want 0", len(e.Markers()))
	}
	if !e.NativeCursor() {
		t.Fatalf("native cursor after detach: got false, want true")
	}

	// Events continuing to arrive after teardown are inert.
	e.Update(IdleTickMsg{ID: e.ID(), Tag: pending})
	if e.IsIdle() {
		t.Fatalf("idle tick fired after detach")
	}
	if cmd := e.HandleUpdate(selectionUpdate(surf.vp, surface.Point(9))); cmd != nil {
		t.Fatalf("update after detach scheduled work")
	}
	if len(e.Markers()) != 0 {
		t.Fatalf("markers after post-detach update: got %d, want 0", len(e.Markers()))
	}
	if cmd := e.MarkActivity(); cmd != nil {
		t.Fatalf("activity after detach scheduled work")
	}
}
