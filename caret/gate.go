package caret

import "github.com/iw2rmb/filament/surface"

// gateDecision classifies an update notification.
type gateDecision int

const (
	// gateSkip: nothing visually relevant changed.
	gateSkip gateDecision = iota
	// gateRebuild: recompute visible carets and markers.
	gateRebuild
)

// renderCache remembers the previous notification's caret heads and whether
// any of them was inside the viewport. It exists only to skip rebuilds; it is
// never authoritative and is safe to discard at any time.
type renderCache struct {
	valid      bool
	heads      []int
	anyVisible bool
}

// decide classifies u against the cache and refreshes the cache when a
// rebuild is required.
//
// A pure viewport shift with an unchanged head list only re-derives window
// membership: if the "any caret visible" flag is stable the whole update is
// skipped, otherwise the small caret set makes a full rebuild cheap.
func (c *renderCache) decide(u surface.Update) gateDecision {
	if !u.Changed() {
		return gateSkip
	}

	heads := caretHeads(u.Selection)

	if c.valid && u.ViewportChanged && !u.SelectionChanged && !u.DocChanged && equalHeads(c.heads, heads) {
		visible := anyVisible(heads, u.Viewport)
		if visible == c.anyVisible {
			return gateSkip
		}
		c.anyVisible = visible
		return gateRebuild
	}

	c.valid = true
	c.heads = heads
	c.anyVisible = anyVisible(heads, u.Viewport)
	return gateRebuild
}

// invalidate discards the cache so the next update always rebuilds.
func (c *renderCache) invalidate() {
	c.valid = false
	c.heads = nil
	c.anyVisible = false
}
