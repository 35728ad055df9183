package caret

import "github.com/iw2rmb/filament/surface"

// VisibilityMargin widens the viewport window by one offset on each side so
// carets sitting exactly on a window edge survive rounding during scroll.
const VisibilityMargin = 1

// VisibleCarets returns the head offsets that need an indicator: one per
// empty selection range whose head lies inside the viewport ± margin.
//
// Order follows the input selection order (listener order), not document
// order. Duplicate heads are kept; two selections reporting the same offset
// yield two indicators.
func VisibleCarets(sel []surface.Range, vp surface.Viewport) []int {
	var heads []int
	for _, r := range sel {
		if !r.IsEmpty() {
			continue
		}
		if !vp.Contains(r.Head, VisibilityMargin) {
			continue
		}
		heads = append(heads, r.Head)
	}
	return heads
}

// caretHeads returns the head offsets of all empty ranges, visible or not.
// This is the gate's cache key: visibility is tracked separately so a pure
// scroll can be classified without a selection diff.
func caretHeads(sel []surface.Range) []int {
	var heads []int
	for _, r := range sel {
		if r.IsEmpty() {
			heads = append(heads, r.Head)
		}
	}
	return heads
}

// equalHeads compares two head lists by length and position; a reorder or
// count change counts as a difference even when the value sets match.
func equalHeads(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// anyVisible reports whether any head falls inside the viewport ± margin.
func anyVisible(heads []int, vp surface.Viewport) bool {
	for _, h := range heads {
		if vp.Contains(h, VisibilityMargin) {
			return true
		}
	}
	return false
}
