// Package surface defines the boundary types between a host editing surface
// and the filament caret engine.
//
// Offsets are 0-based rune offsets into the logical document. Selection
// ranges are (Anchor, Head) pairs; a range is an insertion point when
// Anchor == Head. The viewport is the half-open offset window [From, To)
// that a virtualized surface currently materializes.
package surface
