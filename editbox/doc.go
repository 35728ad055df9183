// Package editbox provides a reference Bubble Tea editing surface for the
// caret engine: a small multi-cursor text box that implements
// surface.Surface, emits change notifications to an attached caret
// extension, and composites the resulting markers over its view.
//
// It exists so the engine has a complete in-repo host; it is intentionally
// not a full editor (no undo, no clipboard, no wrapping).
package editbox
