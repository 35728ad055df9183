// Package caret renders a customizable caret indicator for a host editing
// surface, replacing the surface's native cursor.
//
// The package is responsible for tracking insertion points across update
// notifications, deciding when a rebuild is needed, gating blink animation on
// an idle debounce, suspending itself during IME composition, and projecting
// caret offsets into the visible window of a virtualized surface.
package caret
