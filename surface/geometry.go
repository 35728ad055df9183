package surface

// DefaultLineHeight is the last-resort line height estimate, in pixel units,
// used when the surface reports no usable metrics.
const DefaultLineHeight = 16.0

// Rect is caret geometry: a terminal cell anchor plus an extent in pixel
// units. The extent describes the glyph box the host lays the caret over, not
// the cell grid.
type Rect struct {
	X, Y int
	W, H float64
}

// Zero reports whether the rect has no usable extent.
func (r Rect) Zero() bool {
	return r.W <= 0 || r.H <= 0
}

// Metrics describes the surface's text geometry.
type Metrics struct {
	// LineHeight is the height of one text line in pixel units.
	// Zero or negative means unknown.
	LineHeight float64
}

// Surface is the capability set the caret engine consumes from a host
// editing surface. All methods report current state on demand; the engine
// never caches them authoritatively.
type Surface interface {
	// Selection returns the current selection ranges in listener order.
	Selection() []Range

	// Viewport returns the currently materialized offset window.
	Viewport() Viewport

	// CaretRect returns the geometry of a collapsed range at off.
	// ok is false when the offset is outside the materialized window.
	CaretRect(off int) (Rect, bool)

	// Metrics returns the surface's text geometry.
	Metrics() Metrics
}
