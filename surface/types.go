package surface

// Range is a selection in document rune offsets. Anchor is the fixed end,
// Head the moving end; Head may precede Anchor.
type Range struct {
	Anchor int
	Head   int
}

// IsEmpty reports whether r is a zero-width insertion point.
func (r Range) IsEmpty() bool {
	return r.Anchor == r.Head
}

// Normalize returns r with Anchor <= Head.
func (r Range) Normalize() Range {
	if r.Anchor > r.Head {
		return Range{Anchor: r.Head, Head: r.Anchor}
	}
	return r
}

// Point returns an empty range at off.
func Point(off int) Range {
	return Range{Anchor: off, Head: off}
}

// Viewport is the half-open offset window [From, To) materialized by a
// virtualized surface. It may shift between any two update notifications.
type Viewport struct {
	From int
	To   int
}

// Contains reports whether off lies within the window widened by margin on
// both sides: From-margin <= off <= To+margin.
func (v Viewport) Contains(off, margin int) bool {
	return off >= v.From-margin && off <= v.To+margin
}

// Update is a single change notification from the host surface. Flags
// describe what changed since the previous notification; Selection and
// Viewport carry the resulting state.
type Update struct {
	SelectionChanged bool
	DocChanged       bool
	ViewportChanged  bool

	Selection []Range
	Viewport  Viewport
}

// Changed reports whether any flag is set.
func (u Update) Changed() bool {
	return u.SelectionChanged || u.DocChanged || u.ViewportChanged
}
