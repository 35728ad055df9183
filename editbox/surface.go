package editbox

import (
	"github.com/iw2rmb/filament/internal/cellwidth"
	"github.com/iw2rmb/filament/surface"
)

// state implements surface.Surface for the attached caret extension.

func (s *state) Selection() []surface.Range { return s.cursors }

func (s *state) Viewport() surface.Viewport { return s.window() }

func (s *state) Metrics() surface.Metrics {
	return surface.Metrics{LineHeight: CellHeightPx}
}

// window is the materialized offset range: the first rune of the first
// visible row through one past the last rune of the last visible row.
func (s *state) window() surface.Viewport {
	from := s.lineStart(s.yoffset)
	lastRow := s.yoffset + s.height - 1
	if s.height <= 0 {
		return surface.Viewport{From: from, To: from}
	}
	if lastRow >= len(s.lines) {
		lastRow = len(s.lines) - 1
	}
	if lastRow < s.yoffset {
		return surface.Viewport{From: from, To: from}
	}
	to := s.lineStart(lastRow) + runeLen(s.lines[lastRow]) + 1
	return surface.Viewport{From: from, To: to}
}

// CaretRect reports the window-relative cell anchor and nominal pixel
// extent of a collapsed range at off. ok is false outside the visible rows.
func (s *state) CaretRect(off int) (surface.Rect, bool) {
	row, col := s.pos(off)
	y := row - s.yoffset
	if y < 0 || (s.height > 0 && y >= s.height) {
		return surface.Rect{}, false
	}

	line := s.lines[row]
	x := s.gutter + cellwidth.PrefixCells(line, col)

	cells := 1
	if cluster := clusterAt(line, col); cluster != "" {
		if w := cellwidth.Cluster(cluster); w > 0 {
			cells = w
		}
	}

	return surface.Rect{
		X: x,
		Y: y,
		W: CellWidthPx * float64(cells),
		H: CellHeightPx,
	}, true
}

// clusterAt returns the grapheme cluster whose first rune sits at rune
// index col, or "" at end of line.
func clusterAt(line string, col int) string {
	seen := 0
	for _, c := range cellwidth.Split(line) {
		if seen == col {
			return c
		}
		seen += len([]rune(c))
		if seen > col {
			break
		}
	}
	return ""
}
