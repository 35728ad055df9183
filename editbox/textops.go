package editbox

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/filament/surface"
)

func runeLen(s string) int { return utf8.RuneCountInString(s) }

// docLen is the document length in runes, newlines included.
func (s *state) docLen() int {
	n := 0
	for i, line := range s.lines {
		if i > 0 {
			n++
		}
		n += runeLen(line)
	}
	return n
}

// lineStart returns the offset of the first rune of row.
func (s *state) lineStart(row int) int {
	off := 0
	for i := 0; i < row && i < len(s.lines); i++ {
		off += runeLen(s.lines[i]) + 1
	}
	return off
}

// pos converts an offset to (row, col), clamped into the document.
func (s *state) pos(off int) (row, col int) {
	if off < 0 {
		off = 0
	}
	for i, line := range s.lines {
		n := runeLen(line)
		if off <= n {
			return i, off
		}
		off -= n + 1
		row = i
	}
	last := len(s.lines) - 1
	return last, runeLen(s.lines[last])
}

// offset converts (row, col) to an offset, clamped into the document.
func (s *state) offset(row, col int) int {
	if row < 0 {
		row = 0
	}
	if row >= len(s.lines) {
		row = len(s.lines) - 1
	}
	n := runeLen(s.lines[row])
	if col < 0 {
		col = 0
	}
	if col > n {
		col = n
	}
	return s.lineStart(row) + col
}

func (s *state) clampOffset(off int) int {
	if off < 0 {
		return 0
	}
	if n := s.docLen(); off > n {
		return n
	}
	return off
}

// moveAll shifts every caret head by delta runes. With extend the anchors
// stay put (selection); otherwise carets collapse to the new head.
func (s *state) moveAll(delta int, extend bool) {
	for i, c := range s.cursors {
		head := s.clampOffset(c.Head + delta)
		if extend {
			s.cursors[i].Head = head
		} else {
			s.cursors[i] = surface.Point(head)
		}
	}
}

// moveVertical moves every caret one row up or down, clamping the column.
func (s *state) moveVertical(rows int) {
	for i, c := range s.cursors {
		row, col := s.pos(c.Head)
		s.cursors[i] = surface.Point(s.offset(row+rows, col))
	}
}

// moveLineEdge sends every caret to its line start or end.
func (s *state) moveLineEdge(end bool) {
	for i, c := range s.cursors {
		row, _ := s.pos(c.Head)
		col := 0
		if end {
			col = runeLen(s.lines[row])
		}
		s.cursors[i] = surface.Point(s.offset(row, col))
	}
}

// addCaretBelow adds a caret one row below the last one, same column.
// Reports whether a caret was added.
func (s *state) addCaretBelow() bool {
	last := s.cursors[len(s.cursors)-1]
	row, col := s.pos(last.Head)
	if row+1 >= len(s.lines) {
		return false
	}
	s.cursors = append(s.cursors, surface.Point(s.offset(row+1, col)))
	return true
}

// collapseCarets drops all carets but the primary. Reports whether the set
// changed.
func (s *state) collapseCarets() bool {
	if len(s.cursors) <= 1 {
		return false
	}
	s.cursors = s.cursors[:1]
	return true
}

// insert places text at the primary caret head, replacing the primary
// selection if one is active. Other carets shift to keep their positions.
func (s *state) insert(text string) {
	r := s.cursors[0].Normalize()
	s.splice(r.Anchor, r.Head, text)
}

// deleteBackward removes the primary selection, or the rune before the
// primary head. Reports whether anything was removed.
func (s *state) deleteBackward() bool {
	r := s.cursors[0].Normalize()
	if r.IsEmpty() {
		if r.Head == 0 {
			return false
		}
		r.Anchor = r.Head - 1
	}
	s.splice(r.Anchor, r.Head, "")
	return true
}

// splice replaces the rune range [from, to) with text and shifts every
// caret offset accordingly. The primary caret lands after the inserted
// text.
func (s *state) splice(from, to int, text string) {
	rs := []rune(strings.Join(s.lines, "\n"))
	from = clamp(from, 0, len(rs))
	to = clamp(to, from, len(rs))

	ins := []rune(text)
	out := make([]rune, 0, len(rs)-(to-from)+len(ins))
	out = append(out, rs[:from]...)
	out = append(out, ins...)
	out = append(out, rs[to:]...)
	s.lines = strings.Split(string(out), "\n")

	delta := len(ins) - (to - from)
	s.cursors[0] = surface.Point(from + len(ins))
	for i := 1; i < len(s.cursors); i++ {
		s.cursors[i] = surface.Point(shiftOffset(s.cursors[i].Head, from, to, delta))
	}
}

// shiftOffset adjusts a caret offset for a splice of [from, to) by delta.
func shiftOffset(off, from, to, delta int) int {
	if off <= from {
		return off
	}
	if off <= to {
		return from
	}
	return off + delta
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
