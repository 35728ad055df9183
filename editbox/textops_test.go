package editbox

import (
	"strings"
	"testing"

	"github.com/iw2rmb/filament/surface"
)

func newState(text string) *state {
	return &state{
		lines:   strings.Split(text, "\n"),
		cursors: []surface.Range{surface.Point(0)},
		focused: true,
		height:  10,
	}
}

func TestState_PosAndOffsetRoundTrip(t *testing.T) {
	s := newState("ab\ncde\n\nf")

	cases := []struct {
		off  int
		row  int
		col  int
	}{
		{off: 0, row: 0, col: 0},
		{off: 2, row: 0, col: 2},
		{off: 3, row: 1, col: 0},
		{off: 6, row: 1, col: 3},
		{off: 7, row: 2, col: 0},
		{off: 8, row: 3, col: 0},
		{off: 9, row: 3, col: 1},
	}
	for _, tc := range cases {
		row, col := s.pos(tc.off)
		if row != tc.row || col != tc.col {
			t.Fatalf("pos(%d): got (%d,%d), want (%d,%d)", tc.off, row, col, tc.row, tc.col)
		}
		if got := s.offset(tc.row, tc.col); got != tc.off {
			t.Fatalf("offset(%d,%d): got %d, want %d", tc.row, tc.col, got, tc.off)
		}
	}
}

func TestState_PosClampsOutOfRange(t *testing.T) {
	s := newState("ab")
	if row, col := s.pos(99); row != 0 || col != 2 {
		t.Fatalf("pos(99): got (%d,%d), want (0,2)", row, col)
	}
	if row, col := s.pos(-5); row != 0 || col != 0 {
		t.Fatalf("pos(-5): got (%d,%d), want (0,0)", row, col)
	}
}

func TestState_InsertShiftsOtherCarets(t *testing.T) {
	s := newState("abc\ndef")
	s.cursors = []surface.Range{surface.Point(1), surface.Point(5)}

	s.insert("XY")

	if got := strings.Join(s.lines, "\n"); got != "aXYbc\ndef" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXYbc\ndef")
	}
	if got := s.cursors[0]; got != surface.Point(3) {
		t.Fatalf("primary after insert: got %v, want %v", got, surface.Point(3))
	}
	if got := s.cursors[1]; got != surface.Point(7) {
		t.Fatalf("secondary after insert: got %v, want %v", got, surface.Point(7))
	}
}

func TestState_DeleteBackward(t *testing.T) {
	s := newState("abc")
	s.cursors[0] = surface.Point(2)

	if !s.deleteBackward() {
		t.Fatalf("deleteBackward: got false, want true")
	}
	if got := s.lines[0]; got != "ac" {
		t.Fatalf("text: got %q, want %q", got, "ac")
	}
	if got := s.cursors[0]; got != surface.Point(1) {
		t.Fatalf("cursor: got %v, want %v", got, surface.Point(1))
	}

	s.cursors[0] = surface.Point(0)
	if s.deleteBackward() {
		t.Fatalf("deleteBackward at origin: got true, want false")
	}
}

func TestState_DeleteBackwardRemovesSelection(t *testing.T) {
	s := newState("abcdef")
	s.cursors[0] = surface.Range{Anchor: 1, Head: 4}

	if !s.deleteBackward() {
		t.Fatalf("deleteBackward: got false, want true")
	}
	if got := s.lines[0]; got != "aef" {
		t.Fatalf("text: got %q, want %q", got, "aef")
	}
	if got := s.cursors[0]; got != surface.Point(1) {
		t.Fatalf("cursor: got %v, want %v", got, surface.Point(1))
	}
}

func TestState_MoveAllExtend(t *testing.T) {
	s := newState("hello")
	s.moveAll(1, true)
	s.moveAll(1, true)

	want := surface.Range{Anchor: 0, Head: 2}
	if got := s.cursors[0]; got != want {
		t.Fatalf("extended selection: got %v, want %v", got, want)
	}

	s.moveAll(1, false)
	if got := s.cursors[0]; got != surface.Point(3) {
		t.Fatalf("collapsed move: got %v, want %v", got, surface.Point(3))
	}
}

func TestState_AddCaretBelow(t *testing.T) {
	s := newState("abc\ndef\nghi")
	s.cursors[0] = surface.Point(1)

	if !s.addCaretBelow() {
		t.Fatalf("addCaretBelow: got false, want true")
	}
	if got := s.cursors[1]; got != surface.Point(5) {
		t.Fatalf("new caret: got %v, want %v", got, surface.Point(5))
	}

	// From the last row there is nowhere to add.
	s.cursors = []surface.Range{surface.Point(9)}
	if s.addCaretBelow() {
		t.Fatalf("addCaretBelow on last row: got true, want false")
	}
}

func TestState_Window(t *testing.T) {
	s := newState("aa\nbb\ncc\ndd")
	s.height = 2
	s.yoffset = 1

	got := s.window()
	// Rows 1..2: offsets [3, 9): "bb\ncc" plus the trailing boundary.
	want := surface.Viewport{From: 3, To: 9}
	if got != want {
		t.Fatalf("window: got %+v, want %+v", got, want)
	}
}

func TestState_CaretRectOutsideWindow(t *testing.T) {
	s := newState("aa\nbb\ncc\ndd")
	s.height = 2
	s.yoffset = 0

	if _, ok := s.CaretRect(s.offset(3, 0)); ok {
		t.Fatalf("rect for off-screen row: got ok, want !ok")
	}
	if _, ok := s.CaretRect(s.offset(1, 1)); !ok {
		t.Fatalf("rect for visible row: got !ok, want ok")
	}
}

func TestState_CaretRectWideCluster(t *testing.T) {
	s := newState("a日b")
	s.height = 1

	rect, ok := s.CaretRect(1)
	if !ok {
		t.Fatalf("rect: got !ok, want ok")
	}
	if rect.X != 1 {
		t.Fatalf("x before wide glyph: got %d, want 1", rect.X)
	}
	if rect.W != 2*CellWidthPx {
		t.Fatalf("wide cluster width: got %v, want %v", rect.W, 2*CellWidthPx)
	}

	rect, ok = s.CaretRect(2)
	if !ok {
		t.Fatalf("rect: got !ok, want ok")
	}
	if rect.X != 3 {
		t.Fatalf("x after wide glyph: got %d, want 3", rect.X)
	}
}
