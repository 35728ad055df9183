package surface

import "testing"

func TestRange_IsEmpty(t *testing.T) {
	if !Point(3).IsEmpty() {
		t.Fatalf("Point(3).IsEmpty(): got false, want true")
	}
	if (Range{Anchor: 3, Head: 7}).IsEmpty() {
		t.Fatalf("span IsEmpty(): got true, want false")
	}
}

func TestRange_Normalize(t *testing.T) {
	cases := []struct {
		in   Range
		want Range
	}{
		{in: Range{Anchor: 2, Head: 5}, want: Range{Anchor: 2, Head: 5}},
		{in: Range{Anchor: 5, Head: 2}, want: Range{Anchor: 2, Head: 5}},
		{in: Range{Anchor: 4, Head: 4}, want: Range{Anchor: 4, Head: 4}},
	}
	for _, tc := range cases {
		if got := tc.in.Normalize(); got != tc.want {
			t.Fatalf("Normalize(%v): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestViewport_Contains(t *testing.T) {
	vp := Viewport{From: 10, To: 20}

	cases := []struct {
		off    int
		margin int
		want   bool
	}{
		{off: 10, margin: 0, want: true},
		{off: 20, margin: 0, want: true},
		{off: 9, margin: 0, want: false},
		{off: 21, margin: 0, want: false},
		{off: 9, margin: 1, want: true},
		{off: 21, margin: 1, want: true},
		{off: 8, margin: 1, want: false},
		{off: 22, margin: 1, want: false},
		{off: 15, margin: 0, want: true},
	}
	for _, tc := range cases {
		got := vp.Contains(tc.off, tc.margin)
		if got != tc.want {
			t.Fatalf("Contains(%d, margin=%d): got %v, want %v", tc.off, tc.margin, got, tc.want)
		}
	}
}

func TestUpdate_Changed(t *testing.T) {
	if (Update{}).Changed() {
		t.Fatalf("empty update Changed(): got true, want false")
	}
	if !(Update{ViewportChanged: true}).Changed() {
		t.Fatalf("viewport update Changed(): got false, want true")
	}
}

func TestRect_Zero(t *testing.T) {
	if !(Rect{X: 1, Y: 1}).Zero() {
		t.Fatalf("extent-less rect Zero(): got false, want true")
	}
	if (Rect{W: 2, H: 16}).Zero() {
		t.Fatalf("sized rect Zero(): got true, want false")
	}
}
