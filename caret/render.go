package caret

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/filament/internal/colorspec"
	"github.com/iw2rmb/filament/surface"
)

// Glyph ramps indexed by eighths of a cell. The line caret grows from the
// left edge, the underline caret from the baseline.
var (
	lineGlyphs      = []string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}
	underlineGlyphs = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}
)

const blockGlyph = "█"

// fixedRelativeWidth is the block and underline caret width as a fraction of
// line height. It is independent of Config.Width.
const fixedRelativeWidth = 0.6

// dimAmount is how far the off-phase blink color is blended toward the
// terminal background.
const dimAmount = 0.65

// Marker is one caret indicator: a glyph and style to paint at a document
// offset, plus the pixel-unit geometry the glyph stands in for.
//
// Markers are decorative only. They are never registered for hit-testing or
// focus, and hosts must keep them out of any accessibility reporting.
type Marker struct {
	// Offset is the document position the marker is anchored to.
	Offset int

	// Rect is the marker geometry: the cell anchor from the surface plus
	// the extent derived from configuration.
	Rect surface.Rect

	// Glyph is the cell content to paint.
	Glyph string

	// Style paints the solid (on-phase) marker. It carries the terminal
	// blink attribute when Blink is set.
	Style lipgloss.Style

	// Dim paints the off phase for hosts that drive blink timing
	// themselves; the marker dims instead of vanishing so layout never
	// shifts.
	Dim lipgloss.Style

	// Blink reports whether the blink animation applies right now.
	Blink bool

	// Period is the full blink cycle duration.
	Period time.Duration
}

// buildMarkers produces the markers for the resolved caret heads.
//
// While composing it produces nothing: native rendering owns the caret for
// the duration. A head whose geometry lookup fails is silently dropped;
// zero-sized geometry falls back to the surface's line height and then to a
// constant estimate.
func buildMarkers(surf surface.Surface, heads []int, cfg Config, idle, composing bool) []Marker {
	if composing || len(heads) == 0 {
		return nil
	}

	cfg = cfg.normalized()
	color := cfg.resolveColor()
	blink := !cfg.IdleOnlyBlink || idle

	style := lipgloss.NewStyle().Foreground(color).Blink(blink)
	dim := lipgloss.NewStyle().Foreground(colorspec.Dim(color, dimAmount))

	glyph := markerGlyph(cfg)

	markers := make([]Marker, 0, len(heads))
	for _, h := range heads {
		rect, ok := surf.CaretRect(h)
		if !ok {
			continue
		}
		markers = append(markers, Marker{
			Offset: h,
			Rect:   markerRect(rect, surf.Metrics(), cfg),
			Glyph:  glyph,
			Style:  style,
			Dim:    dim,
			Blink:  blink,
			Period: cfg.BlinkPeriod,
		})
	}
	return markers
}

// markerGlyph maps style × width onto the glyph ramps. Width scales the line
// caret's thickness and the underline caret's height; the block caret always
// fills the cell.
func markerGlyph(cfg Config) string {
	switch cfg.Style {
	case StyleBlock:
		return blockGlyph
	case StyleUnderline:
		return underlineGlyphs[glyphIndex(cfg.Width)]
	default:
		return lineGlyphs[glyphIndex(cfg.Width)]
	}
}

// glyphIndex maps a width in [MinWidth, MaxWidth] onto an eighth-block ramp
// index in [0, 7].
func glyphIndex(width int) int {
	idx := width * len(lineGlyphs) / MaxWidth
	return clampInt(idx, 1, len(lineGlyphs)) - 1
}

// markerRect derives the marker extent from the surface geometry and the
// configuration. The cell anchor is taken from the surface rect as-is.
func markerRect(rect surface.Rect, m surface.Metrics, cfg Config) surface.Rect {
	lineHeight := rect.H
	if rect.Zero() {
		lineHeight = m.LineHeight
		if lineHeight <= 0 {
			lineHeight = surface.DefaultLineHeight
		}
	}

	out := surface.Rect{X: rect.X, Y: rect.Y}
	switch cfg.Style {
	case StyleUnderline:
		// Width doubles as the underline thickness.
		out.W = fixedRelativeWidth * lineHeight
		out.H = float64(cfg.Width)
	case StyleBlock:
		out.W = fixedRelativeWidth * lineHeight
		out.H = lineHeight * cfg.HeightMultiplier
	default:
		out.W = float64(cfg.Width)
		out.H = lineHeight * cfg.HeightMultiplier
	}
	return out
}
