package caret

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/filament/internal/colorspec"
	"github.com/iw2rmb/filament/surface"
)

// Field is the capability set for a single always-visible editable field,
// such as a document title above a virtualized body.
type Field interface {
	// CaretRect returns the geometry of a collapsed range at the field's
	// caret. ok is false when the field has no caret to report.
	CaretRect() (surface.Rect, bool)

	// LineHeight is the field's own line height in pixel units.
	// Zero or negative means unknown.
	LineHeight() float64

	// EditorLineHeight is the main editor's configured line height. The
	// indicator never exceeds it, so larger title typography cannot make
	// the caret overflow.
	EditorLineHeight() float64

	// Focused reports whether the field currently holds the caret.
	Focused() bool
}

// TitleCaret floats a single caret indicator over an always-visible field.
// Unlike Extension it tracks exactly one caret and positions it from the
// field's measured geometry rather than a virtualized viewport.
type TitleCaret struct {
	id    int
	field Field
	src   Source

	idleFn func() bool

	pending   bool
	tag       int
	composing bool
	destroyed bool

	visible bool
	marker  Marker
}

// NewTitleCaret creates the floating indicator for field, reading
// configuration live through src. A nil src falls back to DefaultConfig.
func NewTitleCaret(field Field, src Source) *TitleCaret {
	if src == nil {
		src = DefaultConfig
	}
	return &TitleCaret{
		id:    nextExtensionID(),
		field: field,
		src:   src,
	}
}

// ID identifies this indicator in frame and composition messages.
func (t *TitleCaret) ID() int { return t.id }

// BindIdle shares an idle source with the indicator, typically
// (*Extension).IsIdle of the body extension, so title and body carets blink
// from one global idle state.
func (t *TitleCaret) BindIdle(fn func() bool) {
	t.idleFn = fn
}

// Refresh requests a geometry recompute on the next frame. Requests made
// while one is pending coalesce; the frame reads field and configuration
// state when it fires.
func (t *TitleCaret) Refresh() tea.Cmd {
	if t.destroyed || t.pending {
		return nil
	}
	t.pending = true
	t.tag++
	return frameTick(t.id, t.tag)
}

// Update consumes frame and composition messages scoped to this indicator.
func (t *TitleCaret) Update(msg tea.Msg) tea.Cmd {
	if t.destroyed {
		return nil
	}

	switch msg := msg.(type) {
	case FrameMsg:
		if msg.ID != t.id || msg.Tag != t.tag {
			return nil
		}
		t.pending = false
		t.recompute()
	case CompositionStartMsg:
		if msg.ID != t.id {
			return nil
		}
		t.composing = true
		t.visible = false
	case CompositionEndMsg:
		if msg.ID != t.id {
			return nil
		}
		t.composing = false
		return t.Refresh()
	}
	return nil
}

// Visible reports whether the indicator currently renders.
func (t *TitleCaret) Visible() bool { return t.visible }

// Marker returns the floating marker. Meaningful only while Visible.
func (t *TitleCaret) Marker() Marker { return t.marker }

// Overlay composites the indicator over the host's rendered view. The base
// view is returned unchanged while the indicator is hidden.
func (t *TitleCaret) Overlay(base string) string {
	if !t.visible {
		return base
	}
	cell := t.marker.Style.Render(t.marker.Glyph)
	return overlay.Composite(cell, base, overlay.Left, overlay.Top, t.marker.Rect.X, t.marker.Rect.Y)
}

// Destroy tears the indicator down. Pending frames are superseded and no
// visual state survives; further calls are no-ops.
func (t *TitleCaret) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.pending = false
	t.tag++
	t.visible = false
	t.marker = Marker{}
}

// recompute measures the field and rebuilds the floating marker. Missing
// context hides the indicator without error.
func (t *TitleCaret) recompute() {
	if t.field == nil || t.composing || !t.field.Focused() {
		t.visible = false
		return
	}

	rect, ok := t.field.CaretRect()
	if !ok {
		t.visible = false
		return
	}

	cfg := t.src().normalized()

	fieldLine := rect.H
	if rect.Zero() {
		fieldLine = t.field.LineHeight()
		if fieldLine <= 0 {
			fieldLine = surface.DefaultLineHeight
		}
	}

	// The indicator may not overflow the smaller of the title's own line
	// height and the editor's configured line height.
	maxH := fieldLine
	if eh := t.field.EditorLineHeight(); eh > 0 && eh < maxH {
		maxH = eh
	}
	h := fieldLine * cfg.HeightMultiplier
	if h > maxH {
		h = maxH
	}

	color := cfg.resolveColor()
	blink := (!cfg.IdleOnlyBlink || t.isIdle()) && !t.composing

	m := Marker{
		Offset: 0,
		Rect:   surface.Rect{X: rect.X, Y: rect.Y, W: float64(cfg.Width), H: h},
		Glyph:  markerGlyph(cfg),
		Style:  lipgloss.NewStyle().Foreground(color).Blink(blink),
		Dim:    lipgloss.NewStyle().Foreground(colorspec.Dim(color, dimAmount)),
		Blink:  blink,
		Period: cfg.BlinkPeriod,
	}
	if cfg.Style != StyleLine {
		m.Rect.W = fixedRelativeWidth * fieldLine
	}
	if cfg.Style == StyleUnderline {
		m.Rect.H = float64(cfg.Width)
	}

	t.marker = m
	t.visible = true
}

func (t *TitleCaret) isIdle() bool {
	if t.idleFn == nil {
		return false
	}
	return t.idleFn()
}
