package editbox

import (
	"fmt"
	"strings"

	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/filament/internal/cellwidth"
	"github.com/iw2rmb/filament/surface"
)

// View renders the box and composites the caret markers over it. While the
// extension reports NativeCursor, the cursor cell is painted inline by
// renderContent instead.
func (m Model) View() string {
	base := m.viewport.View()
	if !m.st.focused {
		return base
	}
	for _, mk := range m.ext.Markers() {
		cell := mk.Style.Render(mk.Glyph)
		base = overlay.Composite(cell, base, overlay.Left, overlay.Top, mk.Rect.X, mk.Rect.Y)
	}
	return base
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) renderContent() string {
	st := m.cfg.Style
	native := m.st.focused && m.ext.NativeCursor()
	primaryRow, _ := m.st.pos(m.st.cursors[0].Head)

	spans := selectionSpans(m.st.cursors)

	out := make([]string, 0, len(m.st.lines))
	for row, line := range m.st.lines {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := st.LineNum
			if m.st.focused && row == primaryRow {
				numStyle = st.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", m.st.gutter-1, row+1)))
			sb.WriteString(st.Gutter.Render(" "))
		}

		sb.WriteString(m.renderLine(row, line, spans, native))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine styles one line: selection spans, and the native-style cursor
// cell when the extension has handed rendering back to the host.
func (m *Model) renderLine(row int, line string, spans []surface.Range, native bool) string {
	st := m.cfg.Style
	start := m.st.lineStart(row)
	cursorOff := m.st.cursors[0].Head

	var sb strings.Builder
	off := start
	for _, cluster := range cellwidth.Split(line) {
		style := st.Text
		if inSpans(off, spans) {
			style = st.Selection
		}
		if native && off == cursorOff {
			style = st.NativeCursor
		}
		sb.WriteString(style.Render(cluster))
		off += len([]rune(cluster))
	}

	// Cursor at EOL renders as a styled placeholder space.
	if native && cursorOff == start+runeLen(line) {
		row2, _ := m.st.pos(cursorOff)
		if row2 == row {
			sb.WriteString(st.NativeCursor.Render(" "))
		}
	}
	return sb.String()
}

// selectionSpans returns the normalized non-empty ranges.
func selectionSpans(cursors []surface.Range) []surface.Range {
	var spans []surface.Range
	for _, c := range cursors {
		if c.IsEmpty() {
			continue
		}
		spans = append(spans, c.Normalize())
	}
	return spans
}

func inSpans(off int, spans []surface.Range) bool {
	for _, sp := range spans {
		if off >= sp.Anchor && off < sp.Head {
			return true
		}
	}
	return false
}
