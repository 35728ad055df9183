package editbox

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/filament/caret"
	"github.com/iw2rmb/filament/surface"
)

// Nominal pixel-unit cell geometry reported to the caret engine. Terminals
// have no real pixel metrics; these keep marker geometry proportional.
const (
	CellWidthPx  = 8.0
	CellHeightPx = 16.0
)

// Config configures the box.
type Config struct {
	// Initial text.
	Text string

	ShowLineNums bool
	Style        Style

	// Caret is the live caret configuration accessor handed to the
	// attached extension. Nil falls back to caret.DefaultConfig.
	Caret caret.Source
}

// Model is a Bubble Tea component: a multi-cursor text box with a filament
// caret extension attached.
type Model struct {
	cfg Config
	km  KeyMap

	st       *state
	viewport viewport.Model
	ext      *caret.Extension
}

// state is the document and window state shared by Model copies. It is the
// surface.Surface the caret extension tracks.
type state struct {
	lines   []string
	cursors []surface.Range
	focused bool

	yoffset int
	height  int
	gutter  int
}

func New(cfg Config) Model {
	if cfg.Caret == nil {
		cfg.Caret = caret.DefaultConfig
	}
	st := &state{
		lines:   strings.Split(cfg.Text, "\n"),
		cursors: []surface.Range{surface.Point(0)},
		focused: true,
	}
	m := Model{
		cfg:      cfg,
		km:       DefaultKeyMap(),
		st:       st,
		viewport: viewport.New(0, 0),
	}
	m.ext = caret.Attach(st, cfg.Caret)
	m.st.gutter = m.gutterWidth()
	m.rebuildContent()
	return m
}

// Extension exposes the attached caret extension, e.g. for addressing
// composition messages to this box.
func (m Model) Extension() *caret.Extension { return m.ext }

// Cursors returns the current selection ranges; cursors[0] is primary.
func (m Model) Cursors() []surface.Range { return m.st.cursors }

// Text returns the document text.
func (m Model) Text() string { return strings.Join(m.st.lines, "\n") }

func (m Model) Init() tea.Cmd {
	return m.notify(true, true, true)
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.syncWindow()
	m.rebuildContent()
	return m
}

func (m Model) Focus() Model {
	m.st.focused = true
	m.rebuildContent()
	return m
}

func (m Model) Blur() Model {
	m.st.focused = false
	m.rebuildContent()
	return m
}

func (m Model) Focused() bool { return m.st.focused }

// Close detaches the caret extension. The box keeps working with the
// native-style cursor afterwards.
func (m Model) Close() {
	m.ext.Detach()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
		return m, m.notify(false, false, true)
	case caret.IdleTickMsg, caret.CompositionStartMsg, caret.CompositionEndMsg:
		cmd := m.ext.Update(msg)
		m.rebuildContent()
		return m, cmd
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	if m.syncWindow() {
		return m, tea.Batch(cmd, m.notify(false, false, true))
	}
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.st.focused {
		return m, nil
	}

	sel, doc := false, false

	switch {
	case key.Matches(msg, m.km.Left):
		m.st.moveAll(-1, false)
		sel = true
	case key.Matches(msg, m.km.Right):
		m.st.moveAll(1, false)
		sel = true
	case key.Matches(msg, m.km.ShiftLeft):
		m.st.moveAll(-1, true)
		sel = true
	case key.Matches(msg, m.km.ShiftRight):
		m.st.moveAll(1, true)
		sel = true
	case key.Matches(msg, m.km.Up):
		m.st.moveVertical(-1)
		sel = true
	case key.Matches(msg, m.km.Down):
		m.st.moveVertical(1)
		sel = true
	case key.Matches(msg, m.km.Home):
		m.st.moveLineEdge(false)
		sel = true
	case key.Matches(msg, m.km.End):
		m.st.moveLineEdge(true)
		sel = true

	case key.Matches(msg, m.km.AddCaretBelow):
		if m.st.addCaretBelow() {
			sel = true
		}
	case key.Matches(msg, m.km.Collapse):
		if m.st.collapseCarets() {
			sel = true
		}

	case key.Matches(msg, m.km.Backspace):
		if m.st.deleteBackward() {
			sel, doc = true, true
		}
	case key.Matches(msg, m.km.Enter):
		m.st.insert("\n")
		sel, doc = true, true

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.st.insert(string(msg.Runes))
			sel, doc = true, true
		}
	}

	if !sel && !doc {
		return m, nil
	}

	vpChanged := m.followCursor()
	return m, m.notify(sel, doc, vpChanged)
}

// notify forwards one change notification to the caret extension and
// refreshes the rendered content.
func (m *Model) notify(sel, doc, vp bool) tea.Cmd {
	cmd := m.ext.HandleUpdate(surface.Update{
		SelectionChanged: sel,
		DocChanged:       doc,
		ViewportChanged:  vp,
		Selection:        m.st.cursors,
		Viewport:         m.st.window(),
	})
	m.rebuildContent()
	return cmd
}

// syncWindow mirrors the bubbles viewport scroll state into the surface and
// reports whether the offset window moved.
func (m *Model) syncWindow() bool {
	before := m.st.window()
	m.st.yoffset = m.viewport.YOffset
	m.st.height = m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	m.st.gutter = m.gutterWidth()
	return m.st.window() != before
}

// followCursor scrolls the primary caret into view. Reports whether the
// window moved.
func (m *Model) followCursor() bool {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return false
	}
	row, _ := m.st.pos(m.st.cursors[0].Head)
	if row < m.viewport.YOffset {
		m.viewport.SetYOffset(row)
	} else if row >= m.viewport.YOffset+h {
		m.viewport.SetYOffset(row - h + 1)
	}
	return m.syncWindow()
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	digits := 1
	for n := len(m.st.lines); n >= 10; n /= 10 {
		digits++
	}
	return digits + 1
}
