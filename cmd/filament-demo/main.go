package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/filament/caret"
	"github.com/iw2rmb/filament/editbox"
)

const demoText = `Welcome to the filament demo.

Type to edit. Arrows move, shift+arrows select.
Ctrl+J adds a caret on the row below; Esc collapses.

F1 cycles the caret style (line, block, underline).
F2 cycles the caret width.
F3 toggles idle-only blinking.
F4 simulates IME composition start/end.
Ctrl+C quits.`

type model struct {
	box editbox.Model

	// cfg lives behind a pointer so the live accessor handed to the
	// extension observes changes made on later model copies.
	cfg *caret.Config

	composing bool
}

func newModel() model {
	cfg := caret.DefaultConfig()
	cfg.IdleOnlyBlink = true
	cfg.IdleDelay = 700 * time.Millisecond

	m := model{cfg: &cfg}
	m.box = editbox.New(editbox.Config{
		Text:         demoText,
		ShowLineNums: true,
		Style:        editbox.DefaultStyle(),
		Caret:        func() caret.Config { return *m.cfg },
	})
	return m
}

func (m model) Init() tea.Cmd { return m.box.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.box = m.box.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.box.Close()
			return m, tea.Quit
		case "f1":
			m.cfg.Style = (m.cfg.Style + 1) % 3
			return m, nil
		case "f2":
			m.cfg.Width = m.cfg.Width%caret.MaxWidth + 1
			return m, nil
		case "f3":
			m.cfg.IdleOnlyBlink = !m.cfg.IdleOnlyBlink
			return m, nil
		case "f4":
			id := m.box.Extension().ID()
			m.composing = !m.composing
			if m.composing {
				return m, func() tea.Msg { return caret.CompositionStartMsg{ID: id} }
			}
			return m, func() tea.Msg { return caret.CompositionEndMsg{ID: id} }
		}
	}

	var cmd tea.Cmd
	m.box, cmd = m.box.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := fmt.Sprintf(" style=%s width=%d idle-only=%v composing=%v",
		styleName(m.cfg.Style), m.cfg.Width, m.cfg.IdleOnlyBlink, m.composing)
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(status)
	return m.box.View() + "\n" + bar
}

func styleName(s caret.Style) string {
	switch s {
	case caret.StyleBlock:
		return "block"
	case caret.StyleUnderline:
		return "underline"
	default:
		return "line"
	}
}

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
