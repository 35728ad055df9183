// Package colorspec resolves caret color sources to concrete terminal
// colors.
package colorspec

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

var (
	bgOnce sync.Once
	bgDark bool
)

// darkBackground caches the terminal query; termenv probes the tty on every
// call otherwise.
func darkBackground() bool {
	bgOnce.Do(func() {
		bgDark = termenv.HasDarkBackground()
	})
	return bgDark
}

// Accent returns the terminal's accent color: bright blue on dark
// backgrounds, blue on light ones.
func Accent() lipgloss.TerminalColor {
	if darkBackground() {
		return lipgloss.Color("12")
	}
	return lipgloss.Color("4")
}

// Text returns the terminal's default foreground color.
func Text() lipgloss.TerminalColor {
	c := termenv.ConvertToRGB(termenv.ForegroundColor())
	return lipgloss.Color(c.Hex())
}

// Parse interprets s as a caret color: "#rrggbb" hex or an ANSI palette
// index 0..255. ok is false for anything else.
func Parse(s string) (lipgloss.TerminalColor, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, false
		}
		return lipgloss.Color(c.Hex()), true
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return lipgloss.Color(s), true
	}
	return nil, false
}

// Dim blends a hex color toward the terminal background by amount in [0,1].
// Non-hex colors are returned unchanged; callers fall back to a faint style
// for those.
func Dim(c lipgloss.TerminalColor, amount float64) lipgloss.TerminalColor {
	lc, ok := c.(lipgloss.Color)
	if !ok {
		return c
	}
	col, err := colorful.Hex(string(lc))
	if err != nil {
		return c
	}
	if amount < 0 {
		amount = 0
	}
	if amount > 1 {
		amount = 1
	}
	bg := colorful.Color{}
	if !darkBackground() {
		bg = colorful.Color{R: 1, G: 1, B: 1}
	}
	return lipgloss.Color(col.BlendLab(bg, amount).Clamped().Hex())
}
