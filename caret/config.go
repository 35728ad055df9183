package caret

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/filament/internal/colorspec"
)

// Style selects the caret shape.
type Style int

const (
	StyleLine Style = iota
	StyleBlock
	StyleUnderline
)

// ColorSource selects where the caret color comes from.
type ColorSource int

const (
	// ColorAccent uses the terminal accent color.
	ColorAccent ColorSource = iota
	// ColorText uses the terminal foreground color.
	ColorText
	// ColorCustom uses Config.CustomColor.
	ColorCustom
)

// Configuration bounds. Values outside these ranges are clamped on read.
const (
	MinWidth = 1
	MaxWidth = 10

	MinHeightMultiplier = 0.5
	MaxHeightMultiplier = 2.0

	MinBlinkPeriod = 200 * time.Millisecond
	MaxBlinkPeriod = 2000 * time.Millisecond

	MinIdleDelay = 100 * time.Millisecond
	MaxIdleDelay = 2000 * time.Millisecond
)

// Config describes the caret's appearance and blink behavior.
//
// The engine never mutates a Config; the owning host replaces it wholesale
// and the engine reads it through a Source so every recompute observes the
// latest value.
type Config struct {
	Style Style

	Color ColorSource
	// CustomColor is used when Color is ColorCustom: "#rrggbb" hex or an
	// ANSI palette index.
	CustomColor string

	// Width of the line caret in pixel units, and the thickness of the
	// underline caret.
	Width int

	// HeightMultiplier scales the caret height relative to line height.
	HeightMultiplier float64

	// BlinkPeriod is the duration of one full blink cycle.
	BlinkPeriod time.Duration

	// IdleOnlyBlink restricts blinking to idle periods; while the user is
	// actively producing input the caret stays solid.
	IdleOnlyBlink bool

	// IdleDelay is how long input must be absent before the caret counts
	// as idle.
	IdleDelay time.Duration
}

// Source is a live configuration accessor. The engine calls it on every
// recompute instead of capturing a Config value, so settings changes apply
// without reattaching.
type Source func() Config

// DefaultConfig returns the stock caret configuration.
func DefaultConfig() Config {
	return Config{
		Style:            StyleLine,
		Color:            ColorAccent,
		Width:            2,
		HeightMultiplier: 1.0,
		BlinkPeriod:      1200 * time.Millisecond,
		IdleOnlyBlink:    false,
		IdleDelay:        500 * time.Millisecond,
	}
}

// normalized clamps all fields into their documented ranges.
func (c Config) normalized() Config {
	c.Width = clampInt(c.Width, MinWidth, MaxWidth)
	c.HeightMultiplier = clampFloat(c.HeightMultiplier, MinHeightMultiplier, MaxHeightMultiplier)
	c.BlinkPeriod = clampDuration(c.BlinkPeriod, MinBlinkPeriod, MaxBlinkPeriod)
	c.IdleDelay = clampDuration(c.IdleDelay, MinIdleDelay, MaxIdleDelay)
	if c.Style < StyleLine || c.Style > StyleUnderline {
		c.Style = StyleLine
	}
	if c.Color < ColorAccent || c.Color > ColorCustom {
		c.Color = ColorAccent
	}
	return c
}

// resolveColor maps the configured color source to a terminal color.
// An unparseable custom color falls back to the accent source.
func (c Config) resolveColor() lipgloss.TerminalColor {
	switch c.Color {
	case ColorText:
		return colorspec.Text()
	case ColorCustom:
		if col, ok := colorspec.Parse(c.CustomColor); ok {
			return col
		}
	}
	return colorspec.Accent()
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampDuration(v, min, max time.Duration) time.Duration {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
