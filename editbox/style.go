package editbox

import "github.com/charmbracelet/lipgloss"

// Style controls the box's rendering. The caret itself is styled by the
// caret package; NativeCursor is used only while the extension hands
// rendering back to the host (composition, detach).
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text         lipgloss.Style
	Selection    lipgloss.Style
	NativeCursor lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		NativeCursor:  lipgloss.NewStyle().Reverse(true),
	}
}
