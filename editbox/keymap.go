package editbox

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the box's key bindings.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	ShiftLeft, ShiftRight key.Binding
	Home, End             key.Binding

	Backspace key.Binding
	Enter     key.Binding

	AddCaretBelow key.Binding
	Collapse      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		AddCaretBelow: key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "add caret below")),
		Collapse:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "single caret")),
	}
}
