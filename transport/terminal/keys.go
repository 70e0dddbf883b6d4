package terminal

import "github.com/charmbracelet/bubbles/key"

// KeyMap - key bindings of the terminal shell.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Drop   key.Binding
	Column key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

// Keys - default bindings: arrows or h/l to move, enter or space to drop, 1-9 to drop directly.
var Keys = KeyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Drop: key.NewBinding(
		key.WithKeys("enter", " ", "down", "j"),
		key.WithHelp("enter", "drop"),
	),
	Column: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "drop in column"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

func (that KeyMap) help() []key.Binding {
	return []key.Binding{that.Left, that.Right, that.Drop, that.Column, that.Reset, that.Quit}
}
