package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the floor plan viewer.
type KeyMap struct {
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Reset   key.Binding

	PanLeft  key.Binding
	PanRight key.Binding
	PanUp    key.Binding
	PanDown  key.Binding

	Quit key.Binding
}

var DefaultKeyMap = KeyMap{
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "zoom out"),
	),
	Reset: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "reset"),
	),
	PanLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "pan"),
	),
	PanRight: key.NewBinding(
		key.WithKeys("right", "l"),
	),
	PanUp: key.NewBinding(
		key.WithKeys("up", "k"),
	),
	PanDown: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.Reset, k.PanLeft, k.Quit}
}
