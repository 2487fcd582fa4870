package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the table browser key bindings.
type KeyMap struct {
	Quit          key.Binding
	Up            key.Binding
	Down          key.Binding
	NextTheme     key.Binding
	PreviousTheme key.Binding
}

// DefaultKeyMap returns the bindings shown in the footer.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "move down"),
		),
		NextTheme: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next color"),
		),
		PreviousTheme: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous color"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Up, k.Down, k.NextTheme, k.PreviousTheme}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
