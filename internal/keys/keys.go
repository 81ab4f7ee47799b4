package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the board browser.
type KeyMap struct {
	// Navigation
	Down      key.Binding
	Up        key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding

	// Item actions
	Check  key.Binding
	Begin  key.Binding
	Star   key.Binding
	Delete key.Binding

	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("l", "right", "tab"),
			key.WithHelp("l/→", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("h", "left", "shift+tab"),
			key.WithHelp("h/←", "previous board"),
		),
		Check: key.NewBinding(
			key.WithKeys("c", " "),
			key.WithHelp("c/space", "check"),
		),
		Begin: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "begin"),
		),
		Star: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "star"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "archive"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.NextBoard, k.Check, k.Help, k.Quit,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextBoard, k.PrevBoard},
		{k.Check, k.Begin, k.Star, k.Delete},
		{k.Refresh, k.Help, k.Quit},
	}
}
