package demo

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the screen level bindings. Field bindings live in
// components.KeyMap.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
	Copy key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the stock screen bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Copy: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy value")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Copy, k.Quit}
}
