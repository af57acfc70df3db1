package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds the field actions that are not plain text editing.
type KeyMap struct {
	NextSuggestion key.Binding
	PrevSuggestion key.Binding
	Accept         key.Binding
	Clear          key.Binding
	Reveal         key.Binding
}

// DefaultKeyMap returns the stock field bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextSuggestion: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next suggestion"),
		),
		PrevSuggestion: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous suggestion"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick suggestion"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Reveal: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "show password"),
		),
	}
}

// GroupKeyMap binds focus movement inside a ButtonGroup.
type GroupKeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Press key.Binding
}

// DefaultGroupKeyMap returns the stock group bindings.
func DefaultGroupKeyMap() GroupKeyMap {
	return GroupKeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "down", "l", "j"),
			key.WithHelp("→", "next button"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "up", "h", "k"),
			key.WithHelp("←", "previous button"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
	}
}
