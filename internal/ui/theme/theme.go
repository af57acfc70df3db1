package theme

import "github.com/charmbracelet/lipgloss"

// Theme is an immutable palette plus the derived lookup tables.
type Theme struct {
	Palette Palette

	buttons map[buttonKey]lipgloss.Style
	inputs  map[inputKey]lipgloss.Color
}

// New builds the lookup tables for a palette.
func New(p Palette) Theme {
	return Theme{
		Palette: p,
		buttons: buildButtonTable(p),
		inputs:  buildInputTable(p),
	}
}

// Default returns the theme for DefaultPalette.
func Default() Theme {
	return New(DefaultPalette())
}

// Title styles a page heading.
func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Palette.TextDefault).MarginBottom(1)
}

// Section styles a card grouping related fields.
func (t Theme) Section() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Palette.BorderDefault).
		Padding(0, 1).
		MarginBottom(1)
}

// Muted styles secondary text such as key hints.
func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Palette.TextSecondary)
}
