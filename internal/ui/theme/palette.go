// Package theme holds the palette and the style tables that map discrete
// component props to lipgloss styles.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette lists the named colors of the kit.
type Palette struct {
	White          lipgloss.Color
	TextDefault    lipgloss.Color
	TextSecondary  lipgloss.Color
	TextDisabled   lipgloss.Color
	Gray5          lipgloss.Color
	Gray7          lipgloss.Color
	Gray12         lipgloss.Color
	Error          lipgloss.Color
	IconSecondary  lipgloss.Color
	PrimaryDefault lipgloss.Color
	Accent         lipgloss.Color
	BorderDefault  lipgloss.Color
	BgBase2        lipgloss.Color
	DisabledBg     lipgloss.Color
	Black          lipgloss.Color
}

// DefaultPalette returns the stock colors.
func DefaultPalette() Palette {
	return Palette{
		White:          lipgloss.Color("#FFFFFF"),
		TextDefault:    lipgloss.Color("#1D1D1F"),
		TextSecondary:  lipgloss.Color("#8E8E93"),
		TextDisabled:   lipgloss.Color("#C7C7CC"),
		Gray5:          lipgloss.Color("#E5E5EA"),
		Gray7:          lipgloss.Color("#AEAEB2"),
		Gray12:         lipgloss.Color("#48484A"),
		Error:          lipgloss.Color("#FF3B30"),
		IconSecondary:  lipgloss.Color("#8E8E93"),
		PrimaryDefault: lipgloss.Color("#1F1F1F"),
		Accent:         lipgloss.Color("#E6F3FF"),
		BorderDefault:  lipgloss.Color("#D1D1D6"),
		BgBase2:        lipgloss.Color("#F8F9FA"),
		DisabledBg:     lipgloss.Color("#F2F2F7"),
		Black:          lipgloss.Color("#000000"),
	}
}
