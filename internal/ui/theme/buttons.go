package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fieldkit/internal/field"
)

// ButtonVariant enumerates the button treatments.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonOutlined
	ButtonText
	ButtonDisabled
)

var buttonVariantNames = [...]string{"primary", "secondary", "outlined", "text", "disabled"}

func (v ButtonVariant) String() string {
	if int(v) < 0 || int(v) >= len(buttonVariantNames) {
		return "primary"
	}
	return buttonVariantNames[v]
}

// ParseButtonVariant maps a name to a variant; unknown names are primary.
func ParseButtonVariant(name string) ButtonVariant {
	for i, n := range buttonVariantNames {
		if n == name {
			return ButtonVariant(i)
		}
	}
	return ButtonPrimary
}

// ButtonState is the interaction state used as a table key.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonFocused
	ButtonInactive
)

type buttonKey struct {
	variant ButtonVariant
	state   ButtonState
}

// padding is vertical then horizontal cells.
type padding struct {
	y, x int
}

var buttonSizePadding = map[field.Size]padding{
	field.SizeSmall:  {0, 1},
	field.SizeMedium: {0, 2},
	field.SizeLarge:  {1, 3},
}

func buildButtonTable(p Palette) map[buttonKey]lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	inactive := base.Background(p.Gray5).Foreground(p.TextDisabled)

	t := map[buttonKey]lipgloss.Style{
		{ButtonPrimary, ButtonIdle}:       base.Background(p.PrimaryDefault).Foreground(p.White),
		{ButtonPrimary, ButtonFocused}:    base.Background(p.Gray12).Foreground(p.White),
		{ButtonPrimary, ButtonInactive}:   inactive,
		{ButtonSecondary, ButtonIdle}:     base.Background(p.Gray7).Foreground(p.White),
		{ButtonSecondary, ButtonFocused}:  base.Background(p.Gray12).Foreground(p.White),
		{ButtonSecondary, ButtonInactive}: inactive,
		{ButtonOutlined, ButtonIdle}: base.Foreground(p.TextDefault).
			Border(lipgloss.RoundedBorder()).BorderForeground(p.BorderDefault),
		{ButtonOutlined, ButtonFocused}: base.Foreground(p.TextDefault).Background(p.BgBase2).
			Border(lipgloss.RoundedBorder()).BorderForeground(p.Gray7),
		{ButtonOutlined, ButtonInactive}: base.Foreground(p.TextDisabled).
			Border(lipgloss.RoundedBorder()).BorderForeground(p.Gray5),
		{ButtonText, ButtonIdle}:         base.Foreground(p.TextDefault),
		{ButtonText, ButtonFocused}:      base.Foreground(p.TextDefault).Background(p.BgBase2),
		{ButtonText, ButtonInactive}:     base.Foreground(p.TextDisabled),
		{ButtonDisabled, ButtonIdle}:     inactive,
		{ButtonDisabled, ButtonFocused}:  inactive,
		{ButtonDisabled, ButtonInactive}: inactive,
	}
	return t
}

// Button returns the style for a variant, size and state. Full width buttons
// are stretched by the caller.
func (t Theme) Button(variant ButtonVariant, size field.Size, state ButtonState) lipgloss.Style {
	style, ok := t.buttons[buttonKey{variant, state}]
	if !ok {
		style = t.buttons[buttonKey{ButtonPrimary, state}]
	}
	pad, ok := buttonSizePadding[size]
	if !ok {
		pad = buttonSizePadding[field.SizeMedium]
	}
	return style.Padding(pad.y, pad.x)
}
