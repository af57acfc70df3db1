package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fieldkit/internal/field"
)

// InputState is the visual state of a field box, most significant first.
type InputState int

const (
	InputIdle InputState = iota
	InputFilled
	InputFocused
	InputError
	InputDisabled
)

// ResolveInputState folds the field flags into a single state. Error wins
// over focus, focus over content.
func ResolveInputState(disabled, effectiveError, focused, hasValue bool) InputState {
	switch {
	case disabled:
		return InputDisabled
	case effectiveError:
		return InputError
	case focused:
		return InputFocused
	case hasValue:
		return InputFilled
	default:
		return InputIdle
	}
}

type inputKey struct {
	variant field.Variant
	state   InputState
}

func buildInputTable(p Palette) map[inputKey]lipgloss.Color {
	byState := map[InputState]lipgloss.Color{
		InputIdle:     p.Gray5,
		InputFilled:   p.Gray7,
		InputFocused:  p.Gray12,
		InputError:    p.Error,
		InputDisabled: p.Gray5,
	}

	t := make(map[inputKey]lipgloss.Color)
	for _, v := range []field.Variant{field.VariantOutlined, field.VariantDefault, field.VariantUnderlined} {
		for state, color := range byState {
			t[inputKey{v, state}] = color
		}
	}
	// Search boxes only distinguish focus.
	for state := range byState {
		t[inputKey{field.VariantSearch, state}] = p.Gray5
	}
	t[inputKey{field.VariantSearch, InputFocused}] = p.Gray12
	return t
}

// InputBorderColor returns the border color for a variant in a state.
func (t Theme) InputBorderColor(variant field.Variant, state InputState) lipgloss.Color {
	if c, ok := t.inputs[inputKey{variant, state}]; ok {
		return c
	}
	return t.Palette.Gray5
}

// InputBox returns the frame style for a field body of the given inner width.
func (t Theme) InputBox(variant field.Variant, state InputState, width int) lipgloss.Style {
	color := t.InputBorderColor(variant, state)
	style := lipgloss.NewStyle().Width(width)
	if variant == field.VariantUnderlined {
		return style.
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(color)
	}
	style = style.Border(lipgloss.RoundedBorder()).BorderForeground(color).Padding(0, 1)
	if state == InputDisabled {
		style = style.Foreground(t.Palette.TextDisabled)
	}
	return style
}

// Label styles the caption above a field.
func (t Theme) Label(effectiveError bool) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true).Foreground(t.Palette.TextDefault)
	if effectiveError {
		style = style.Foreground(t.Palette.Error)
	}
	return style
}

// Helper styles the helper text and counter row.
func (t Theme) Helper(effectiveError bool) lipgloss.Style {
	if effectiveError {
		return lipgloss.NewStyle().Foreground(t.Palette.Error)
	}
	return lipgloss.NewStyle().Foreground(t.Palette.TextSecondary)
}

// Suggestion styles a row in the suggestion list.
func (t Theme) Suggestion(highlighted bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(t.Palette.TextDefault).PaddingLeft(1)
	if highlighted {
		style = style.Background(t.Palette.Accent).Bold(true)
	}
	return style
}

// Icon styles the action glyphs inside a field.
func (t Theme) Icon(effectiveError bool) lipgloss.Style {
	if effectiveError {
		return lipgloss.NewStyle().Foreground(t.Palette.Error)
	}
	return lipgloss.NewStyle().Foreground(t.Palette.IconSecondary)
}
