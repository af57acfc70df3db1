package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fieldkit/internal/field"
)

func TestButtonTableCoversEveryVariantAndState(t *testing.T) {
	t.Parallel()

	th := Default()
	for v := ButtonPrimary; v <= ButtonDisabled; v++ {
		for s := ButtonIdle; s <= ButtonInactive; s++ {
			_, ok := th.buttons[buttonKey{v, s}]
			assert.True(t, ok, "missing %s/%d", v, s)
		}
	}
}

func TestButtonColors(t *testing.T) {
	t.Parallel()

	th := Default()
	p := th.Palette

	primary := th.Button(ButtonPrimary, field.SizeMedium, ButtonIdle)
	assert.Equal(t, lipgloss.TerminalColor(p.PrimaryDefault), primary.GetBackground())
	assert.Equal(t, lipgloss.TerminalColor(p.White), primary.GetForeground())

	secondary := th.Button(ButtonSecondary, field.SizeMedium, ButtonIdle)
	assert.Equal(t, lipgloss.TerminalColor(p.Gray7), secondary.GetBackground())

	disabledPrimary := th.Button(ButtonPrimary, field.SizeMedium, ButtonInactive)
	assert.Equal(t, lipgloss.TerminalColor(p.Gray5), disabledPrimary.GetBackground())
	assert.Equal(t, lipgloss.TerminalColor(p.TextDisabled), disabledPrimary.GetForeground())

	outlined := th.Button(ButtonOutlined, field.SizeMedium, ButtonIdle)
	assert.Equal(t, lipgloss.TerminalColor(p.BorderDefault), outlined.GetBorderTopForeground())
}

func TestButtonSizePadding(t *testing.T) {
	t.Parallel()

	th := Default()
	cases := []struct {
		size field.Size
		y, x int
	}{
		{field.SizeSmall, 0, 1},
		{field.SizeMedium, 0, 2},
		{field.SizeLarge, 1, 3},
		{field.Size(42), 0, 2},
	}
	for _, tc := range cases {
		style := th.Button(ButtonPrimary, tc.size, ButtonIdle)
		assert.Equal(t, tc.y, style.GetPaddingTop(), tc.size.String())
		assert.Equal(t, tc.x, style.GetPaddingLeft(), tc.size.String())
	}
}

func TestParseButtonVariant(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ButtonOutlined, ParseButtonVariant("outlined"))
	assert.Equal(t, ButtonPrimary, ParseButtonVariant("shiny"))
	assert.Equal(t, "disabled", ButtonDisabled.String())
	assert.Equal(t, "primary", ButtonVariant(99).String())
}

func TestResolveInputState(t *testing.T) {
	t.Parallel()

	assert.Equal(t, InputDisabled, ResolveInputState(true, true, true, true))
	assert.Equal(t, InputError, ResolveInputState(false, true, true, true))
	assert.Equal(t, InputFocused, ResolveInputState(false, false, true, true))
	assert.Equal(t, InputFilled, ResolveInputState(false, false, false, true))
	assert.Equal(t, InputIdle, ResolveInputState(false, false, false, false))
}

func TestInputBorderColors(t *testing.T) {
	t.Parallel()

	th := Default()
	p := th.Palette

	require.Equal(t, p.Error, th.InputBorderColor(field.VariantOutlined, InputError))
	require.Equal(t, p.Gray12, th.InputBorderColor(field.VariantUnderlined, InputFocused))
	require.Equal(t, p.Gray7, th.InputBorderColor(field.VariantDefault, InputFilled))
	require.Equal(t, p.Gray5, th.InputBorderColor(field.VariantOutlined, InputIdle))

	require.Equal(t, p.Gray5, th.InputBorderColor(field.VariantSearch, InputError), "search ignores errors")
	require.Equal(t, p.Gray12, th.InputBorderColor(field.VariantSearch, InputFocused))
}

func TestUnderlinedBoxOnlyDrawsBottomBorder(t *testing.T) {
	t.Parallel()

	box := Default().InputBox(field.VariantUnderlined, InputIdle, 10)
	assert.True(t, box.GetBorderBottom())
	assert.False(t, box.GetBorderTop())
	assert.False(t, box.GetBorderLeft())

	outlined := Default().InputBox(field.VariantOutlined, InputIdle, 10)
	assert.True(t, outlined.GetBorderTop())
	assert.True(t, outlined.GetBorderLeft())
}
