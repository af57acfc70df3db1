package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fieldkit/internal/field"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/theme"
)

const (
	arrowGlyph   = "›"
	loadingGlyph = "…"
)

// Button is a pressable label. Disabled, loading and the disabled variant
// all make it inactive: it renders muted and Press does nothing.
type Button struct {
	label     string
	variant   theme.ButtonVariant
	size      field.Size
	fullWidth bool
	disabled  bool
	loading   bool
	arrow     bool
	focused   bool
	startIcon string
	endIcon   string
	onClick   func()
}

// NewButton creates a medium primary button with a trailing arrow.
func NewButton(label string) *Button {
	return &Button{
		label:   label,
		variant: theme.ButtonPrimary,
		size:    field.SizeMedium,
		arrow:   true,
	}
}

// WithVariant sets the visual treatment.
func (b *Button) WithVariant(v theme.ButtonVariant) *Button {
	b.variant = v
	return b
}

// WithSize sets the padding size.
func (b *Button) WithSize(s field.Size) *Button {
	b.size = s
	return b
}

// WithFullWidth stretches the button to the available width.
func (b *Button) WithFullWidth(full bool) *Button {
	b.fullWidth = full
	return b
}

// WithDisabled toggles the disabled flag.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithLoading toggles the loading flag. A loading button hides its icons.
func (b *Button) WithLoading(loading bool) *Button {
	b.loading = loading
	return b
}

// WithArrow toggles the trailing arrow.
func (b *Button) WithArrow(arrow bool) *Button {
	b.arrow = arrow
	return b
}

// WithIcons sets the glyphs rendered before and after the label.
func (b *Button) WithIcons(start, end string) *Button {
	b.startIcon = start
	b.endIcon = end
	return b
}

// OnClick sets the press handler.
func (b *Button) OnClick(fn func()) *Button {
	b.onClick = fn
	return b
}

// SetFocused marks the button as the focused one in its group.
func (b *Button) SetFocused(focused bool) {
	b.focused = focused
}

// Label returns the button text.
func (b *Button) Label() string {
	return b.label
}

// FullWidth reports whether the button stretches.
func (b *Button) FullWidth() bool {
	return b.fullWidth
}

// IsDisabled reports whether presses are ignored.
func (b *Button) IsDisabled() bool {
	return b.disabled || b.loading || b.variant == theme.ButtonDisabled
}

// Press runs the click handler unless the button is inactive.
func (b *Button) Press() bool {
	if b.IsDisabled() {
		return false
	}
	if b.onClick != nil {
		b.onClick()
	}
	return true
}

func (b *Button) state() theme.ButtonState {
	switch {
	case b.IsDisabled():
		return theme.ButtonInactive
	case b.focused:
		return theme.ButtonFocused
	default:
		return theme.ButtonIdle
	}
}

func (b *Button) content() string {
	parts := make([]string, 0, 4)
	if b.loading {
		parts = append(parts, loadingGlyph)
	} else if b.startIcon != "" {
		parts = append(parts, b.startIcon)
	}
	parts = append(parts, b.label)
	if !b.loading {
		if b.arrow {
			parts = append(parts, arrowGlyph)
		}
		if b.endIcon != "" {
			parts = append(parts, b.endIcon)
		}
	}
	return strings.Join(parts, " ")
}

// View renders the button with the default context.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button. Full width buttons take ctx.Width.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := ctx.Theme.Button(b.variant, b.size, b.state())
	if b.fullWidth && ctx.Width > 0 {
		inner := ctx.Width - style.GetHorizontalBorderSize()
		style = style.Width(inner).Align(lipgloss.Center)
	}
	return style.Render(b.content())
}
