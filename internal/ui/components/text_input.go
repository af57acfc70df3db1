package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fieldkit/internal/field"
	"github.com/alexisbeaulieu97/fieldkit/internal/logger"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/theme"
)

const (
	searchGlyph      = "⌕"
	clearGlyph       = "✕"
	errorGlyph       = "!"
	revealGlyph      = "◉"
	concealGlyph     = "◎"
	passwordEchoRune = '•'
)

// TextInput is a single line controlled field.
type TextInput struct {
	id        string
	label     string
	width     int
	fullWidth bool
	field     *field.Field
	input     textinput.Model
	keys      KeyMap
	highlight int
}

// NewTextInput creates a text input. id routes settle messages back to this
// instance and must be unique within a program.
func NewTextInput(id string, opts field.Options, cb field.Callbacks, log *logger.Logger) *TextInput {
	ti := textinput.New()
	ti.Prompt = ""
	// The field enforces MaxLength by rejecting edits; the widget must not truncate.
	ti.CharLimit = 0
	ti.EchoCharacter = passwordEchoRune

	t := &TextInput{
		id:    id,
		width: DefaultWidth,
		field: field.New(opts, cb, log.With("field", id)),
		input: ti,
		keys:  DefaultKeyMap(),
	}
	t.syncEcho()
	return t
}

// WithLabel sets the caption rendered above the box.
func (t *TextInput) WithLabel(label string) *TextInput {
	t.label = label
	return t
}

// WithPlaceholder sets the hint shown while empty.
func (t *TextInput) WithPlaceholder(placeholder string) *TextInput {
	t.input.Placeholder = placeholder
	return t
}

// WithWidth sets the inner width of the box.
func (t *TextInput) WithWidth(width int) *TextInput {
	if width > 0 {
		t.width = width
	}
	return t
}

// WithFullWidth stretches the box to the render context width.
func (t *TextInput) WithFullWidth(full bool) *TextInput {
	t.fullWidth = full
	return t
}

// WithKeyMap replaces the action bindings.
func (t *TextInput) WithKeyMap(keys KeyMap) *TextInput {
	t.keys = keys
	return t
}

// ID returns the routing id.
func (t *TextInput) ID() string {
	return t.id
}

// Field exposes the interaction state machine.
func (t *TextInput) Field() *field.Field {
	return t.field
}

// SetOptions replaces the field configuration, typically on every render.
func (t *TextInput) SetOptions(opts field.Options) {
	t.field.SetOptions(opts)
	t.syncEcho()
}

// SetCallbacks replaces the owner callbacks.
func (t *TextInput) SetCallbacks(cb field.Callbacks) {
	t.field.SetCallbacks(cb)
}

// Display returns the derived render state for value.
func (t *TextInput) Display(value string) field.DisplayState {
	return t.field.Display(value)
}

// Highlighted returns the index of the highlighted suggestion.
func (t *TextInput) Highlighted() int {
	return t.highlight
}

// Focus focuses the field and starts the cursor blinking.
func (t *TextInput) Focus(value string) tea.Cmd {
	if t.field.Options().Disabled {
		return nil
	}
	t.sync(value)
	t.field.Focus(value)
	t.highlight = 0
	return t.input.Focus()
}

// Blur stops editing at once and schedules the settle that hides the
// suggestions. Refocusing before the settle arrives cancels it.
func (t *TextInput) Blur() tea.Cmd {
	t.input.Blur()
	ticket := t.field.Blur()
	return settleCmd(t.id, ticket)
}

// Update handles one message against the owner's current value.
func (t *TextInput) Update(msg tea.Msg, value string) tea.Cmd {
	switch msg := msg.(type) {
	case SettleMsg:
		if msg.ID == t.id {
			t.field.Settle(msg.Ticket)
		}
		return nil
	case tea.KeyMsg:
		if !t.input.Focused() {
			return nil
		}
		return t.handleKey(msg, value)
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd
}

func (t *TextInput) handleKey(msg tea.KeyMsg, value string) tea.Cmd {
	t.sync(value)

	if suggestions := t.field.Display(value).Suggestions; len(suggestions) > 0 {
		if t.highlight >= len(suggestions) {
			t.highlight = 0
		}
		switch {
		case key.Matches(msg, t.keys.NextSuggestion):
			t.highlight = (t.highlight + 1) % len(suggestions)
			return nil
		case key.Matches(msg, t.keys.PrevSuggestion):
			t.highlight = (t.highlight - 1 + len(suggestions)) % len(suggestions)
			return nil
		case key.Matches(msg, t.keys.Accept):
			picked := suggestions[t.highlight]
			t.field.SelectSuggestion(picked)
			t.highlight = 0
			t.sync(picked)
			return nil
		}
	}

	switch {
	case key.Matches(msg, t.keys.Clear):
		if t.field.Clear() {
			t.highlight = 0
			t.sync("")
		}
		return nil
	case key.Matches(msg, t.keys.Reveal):
		if t.field.Display(value).ShowReveal {
			t.field.TogglePassword()
			t.syncEcho()
		}
		return nil
	}

	pos := t.input.Position()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	raw := t.input.Value()
	if raw == value {
		return cmd
	}
	if !t.field.Input(raw) {
		t.input.SetValue(value)
		t.input.SetCursor(pos)
		return cmd
	}
	t.highlight = 0
	return cmd
}

// sync resets the widget to the owner's value when they have drifted apart.
func (t *TextInput) sync(value string) {
	if t.input.Value() == value {
		return
	}
	t.input.SetValue(value)
	t.input.CursorEnd()
}

func (t *TextInput) syncEcho() {
	opts := t.field.Options()
	if opts.Type == field.TypePassword && !t.field.PasswordVisible() {
		t.input.EchoMode = textinput.EchoPassword
		return
	}
	t.input.EchoMode = textinput.EchoNormal
}

// View renders the field with the default context.
func (t *TextInput) View(value string) string {
	return t.ViewWithContext(DefaultContext(), value)
}

// ViewWithContext renders label, box, suggestions and the helper row.
func (t *TextInput) ViewWithContext(ctx RenderContext, value string) string {
	t.sync(value)
	opts := t.field.Options()
	ds := t.field.Display(value)
	state := theme.ResolveInputState(opts.Disabled, ds.EffectiveError, ds.Focused, ds.HasValue)

	width := t.width
	box := ctx.Theme.InputBox(opts.Variant, state, width)
	if t.fullWidth && ctx.Width > 0 {
		width = ctx.Width - box.GetHorizontalBorderSize()
		box = box.Width(width)
	}
	inner := width - box.GetHorizontalPadding()

	var prefix string
	if opts.Variant == field.VariantSearch {
		prefix = ctx.Theme.Icon(false).Render(searchGlyph) + " "
	}
	actions := t.actions(ctx, ds)

	t.input.Width = max(1, inner-lipgloss.Width(prefix)-lipgloss.Width(actions)-2)
	body := prefix + t.input.View()
	if actions != "" {
		gap := inner - lipgloss.Width(body) - lipgloss.Width(actions)
		body += strings.Repeat(" ", max(1, gap)) + actions
	}

	rows := make([]string, 0, 4)
	if t.label != "" {
		rows = append(rows, ctx.Theme.Label(ds.EffectiveError).Render(t.label))
	}
	rows = append(rows, box.Render(body))
	for i, s := range ds.Suggestions {
		rows = append(rows, ctx.Theme.Suggestion(i == t.highlight).Width(width).Render(s))
	}
	if footer := helperRow(ctx, ds, width); footer != "" {
		rows = append(rows, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (t *TextInput) actions(ctx RenderContext, ds field.DisplayState) string {
	icons := make([]string, 0, 3)
	if ds.ShowReveal {
		glyph := revealGlyph
		if !ds.PasswordHidden {
			glyph = concealGlyph
		}
		icons = append(icons, ctx.Theme.Icon(false).Render(glyph))
	}
	if ds.ShowClear {
		icons = append(icons, ctx.Theme.Icon(false).Render(clearGlyph))
	}
	if ds.EffectiveError {
		icons = append(icons, ctx.Theme.Icon(true).Render(errorGlyph))
	}
	return strings.Join(icons, " ")
}

// helperRow renders helper text on the left and the counter on the right.
func helperRow(ctx RenderContext, ds field.DisplayState, width int) string {
	if ds.HelperText == "" && ds.CounterText == "" {
		return ""
	}
	style := ctx.Theme.Helper(ds.EffectiveError)
	left := style.Render(ds.HelperText)
	if ds.CounterText == "" {
		return left
	}
	right := ctx.Theme.Muted().Render(ds.CounterText)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	return left + strings.Repeat(" ", max(1, gap)) + right
}
