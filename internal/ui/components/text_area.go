package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fieldkit/internal/autoresize"
	"github.com/alexisbeaulieu97/fieldkit/internal/field"
	"github.com/alexisbeaulieu97/fieldkit/internal/logger"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/theme"
)

// DefaultRows is the fixed height of a text area without auto-resize.
const DefaultRows = 4

// TextArea is a multi line controlled field. With Options.AutoResize set it
// grows and shrinks with its content inside the policy bounds; otherwise it
// keeps a fixed number of rows.
type TextArea struct {
	id        string
	label     string
	width     int
	fullWidth bool
	rows      int
	field     *field.Field
	area      textarea.Model
	keys      KeyMap
}

// NewTextArea creates a text area. id routes settle messages back to this
// instance.
func NewTextArea(id string, opts field.Options, cb field.Callbacks, log *logger.Logger) *TextArea {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	// Over-limit edits are rejected by the field, never truncated.
	ta.CharLimit = 0
	// MaxHeight also caps the line count; heights are clamped by the policy instead.
	ta.MaxHeight = 0
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()

	t := &TextArea{
		id:    id,
		width: DefaultWidth,
		rows:  DefaultRows,
		field: field.New(opts, cb, log.With("field", id)),
		area:  ta,
		keys:  DefaultKeyMap(),
	}
	t.area.SetWidth(t.width)
	t.resize("")
	return t
}

// WithLabel sets the caption rendered above the box.
func (t *TextArea) WithLabel(label string) *TextArea {
	t.label = label
	return t
}

// WithPlaceholder sets the hint shown while empty.
func (t *TextArea) WithPlaceholder(placeholder string) *TextArea {
	t.area.Placeholder = placeholder
	return t
}

// WithRows sets the fixed height used when auto-resize is off.
func (t *TextArea) WithRows(rows int) *TextArea {
	if rows > 0 {
		t.rows = rows
	}
	t.resize(t.area.Value())
	return t
}

// WithWidth sets the inner width of the box.
func (t *TextArea) WithWidth(width int) *TextArea {
	if width > 0 {
		t.width = width
		t.area.SetWidth(width)
	}
	return t
}

// WithFullWidth stretches the box to the render context width.
func (t *TextArea) WithFullWidth(full bool) *TextArea {
	t.fullWidth = full
	return t
}

// ID returns the routing id.
func (t *TextArea) ID() string {
	return t.id
}

// Field exposes the interaction state machine.
func (t *TextArea) Field() *field.Field {
	return t.field
}

// Height returns the current number of visible rows.
func (t *TextArea) Height() int {
	return t.area.Height()
}

// SetOptions replaces the field configuration.
func (t *TextArea) SetOptions(opts field.Options) {
	t.field.SetOptions(opts)
	t.resize(t.area.Value())
}

// SetCallbacks replaces the owner callbacks.
func (t *TextArea) SetCallbacks(cb field.Callbacks) {
	t.field.SetCallbacks(cb)
}

// Display returns the derived render state for value.
func (t *TextArea) Display(value string) field.DisplayState {
	return t.field.Display(value)
}

// Focus focuses the field and the widget.
func (t *TextArea) Focus(value string) tea.Cmd {
	if t.field.Options().Disabled {
		return nil
	}
	t.sync(value)
	t.field.Focus(value)
	return t.area.Focus()
}

// Blur stops editing and schedules the settle.
func (t *TextArea) Blur() tea.Cmd {
	t.area.Blur()
	return settleCmd(t.id, t.field.Blur())
}

// Update handles one message against the owner's current value.
func (t *TextArea) Update(msg tea.Msg, value string) tea.Cmd {
	switch msg := msg.(type) {
	case SettleMsg:
		if msg.ID == t.id {
			t.field.Settle(msg.Ticket)
		}
		return nil
	case tea.KeyMsg:
		if !t.area.Focused() {
			return nil
		}
		return t.handleKey(msg, value)
	}

	var cmd tea.Cmd
	t.area, cmd = t.area.Update(msg)
	return cmd
}

func (t *TextArea) handleKey(msg tea.KeyMsg, value string) tea.Cmd {
	t.sync(value)

	if key.Matches(msg, t.keys.Clear) {
		if t.field.Clear() {
			t.sync("")
		}
		return nil
	}

	var cmd tea.Cmd
	t.area, cmd = t.area.Update(msg)
	raw := t.area.Value()
	if raw == value {
		return cmd
	}
	if !t.field.Input(raw) {
		t.area.SetValue(value)
		t.resize(value)
		return cmd
	}
	t.resize(raw)
	return cmd
}

func (t *TextArea) sync(value string) {
	if t.area.Value() == value {
		return
	}
	t.area.SetValue(value)
	t.resize(value)
}

// resize measures the full content at the widget width so deleting lines
// shrinks the area again.
func (t *TextArea) resize(value string) {
	if t.field.Options().AutoResize == nil {
		t.area.SetHeight(t.rows)
		return
	}
	measured := autoresize.MeasureRows(value, t.area.Width())
	t.area.SetHeight(t.field.Resize(measured))
}

// View renders the field with the default context.
func (t *TextArea) View(value string) string {
	return t.ViewWithContext(DefaultContext(), value)
}

// ViewWithContext renders label, box and the helper row.
func (t *TextArea) ViewWithContext(ctx RenderContext, value string) string {
	opts := t.field.Options()
	ds := t.field.Display(value)
	state := theme.ResolveInputState(opts.Disabled, ds.EffectiveError, ds.Focused, ds.HasValue)

	width := t.width
	box := ctx.Theme.InputBox(opts.Variant, state, width)
	if t.fullWidth && ctx.Width > 0 {
		width = ctx.Width - box.GetHorizontalBorderSize()
		box = box.Width(width)
	}
	if inner := width - box.GetHorizontalPadding(); inner > 0 && inner != t.area.Width() {
		t.area.SetWidth(inner)
		t.resize(value)
	}
	t.sync(value)

	rows := make([]string, 0, 3)
	if t.label != "" {
		rows = append(rows, ctx.Theme.Label(ds.EffectiveError).Render(t.label))
	}
	rows = append(rows, box.Render(t.area.View()))
	if footer := helperRow(ctx, ds, width); footer != "" {
		rows = append(rows, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
