// Package field implements the interaction model shared by text inputs and
// text areas: focus tracking, hard length caps, clearing, suggestion
// selection and the derived display state a renderer consumes.
//
// A Field never stores the value it edits. The owner passes the current
// value into every call that needs it and receives changes through
// Callbacks.OnChange, so the rendered value is always the owner's.
package field

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/fieldkit/internal/logger"
	"github.com/alexisbeaulieu97/fieldkit/internal/suggest"
)

// InteractionState is the per-field state a renderer needs besides the value.
type InteractionState struct {
	Focused            bool
	SuggestionsVisible bool
}

// Ticket identifies a scheduled blur settle. A ticket goes stale as soon as
// the field is focused again.
type Ticket struct {
	Generation uint64
	Delay      time.Duration
}

// DisplayState is everything a renderer derives from the field for a value.
type DisplayState struct {
	EffectiveError bool
	HelperText     string
	CounterText    string
	Suggestions    []string
	// TargetHeight is nil unless auto-resize is configured and a measurement
	// has been recorded.
	TargetHeight   *int
	HasValue       bool
	ShowClear      bool
	ShowReveal     bool
	PasswordHidden bool
	Focused        bool
}

// Field is the interaction state machine of one input instance.
type Field struct {
	opts Options
	cb   Callbacks
	log  *logger.Logger

	focused    bool
	blurring   bool
	open       bool
	generation uint64
	revealed   bool
	height     *int
}

// New creates a field. A nil logger is allowed.
func New(opts Options, cb Callbacks, log *logger.Logger) *Field {
	return &Field{opts: opts, cb: cb, log: log}
}

// Options returns the current configuration.
func (f *Field) Options() Options {
	return f.opts
}

// SetOptions replaces the configuration. Interaction state is kept.
func (f *Field) SetOptions(opts Options) {
	f.opts = opts
	if opts.AutoResize == nil {
		f.height = nil
	}
}

// SetCallbacks replaces the owner notifications.
func (f *Field) SetCallbacks(cb Callbacks) {
	f.cb = cb
}

// State derives the interaction state for the owner's current value.
func (f *Field) State(value string) InteractionState {
	return InteractionState{
		Focused:            f.focused,
		SuggestionsVisible: f.suggestionsVisible(value),
	}
}

// Focused reports whether the field currently holds focus.
func (f *Field) Focused() bool {
	return f.focused
}

// Input offers a raw edit. It returns false when the edit is discarded: the
// field is disabled or read-only, or raw exceeds MaxLength. A discarded edit
// never reaches the owner, so the next render shows the previous value.
func (f *Field) Input(raw string) bool {
	if f.opts.Disabled || f.opts.ReadOnly {
		return false
	}
	if f.opts.MaxLength > 0 && utf8.RuneCountInString(raw) > f.opts.MaxLength {
		f.debug("input rejected", map[string]any{"length": utf8.RuneCountInString(raw), "max_length": f.opts.MaxLength})
		return false
	}
	if f.focused && f.opts.searchMode() {
		f.open = true
	}
	f.notifyChange(raw)
	return true
}

// Focus marks the field focused and cancels any pending blur.
func (f *Field) Focus(value string) {
	if f.opts.Disabled {
		return
	}
	f.generation++
	f.focused = true
	f.blurring = false
	if f.opts.searchMode() {
		f.open = true
	}
	f.debug("focus", map[string]any{"generation": f.generation, "suggestions": f.suggestionsVisible(value)})
	if f.cb.OnFocus != nil {
		f.cb.OnFocus()
	}
}

// Blur notifies the owner immediately and returns a ticket for the deferred
// dismissal. The caller must deliver it to Settle after Ticket.Delay.
func (f *Field) Blur() Ticket {
	ticket := Ticket{Generation: f.generation, Delay: f.opts.settleDelay()}
	f.blurring = true
	f.debug("blur scheduled", map[string]any{"generation": ticket.Generation, "delay": ticket.Delay.String()})
	if f.cb.OnBlur != nil {
		f.cb.OnBlur()
	}
	return ticket
}

// Settle completes a blur. Tickets issued before the latest Focus are stale
// and ignored; it reports whether the ticket was applied.
func (f *Field) Settle(t Ticket) bool {
	if t.Generation != f.generation {
		f.debug("stale settle ignored", map[string]any{"ticket": t.Generation, "generation": f.generation})
		return false
	}
	f.focused = false
	f.blurring = false
	f.open = false
	return true
}

// SelectSuggestion commits a suggestion: the owner sees the new value before
// the list closes, and a concurrent blur cannot undo either step.
func (f *Field) SelectSuggestion(s string) {
	if f.opts.Disabled || f.opts.ReadOnly {
		return
	}
	f.notifyChange(s)
	f.open = false
	f.debug("suggestion selected", map[string]any{"suggestion": s})
	if f.cb.OnSuggestionSelect != nil {
		f.cb.OnSuggestionSelect(s)
	}
}

// Clear empties the value and keeps focus on the field. OnFocus fires only
// when the field had started to blur. It reports false when the field is not
// clearable.
func (f *Field) Clear() bool {
	if !f.opts.canClear() {
		return false
	}
	f.notifyChange("")
	if f.cb.OnClear != nil {
		f.cb.OnClear()
	}
	if f.focused && !f.blurring {
		f.generation++
		if f.opts.searchMode() {
			f.open = true
		}
		return true
	}
	f.Focus("")
	return true
}

// TogglePassword flips the reveal state of a password field.
func (f *Field) TogglePassword() bool {
	if f.opts.Type != TypePassword || !f.opts.ShowPassword {
		return false
	}
	f.revealed = !f.revealed
	return true
}

// PasswordVisible reports whether a password field shows its characters.
func (f *Field) PasswordVisible() bool {
	return f.opts.Type != TypePassword || f.revealed
}

// Resize records a content measurement and returns the clamped height. It
// returns the measurement unchanged when auto-resize is off.
func (f *Field) Resize(measured int) int {
	if f.opts.AutoResize == nil {
		return measured
	}
	h := f.opts.AutoResize.Normalize().Resize(measured)
	f.height = &h
	return h
}

// Display derives the render state for value.
func (f *Field) Display(value string) DisplayState {
	hasValue := value != ""
	liveMsg := ""
	if f.opts.LiveValidator != nil {
		liveMsg = f.opts.LiveValidator(value)
	}

	ds := DisplayState{
		EffectiveError: f.opts.Error || f.opts.ErrorText != "" || liveMsg != "",
		HasValue:       hasValue,
		ShowClear:      f.opts.canClear() && hasValue,
		ShowReveal:     f.opts.Type == TypePassword && f.opts.ShowPassword && hasValue,
		PasswordHidden: !f.PasswordVisible(),
		Focused:        f.focused,
	}

	switch {
	case f.opts.ErrorText != "":
		ds.HelperText = f.opts.ErrorText
	case liveMsg != "":
		ds.HelperText = liveMsg
	default:
		ds.HelperText = f.opts.HelperText
	}

	if f.opts.ShowCounter && f.opts.MaxLength > 0 {
		ds.CounterText = fmt.Sprintf("%d/%d", utf8.RuneCountInString(value), f.opts.MaxLength)
	}

	if f.suggestionsVisible(value) {
		ds.Suggestions = suggest.Filter(f.opts.Suggestions, value)
	}

	if f.opts.AutoResize != nil && f.height != nil {
		h := *f.height
		ds.TargetHeight = &h
	}

	return ds
}

func (f *Field) suggestionsVisible(value string) bool {
	if !f.focused || !f.open || !f.opts.searchMode() || len(f.opts.Suggestions) == 0 {
		return false
	}
	return len(suggest.Filter(f.opts.Suggestions, value)) > 0
}

func (f *Field) notifyChange(value string) {
	if f.cb.OnChange != nil {
		f.cb.OnChange(value)
	}
}

func (f *Field) debug(msg string, fields map[string]any) {
	f.log.DebugFields(msg, fields)
}
