package field

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fieldkit/internal/autoresize"
	"github.com/alexisbeaulieu97/fieldkit/internal/validation"
)

// owner plays the surrounding form: it holds the authoritative value and
// records every notification in order.
type owner struct {
	value  string
	events []string
}

func (o *owner) callbacks() Callbacks {
	return Callbacks{
		OnChange: func(v string) {
			o.value = v
			o.events = append(o.events, "change:"+v)
		},
		OnClear:            func() { o.events = append(o.events, "clear") },
		OnSuggestionSelect: func(s string) { o.events = append(o.events, "select:"+s) },
		OnFocus:            func() { o.events = append(o.events, "focus") },
		OnBlur:             func() { o.events = append(o.events, "blur") },
	}
}

func newOwnedField(opts Options) (*Field, *owner) {
	o := &owner{}
	return New(opts, o.callbacks(), nil), o
}

func TestInputRespectsMaxLength(t *testing.T) {
	t.Parallel()

	f, o := newOwnedField(Options{MaxLength: 50})
	o.value = strings.Repeat("a", 50)

	require.False(t, f.Input(strings.Repeat("a", 51)))
	assert.Empty(t, o.events, "owner must not be notified of a rejected edit")
	assert.Equal(t, strings.Repeat("a", 50), o.value)

	require.True(t, f.Input(strings.Repeat("b", 50)))
	assert.Equal(t, strings.Repeat("b", 50), o.value)
}

func TestInputMaxLengthCountsRunes(t *testing.T) {
	t.Parallel()

	f, o := newOwnedField(Options{MaxLength: 3})
	require.True(t, f.Input("제목입"))
	require.False(t, f.Input("제목입니"))
	assert.Equal(t, "제목입", o.value)
}

func TestInputWithoutMaxLengthAcceptsAnything(t *testing.T) {
	t.Parallel()

	f, o := newOwnedField(Options{})
	require.True(t, f.Input(strings.Repeat("x", 10_000)))
	assert.Len(t, o.value, 10_000)
}

func TestInputIgnoredWhenDisabledOrReadOnly(t *testing.T) {
	t.Parallel()

	for _, opts := range []Options{{Disabled: true}, {ReadOnly: true}} {
		f, o := newOwnedField(opts)
		require.False(t, f.Input("x"))
		assert.Empty(t, o.events)
	}
}

func TestFocusShowsSuggestionsInSearchMode(t *testing.T) {
	t.Parallel()

	f, o := newOwnedField(Options{
		Variant:     VariantSearch,
		Suggestions: []string{"a@gmail.com", "a@naver.com"},
	})

	f.Focus(o.value)
	state := f.State(o.value)
	assert.True(t, state.Focused)
	assert.True(t, state.SuggestionsVisible)
	assert.Equal(t, []string{"a@gmail.com", "a@naver.com"}, f.Display(o.value).Suggestions)
}

func TestFocusWithoutCandidatesKeepsSuggestionsHidden(t *testing.T) {
	t.Parallel()

	f, o := newOwnedField(Options{Variant: VariantSearch})
	f.Focus(o.value)
	assert.False(t, f.State(o.value).SuggestionsVisible)

	f2, o2 := newOwnedField(Options{Variant: VariantSearch, Suggestions: []string{"only"}})
	o2.value = "only"
	f2.Focus(o2.value)
	assert.False(t, f2.State(o2.value).SuggestionsVisible, "exact match filters the set to empty")
}

func TestSuggestionsRequireSearchVariant(t *testing.T) {
	t.Parallel()

	f, o := newOwnedField(Options{Variant: VariantOutlined, Suggestions: []string{"a", "b"}})
	f.Focus(o.value)
	assert.True(t, f.State(o.value).Focused)
	assert.False(t, f.State(o.value).SuggestionsVisible)
}

func TestSelectSuggestionBeatsConcurrentBlur(t *testing.T) {
	t.Parallel()

	f, o := newOwnedField(Options{
		Variant:     VariantSearch,
		Suggestions: []string{"a@gmail.com", "a@naver.com"},
	})
	f.Focus(o.value)
	require.True(t, f.State(o.value).SuggestionsVisible)

	// A pointer press on the list blurs the input before the click lands.
	ticket := f.Blur()
	f.SelectSuggestion("a@naver.com")

	assert.Equal(t, "a@naver.com", o.value)
	assert.False(t, f.State(o.value).SuggestionsVisible)
	assert.Equal(t, []string{"focus", "blur", "change:a@naver.com", "select:a@naver.com"}, o.events)

	require.True(t, f.Settle(ticket))
	assert.Equal(t, "a@naver.com", o.value, "settling never touches the value")
	assert.False(t, f.State(o.value).Focused)
}

func TestBlurDefersDismissal(t *testing.T) {
	t.Parallel()

	f, o := newOwnedField(Options{Variant: VariantSearch, Suggestions: []string{"alpha", "beta"}})
	f.Focus(o.value)

	ticket := f.Blur()
	assert.Equal(t, DefaultSettleDelay, ticket.Delay)
	assert.True(t, f.State(o.value).Focused, "focus survives until the settle delay elapses")
	assert.True(t, f.State(o.value).SuggestionsVisible)

	require.True(t, f.Settle(ticket))
	assert.Equal(t, InteractionState{}, f.State(o.value))
}

func TestStaleSettleAfterRefocusIsIgnored(t *testing.T) {
	t.Parallel()

	f, o := newOwnedField(Options{Variant: VariantSearch, Suggestions: []string{"alpha"}})
	f.Focus(o.value)
	stale := f.Blur()
	f.Focus(o.value)

	assert.False(t, f.Settle(stale))
	state := f.State(o.value)
	assert.True(t, state.Focused)
	assert.True(t, state.SuggestionsVisible)

	current := f.Blur()
	assert.True(t, f.Settle(current))
	assert.False(t, f.State(o.value).Focused)
}

func TestSettleDelayOverride(t *testing.T) {
	t.Parallel()

	f, _ := newOwnedField(Options{SettleDelay: 1})
	assert.EqualValues(t, 1, f.Blur().Delay)
}

func TestClearKeepsFocusAndIsIdempotent(t *testing.T) {
	t.Parallel()

	f, o := newOwnedField(Options{Clearable: true})
	o.value = "hello"
	f.Focus(o.value)
	pending := f.Blur()

	require.True(t, f.Clear())
	assert.Equal(t, "", o.value)
	assert.True(t, f.Focused())
	assert.False(t, f.Settle(pending), "clear refocuses, so the earlier blur is stale")

	require.True(t, f.Clear())
	assert.Equal(t, "", o.value)
	assert.True(t, f.Focused())
	assert.Equal(t, []string{"focus", "blur", "change:", "clear", "focus", "change:", "clear"}, o.events)
}

func TestClearWhileFocusedDoesNotRefireFocus(t *testing.T) {
	t.Parallel()

	f, o := newOwnedField(Options{Clearable: true})
	o.value = "hello"
	f.Focus(o.value)

	require.True(t, f.Clear())
	require.True(t, f.Clear())
	assert.True(t, f.Focused())
	assert.Equal(t, []string{"focus", "change:", "clear", "change:", "clear"}, o.events)
}

func TestClearWithoutFocusFocuses(t *testing.T) {
	t.Parallel()

	f, o := newOwnedField(Options{Clearable: true})
	o.value = "hello"

	require.True(t, f.Clear())
	assert.True(t, f.Focused())
	assert.Equal(t, []string{"change:", "clear", "focus"}, o.events)
}

func TestClearRefusedWhenNotClearable(t *testing.T) {
	t.Parallel()

	for _, opts := range []Options{
		{},
		{Clearable: true, ReadOnly: true},
		{Clearable: true, Disabled: true},
	} {
		f, o := newOwnedField(opts)
		o.value = "keep"
		assert.False(t, f.Clear())
		assert.Equal(t, "keep", o.value)
	}
}

func TestDisplayErrorPrecedence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		opts       Options
		value      string
		wantError  bool
		wantHelper string
	}{
		{"helper only", Options{HelperText: "hint"}, "", false, "hint"},
		{"error flag keeps helper", Options{Error: true, HelperText: "hint"}, "", true, "hint"},
		{"error text wins over helper", Options{ErrorText: "bad", HelperText: "hint"}, "", true, "bad"},
		{"nothing", Options{}, "", false, ""},
		{
			"live validator reports",
			Options{LiveValidator: validation.ValidateEmail, HelperText: "hint"},
			"nope",
			true,
			validation.DefaultMessages().EmailInvalid,
		},
		{
			"live validator passes",
			Options{LiveValidator: validation.ValidateEmail, HelperText: "hint"},
			"a@b.co",
			false,
			"hint",
		},
		{
			"explicit error text beats live message",
			Options{LiveValidator: validation.ValidateEmail, ErrorText: "server says no"},
			"nope",
			true,
			"server says no",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := New(tc.opts, Callbacks{}, nil)
			ds := f.Display(tc.value)
			assert.Equal(t, tc.wantError, ds.EffectiveError)
			assert.Equal(t, tc.wantHelper, ds.HelperText)
		})
	}
}

func TestDisplayCounter(t *testing.T) {
	t.Parallel()

	f := New(Options{ShowCounter: true, MaxLength: 50}, Callbacks{}, nil)
	assert.Equal(t, "5/50", f.Display("hello").CounterText)

	f.SetOptions(Options{ShowCounter: true})
	assert.Empty(t, f.Display("hello").CounterText, "counter needs a max length")
}

func TestDisplayActions(t *testing.T) {
	t.Parallel()

	f := New(Options{Clearable: true, Type: TypePassword, ShowPassword: true}, Callbacks{}, nil)
	empty := f.Display("")
	assert.False(t, empty.ShowClear)
	assert.False(t, empty.ShowReveal)
	assert.True(t, empty.PasswordHidden)

	filled := f.Display("secret")
	assert.True(t, filled.ShowClear)
	assert.True(t, filled.ShowReveal)

	require.True(t, f.TogglePassword())
	assert.False(t, f.Display("secret").PasswordHidden)
	require.True(t, f.TogglePassword())
	assert.True(t, f.Display("secret").PasswordHidden)

	plain := New(Options{}, Callbacks{}, nil)
	assert.False(t, plain.TogglePassword())
	assert.True(t, plain.PasswordVisible())
}

func TestResizeTracksTargetHeight(t *testing.T) {
	t.Parallel()

	policy := autoresize.NewPolicy(3, 10)
	f := New(Options{AutoResize: &policy}, Callbacks{}, nil)
	assert.Nil(t, f.Display("x").TargetHeight)

	assert.Equal(t, 76, f.Resize(50))
	require.NotNil(t, f.Display("x").TargetHeight)
	assert.Equal(t, 76, *f.Display("x").TargetHeight)

	assert.Equal(t, 216, f.Resize(300))
	assert.Equal(t, 120, f.Resize(120))
	assert.Equal(t, 120, *f.Display("x").TargetHeight)

	f.SetOptions(Options{})
	assert.Nil(t, f.Display("x").TargetHeight)
	assert.Equal(t, 999, f.Resize(999))
}

func TestInputReopensSuggestionsAfterSelection(t *testing.T) {
	t.Parallel()

	f, o := newOwnedField(Options{Variant: VariantSearch, Suggestions: []string{"alpha", "alpine"}})
	f.Focus(o.value)
	f.SelectSuggestion("alpha")
	require.False(t, f.State(o.value).SuggestionsVisible)

	require.True(t, f.Input("alp"))
	assert.True(t, f.State(o.value).SuggestionsVisible)
	assert.Equal(t, []string{"alpha", "alpine"}, f.Display(o.value).Suggestions)
}

func TestDisabledFieldIgnoresFocusAndSelection(t *testing.T) {
	t.Parallel()

	f, o := newOwnedField(Options{Disabled: true, Variant: VariantSearch, Suggestions: []string{"a"}})
	f.Focus(o.value)
	f.SelectSuggestion("a")
	assert.False(t, f.Focused())
	assert.Empty(t, o.events)
}
