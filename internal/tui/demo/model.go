// Package demo holds the two showcase screens: the input system demo, an
// interactive bubbletea program, and the static button showcase.
package demo

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/fieldkit/internal/autoresize"
	"github.com/alexisbeaulieu97/fieldkit/internal/field"
	"github.com/alexisbeaulieu97/fieldkit/internal/logger"
	"github.com/alexisbeaulieu97/fieldkit/internal/suggest"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/theme"
	"github.com/alexisbeaulieu97/fieldkit/internal/validation"
)

// Settings tunes the input demo.
type Settings struct {
	EmailDomains         []string
	TitleMaxLength       int
	ContentMaxLength     int
	DescriptionMaxLength int
	ContentRows          autoresize.Policy
	SettleDelay          time.Duration
}

// DefaultSettings mirrors the stock demo configuration.
func DefaultSettings() Settings {
	return Settings{
		EmailDomains:         suggest.DefaultDomains,
		TitleMaxLength:       50,
		ContentMaxLength:     500,
		DescriptionMaxLength: 200,
		ContentRows:          autoresize.TerminalPolicy(3, 8),
		SettleDelay:          field.DefaultSettleDelay,
	}
}

// Field ids, also used as keys into the value map.
const (
	fieldEmail       = "email"
	fieldPassword    = "password"
	fieldConfirm     = "confirm"
	slotActions      = "actions"
	fieldSearch      = "search"
	fieldTitle       = "title"
	fieldContent     = "content"
	fieldDescription = "description"
	fieldDisabled    = "disabled"
	fieldReadOnly    = "readonly"
	fieldInvalid     = "invalid"
)

// focusOrder lists the Tab stops. The disabled field is skipped.
var focusOrder = []string{
	fieldEmail, fieldPassword, fieldConfirm, slotActions,
	fieldSearch,
	fieldTitle, fieldContent, fieldDescription,
	fieldReadOnly, fieldInvalid,
}

const maxContentWidth = 72

// control is what TextInput and TextArea have in common.
type control interface {
	ID() string
	Focus(value string) tea.Cmd
	Blur() tea.Cmd
	Update(msg tea.Msg, value string) tea.Cmd
	ViewWithContext(ctx components.RenderContext, value string) string
}

// formState is shared by the model copies bubbletea hands around and by the
// component callbacks.
type formState struct {
	values    map[string]string
	submitted bool
	status    string
	statusErr bool
}

// Model is the input system demo.
type Model struct {
	settings  Settings
	validator *validation.Validator
	log       *logger.Logger
	theme     theme.Theme
	keys      KeyMap

	state    *formState
	inputs   map[string]*components.TextInput
	areas    map[string]*components.TextArea
	controls map[string]control
	actions  *components.ButtonGroup
	focus    int

	width int
	// height stays zero until the first WindowSizeMsg; zero renders every
	// section expanded.
	height   int
	quitting bool
}

// NewModel builds the demo with every field in its initial state. A nil
// validator uses the English catalog and a nil logger is silent.
func NewModel(settings Settings, v *validation.Validator, log *logger.Logger) Model {
	if v == nil {
		v = validation.New(validation.DefaultMessages())
	}

	state := &formState{values: map[string]string{
		fieldDisabled: "This cannot be edited",
		fieldReadOnly: "Read only content",
		fieldInvalid:  "wrong value",
	}}

	m := Model{
		settings:  settings,
		validator: v,
		log:       log,
		theme:     theme.Default(),
		keys:      DefaultKeyMap(),
		state:     state,
		inputs:    make(map[string]*components.TextInput),
		areas:     make(map[string]*components.TextArea),
		controls:  make(map[string]control),
		width:     80,
	}

	m.addInput(fieldEmail, "Email", "you@example.com")
	m.addInput(fieldPassword, "Password", "At least 8 characters")
	m.addInput(fieldConfirm, "Confirm password", "Repeat the password")
	m.addInput(fieldSearch, "", "Search")
	m.addInput(fieldTitle, "Title", "Give your post a title")
	m.addArea(fieldContent, "Content", "What is on your mind?")
	m.addArea(fieldDescription, "Description (fixed size)", "Optional details").WithRows(components.DefaultRows)
	m.addInput(fieldDisabled, "Disabled", "")
	m.addInput(fieldReadOnly, "Read only", "")
	m.addInput(fieldInvalid, "Error state", "")

	m.actions = components.NewButtonGroup(
		components.NewButton("Sign in").OnClick(m.submit),
		components.NewButton("Reset").WithVariant(theme.ButtonOutlined).WithArrow(false).OnClick(m.reset),
	)

	m.refresh()
	return m
}

func (m Model) addInput(id, label, placeholder string) *components.TextInput {
	ti := components.NewTextInput(id, field.Options{}, m.callbacks(id), m.log).
		WithLabel(label).
		WithPlaceholder(placeholder).
		WithFullWidth(true)
	m.inputs[id] = ti
	m.controls[id] = ti
	return ti
}

func (m Model) addArea(id, label, placeholder string) *components.TextArea {
	ta := components.NewTextArea(id, field.Options{}, m.callbacks(id), m.log).
		WithLabel(label).
		WithPlaceholder(placeholder).
		WithFullWidth(true)
	m.areas[id] = ta
	m.controls[id] = ta
	return ta
}

func (m Model) callbacks(id string) field.Callbacks {
	state := m.state
	return field.Callbacks{
		OnChange: func(v string) {
			state.values[id] = v
		},
		OnSuggestionSelect: func(s string) {
			state.status = "Picked " + s
			state.statusErr = false
		},
	}
}

// Value returns the current value of a field.
func (m Model) Value(id string) string {
	return m.state.values[id]
}

// Status returns the last status line.
func (m Model) Status() string {
	return m.state.status
}

// FocusedID returns the id of the focused Tab stop.
func (m Model) FocusedID() string {
	return focusOrder[m.focus]
}

// refresh recomputes every owner-derived option from the current values. It
// runs after each update, the way a parent re-renders controlled children.
func (m Model) refresh() {
	v := m.validator
	email := m.Value(fieldEmail)
	password := m.Value(fieldPassword)
	confirm := m.Value(fieldConfirm)

	emailCheck, passwordCheck := validation.Optional(v.EmailFunc()), validation.Optional(v.PasswordFunc())
	if m.state.submitted {
		emailCheck, passwordCheck = v.EmailFunc(), v.PasswordFunc()
	}
	confirmCheck := validation.Optional(v.MatchFunc(func() string { return password }))

	m.inputs[fieldEmail].SetOptions(field.Options{
		Variant:     field.VariantSearch,
		Type:        field.TypeEmail,
		Clearable:   true,
		ErrorText:   emailCheck(email),
		Suggestions: suggest.EmailDomains(email, m.settings.EmailDomains),
		SettleDelay: m.settings.SettleDelay,
	})
	m.inputs[fieldPassword].SetOptions(field.Options{
		Type:         field.TypePassword,
		ShowPassword: true,
		ErrorText:    passwordCheck(password),
		SettleDelay:  m.settings.SettleDelay,
	})
	m.inputs[fieldConfirm].SetOptions(field.Options{
		Type:         field.TypePassword,
		ShowPassword: true,
		ErrorText:    confirmCheck(confirm),
		SettleDelay:  m.settings.SettleDelay,
	})
	m.inputs[fieldSearch].SetOptions(field.Options{
		Variant:     field.VariantSearch,
		Type:        field.TypeSearch,
		Clearable:   true,
		SettleDelay: m.settings.SettleDelay,
	})
	m.inputs[fieldTitle].SetOptions(field.Options{
		Variant:     field.VariantUnderlined,
		MaxLength:   m.settings.TitleMaxLength,
		ShowCounter: true,
		Clearable:   true,
		ErrorText:   v.Length(m.Value(fieldTitle), 0, m.settings.TitleMaxLength, "Title"),
		SettleDelay: m.settings.SettleDelay,
	})

	rows := m.settings.ContentRows
	m.areas[fieldContent].SetOptions(field.Options{
		MaxLength:   m.settings.ContentMaxLength,
		ShowCounter: true,
		Clearable:   true,
		ErrorText:   v.Length(m.Value(fieldContent), 0, m.settings.ContentMaxLength, "Content"),
		AutoResize:  &rows,
		SettleDelay: m.settings.SettleDelay,
	})
	m.areas[fieldDescription].SetOptions(field.Options{
		MaxLength:   m.settings.DescriptionMaxLength,
		ShowCounter: true,
		Clearable:   true,
		SettleDelay: m.settings.SettleDelay,
	})

	m.inputs[fieldDisabled].SetOptions(field.Options{Disabled: true})
	m.inputs[fieldReadOnly].SetOptions(field.Options{ReadOnly: true, HelperText: "Focusable, not editable"})
	m.inputs[fieldInvalid].SetOptions(field.Options{Error: true, ErrorText: "Invalid value"})
}

func (m Model) submit() {
	m.state.submitted = true
	v := m.validator
	check := validation.Chain(
		func(string) string { return v.Email(m.Value(fieldEmail)) },
		func(string) string { return v.Password(m.Value(fieldPassword)) },
		func(string) string { return v.Required(m.Value(fieldConfirm), "Confirm password") },
		func(string) string { return v.Match(m.Value(fieldConfirm), m.Value(fieldPassword)) },
	)
	if msg := check(""); msg != "" {
		m.state.status = msg
		m.state.statusErr = true
		m.log.DebugFields("sign in rejected", map[string]any{"reason": msg})
		return
	}
	m.state.status = "Signed in as " + m.Value(fieldEmail)
	m.state.statusErr = false
	m.log.Info("demo sign in accepted")
}

func (m Model) reset() {
	for _, id := range []string{fieldEmail, fieldPassword, fieldConfirm} {
		delete(m.state.values, id)
	}
	m.state.submitted = false
	m.state.status = "Form reset"
	m.state.statusErr = false
}
