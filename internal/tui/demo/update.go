package demo

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/fieldkit/internal/field"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

// Init focuses the first field.
func (m Model) Init() tea.Cmd {
	return m.focusCurrent()
}

// Update routes keys to the focused field and settle messages to the field
// that issued them.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case components.SettleMsg:
		if c, ok := m.controls[msg.ID]; ok {
			cmd = c.Update(msg, m.Value(msg.ID))
		}

	case copiedMsg:
		m.state.status = "Copied " + msg.FieldID + " to the clipboard"
		m.state.statusErr = false

	case copyFailedMsg:
		m.log.Error(msg.Err, "clipboard write failed")
		m.state.status = msg.Err.Error()
		m.state.statusErr = true

	default:
		if c := m.focusedControl(); c != nil {
			cmd = c.Update(msg, m.Value(c.ID()))
		}
	}

	m.refresh()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyFocused()
	}

	if m.FocusedID() == slotActions {
		return m, m.actions.Update(msg)
	}
	c := m.focusedControl()
	if c == nil {
		return m, nil
	}
	return m, c.Update(msg, m.Value(c.ID()))
}

func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	blur := m.blurCurrent()
	n := len(focusOrder)
	m.focus = (m.focus + delta + n) % n
	return m, tea.Batch(blur, m.focusCurrent())
}

func (m Model) focusCurrent() tea.Cmd {
	if m.FocusedID() == slotActions {
		m.actions.Focus()
		return nil
	}
	if c := m.focusedControl(); c != nil {
		return c.Focus(m.Value(c.ID()))
	}
	return nil
}

func (m Model) blurCurrent() tea.Cmd {
	if m.FocusedID() == slotActions {
		m.actions.Blur()
		return nil
	}
	if c := m.focusedControl(); c != nil {
		return c.Blur()
	}
	return nil
}

func (m Model) focusedControl() control {
	return m.controls[m.FocusedID()]
}

func (m Model) copyFocused() tea.Cmd {
	id := m.FocusedID()
	if ti, ok := m.inputs[id]; ok && ti.Field().Options().Type == field.TypePassword {
		m.state.status = "Passwords are never copied"
		m.state.statusErr = true
		return nil
	}
	value := m.Value(id)
	if value == "" {
		return nil
	}
	return copyCmd(id, value)
}
