package demo

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

type section struct {
	title       string
	description string
	stops       []string
}

var sections = []section{
	{"Sign in", "Email suggestions, live validation and password reveal", []string{fieldEmail, fieldPassword, fieldConfirm, slotActions}},
	{"Search", "Search variant with clear action", []string{fieldSearch}},
	{"New post", "Length caps, counters and an auto-resizing text area", []string{fieldTitle, fieldContent, fieldDescription}},
	{"States", "Disabled, read only and error", []string{fieldDisabled, fieldReadOnly, fieldInvalid}},
}

// View renders every section. When the terminal is too short only the
// section holding focus is expanded.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := components.RenderContext{Theme: m.theme, Width: min(m.width, maxContentWidth)}
	full := m.render(ctx, true)
	if m.height <= 0 || lipgloss.Height(full) <= m.height {
		return full
	}
	return m.render(ctx, false)
}

func (m Model) render(ctx components.RenderContext, expandAll bool) string {
	inner := ctx.WithWidth(components.InnerWidth(ctx))
	active := m.FocusedID()

	rows := []string{m.theme.Title().Render("Input system")}
	for _, s := range sections {
		card := components.NewCard(s.title)
		if expandAll || slices.Contains(s.stops, active) {
			card.WithDescription(s.description)
			for _, id := range s.stops {
				card.Add(m.renderStop(inner, id))
			}
		}
		rows = append(rows, card.ViewWithContext(ctx))
	}

	if m.state.status != "" {
		style := m.theme.Helper(m.state.statusErr)
		rows = append(rows, style.Render(m.state.status))
	}
	rows = append(rows, m.helpView())
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderStop(ctx components.RenderContext, id string) string {
	if id == slotActions {
		return m.actions.ViewWithContext(ctx)
	}
	c, ok := m.controls[id]
	if !ok {
		return ""
	}
	return c.ViewWithContext(ctx, m.Value(id))
}

func (m Model) helpView() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	parts = append(parts, "ctrl+l clear", "ctrl+r reveal")
	return m.theme.Muted().Render(strings.Join(parts, " • "))
}
