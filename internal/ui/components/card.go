package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Card frames a titled group of already rendered rows, such as one demo
// section.
type Card struct {
	title       string
	description string
	rows        []string
	gap         int
}

// NewCard creates a card with a heading.
func NewCard(title string) *Card {
	return &Card{title: title, gap: 1}
}

// WithDescription sets the muted line under the heading.
func (c *Card) WithDescription(text string) *Card {
	c.description = text
	return c
}

// WithGap sets the blank rows between body rows.
func (c *Card) WithGap(gap int) *Card {
	if gap >= 0 {
		c.gap = gap
	}
	return c
}

// Add appends rendered rows. Empty rows are skipped.
func (c *Card) Add(rows ...string) *Card {
	for _, r := range rows {
		if r != "" {
			c.rows = append(c.rows, r)
		}
	}
	return c
}

// View renders the card with the default context.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card at ctx.Width including its frame.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	style := ctx.Theme.Section()
	if ctx.Width > 0 {
		style = style.Width(ctx.Width - style.GetHorizontalBorderSize())
	}

	head := make([]string, 0, 2)
	if c.title != "" {
		head = append(head, ctx.Theme.Title().Render(c.title))
	}
	if c.description != "" {
		head = append(head, ctx.Theme.Muted().Render(c.description))
	}

	parts := make([]string, 0, 2)
	if len(head) > 0 {
		parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, head...))
	}
	if len(c.rows) > 0 {
		parts = append(parts, joinVertical(c.gap, c.rows))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// InnerWidth is the width available to rows inside a card rendered at width.
func InnerWidth(ctx RenderContext) int {
	style := ctx.Theme.Section()
	return ctx.Width - style.GetHorizontalFrameSize()
}
