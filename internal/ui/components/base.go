package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fieldkit/internal/ui/theme"
)

// DefaultWidth is the inner width of a field that is neither sized nor full width.
const DefaultWidth = 36

// Renderable is anything that renders itself with the default context.
type Renderable interface {
	View() string
}

// ContextualRenderable renders against an explicit context.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// RenderContext carries the theme and available width down the tree.
type RenderContext struct {
	Theme theme.Theme
	Width int
}

// DefaultContext returns the default theme at an 80 column width.
func DefaultContext() RenderContext {
	return RenderContext{Theme: theme.Default(), Width: 80}
}

// WithWidth returns a copy with a different available width.
func (c RenderContext) WithWidth(width int) RenderContext {
	c.Width = width
	return c
}

// Direction is the main axis of a group.
type Direction int

const (
	DirectionHorizontal Direction = iota
	DirectionVertical
)

func (d Direction) String() string {
	if d == DirectionVertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDirection maps "vertical" to DirectionVertical; anything else is horizontal.
func ParseDirection(name string) Direction {
	if name == "vertical" {
		return DirectionVertical
	}
	return DirectionHorizontal
}

func joinVertical(gap int, views []string) string {
	if gap == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, views...)
	}

	spacer := strings.Repeat("\n", gap-1)
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return lipgloss.JoinVertical(lipgloss.Left, result...)
}

func joinHorizontal(gap int, views []string) string {
	if gap == 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}

	spacer := strings.Repeat(" ", gap)
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, result...)
}
