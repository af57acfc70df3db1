package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultGap is the spacing between grouped buttons, in cells or rows.
const DefaultGap = 1

// ButtonGroup lays buttons out along one axis and moves focus between them.
type ButtonGroup struct {
	buttons   []*Button
	direction Direction
	gap       int
	fullWidth bool
	focus     int
	active    bool
	keys      GroupKeyMap
}

// NewButtonGroup creates a horizontal group. Nil buttons are dropped.
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	kept := make([]*Button, 0, len(buttons))
	for _, b := range buttons {
		if b != nil {
			kept = append(kept, b)
		}
	}
	return &ButtonGroup{
		buttons:   kept,
		direction: DirectionHorizontal,
		gap:       DefaultGap,
		keys:      DefaultGroupKeyMap(),
	}
}

// WithDirection sets the layout axis.
func (g *ButtonGroup) WithDirection(d Direction) *ButtonGroup {
	g.direction = d
	return g
}

// WithGap sets the spacing between buttons. Negative gaps are treated as zero.
func (g *ButtonGroup) WithGap(gap int) *ButtonGroup {
	if gap < 0 {
		gap = 0
	}
	g.gap = gap
	return g
}

// WithFullWidth makes the group span the available width.
func (g *ButtonGroup) WithFullWidth(full bool) *ButtonGroup {
	g.fullWidth = full
	return g
}

// Buttons returns the grouped buttons.
func (g *ButtonGroup) Buttons() []*Button {
	return g.buttons
}

// Focus activates keyboard handling and highlights the current button.
func (g *ButtonGroup) Focus() {
	g.active = true
	g.sync()
}

// Blur drops the highlight.
func (g *ButtonGroup) Blur() {
	g.active = false
	g.sync()
}

// Focused returns the index of the highlighted button.
func (g *ButtonGroup) Focused() int {
	return g.focus
}

// Update moves the highlight and presses the highlighted button on Enter.
func (g *ButtonGroup) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !g.active || len(g.buttons) == 0 {
		return nil
	}

	switch {
	case key.Matches(keyMsg, g.keys.Next):
		g.focus = (g.focus + 1) % len(g.buttons)
	case key.Matches(keyMsg, g.keys.Prev):
		g.focus = (g.focus - 1 + len(g.buttons)) % len(g.buttons)
	case key.Matches(keyMsg, g.keys.Press):
		g.buttons[g.focus].Press()
	}
	g.sync()
	return nil
}

func (g *ButtonGroup) sync() {
	for i, b := range g.buttons {
		b.SetFocused(g.active && i == g.focus)
	}
}

// View renders the group with the default context.
func (g *ButtonGroup) View() string {
	return g.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the group. In a full width horizontal group the
// width is split evenly between stretching buttons.
func (g *ButtonGroup) ViewWithContext(ctx RenderContext) string {
	if len(g.buttons) == 0 {
		return ""
	}

	childCtx := ctx
	if g.direction == DirectionHorizontal && g.fullWidth && ctx.Width > 0 {
		available := ctx.Width - g.gap*(len(g.buttons)-1)
		if available > 0 {
			childCtx = ctx.WithWidth(available / len(g.buttons))
		}
	}

	views := make([]string, 0, len(g.buttons))
	for _, b := range g.buttons {
		views = append(views, b.ViewWithContext(childCtx))
	}

	if g.direction == DirectionVertical {
		return joinVertical(g.gap, views)
	}
	return joinHorizontal(g.gap, views)
}
