package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fieldkit/internal/autoresize"
	"github.com/alexisbeaulieu97/fieldkit/internal/field"
)

func lines(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "line"
	}
	return strings.Join(parts, "\n")
}

func TestTextAreaFixedRows(t *testing.T) {
	t.Parallel()

	o := &owner{}
	ta := NewTextArea("desc", field.Options{}, o.callbacks(), nil)
	assert.Equal(t, DefaultRows, ta.Height())

	ta.View(lines(10))
	assert.Equal(t, DefaultRows, ta.Height())

	ta.WithRows(6)
	assert.Equal(t, 6, ta.Height())
}

func TestTextAreaAutoResizeGrowsAndShrinks(t *testing.T) {
	t.Parallel()

	policy := autoresize.TerminalPolicy(3, 8)
	o := &owner{}
	ta := NewTextArea("content", field.Options{AutoResize: &policy}, o.callbacks(), nil)
	assert.Equal(t, 3, ta.Height())

	ta.View(lines(5))
	assert.Equal(t, 5, ta.Height())

	ta.View(lines(20))
	assert.Equal(t, 8, ta.Height())

	ta.View("")
	assert.Equal(t, 3, ta.Height())

	ds := ta.Display("")
	require.NotNil(t, ds.TargetHeight)
	assert.Equal(t, 3, *ds.TargetHeight)
}

func TestTextAreaAutoResizeWrapsLongLines(t *testing.T) {
	t.Parallel()

	policy := autoresize.TerminalPolicy(1, 10)
	o := &owner{}
	ta := NewTextArea("content", field.Options{AutoResize: &policy}, o.callbacks(), nil).WithWidth(12)

	// Inner width is 10 once the box padding is taken off.
	ta.View(strings.TrimSpace(strings.Repeat("word ", 6)))
	assert.Equal(t, 3, ta.Height())
}

func TestTextAreaAutoResizeKeepsCursorRowForFullLines(t *testing.T) {
	t.Parallel()

	policy := autoresize.TerminalPolicy(1, 20)
	o := &owner{}
	ta := NewTextArea("content", field.Options{AutoResize: &policy}, o.callbacks(), nil).WithWidth(12)
	ta.Focus(o.value)

	tests := []struct {
		content string
		height  int
	}{
		{content: strings.Repeat("a", 9), height: 1},
		{content: strings.Repeat("a", 10), height: 2},
		{content: strings.Repeat("a", 20), height: 3},
	}

	for _, tt := range tests {
		ta.View(tt.content)
		assert.Equal(t, tt.height, ta.Height(), "content of %d runes", len(tt.content))
		assert.Equal(t, ta.area.LineInfo().Height, ta.Height(), "content of %d runes", len(tt.content))
	}
}

func TestTextAreaTypingResizes(t *testing.T) {
	t.Parallel()

	policy := autoresize.TerminalPolicy(1, 4)
	o := &owner{}
	ta := NewTextArea("content", field.Options{AutoResize: &policy}, o.callbacks(), nil)
	ta.Focus(o.value)

	ta.Update(runes("a"), o.value)
	ta.Update(tea.KeyMsg{Type: tea.KeyEnter}, o.value)
	ta.Update(runes("b"), o.value)

	assert.Equal(t, "a\nb", o.value)
	assert.Equal(t, 2, ta.Height())
}

func TestTextAreaRejectsOverLimit(t *testing.T) {
	t.Parallel()

	o := &owner{value: strings.Repeat("x", 5)}
	ta := NewTextArea("d", field.Options{MaxLength: 5, ShowCounter: true}, o.callbacks(), nil)
	ta.Focus(o.value)
	ta.Update(runes("y"), o.value)

	assert.Equal(t, "xxxxx", o.value)
	assert.Equal(t, "xxxxx", ta.area.Value())
	assert.Contains(t, ta.View(o.value), "5/5")
}

func TestTextAreaClear(t *testing.T) {
	t.Parallel()

	o := &owner{value: "draft"}
	ta := NewTextArea("d", field.Options{Clearable: true}, o.callbacks(), nil)
	ta.Focus(o.value)
	ta.Update(tea.KeyMsg{Type: tea.KeyCtrlL}, o.value)

	assert.Empty(t, o.value)
	assert.Empty(t, ta.area.Value())
	assert.True(t, ta.Field().Focused())
}
