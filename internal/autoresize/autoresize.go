// Package autoresize computes the rendered height of a growing text area.
package autoresize

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
)

// Defaults used by pixel based renderers.
const (
	DefaultLineHeight      = 20
	DefaultVerticalPadding = 16
)

// Policy bounds the height of an auto-resizing text area.
type Policy struct {
	MinRows         int `yaml:"min" validate:"min=1"`
	MaxRows         int `yaml:"max" validate:"min=1,gtefield=MinRows"`
	LineHeight      int `yaml:"-"`
	VerticalPadding int `yaml:"-"`
}

// NewPolicy returns a policy with the default line height and padding.
func NewPolicy(minRows, maxRows int) Policy {
	return Policy{
		MinRows:         minRows,
		MaxRows:         maxRows,
		LineHeight:      DefaultLineHeight,
		VerticalPadding: DefaultVerticalPadding,
	}.Normalize()
}

// TerminalPolicy measures in terminal rows: one row per line and no padding.
func TerminalPolicy(minRows, maxRows int) Policy {
	return Policy{MinRows: minRows, MaxRows: maxRows, LineHeight: 1}.Normalize()
}

// Normalize fills a zero line height and raises MaxRows to MinRows when the
// bounds are inverted.
func (p Policy) Normalize() Policy {
	if p.LineHeight <= 0 {
		p.LineHeight = DefaultLineHeight
	}
	if p.VerticalPadding < 0 {
		p.VerticalPadding = 0
	}
	if p.MinRows < 0 {
		p.MinRows = 0
	}
	if p.MaxRows < p.MinRows {
		p.MaxRows = p.MinRows
	}
	return p
}

// Validate reports inverted or negative bounds.
func (p Policy) Validate() error {
	if p.MinRows < 0 {
		return fmt.Errorf("min rows %d is negative", p.MinRows)
	}
	if p.MaxRows < p.MinRows {
		return fmt.Errorf("max rows %d is below min rows %d", p.MaxRows, p.MinRows)
	}
	return nil
}

// MinHeight is the smallest height the policy produces.
func (p Policy) MinHeight() int {
	return p.MinRows*p.LineHeight + p.VerticalPadding
}

// MaxHeight is the largest height the policy produces.
func (p Policy) MaxHeight() int {
	return p.MaxRows*p.LineHeight + p.VerticalPadding
}

// Resize clamps a measured content height into the policy bounds. The
// measurement must come from the full current content, not from a
// previously forced height, or the area never shrinks.
func (p Policy) Resize(measured int) int {
	lo, hi := p.MinHeight(), p.MaxHeight()
	if hi < lo {
		hi = lo
	}
	switch {
	case measured < lo:
		return lo
	case measured > hi:
		return hi
	default:
		return measured
	}
}

// Resize applies NewPolicy(minRows, maxRows) with an explicit line height
// and padding.
func Resize(measured, minRows, maxRows, lineHeight, verticalPadding int) int {
	return Policy{
		MinRows:         minRows,
		MaxRows:         maxRows,
		LineHeight:      lineHeight,
		VerticalPadding: verticalPadding,
	}.Normalize().Resize(measured)
}

// MeasureRows counts the rows content occupies in a text area of the given
// width. The widget keeps a trailing cell free for the cursor, so words wrap
// at width-1 and a word that fills whole rows takes one more. Empty content
// occupies one row.
func MeasureRows(content string, width int) int {
	if content == "" {
		return 1
	}
	if width <= 0 {
		return strings.Count(content, "\n") + 1
	}
	limit := width - 1
	if limit < 1 {
		limit = 1
	}
	rows := 0
	for _, line := range strings.Split(wordwrap.String(content, limit), "\n") {
		// wordwrap leaves words longer than the limit intact.
		if n := ansi.PrintableRuneWidth(line); n > limit {
			rows += n/width + 1
			continue
		}
		rows++
	}
	return rows
}
