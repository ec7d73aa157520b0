// SPDX-License-Identifier: MPL-2.0

// Package progress contains render-on-demand progress indicators. Each
// widget writes through a Prompt; the caller owns the iteration and calls
// into the widget to display the current state.
package progress

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"conch/pkg/prompt"
)

// All type declarations consolidated in a single block.
type (
	// Bar is a textual progress bar. Repeated Render calls redraw the bar
	// in place by backtracking over the previously written lines.
	Bar struct {
		prompt *prompt.Prompt

		width           int
		showPercentage  bool
		fill            string
		leftTick        string
		rightTick       string
		inProgressStyle *lipgloss.Style
		completedStyle  *lipgloss.Style
		renderTag       string

		previousLines int
	}

	// BarOption configures a Bar.
	BarOption func(*Bar)
)

// WithBarWidth sets the total bar width in characters, ticks included and
// trailing percentage excluded.
func WithBarWidth(width int) BarOption {
	return func(b *Bar) { b.width = width }
}

// WithFill sets the character used for the filled portion of the bar. It
// must render one cell wide or the fill math breaks.
func WithFill(fill string) BarOption {
	return func(b *Bar) { b.fill = fill }
}

// WithBarTicks sets the strings displayed on either side of the bar.
func WithBarTicks(left, right string) BarOption {
	return func(b *Bar) { b.leftTick, b.rightTick = left, right }
}

// WithoutPercentage hides the trailing percentage.
func WithoutPercentage() BarOption {
	return func(b *Bar) { b.showPercentage = false }
}

// WithBarStyles sets the styles used while the bar is filling and once it
// is complete. The in-progress style also covers completion when no
// completed style is given.
func WithBarStyles(inProgress, completed lipgloss.Style) BarOption {
	return func(b *Bar) { b.inProgressStyle, b.completedStyle = &inProgress, &completed }
}

// WithBarTag attaches a tag to every bar render, for prompts recording tags.
func WithBarTag(tag string) BarOption {
	return func(b *Bar) { b.renderTag = tag }
}

// NewBar creates a progress bar that renders through the given prompt.
func NewBar(p *prompt.Prompt, opts ...BarOption) *Bar {
	b := &Bar{
		prompt:         p,
		width:          40,
		showPercentage: true,
		fill:           "=",
		leftTick:       "[",
		rightTick:      "]",
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Render draws the bar filled to step/total. A non-empty message is
// displayed below the bar and replaced on the next call.
func (b *Bar) Render(step, total int, message string) {
	b.Clear()

	fillWidth := b.width - len(b.leftTick) - len(b.rightTick)
	percentage := 1.0
	if total > 0 {
		percentage = float64(step) / float64(total)
	}
	// Out-of-range steps pin the fill to the bar bounds; the trailing
	// percentage still reports the raw ratio.
	fillCount := min(max(int(math.Floor(percentage*float64(fillWidth))), 0), fillWidth)

	line := b.leftTick +
		strings.Repeat(b.fill, fillCount) +
		strings.Repeat(" ", fillWidth-fillCount) +
		b.rightTick
	if b.showPercentage {
		line += fmt.Sprintf(" %d%%", int(percentage*100))
	}

	// The bar line itself never wraps; the caller sizes the bar against
	// the desired width.
	writeOpts := []prompt.WriteOption{prompt.SkipWrap()}
	if style := b.styleFor(fillCount == fillWidth); style != nil {
		writeOpts = append(writeOpts, prompt.Styled(*style))
	}
	if b.renderTag != "" {
		writeOpts = append(writeOpts, prompt.WriteTag(b.renderTag))
	}
	b.prompt.Write(line, writeOpts...)

	b.previousLines = 1 + b.writeMessage(message)
}

// Clear removes the bar's last render from the screen. Call it when the
// task finishes, or before writing anything else to the prompt.
func (b *Bar) Clear() {
	if b.previousLines > 0 {
		b.prompt.MoveUp(b.previousLines)
		b.prompt.ClearRemainder()
		b.previousLines = 0
	}
}

func (b *Bar) styleFor(full bool) *lipgloss.Style {
	if full && b.completedStyle != nil {
		return b.completedStyle
	}
	return b.inProgressStyle
}

// writeMessage renders the message pre-wrapped so the line count is known
// for the next backtrack, and returns that count.
func (b *Bar) writeMessage(message string) int {
	if message == "" {
		return 0
	}

	count := 0
	for _, line := range strings.Split(message, "\n") {
		wrapped := b.prompt.Wrap(line, b.prompt.WrapWidth(), 0)
		count += strings.Count(wrapped, "\n") + 1
		b.prompt.Write(wrapped, prompt.SkipWrap())
	}
	return count
}

// Iterate drives the bar across items, calling visit for each and
// rendering after every step. The optional messageFn derives the per-step
// message from the item just visited.
func Iterate[T any](b *Bar, items []T, visit func(T), messageFn func(T) string) {
	for i, item := range items {
		visit(item)

		message := ""
		if messageFn != nil {
			message = messageFn(item)
		}
		b.Render(i+1, len(items), message)
	}
}
