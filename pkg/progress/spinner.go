// SPDX-License-Identifier: MPL-2.0

package progress

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"conch/pkg/prompt"
)

// All type declarations consolidated in a single block.
type (
	// Spinner renders a frame sequence in place, one frame per Next call.
	// The caller drives it; see TickerSpinner for a self-driving variant.
	Spinner struct {
		prompt *prompt.Prompt

		frames          []string
		leftTick        string
		rightTick       string
		inProgressStyle *lipgloss.Style
		completedStyle  *lipgloss.Style
		renderTag       string

		index         int
		previousLines int
	}

	// SpinnerOption configures a Spinner.
	SpinnerOption func(*Spinner)
)

// WithFrames replaces the default `- \ | /` frame sequence.
func WithFrames(frames ...string) SpinnerOption {
	return func(s *Spinner) { s.frames = frames }
}

// WithSpinnerModel takes the frame sequence from one of the named bubbles
// spinners, e.g. spinner.Dot or spinner.MiniDot.
func WithSpinnerModel(model spinner.Spinner) SpinnerOption {
	return func(s *Spinner) { s.frames = model.Frames }
}

// WithSpinnerTicks sets the strings displayed on either side of the frame.
func WithSpinnerTicks(left, right string) SpinnerOption {
	return func(s *Spinner) { s.leftTick, s.rightTick = left, right }
}

// WithSpinnerStyles sets the styles used while spinning and for the final
// Finish render.
func WithSpinnerStyles(inProgress, completed lipgloss.Style) SpinnerOption {
	return func(s *Spinner) { s.inProgressStyle, s.completedStyle = &inProgress, &completed }
}

// WithSpinnerTag attaches a tag to every spinner render.
func WithSpinnerTag(tag string) SpinnerOption {
	return func(s *Spinner) { s.renderTag = tag }
}

// NewSpinner creates a spinner that renders through the given prompt.
func NewSpinner(p *prompt.Prompt, opts ...SpinnerOption) *Spinner {
	s := &Spinner{
		prompt: p,
		frames: []string{"-", "\\", "|", "/"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next redraws the spinner with the next frame in the sequence. A non-empty
// message is displayed next to the frame.
func (s *Spinner) Next(message string) {
	frame := s.frames[s.index]
	s.index = (s.index + 1) % len(s.frames)
	s.render(frame, message, s.inProgressStyle)
}

// Finish redraws the spinner with the last frame of the sequence in the
// completed style. The render is left on screen; call Clear to remove it.
func (s *Spinner) Finish(message string) {
	style := s.completedStyle
	if style == nil {
		style = s.inProgressStyle
	}
	s.render(s.frames[len(s.frames)-1], message, style)
}

// Clear removes the spinner's last render from the screen.
func (s *Spinner) Clear() {
	if s.previousLines > 0 {
		s.prompt.MoveUp(s.previousLines)
		s.prompt.ClearRemainder()
		s.previousLines = 0
	}
}

func (s *Spinner) render(frame, message string, style *lipgloss.Style) {
	s.Clear()

	line := s.leftTick + frame + s.rightTick
	if message != "" {
		line += " " + message
	}

	writeOpts := []prompt.WriteOption{prompt.SkipWrap()}
	if style != nil {
		writeOpts = append(writeOpts, prompt.Styled(*style))
	}
	if s.renderTag != "" {
		writeOpts = append(writeOpts, prompt.WriteTag(s.renderTag))
	}
	s.prompt.Write(line, writeOpts...)

	s.previousLines = strings.Count(line, "\n") + 1
}
