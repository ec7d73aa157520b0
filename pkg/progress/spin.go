// SPDX-License-Identifier: MPL-2.0

package progress

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bspinner "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// SpinnerLine is a simple line spinner.
	SpinnerLine SpinnerType = iota
	// SpinnerDot is a dot spinner.
	SpinnerDot
	// SpinnerMiniDot is a mini dot spinner.
	SpinnerMiniDot
	// SpinnerJump is a jumping spinner.
	SpinnerJump
	// SpinnerPulse is a pulsing spinner.
	SpinnerPulse
	// SpinnerPoints is a points spinner.
	SpinnerPoints
	// SpinnerGlobe is a globe spinner.
	SpinnerGlobe
	// SpinnerMoon is a moon phases spinner.
	SpinnerMoon
	// SpinnerMonkey is a monkey spinner.
	SpinnerMonkey
	// SpinnerMeter is a meter spinner.
	SpinnerMeter
	// SpinnerHamburger is a hamburger spinner.
	SpinnerHamburger
	// SpinnerEllipsis is an ellipsis spinner.
	SpinnerEllipsis
)

// ErrInvalidSpinnerType is the sentinel error wrapped by InvalidSpinnerTypeError.
var ErrInvalidSpinnerType = errors.New("invalid spinner type")

// All type declarations consolidated in a single block.
type (
	// SpinnerType represents the type of spinner animation.
	SpinnerType int

	// InvalidSpinnerTypeError is returned when a SpinnerType value is not
	// one of the defined spinner types.
	InvalidSpinnerTypeError struct {
		Value SpinnerType
	}

	// SpinOptions configures SpinAction and SpinWithContext.
	SpinOptions struct {
		// Title is the text displayed next to the spinner.
		Title string
		// Type specifies the spinner animation type.
		Type SpinnerType
		// Style colors the spinner frame.
		Style lipgloss.Style
	}

	// spinActionModel displays a spinner while waiting for a completion signal.
	spinActionModel struct {
		title   string
		spinner bspinner.Model
		doneCh  <-chan struct{}
	}

	// spinDoneMsg is sent when the action completes.
	spinDoneMsg struct{}
)

// Error implements the error interface.
func (e *InvalidSpinnerTypeError) Error() string {
	return fmt.Sprintf("invalid spinner type %d (valid: %s)",
		e.Value, strings.Join(SpinnerTypeNames(), ", "))
}

// Unwrap returns ErrInvalidSpinnerType so callers can use errors.Is for programmatic detection.
func (e *InvalidSpinnerTypeError) Unwrap() error { return ErrInvalidSpinnerType }

// Validate returns nil if the SpinnerType is one of the defined spinner types,
// or a validation error if it is not.
func (t SpinnerType) Validate() error {
	switch t {
	case SpinnerLine, SpinnerDot, SpinnerMiniDot, SpinnerJump,
		SpinnerPulse, SpinnerPoints, SpinnerGlobe, SpinnerMoon,
		SpinnerMonkey, SpinnerMeter, SpinnerHamburger, SpinnerEllipsis:
		return nil
	default:
		return &InvalidSpinnerTypeError{Value: t}
	}
}

// String returns the name of the SpinnerType (e.g., "line", "dot").
// Unknown values return "unknown(<N>)" for diagnostic safety.
func (t SpinnerType) String() string {
	names := SpinnerTypeNames()
	if int(t) >= 0 && int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("unknown(%d)", t)
}

// ParseSpinnerType parses a string into a SpinnerType.
// Returns an error if the string does not match any known spinner type name.
func ParseSpinnerType(s string) (SpinnerType, error) {
	for i, name := range SpinnerTypeNames() {
		if s == name {
			return SpinnerType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown spinner type %q (valid: %s)", s, strings.Join(SpinnerTypeNames(), ", "))
}

// SpinnerTypeNames returns the list of available spinner type names.
func SpinnerTypeNames() []string {
	return []string{
		"line", "dot", "minidot", "jump", "pulse", "points",
		"globe", "moon", "monkey", "meter", "hamburger", "ellipsis",
	}
}

// Model converts the SpinnerType to the matching bubbles spinner.
func (t SpinnerType) Model() bspinner.Spinner {
	switch t {
	case SpinnerDot:
		return bspinner.Dot
	case SpinnerMiniDot:
		return bspinner.MiniDot
	case SpinnerJump:
		return bspinner.Jump
	case SpinnerPulse:
		return bspinner.Pulse
	case SpinnerPoints:
		return bspinner.Points
	case SpinnerGlobe:
		return bspinner.Globe
	case SpinnerMoon:
		return bspinner.Moon
	case SpinnerMonkey:
		return bspinner.Monkey
	case SpinnerMeter:
		return bspinner.Meter
	case SpinnerHamburger:
		return bspinner.Hamburger
	case SpinnerEllipsis:
		return bspinner.Ellipsis
	default:
		return bspinner.Line
	}
}

// SpinAction displays a spinner while running an action function.
// The spinner stops when the action completes.
func SpinAction(opts SpinOptions, action func()) error {
	doneCh := make(chan struct{})
	go func() {
		action()
		close(doneCh)
	}()

	return runActionSpinner(opts, doneCh)
}

// SpinWithContext displays a spinner until the context is cancelled.
func SpinWithContext(ctx context.Context, opts SpinOptions) error {
	doneCh := make(chan struct{})
	go func() {
		<-ctx.Done()
		close(doneCh)
	}()

	return runActionSpinner(opts, doneCh)
}

// Init implements tea.Model.
func (m spinActionModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForSpinDone(m.doneCh),
	)
}

// Update implements tea.Model.
func (m spinActionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bspinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case spinDoneMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m spinActionModel) View() string {
	content := m.spinner.View()
	if m.title != "" {
		content += " " + m.title
	}
	return content
}

// runActionSpinner displays a spinner until doneCh is closed.
func runActionSpinner(opts SpinOptions, doneCh <-chan struct{}) error {
	model := spinActionModel{
		title: opts.Title,
		spinner: bspinner.New(
			bspinner.WithSpinner(opts.Type.Model()),
			bspinner.WithStyle(opts.Style),
		),
		doneCh: doneCh,
	}

	program := tea.NewProgram(model)
	_, err := program.Run()
	return err
}

// waitForSpinDone waits for completion and returns a done message.
func waitForSpinDone(doneCh <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-doneCh
		return spinDoneMsg{}
	}
}
