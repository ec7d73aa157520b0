// SPDX-License-Identifier: MPL-2.0

package progress

import (
	"strings"
	"testing"

	bspinner "github.com/charmbracelet/bubbles/spinner"

	"conch/pkg/prompt"
)

func newTestSpinner(t *testing.T, opts ...SpinnerOption) (*Spinner, *prompt.Recorder) {
	t.Helper()
	rec := &prompt.Recorder{}
	p := prompt.New(prompt.WithOutput(rec), prompt.WithColor(false))
	return NewSpinner(p, opts...), rec
}

func TestSpinnerNextCyclesFrames(t *testing.T) {
	t.Parallel()

	s, rec := newTestSpinner(t)

	for range 5 {
		s.Next("")
	}

	got := rec.String()
	for _, frame := range []string{"-\n", "\\\n", "|\n", "/\n"} {
		if !strings.Contains(got, frame) {
			t.Fatalf("frame %q missing from %q", frame, got)
		}
	}
	// The fifth call wraps back to the first frame.
	if strings.Count(got, "-\n") != 2 {
		t.Fatalf("sequence did not wrap: %q", got)
	}
}

func TestSpinnerRedrawBacktracks(t *testing.T) {
	t.Parallel()

	s, rec := newTestSpinner(t)

	s.Next("")
	s.Next("")

	if !strings.Contains(rec.String(), "\033[1A\033[J") {
		t.Fatalf("second render did not backtrack: %q", rec.String())
	}
}

func TestSpinnerMessage(t *testing.T) {
	t.Parallel()

	s, rec := newTestSpinner(t, WithSpinnerTicks("[", "]"))

	s.Next("working")

	want := "[-] working\n"
	if got := rec.String(); got != want {
		t.Fatalf("rendered %q, want %q", got, want)
	}
}

func TestSpinnerFinishUsesLastFrame(t *testing.T) {
	t.Parallel()

	s, rec := newTestSpinner(t)

	s.Finish("done")

	want := "/ done\n"
	if got := rec.String(); got != want {
		t.Fatalf("rendered %q, want %q", got, want)
	}
}

func TestSpinnerClear(t *testing.T) {
	t.Parallel()

	s, rec := newTestSpinner(t)

	s.Next("")
	s.Clear()
	s.Clear()

	got := rec.String()
	if !strings.HasSuffix(got, "\033[1A\033[J") {
		t.Fatalf("expected a trailing clear, got %q", got)
	}
	if strings.Count(got, "\033[J") != 1 {
		t.Fatalf("clear ran twice: %q", got)
	}
}

func TestSpinnerModelFrames(t *testing.T) {
	t.Parallel()

	s, rec := newTestSpinner(t, WithSpinnerModel(bspinner.Line))

	s.Next("")

	want := bspinner.Line.Frames[0] + "\n"
	if got := rec.String(); got != want {
		t.Fatalf("rendered %q, want %q", got, want)
	}
}
