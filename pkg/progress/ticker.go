// SPDX-License-Identifier: MPL-2.0

package progress

import (
	"time"
)

// All type declarations consolidated in a single block.
type (
	// TickerSpinner drives a Spinner from its own goroutine at a fixed
	// refresh interval. Start and Stop must be called from the same
	// goroutine; the spinner's prompt must not be written to between them.
	TickerSpinner struct {
		spinner  *Spinner
		interval time.Duration
		timeout  time.Duration

		message string
		done    chan struct{}
		exited  chan struct{}
	}

	// TickerOption configures a TickerSpinner.
	TickerOption func(*TickerSpinner)
)

// WithInterval sets the refresh interval. The default is 100ms.
func WithInterval(interval time.Duration) TickerOption {
	return func(t *TickerSpinner) { t.interval = interval }
}

// WithTimeout stops the spinner on its own after the given duration, as a
// guard against a caller that never calls Stop. Zero means no timeout.
func WithTimeout(timeout time.Duration) TickerOption {
	return func(t *TickerSpinner) { t.timeout = timeout }
}

// NewTickerSpinner wraps an existing spinner with a self-driving render
// loop.
func NewTickerSpinner(s *Spinner, opts ...TickerOption) *TickerSpinner {
	t := &TickerSpinner{
		spinner:  s,
		interval: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins rendering in the background until Stop is called. Calling
// Start on a running spinner is a no-op.
func (t *TickerSpinner) Start(message string) {
	if t.done != nil {
		return
	}

	t.message = message
	t.done = make(chan struct{})
	t.exited = make(chan struct{})

	go t.loop(t.done, t.exited)
}

// Stop halts the render loop and waits for it to exit. When clear is true
// the spinner's last render is removed from the screen.
func (t *TickerSpinner) Stop(clear bool) {
	if t.done == nil {
		return
	}

	close(t.done)
	<-t.exited
	t.done, t.exited = nil, nil

	if clear {
		t.spinner.Clear()
	}
}

func (t *TickerSpinner) loop(done <-chan struct{}, exited chan<- struct{}) {
	defer close(exited)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	var deadline <-chan time.Time
	if t.timeout > 0 {
		timer := time.NewTimer(t.timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	t.spinner.Next(t.message)
	for {
		select {
		case <-done:
			return
		case <-deadline:
			return
		case <-ticker.C:
			t.spinner.Next(t.message)
		}
	}
}
