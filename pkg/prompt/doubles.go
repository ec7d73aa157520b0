// SPDX-License-Identifier: MPL-2.0

package prompt

import (
	"io"
	"strings"
)

// Interrupt, when queued as a Script line, simulates a keyboard interrupt
// at that point in the input.
const Interrupt = "\x03"

// All type declarations consolidated in a single block.
type (
	// Script is a LineReader that replays a fixed sequence of input lines.
	// Pass it to a Prompt with WithLineReader to drive interactive code
	// from a test. A line equal to Interrupt raises ErrInterrupt; running
	// past the end returns io.EOF.
	Script struct {
		lines []string
	}

	// Recorder is an io.Writer that stores everything written to it.
	// Pass it to a Prompt with WithOutput to capture rendered output.
	Recorder struct {
		writes []string
	}
)

// NewScript creates a Script that will return the given lines in order.
func NewScript(lines ...string) *Script {
	return &Script{lines: lines}
}

// ReadLine implements LineReader.
func (s *Script) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	if line == Interrupt {
		return "", ErrInterrupt
	}
	return line, nil
}

// Write implements io.Writer.
func (r *Recorder) Write(p []byte) (int, error) {
	r.writes = append(r.writes, string(p))
	return len(p), nil
}

// Writes returns each individual write call's content, in order.
func (r *Recorder) Writes() []string {
	return r.writes
}

// String returns everything written so far as one string.
func (r *Recorder) String() string {
	return strings.Join(r.writes, "")
}

// Lines returns the captured output split into lines, without a trailing
// empty entry for a final newline.
func (r *Recorder) Lines() []string {
	joined := strings.TrimSuffix(r.String(), "\n")
	if joined == "" {
		return nil
	}
	return strings.Split(joined, "\n")
}
