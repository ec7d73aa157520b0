// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"strings"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// runBang executes the remainder of a !-prefixed input line through the sh
// interpreter, wiring its output to the prompt's stream. Failures are
// reported to the user and never end the shell loop.
func (s *Shell) runBang(command string) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		s.prompt.Writef("cannot parse command: %v", err)
		return
	}

	runner, err := interp.New(interp.StdIO(nil, s.prompt.Output(), s.prompt.Output()))
	if err != nil {
		s.prompt.Writef("cannot run command: %v", err)
		return
	}

	if err := runner.Run(context.Background(), file); err != nil {
		s.prompt.Writef("command failed: %v", err)
	}
}
