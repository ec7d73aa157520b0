// SPDX-License-Identifier: MPL-2.0

// Package cli implements a declarative command line dispatcher: a tree of
// sections ending in commands, resolved by recursive descent over the
// argument list, with option parsing and usage rendering on top of a
// prompt.
package cli

import (
	"errors"
	"strings"

	"conch/pkg/prompt"
)

// Cli is the root of the CLI tree. Assemble the hierarchy with the Add and
// Create calls, then hand the process arguments to Run.
type Cli struct {
	prompt *prompt.Prompt

	// Hidden section at the base of the command structure; it simplifies
	// the recursive calls.
	root *Section
}

// New creates an empty CLI that writes through the given prompt.
func New(p *prompt.Prompt) *Cli {
	return &Cli{prompt: p, root: NewSection("", "")}
}

// Root returns the hidden root section.
func (c *Cli) Root() *Section { return c.root }

// AddSection adds a top level section.
func (c *Cli) AddSection(section *Section) error { return c.root.AddSection(section) }

// AddCommand adds a top level command.
func (c *Cli) AddCommand(command *Command) error { return c.root.AddCommand(command) }

// CreateSection creates a top level section and returns it for further
// editing.
func (c *Cli) CreateSection(name, description string) (*Section, error) {
	return c.root.CreateSection(name, description)
}

// CreateCommand creates a top level command and returns it for further
// editing.
func (c *Cli) CreateCommand(name, description string, handler Handler) (*Command, error) {
	return c.root.CreateCommand(name, description, handler)
}

// FindSection returns the top level section with the given name, or nil.
func (c *Cli) FindSection(name string) *Section { return c.root.FindSection(name) }

// FindCommand returns the top level command with the given name, or nil.
func (c *Cli) FindCommand(name string) *Command { return c.root.FindCommand(name) }

// RemoveSection removes and returns the top level section with the given
// name, or nil.
func (c *Cli) RemoveSection(name string) *Section { return c.root.RemoveSection(name) }

// RemoveCommand removes and returns the top level command with the given
// name, or nil.
func (c *Cli) RemoveCommand(name string) *Command { return c.root.RemoveCommand(name) }

// Run resolves args to a command and executes it, returning a value
// suitable for use as the process exit code. When no command matches, the
// usage of the deepest section reached is printed and ExUsage returned.
func (c *Cli) Run(args []string) int {
	command, section, remaining := findClosestMatch(c.root, args)
	if command == nil {
		c.printSectionUsage(section)
		return ExUsage
	}
	return c.execute(command, remaining)
}

// execute parses the remaining arguments for the command and invokes its
// handler.
func (c *Cli) execute(command *Command, args []string) int {
	parser := command.Parser
	if parser == nil {
		parser = DefaultParser{}
	}

	parsed, err := parser.Parse(command, args)
	if err != nil {
		return c.reportParseFailure(command, err)
	}

	var missing []string
	for _, option := range command.AllOptions() {
		if option.Required && !parsed.Has(option.Keyword()) {
			missing = append(missing, option.Name)
		}
	}
	if len(missing) > 0 {
		c.printCommandUsage(command, &UsageError{Missing: missing})
		return ExUsage
	}

	err = command.handler(parsed)
	var exit *ExitError
	switch {
	case err == nil:
		return ExOk
	case errors.As(err, &exit):
		return exit.Code
	default:
		c.prompt.Write(err.Error())
		return 1
	}
}

// reportParseFailure maps a parser error to the matching output and exit
// code.
func (c *Cli) reportParseFailure(command *Command, err error) int {
	var usage *UsageError
	var validation *ValidationError
	switch {
	case errors.Is(err, ErrHelp):
		c.printCommandUsage(command, nil)
		return ExOk
	case errors.As(err, &usage):
		c.printCommandUsage(command, usage)
		return ExUsage
	case errors.As(err, &validation):
		c.prompt.Write(validation.Error())
		return ExDataErr
	default:
		c.prompt.Write(err.Error())
		return ExUsage
	}
}

// findClosestMatch searches the CLI structure for the command matching the
// path in args. At each level a command match wins over a section match,
// and descent stops when the next token is an option. When no command
// matches, the deepest section reached is returned along with the
// unconsumed arguments, the unmatched token included.
func findClosestMatch(section *Section, args []string) (*Command, *Section, []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return nil, section, args
	}

	if command := section.FindCommand(args[0]); command != nil {
		return command, section, args[1:]
	}

	if subsection := section.FindSection(args[0]); subsection != nil {
		return findClosestMatch(subsection, args[1:])
	}

	return nil, section, args
}
