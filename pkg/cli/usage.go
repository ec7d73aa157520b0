// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"conch/pkg/prompt"
)

const usageStep = 2

// printSectionUsage prints the direct children of a section: its
// subsections and commands sorted by name, with aligned and wrapped
// descriptions. It does not recurse.
func (c *Cli) printSectionUsage(section *Section) {
	launch := filepath.Base(os.Args[0])
	if section.Name != "" {
		c.prompt.Writef("Usage: %s %s [SUB_SECTION, ..] COMMAND", launch, section.Name)
		c.prompt.Writef("Description: %s", section.Description)
	} else {
		c.prompt.Writef("Usage: %s [SECTION, ..] COMMAND", launch)
	}
	c.prompt.Write("")

	sections := section.Sections()
	commands := section.Commands()

	if len(sections) > 0 {
		c.prompt.Write("Available Sections:")
		width := 0
		for _, sub := range sections {
			width = max(width, len(sub.Name))
		}
		for _, sub := range sections {
			c.writeAligned(sub.Name, sub.Description, width, usageStep)
		}
	}

	if len(sections) > 0 && len(commands) > 0 {
		c.prompt.Write("")
	}

	if len(commands) > 0 {
		c.prompt.Write("Available Commands:")
		width := 0
		for _, command := range commands {
			width = max(width, len(command.Name))
		}
		for _, command := range commands {
			c.writeAligned(command.Name, command.Description, width, usageStep)
		}
	}
}

// printCommandUsage prints the details of a command, including all options
// that can be specified to it, followed by any missing or unrecognized
// argument callouts.
func (c *Cli) printCommandUsage(command *Command, usage *UsageError) {
	c.prompt.Writef("Command: %s", command.Name)
	c.prompt.Writef("Description: %s", command.Description)
	if command.UsageDescription != "" {
		c.prompt.Writef("Usage: %s", command.UsageDescription)
	}

	if len(command.options) > 0 || len(command.groups) > 0 {
		c.prompt.Write("")
		c.prompt.Write("Available Arguments:")
		c.prompt.Write("")
	}

	if len(command.options) > 0 {
		c.printOptionList(command.options)
	}
	if len(command.options) > 0 && len(command.groups) > 0 {
		c.prompt.Write("")
	}

	for _, group := range command.groups {
		c.prompt.Write(group.Name)
		if group.Description != "" {
			indented := strings.Repeat(" ", usageStep) + group.Description
			c.prompt.Write(c.prompt.Wrap(indented, c.wrapWidth(), usageStep), prompt.SkipWrap())
			c.prompt.Write("")
		}
		c.printOptionList(group.options)
		c.prompt.Write("")
	}

	if usage == nil {
		return
	}
	if len(usage.Missing) > 0 {
		c.prompt.Write("")
		c.prompt.Write("The following options are required but were not specified:")
		for _, name := range usage.Missing {
			c.prompt.Write(strings.Repeat(" ", usageStep) + name)
		}
	}
	if len(usage.Unexpected) > 0 {
		c.prompt.Write("")
		c.prompt.Write("The following arguments are not recognized by this command:")
		for _, name := range usage.Unexpected {
			c.prompt.Write(strings.Repeat(" ", usageStep) + name)
		}
	}
}

// printOptionList prints a set of options with their triggers aligned and
// descriptions wrapped to the trigger column.
func (c *Cli) printOptionList(options []*Option) {
	width := 0
	for _, option := range options {
		width = max(width, len(assembleTriggers(option)))
	}
	for _, option := range options {
		description := option.Description
		if option.Required {
			description = "(required) " + description
		}
		c.writeAligned(assembleTriggers(option), description, width, usageStep)
	}
}

// writeAligned writes "name - description" with the name left-padded by
// step and right-padded to width, wrapping the description onto the name
// column.
func (c *Cli) writeAligned(name, description string, width, step int) {
	indent := step + width + 3
	line := fmt.Sprintf("%s%-*s - %s", strings.Repeat(" ", step), width, name, description)
	c.prompt.Write(c.prompt.Wrap(line, c.wrapWidth(), indent), prompt.SkipWrap())
}

// wrapWidth is the width usage output wraps at: the prompt's own wrap
// width, so prompts that do not wrap produce single line usage entries.
func (c *Cli) wrapWidth() int {
	return c.prompt.WrapWidth()
}

func assembleTriggers(option *Option) string {
	return strings.Join(option.Triggers(), ", ")
}
