// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"conch/pkg/prompt"
)

// All type declarations consolidated in a single block.
type (
	mapConfig struct {
		step         int
		showOptions  bool
		sectionStyle *lipgloss.Style
		commandStyle *lipgloss.Style
	}

	// MapOption configures PrintMap.
	MapOption func(*mapConfig)
)

// WithMapStep sets the indent increment per tree level.
func WithMapStep(step int) MapOption {
	return func(c *mapConfig) { c.step = step }
}

// WithMapOptions includes each command's options in the map.
func WithMapOptions() MapOption {
	return func(c *mapConfig) { c.showOptions = true }
}

// WithMapStyles highlights section and command names with the given
// styles.
func WithMapStyles(section, command lipgloss.Style) MapOption {
	return func(c *mapConfig) { c.sectionStyle, c.commandStyle = &section, &command }
}

// PrintMap prints the structure of the CLI in a tree-like layout to
// indicate section ownership.
func (c *Cli) PrintMap(opts ...MapOption) {
	cfg := mapConfig{step: 2}
	for _, opt := range opts {
		opt(&cfg)
	}
	c.printMapSection(c.root, -cfg.step, cfg)
}

func (c *Cli) printMapSection(section *Section, indent int, cfg mapConfig) {
	// The root section is not a real user section; skip its own line.
	if section.Name != "" {
		name := section.Name
		if cfg.sectionStyle != nil {
			name = c.prompt.Color(name, *cfg.sectionStyle)
		}
		description := c.prompt.Wrap(section.Description, c.wrapWidth(), indent+len(section.Name)+2)
		c.prompt.Write(strings.Repeat(" ", max(indent, 0))+name+": "+description, prompt.SkipWrap())
	}

	commands := section.Commands()
	if len(commands) > 0 {
		width := 0
		for _, command := range commands {
			width = max(width, len(command.Name)+1)
		}
		for _, command := range commands {
			name := command.Name + ":"
			pad := strings.Repeat(" ", width-len(name))
			if cfg.commandStyle != nil {
				name = c.prompt.Color(name, *cfg.commandStyle)
			}
			c.prompt.Write(strings.Repeat(" ", indent+cfg.step) + name + pad + " " + command.Description)

			if cfg.showOptions {
				for _, option := range command.AllOptions() {
					name := option.Name
					if cfg.commandStyle != nil {
						name = c.prompt.Color(name, *cfg.commandStyle)
					}
					c.prompt.Writef("%s%s: %s", strings.Repeat(" ", indent+2*cfg.step), name, option.Description)
				}
			}
		}
	}

	for _, subsection := range section.Sections() {
		c.printMapSection(subsection, indent+cfg.step, cfg)
	}

	// A blank line between top level sections only; deeper nesting reads
	// better without them.
	if indent <= 0 {
		c.prompt.Write("")
	}
}
