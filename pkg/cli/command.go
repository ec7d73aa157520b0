// SPDX-License-Identifier: MPL-2.0

package cli

// All type declarations consolidated in a single block.
type (
	// Handler is the function invoked when a command is executed. It
	// receives the parsed arguments; returning nil reports success,
	// returning an error created with Exit sets the process exit code.
	Handler func(args *Arguments) error

	// Command is something that can be executed by the CLI; commands are
	// the leaves of the CLI tree. Each command is tied to a handler and
	// invokes it with whatever arguments follow it on the command line.
	Command struct {
		Name        string
		Description string

		// UsageDescription is extra text only displayed when viewing the
		// full usage of the command.
		UsageDescription string

		// Parser overrides the default option-driven argument parser when
		// set, e.g. with an UntypedParser or PassThroughParser.
		Parser Parser

		handler Handler
		options []*Option
		groups  []*OptionGroup
	}
)

// NewCommand creates a command that invokes handler when run.
func NewCommand(name, description string, handler Handler) *Command {
	return &Command{Name: name, Description: description, handler: handler}
}

// AddOption adds an option that can be specified when executing this
// command. The option's name and aliases must not collide with those of
// any option already on the command, and must follow the -s or --name
// argument format.
func (c *Command) AddOption(option *Option) error {
	for _, trigger := range option.Triggers() {
		if !validName(trigger) {
			return &InvalidStructureError{Name: trigger, Reason: "malformed option trigger"}
		}
		if c.findOption(trigger) != nil {
			return &InvalidStructureError{Name: trigger, Reason: "duplicate option trigger"}
		}
	}
	c.options = append(c.options, option)
	return nil
}

// AddOptionGroup adds an option group to the command. Groups are rendered
// in the order they are added; their options obey the same trigger
// uniqueness rule as directly added ones.
func (c *Command) AddOptionGroup(group *OptionGroup) error {
	seen := map[string]bool{}
	for _, option := range group.options {
		for _, trigger := range option.Triggers() {
			if !validName(trigger) {
				return &InvalidStructureError{Name: trigger, Reason: "malformed option trigger"}
			}
			if c.findOption(trigger) != nil || seen[trigger] {
				return &InvalidStructureError{Name: trigger, Reason: "duplicate option trigger"}
			}
			seen[trigger] = true
		}
	}
	c.groups = append(c.groups, group)
	return nil
}

// CreateOption creates a required option on this command and returns it
// for further editing.
func (c *Command) CreateOption(name, description string) (*Option, error) {
	option := NewOption(name, description)
	if err := c.AddOption(option); err != nil {
		return nil, err
	}
	return option, nil
}

// CreateFlag creates a flag on this command and returns it for further
// editing.
func (c *Command) CreateFlag(name, description string) (*Option, error) {
	flag := NewFlag(name, description)
	if err := c.AddOption(flag); err != nil {
		return nil, err
	}
	return flag, nil
}

// Options returns the directly added options in the order they were added.
func (c *Command) Options() []*Option {
	return c.options
}

// OptionGroups returns the option groups in the order they were added.
func (c *Command) OptionGroups() []*OptionGroup {
	return c.groups
}

// AllOptions returns every option on the command, both directly added and
// in a group.
func (c *Command) AllOptions() []*Option {
	all := make([]*Option, 0, len(c.options))
	all = append(all, c.options...)
	for _, g := range c.groups {
		all = append(all, g.options...)
	}
	return all
}

// findOption returns the option with the given trigger among all options
// on the command, or nil.
func (c *Command) findOption(trigger string) *Option {
	for _, option := range c.AllOptions() {
		for _, t := range option.Triggers() {
			if t == trigger {
				return option
			}
		}
	}
	return nil
}
