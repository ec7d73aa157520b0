// SPDX-License-Identifier: MPL-2.0

package cli

import "strings"

// All type declarations consolidated in a single block.
type (
	// ValidateFunc checks a raw option value before it is accepted. For
	// allow-multiple options it is called once per value.
	ValidateFunc func(value string) error

	// ParseFunc converts a raw option value into its final form. For
	// allow-multiple options it is called once per value.
	ParseFunc func(value string) (any, error)

	// Option represents an input to a command, either optional or required.
	// The name must follow the command line argument format: -s for a single
	// character, --name otherwise. The leading hyphens are stripped off when
	// the value is handed to the command's handler.
	Option struct {
		Name          string
		Description   string
		Required      bool
		AllowMultiple bool
		Aliases       []string
		Default       any
		ValidateFunc  ValidateFunc
		ParseFunc     ParseFunc

		flag bool
	}

	// OptionGroup is used purely for usage display purposes; options and
	// flags added to a group are rendered in their own section. Their
	// behavior is unchanged and their names must still be unique across
	// the command.
	OptionGroup struct {
		Name        string
		Description string

		options []*Option
	}
)

// NewOption creates an option that accepts a value. Options default to
// required; edit the returned instance to change that or any other field
// except the name.
func NewOption(name, description string) *Option {
	return &Option{Name: name, Description: description, Required: true}
}

// NewFlag creates an option that takes no value; its parsed value is true
// when specified and false otherwise. Flags are, by their nature, always
// optional.
func NewFlag(name, description string) *Option {
	return &Option{Name: name, Description: description, flag: true}
}

// IsFlag reports whether the option takes no value.
func (o *Option) IsFlag() bool { return o.flag }

// Keyword returns the option name with its leading hyphens stripped; this
// is the key under which the parsed value is stored.
func (o *Option) Keyword() string {
	return strings.TrimLeft(o.Name, "-")
}

// Triggers returns the name followed by any aliases.
func (o *Option) Triggers() []string {
	return append([]string{o.Name}, o.Aliases...)
}

// validName reports whether the name follows the argument format accepted
// by the default parser.
func validName(name string) bool {
	if strings.HasPrefix(name, "--") {
		return len(name) > 3
	}
	return strings.HasPrefix(name, "-") && len(name) == 2
}

// AddOption adds an option (or flag) to the group. Grouped options should
// not be added to the command directly; pass the group to the command
// instead.
func (g *OptionGroup) AddOption(option *Option) {
	g.options = append(g.options, option)
}

// Options returns the options in the group in the order they were added.
func (g *OptionGroup) Options() []*Option {
	return g.options
}
