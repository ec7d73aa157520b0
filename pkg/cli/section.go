// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"maps"
	"slices"
)

// Section represents a division of commands in the CLI. Sections may
// contain other sections, which creates a chain of arguments used to get
// to a command (think namespaces). Subsection and command names share a
// namespace within their parent section.
type Section struct {
	Name        string
	Description string

	subsections map[string]*Section
	commands    map[string]*Command
}

// NewSection creates an empty section.
func NewSection(name, description string) *Section {
	return &Section{
		Name:        name,
		Description: description,
		subsections: map[string]*Section{},
		commands:    map[string]*Command{},
	}
}

// AddSection adds another node to the CLI tree. Specifying the section's
// name on the command line recurses into its subtree to continue resolving
// subsections and commands.
func (s *Section) AddSection(section *Section) error {
	if err := s.verifyNewStructure(section.Name); err != nil {
		return err
	}
	s.subsections[section.Name] = section
	return nil
}

// AddCommand adds a command that may be executed in this section: a leaf
// in this node of the CLI tree. Arguments specified after the path used to
// identify the command are passed to the command's execution itself.
func (s *Section) AddCommand(command *Command) error {
	if err := s.verifyNewStructure(command.Name); err != nil {
		return err
	}
	s.commands[command.Name] = command
	return nil
}

// CreateSection creates a new subsection in this section and returns it
// for further editing. The name must be unique across all commands and
// subsections within this section.
func (s *Section) CreateSection(name, description string) (*Section, error) {
	section := NewSection(name, description)
	if err := s.AddSection(section); err != nil {
		return nil, err
	}
	return section, nil
}

// CreateCommand creates a new command in this section and returns it for
// further editing. The name must be unique across all commands and
// subsections within this section.
func (s *Section) CreateCommand(name, description string, handler Handler) (*Command, error) {
	command := NewCommand(name, description, handler)
	if err := s.AddCommand(command); err != nil {
		return nil, err
	}
	return command, nil
}

// FindSection returns the subsection with the given name, or nil.
func (s *Section) FindSection(name string) *Section {
	return s.subsections[name]
}

// FindCommand returns the command under this section with the given name,
// or nil.
func (s *Section) FindCommand(name string) *Command {
	return s.commands[name]
}

// RemoveSection removes the subsection with the given name and returns it,
// or returns nil when no such subsection exists.
func (s *Section) RemoveSection(name string) *Section {
	section := s.subsections[name]
	delete(s.subsections, name)
	return section
}

// RemoveCommand removes the command with the given name and returns it, or
// returns nil when no such command exists.
func (s *Section) RemoveCommand(name string) *Command {
	command := s.commands[name]
	delete(s.commands, name)
	return command
}

// Sections returns the subsections sorted by name.
func (s *Section) Sections() []*Section {
	sections := make([]*Section, 0, len(s.subsections))
	for _, name := range slices.Sorted(maps.Keys(s.subsections)) {
		sections = append(sections, s.subsections[name])
	}
	return sections
}

// Commands returns the commands sorted by name.
func (s *Section) Commands() []*Command {
	commands := make([]*Command, 0, len(s.commands))
	for _, name := range slices.Sorted(maps.Keys(s.commands)) {
		commands = append(commands, s.commands[name])
	}
	return commands
}

// verifyNewStructure checks that the section holds no subsection or
// command with the given name.
func (s *Section) verifyNewStructure(name string) error {
	if _, ok := s.subsections[name]; ok {
		return &InvalidStructureError{Name: name, Reason: "duplicate section name"}
	}
	if _, ok := s.commands[name]; ok {
		return &InvalidStructureError{Name: name, Reason: "duplicate command name"}
	}
	return nil
}
