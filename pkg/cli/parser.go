// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"strings"
)

// All type declarations consolidated in a single block.
type (
	// Parser converts the arguments remaining after command resolution into
	// an Arguments value. Parsers return ErrHelp when the user asked for
	// help, a UsageError when the arguments cannot be matched to the
	// command, and a ValidationError when a value is rejected.
	Parser interface {
		Parse(command *Command, args []string) (*Arguments, error)
	}

	// Arguments holds the parsed input to a command handler: positional
	// leftovers plus keyword values. Keywords are option names with their
	// leading hyphens stripped.
	Arguments struct {
		Positional []string

		keywords map[string]any
	}

	// DefaultParser parses arguments according to the command's declared
	// options and flags. It accepts --name value, --name=value, and bare
	// flag triggers; -h and --help short-circuit to the usage display.
	DefaultParser struct{}

	// UntypedParser parses arguments without knowing the possible options
	// ahead of time, useful when the accepted arguments vary at runtime.
	// Values resolve to a string, true for flags (no value or another
	// option follows), or a []string for repeats. Positional arguments are
	// rejected. A list of required triggers may still be enforced.
	UntypedParser struct {
		Required []string
	}

	// PassThroughParser performs no parsing or validation whatsoever; the
	// arguments are handed to the command's handler as positionals.
	PassThroughParser struct{}
)

// NewArguments creates an Arguments value, mainly useful for invoking
// handlers directly in tests.
func NewArguments(positional []string, keywords map[string]any) *Arguments {
	if keywords == nil {
		keywords = map[string]any{}
	}
	return &Arguments{Positional: positional, keywords: keywords}
}

// Get returns the value stored for the keyword and whether it was present.
func (a *Arguments) Get(keyword string) (any, bool) {
	v, ok := a.keywords[keyword]
	return v, ok
}

// Has reports whether the keyword was specified (or defaulted).
func (a *Arguments) Has(keyword string) bool {
	_, ok := a.keywords[keyword]
	return ok
}

// String returns the keyword's value as a string, or "" when it is absent
// or not a string.
func (a *Arguments) String(keyword string) string {
	if s, ok := a.keywords[keyword].(string); ok {
		return s
	}
	return ""
}

// Strings returns the keyword's values for an allow-multiple option, in
// the order the user entered them.
func (a *Arguments) Strings(keyword string) []string {
	switch v := a.keywords[keyword].(type) {
	case []string:
		return v
	case string:
		return []string{v}
	}
	return nil
}

// Flag reports whether the flag keyword was specified.
func (a *Arguments) Flag(keyword string) bool {
	b, _ := a.keywords[keyword].(bool)
	return b
}

// Keywords returns the keyword map. The caller must not modify it.
func (a *Arguments) Keywords() map[string]any {
	return a.keywords
}

func (a *Arguments) set(keyword string, value any) {
	if a.keywords == nil {
		a.keywords = map[string]any{}
	}
	a.keywords[keyword] = value
}

// Parse implements Parser.
func (DefaultParser) Parse(command *Command, args []string) (*Arguments, error) {
	parsed := NewArguments(nil, nil)

	// Raw values per option, in arrival order.
	raw := map[*Option][]string{}
	var unexpected []string
	var missingValue []string

	for i := 0; i < len(args); i++ {
		token := args[i]
		if token == "-h" || token == "--help" {
			return nil, ErrHelp
		}
		if !strings.HasPrefix(token, "-") {
			parsed.Positional = append(parsed.Positional, token)
			continue
		}

		trigger, inline, hasInline := strings.Cut(token, "=")
		option := command.findOption(trigger)
		if option == nil {
			unexpected = append(unexpected, trigger)
			continue
		}

		switch {
		case option.IsFlag() && hasInline:
			// Flags take no value; --flag=x is a usage error.
			unexpected = append(unexpected, token)
		case option.IsFlag():
			raw[option] = append(raw[option], "")
		case hasInline:
			raw[option] = append(raw[option], inline)
		case i+1 < len(args):
			raw[option] = append(raw[option], args[i+1])
			i++
		default:
			missingValue = append(missingValue, option.Name)
		}
	}

	if len(unexpected) > 0 || len(missingValue) > 0 {
		return nil, &UsageError{Missing: missingValue, Unexpected: unexpected}
	}

	for _, option := range command.AllOptions() {
		values, specified := raw[option]

		switch {
		case option.IsFlag():
			parsed.set(option.Keyword(), specified)
		case specified:
			value, err := convertValues(option, values)
			if err != nil {
				return nil, err
			}
			parsed.set(option.Keyword(), value)
		case option.Default != nil:
			parsed.set(option.Keyword(), option.Default)
		}
	}

	return parsed, nil
}

// convertValues runs the option's validate and parse funcs over each raw
// value and shapes the result: a list for allow-multiple options, the last
// value otherwise.
func convertValues(option *Option, values []string) (any, error) {
	converted := make([]any, 0, len(values))
	for _, v := range values {
		if option.ValidateFunc != nil {
			if err := option.ValidateFunc(v); err != nil {
				return nil, &ValidationError{Keyword: option.Keyword(), Value: v, Err: err}
			}
		}
		if option.ParseFunc == nil {
			converted = append(converted, v)
			continue
		}
		parsed, err := option.ParseFunc(v)
		if err != nil {
			return nil, &ValidationError{Keyword: option.Keyword(), Value: v, Err: err}
		}
		converted = append(converted, parsed)
	}

	if !option.AllowMultiple {
		return converted[len(converted)-1], nil
	}
	if option.ParseFunc == nil {
		// Without a parse func the values stay strings; keep the list typed
		// that way for the handler's convenience.
		list := make([]string, len(converted))
		for i, v := range converted {
			list[i] = v.(string)
		}
		return list, nil
	}
	return converted, nil
}

// Parse implements Parser. The command's declared options are ignored; only
// the parser's own Required list is enforced.
func (p *UntypedParser) Parse(_ *Command, args []string) (*Arguments, error) {
	parsed := NewArguments(nil, nil)
	required := map[string]bool{}
	for _, r := range p.Required {
		required[r] = true
	}

	for i := 0; i < len(args); i++ {
		token := args[i]
		keyword := strings.TrimLeft(token, "-")
		if keyword == token {
			return nil, &UsageError{Unexpected: []string{token}}
		}
		if keyword == "h" || keyword == "help" {
			return nil, ErrHelp
		}
		delete(required, token)

		// No value behind it makes it a flag.
		if i+1 == len(args) || strings.HasPrefix(args[i+1], "-") {
			parsed.set(keyword, true)
			continue
		}

		value := args[i+1]
		i++

		// Repeats become a list, preserving order.
		switch existing := parsed.keywords[keyword].(type) {
		case nil:
			parsed.set(keyword, value)
		case string:
			parsed.set(keyword, []string{existing, value})
		case []string:
			parsed.set(keyword, append(existing, value))
		}
	}

	if len(required) > 0 {
		missing := make([]string, 0, len(required))
		for _, r := range p.Required {
			if required[r] {
				missing = append(missing, r)
			}
		}
		return nil, &UsageError{Missing: missing}
	}

	return parsed, nil
}

// Parse implements Parser.
func (PassThroughParser) Parse(_ *Command, args []string) (*Arguments, error) {
	return NewArguments(args, nil), nil
}
