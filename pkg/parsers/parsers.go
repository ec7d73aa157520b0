// SPDX-License-Identifier: MPL-2.0

// Package parsers contains functions suitable for the ParseFunc and
// ValidateFunc fields of a cli.Option.
//
// The Optional* parsers treat the empty string as an omitted value and
// return nil; this lets an option be specified as --count= or --count=""
// to convey a null value.
package parsers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Bool parses "true" or "false", case insensitively and ignoring
// surrounding whitespace.
func Bool(value string) (any, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return nil, errors.New("invalid boolean value")
	}
}

// Int parses a base 10 integer.
func Int(value string) (any, error) {
	i, err := strconv.Atoi(value)
	if err != nil {
		return nil, errors.New("value must be an integer")
	}
	return i, nil
}

// NonNegativeInt parses an integer and rejects negative values.
func NonNegativeInt(value string) (any, error) {
	i, err := strconv.Atoi(value)
	if err != nil || i < 0 {
		return nil, errors.New("value must be a non-negative integer")
	}
	return i, nil
}

// PositiveInt parses an integer and rejects values below one.
func PositiveInt(value string) (any, error) {
	i, err := strconv.Atoi(value)
	if err != nil || i < 1 {
		return nil, errors.New("value must be a positive integer")
	}
	return i, nil
}

// CSV parses a comma-separated string into a []string, honoring quoting.
func CSV(value string) (any, error) {
	record, err := csv.NewReader(strings.NewReader(value)).Read()
	if err != nil {
		return nil, fmt.Errorf("invalid comma-separated value: %w", err)
	}
	return record, nil
}

// OptionalBool is Bool with the empty string parsing to nil.
func OptionalBool(value string) (any, error) {
	return optional(Bool, value)
}

// OptionalInt is Int with the empty string parsing to nil.
func OptionalInt(value string) (any, error) {
	return optional(Int, value)
}

// OptionalNonNegativeInt is NonNegativeInt with the empty string parsing
// to nil.
func OptionalNonNegativeInt(value string) (any, error) {
	return optional(NonNegativeInt, value)
}

// OptionalPositiveInt is PositiveInt with the empty string parsing to nil.
func OptionalPositiveInt(value string) (any, error) {
	return optional(PositiveInt, value)
}

// OptionalCSV is CSV with the empty string parsing to nil.
func OptionalCSV(value string) (any, error) {
	return optional(CSV, value)
}

// Regex returns a validate func that rejects values not matching the
// compiled pattern.
func Regex(pattern *regexp.Regexp) func(string) error {
	return func(value string) error {
		if !pattern.MatchString(value) {
			return fmt.Errorf("%s does not match %s", value, pattern.String())
		}
		return nil
	}
}

func optional(parse func(string) (any, error), value string) (any, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	return parse(value)
}
