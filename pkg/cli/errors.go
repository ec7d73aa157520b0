// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes follow the BSD sysexits convention.
const (
	// ExOk indicates the command ran successfully.
	ExOk = 0
	// ExUsage indicates the command line could not be resolved or parsed.
	ExUsage = 64
	// ExDataErr indicates an option value failed validation or parsing.
	ExDataErr = 65
)

var (
	// ErrInvalidStructure is the sentinel error wrapped by InvalidStructureError.
	ErrInvalidStructure = errors.New("invalid cli structure")

	// ErrUsage is the sentinel error wrapped by UsageError.
	ErrUsage = errors.New("incorrect usage")

	// ErrValidation is the sentinel error wrapped by ValidationError.
	ErrValidation = errors.New("invalid option value")

	// ErrHelp is returned by parsers when the user asked for help instead of
	// running the command.
	ErrHelp = errors.New("help requested")
)

// All type declarations consolidated in a single block.
type (
	// InvalidStructureError is returned when sections, commands, or options
	// are assembled in a way that would conflict (likely duplicate names).
	InvalidStructureError struct {
		Name   string
		Reason string
	}

	// UsageError is returned when the arguments to a command were incorrect.
	// Missing lists required option triggers that were not specified;
	// Unexpected lists tokens that could not be matched to the command.
	UsageError struct {
		Missing    []string
		Unexpected []string
	}

	// ValidationError is returned when an option value is rejected by the
	// option's validate or parse func.
	ValidationError struct {
		Keyword string
		Value   string
		Err     error
	}

	// ExitError carries an explicit exit code out of a command handler.
	ExitError struct {
		Code int
	}
)

// Error implements the error interface.
func (e *InvalidStructureError) Error() string {
	return fmt.Sprintf("invalid cli structure: %s %q", e.Reason, e.Name)
}

// Unwrap returns ErrInvalidStructure so callers can use errors.Is for programmatic detection.
func (e *InvalidStructureError) Unwrap() error { return ErrInvalidStructure }

// Error implements the error interface.
func (e *UsageError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required options: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, "unexpected arguments: "+strings.Join(e.Unexpected, ", "))
	}
	if len(parts) == 0 {
		return "incorrect usage"
	}
	return strings.Join(parts, "; ")
}

// Unwrap returns ErrUsage so callers can use errors.Is for programmatic detection.
func (e *UsageError) Unwrap() error { return ErrUsage }

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Keyword, e.Err)
}

// Unwrap returns ErrValidation so callers can use errors.Is for programmatic detection.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// Exit returns an error that makes Run finish with the given exit code
// without reporting a failure to the user.
func Exit(code int) error {
	return &ExitError{Code: code}
}
