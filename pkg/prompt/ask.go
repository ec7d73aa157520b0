// SPDX-License-Identifier: MPL-2.0

package prompt

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Ask prompts the user for an answer to the given question, re-prompting
// while the answer is blank unless AllowEmpty is set.
func (p *Prompt) Ask(question string, opts ...ReadOption) (string, error) {
	cfg := readConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	for {
		answer, err := p.Read(question, opts...)
		if err != nil {
			return "", err
		}
		if cfg.allowEmpty || strings.TrimSpace(answer) != "" {
			return answer, nil
		}
	}
}

// AskDefault prompts for an answer, returning defaultValue when the user
// enters nothing.
func (p *Prompt) AskDefault(question, defaultValue string, opts ...ReadOption) (string, error) {
	answer, err := p.Ask(question, append(opts, AllowEmpty())...)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(answer) == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// AskValues prompts until the answer is one of the given values.
func (p *Prompt) AskValues(question string, values []string, opts ...ReadOption) (string, error) {
	for {
		answer, err := p.Ask(question, opts...)
		if err != nil {
			return "", err
		}
		for _, v := range values {
			if answer == v {
				return answer, nil
			}
		}
	}
}

// AskYesNo prompts a yes/no question, accepting "y" or "n" (case
// insensitive) and re-prompting on anything else.
func (p *Prompt) AskYesNo(question string, opts ...ReadOption) (bool, error) {
	answer, err := p.AskValues(question, []string{"y", "n", "Y", "N"}, opts...)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// NumberConfig gates the values accepted by AskNumber.
type NumberConfig struct {
	// AllowNegative accepts values below zero.
	AllowNegative bool
	// AllowZero accepts zero.
	AllowZero bool
	// Default, when non-nil, is returned if the user enters nothing.
	Default *int
}

// AskNumber prompts for an integer, re-prompting until the input parses and
// satisfies the configured gates.
func (p *Prompt) AskNumber(question string, cfg NumberConfig, opts ...ReadOption) (int, error) {
	readOpts := opts
	if cfg.Default != nil {
		readOpts = append(readOpts, AllowEmpty())
	}

	for {
		answer, err := p.Ask(question, readOpts...)
		if err != nil {
			return 0, err
		}

		if strings.TrimSpace(answer) == "" && cfg.Default != nil {
			return *cfg.Default, nil
		}

		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			p.Write("Please enter a number")
			continue
		}
		if !cfg.AllowNegative && n < 0 {
			p.Write("Please enter a number greater than zero")
			continue
		}
		if !cfg.AllowZero && n == 0 {
			p.Write("Please enter a non-zero value")
			continue
		}
		return n, nil
	}
}

// AskRange prompts for an integer between low and high (inclusive),
// re-prompting while the value is out of range.
func (p *Prompt) AskRange(question string, low, high int, opts ...ReadOption) (int, error) {
	for {
		n, err := p.AskNumber(question, NumberConfig{AllowZero: low <= 0, AllowNegative: low < 0}, opts...)
		if err != nil {
			return 0, err
		}
		if n < low || n > high {
			p.Writef("Please enter a number between %d and %d", low, high)
			continue
		}
		return n, nil
	}
}

// FileConfig adjusts the validation applied by AskFile.
type FileConfig struct {
	// AllowDirectory accepts a path that names a directory.
	AllowDirectory bool
	// AllowEmpty accepts a blank answer without validating it.
	AllowEmpty bool
}

// AskFile prompts for the path to an existing file, re-prompting while the
// path does not resolve.
func (p *Prompt) AskFile(question string, cfg FileConfig, opts ...ReadOption) (string, error) {
	readOpts := opts
	if cfg.AllowEmpty {
		readOpts = append(readOpts, AllowEmpty())
	}

	for {
		answer, err := p.Ask(question, readOpts...)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(answer) == "" && cfg.AllowEmpty {
			return answer, nil
		}

		info, err := os.Stat(answer)
		if err == nil && (cfg.AllowDirectory || !info.IsDir()) {
			return answer, nil
		}

		p.Write("Cannot find file, please enter a valid path")
		p.Write("")
	}
}

// AskPassword prompts for a password without echoing the input. When
// verifyQuestion is non-empty the user must enter the same value twice;
// mismatchMsg is shown between attempts.
func (p *Prompt) AskPassword(question, verifyQuestion, mismatchMsg string) (string, error) {
	for {
		first, err := p.readSecret(question)
		if err != nil {
			return "", err
		}
		if verifyQuestion == "" {
			return first, nil
		}

		second, err := p.readSecret(verifyQuestion)
		if err != nil {
			return "", err
		}
		if first != second {
			p.Write(mismatchMsg)
			p.Write("")
			continue
		}
		return first, nil
	}
}

// readSecret reads without echo when stdin is a terminal; otherwise it
// degrades to a normal read so scripted inputs keep working.
func (p *Prompt) readSecret(question string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !p.stdinIn || !term.IsTerminal(fd) {
		return p.Read(question)
	}

	p.Write(question, NoNewline())
	raw, err := term.ReadPassword(fd)
	p.Write("")
	if err != nil {
		if errors.Is(err, os.ErrClosed) {
			return "", ErrAbort
		}
		return "", err
	}
	return string(raw), nil
}
