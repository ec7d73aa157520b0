// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"strings"

	"conch/pkg/prompt"

	"github.com/spf13/cobra"
)

var demoPromptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Exercise the prompt widgets",
	Long:  "Walks through reads, styled and centered writes, wrapping, and the ask helpers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrompt()

		p.Write(p.Color("conch prompt demo", TitleStyle), prompt.Centered())
		p.Write("")

		name, err := p.Ask("What should I call you? ")
		if errors.Is(err, prompt.ErrAbort) {
			p.Write("Aborted.")
			return nil
		}
		if err != nil {
			return err
		}
		p.Write("Hello, " + p.Color(name, SuccessStyle) + "!")

		color, err := p.AskValues("Favorite primary color?", []string{"red", "green", "blue"})
		if errors.Is(err, prompt.ErrAbort) {
			p.Write("Aborted.")
			return nil
		}
		if err != nil {
			return err
		}
		p.Writef("Noted: %s.", color)

		wide, err := p.AskYesNo("Wrap a long paragraph at 40 columns?")
		if errors.Is(err, prompt.ErrAbort) {
			p.Write("Aborted.")
			return nil
		}
		if err != nil {
			return err
		}
		if wide {
			paragraph := strings.Repeat("the quick brown fox jumps over the lazy dog ", 4)
			p.Write(p.Wrap(paragraph, 40, 0), prompt.SkipWrap())
		}

		p.Write("")
		p.Write(p.Color("done", SubtitleStyle), prompt.Centered())
		return nil
	},
}
