// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"strings"

	"conch/pkg/prompt"

	"github.com/spf13/cobra"
)

var demoMenuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Exercise the selection menus",
	Long:  "Runs a single-select menu, a multi-select menu, and a sectioned multi-select menu over the sample tasks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrompt()

		titles := make([]string, len(sampleTasks))
		for i, t := range sampleTasks {
			titles[i] = t.title
		}

		idx, err := p.Menu("Pick one task:", titles)
		if errors.Is(err, prompt.ErrAbort) {
			p.Write("Aborted.")
			return nil
		}
		if err != nil {
			return err
		}
		p.Writef("picked #%d %s", sampleTasks[idx].id, sampleTasks[idx].title)
		p.Write("")

		selected, err := p.MultiSelectMenu("Pick any number of tasks:", titles)
		if errors.Is(err, prompt.ErrAbort) {
			p.Write("Aborted.")
			return nil
		}
		if err != nil {
			return err
		}
		picked := make([]string, len(selected))
		for i, s := range selected {
			picked[i] = sampleTasks[s].title
		}
		p.Write("picked: " + strings.Join(picked, ", "))
		p.Write("")

		sections := []prompt.MenuSection{
			{Name: "open", Items: []string{"write release notes", "archive stale branches"}},
			{Name: "done", Items: []string{"fix prompt wrapping"}},
		}
		bySection, err := p.SectionedMultiSelectMenu("Pick tasks per state:", sections, "")
		if errors.Is(err, prompt.ErrAbort) {
			p.Write("Aborted.")
			return nil
		}
		if err != nil {
			return err
		}
		for name, indices := range bySection {
			p.Writef("%s: %d selected", name, len(indices))
		}
		return nil
	},
}
