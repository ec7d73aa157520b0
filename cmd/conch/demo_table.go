// SPDX-License-Identifier: MPL-2.0

package main

import (
	"conch/pkg/table"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var demoTableCmd = &cobra.Command{
	Use:   "table",
	Short: "Exercise the table widget",
	Long:  "Renders the sample tasks twice: once truncated, once with cell wrapping and alternating row styles.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrompt()

		p.Write(p.Color("truncated cells", TitleStyle))
		if err := renderTaskTable(p, true); err != nil {
			return err
		}
		p.Write("")

		p.Write(p.Color("wrapped cells, alternating row styles", TitleStyle))
		t := table.New(p, 3)
		t.TableWidth = 44
		t.ColWidths = []int{4, 24, 10}
		t.ColSeparator = " | "
		t.WrapPolicy = table.WrapWrap
		t.HeaderStyle = &TitleStyle
		t.RowStyles = []lipgloss.Style{SubtitleStyle, CmdStyle}
		t.ColAlignments = []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignCenter}
		rows := [][]string{
			{"1", "write release notes before the cutoff", "open"},
			{"2", "fix prompt wrapping on narrow terminals", "done"},
			{"3", "archive stale branches", "open"},
		}
		return t.Render(rows, []string{"id", "title", "state"})
	},
}
