// SPDX-License-Identifier: MPL-2.0

package main

import (
	"github.com/spf13/cobra"
)

var (
	shellShowMenu    bool
	shellClearScreen bool

	shellCmd = &cobra.Command{
		Use:   "shell",
		Short: "Enter the interactive shell",
		Long: `Starts the sample menu shell. Built-in triggers: ? renders the
menu, ^ returns home, < goes back one screen, / clears the screen,
! runs the rest of the line through an embedded POSIX interpreter, and
q quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := buildSampleShell(newPrompt())
			if err != nil {
				return err
			}
			sh.SafeStart(shellShowMenu, shellClearScreen)
			return nil
		},
	}
)

func init() {
	shellCmd.Flags().BoolVar(&shellShowMenu, "menu", true, "render the menu on entry")
	shellCmd.Flags().BoolVar(&shellClearScreen, "clear", false, "clear the screen on entry")
}
