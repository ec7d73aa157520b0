// SPDX-License-Identifier: MPL-2.0

package main

import (
	"conch/pkg/cli"

	"github.com/spf13/cobra"
)

var demoCliCmd = &cobra.Command{
	Use:   "cli [args...]",
	Short: "Run argv through the sample dispatcher",
	Long: `Assembles the sample task dispatcher and feeds it the remaining
arguments. The dispatcher's exit code becomes the process exit code, so
usage errors exit 64 and validation errors exit 65.

Examples:
  conch demo cli                       Print the root usage
  conch demo cli task list --all       Run a nested command
  conch demo cli task add -t "thing"   Typed options with aliases`,
	// The dispatcher owns everything after "cli", including dash-prefixed
	// tokens cobra would otherwise claim.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildSampleCli(newPrompt())
		if err != nil {
			return err
		}
		if code := c.Run(args); code != cli.ExOk {
			return cli.Exit(code)
		}
		return nil
	},
}
