// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/spf13/cobra"

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Exercise the toolkit widgets",
	Long:  "Small interactive demonstrations of the prompt, progress, table, menu, and dispatcher building blocks.",
}

func init() {
	demoCmd.AddCommand(demoPromptCmd)
	demoCmd.AddCommand(demoProgressCmd)
	demoCmd.AddCommand(demoTableCmd)
	demoCmd.AddCommand(demoMenuCmd)
	demoCmd.AddCommand(demoCliCmd)
}
