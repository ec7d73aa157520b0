// SPDX-License-Identifier: MPL-2.0

package main

import (
	"conch/pkg/cli"

	"github.com/spf13/cobra"
)

var (
	mapShowOptions bool

	mapCmd = &cobra.Command{
		Use:   "map",
		Short: "Print the sample command tree",
		Long:  "Prints every section and command of the sample dispatcher, indented by depth.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildSampleCli(newPrompt())
			if err != nil {
				return err
			}
			opts := []cli.MapOption{cli.WithMapStyles(TitleStyle, CmdStyle)}
			if mapShowOptions {
				opts = append(opts, cli.WithMapOptions())
			}
			c.PrintMap(opts...)
			return nil
		},
	}
)

func init() {
	mapCmd.Flags().BoolVar(&mapShowOptions, "options", false, "include each command's options")
}
