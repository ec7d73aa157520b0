// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"conch/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the conch configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  "Prints the resolved configuration as TOML, after merging defaults, the config file, and CONCH_* environment variables.",
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, path, err := config.Load()
		if err != nil {
			return err
		}
		if path != "" {
			fmt.Println(SubtitleStyle.Render("# loaded from " + path))
		} else {
			fmt.Println(SubtitleStyle.Render("# no config file found, showing defaults and environment"))
		}
		out, err := config.GenerateTOML(loaded)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  "Writes a commented default config file into the platform config directory. An existing file is left untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			fmt.Println(WarningStyle.Render("config file already exists: ") + path)
			return nil
		}
		if err := config.CreateDefaultConfig(); err != nil {
			return err
		}
		fmt.Println(SuccessStyle.Render("created ") + path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
