// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"conch/internal/config"
	"conch/pkg/cli"
	"conch/pkg/prompt"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// noColor disables styled output regardless of config
	noColor bool
	// wrapWidth overrides the configured wrap width when the flag is set
	wrapWidth int

	// cfg is the resolved configuration, loaded before any command runs
	cfg = config.DefaultConfig()
	// logger is the shared command logger
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "conch"})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "conch",
		Short: "A terminal interaction toolkit",
		Long: TitleStyle.Render("conch") + SubtitleStyle.Render(" - A terminal interaction toolkit") + `

conch bundles the building blocks for command-line programs: a prompt
with color, wrapping, and centering, progress bars and spinners, a
declarative command dispatcher with sections and typed options, and an
interactive menu shell that can also be served over SSH.

` + SubtitleStyle.Render("Examples:") + `
  conch demo prompt         Exercise the prompt widgets
  conch demo cli task list  Run argv through the sample dispatcher
  conch map                 Print the sample command tree
  conch shell               Enter the interactive shell
  conch serve               Serve the shell over SSH`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
	rootCmd.PersistentFlags().IntVar(&wrapWidth, "width", 0, "wrap width (-1 tracks the terminal, 0 disables wrapping)")

	// Add subcommands
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	loaded, path, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
	} else {
		cfg = loaded
	}

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if path != "" {
		logger.Debug("loaded config file", "path", path)
	}
}

// promptColor reports whether the prompt should emit styled output,
// combining the config, theme, and the --no-color flag.
func promptColor() bool {
	if noColor {
		return false
	}
	if cfg.UI.Theme == "mono" {
		return false
	}
	return cfg.UI.Color
}

// promptWrapWidth returns the effective wrap width, preferring the --width
// flag over the configured value.
func promptWrapWidth() int {
	if rootCmd.PersistentFlags().Changed("width") {
		return wrapWidth
	}
	return cfg.UI.WrapWidth
}

// newPrompt builds the prompt every subcommand writes through.
func newPrompt() *prompt.Prompt {
	return prompt.New(
		prompt.WithColor(promptColor()),
		prompt.WithWrapWidth(promptWrapWidth()),
	)
}
