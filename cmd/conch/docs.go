// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// overviewDoc is the rendered source for the docs command.
const overviewDoc = `# conch

A terminal interaction toolkit.

## Building blocks

- **prompt** reads and writes with color, wrapping, centering, and
  cursor movement, plus ask helpers (yes/no, numbers, ranges, files,
  passwords) and selection menus. Tag recording makes prompt-driven
  flows scriptable in tests.
- **progress** renders in-place progress bars and spinners, a
  ticker-driven spinner for background work, and an animated spinner
  around a blocking call.
- **cli** dispatches argv across nested sections and commands with
  typed options, flags, aliases, and generated usage text. Exit codes
  follow BSD sysexits: 0 ok, 64 usage, 65 bad data.
- **shell** runs an interactive menu loop over named screens with
  history, a home screen, and a ` + "`!`" + ` escape into an embedded
  POSIX interpreter.
- **table** prints aligned columns with truncation or wrapping and
  styled headers and rows.
- **parsers** converts and validates option values: booleans, bounded
  integers, CSV lists, and their optional variants.

## Configuration

Settings load from ` + "`config.toml`" + ` in the platform config
directory and from ` + "`CONCH_*`" + ` environment variables. Run
` + "`conch config show`" + ` to see the effective values.
`

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the toolkit overview",
	Long:  "Renders the toolkit overview as styled markdown in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rendererOpts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
		if width := promptWrapWidth(); width > 0 {
			rendererOpts = append(rendererOpts, glamour.WithWordWrap(width))
		}
		renderer, err := glamour.NewTermRenderer(rendererOpts...)
		if err != nil {
			return fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		out, err := renderer.Render(overviewDoc)
		if err != nil {
			return fmt.Errorf("failed to render overview: %w", err)
		}
		fmt.Fprint(os.Stdout, out)
		return nil
	},
}
