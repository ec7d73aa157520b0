// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"strings"
	"time"

	"conch/pkg/progress"

	"github.com/spf13/cobra"
)

var (
	demoProgressSteps   int
	demoProgressSpinner string

	demoProgressCmd = &cobra.Command{
		Use:   "progress",
		Short: "Exercise the progress bar and spinners",
		Long:  "Renders an in-place progress bar, a ticker-driven spinner, and an animated spinner around a blocking action.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompt()

			p.Write(p.Color("progress bar", TitleStyle))
			bar := progress.NewBar(p, progress.WithBarStyles(WarningStyle, SuccessStyle))
			for step := 0; step <= demoProgressSteps; step++ {
				bar.Render(step, demoProgressSteps, fmt.Sprintf("step %d of %d", step, demoProgressSteps))
				time.Sleep(80 * time.Millisecond)
			}

			p.Write(p.Color("ticker spinner", TitleStyle))
			spinner := progress.NewSpinner(p, progress.WithSpinnerStyles(WarningStyle, SuccessStyle))
			ticker := progress.NewTickerSpinner(spinner, progress.WithInterval(100*time.Millisecond))
			ticker.Start("working in the background")
			time.Sleep(1200 * time.Millisecond)
			ticker.Stop(true)
			spinner.Finish("background work finished")

			spinnerType, err := progress.ParseSpinnerType(demoProgressSpinner)
			if err != nil {
				return err
			}
			return progress.SpinAction(progress.SpinOptions{
				Title: "animated spinner around a blocking call",
				Type:  spinnerType,
				Style: CmdStyle,
			}, func() {
				time.Sleep(1500 * time.Millisecond)
			})
		},
	}
)

func init() {
	demoProgressCmd.Flags().IntVar(&demoProgressSteps, "steps", 20, "number of progress bar steps")
	demoProgressCmd.Flags().StringVar(&demoProgressSpinner, "spinner", "dot", "animated spinner type ("+strings.Join(progress.SpinnerTypeNames(), ", ")+")")
}
