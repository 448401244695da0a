package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/roundtrip/pkg/commands/options"
	"tableflip.dev/roundtrip/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive round-trip picker",
		Example: `
roundtrip ui
roundtrip ui --months=3 --on=2024-2-10
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := co.Resolve()
			if err != nil {
				return output.HandleError(err)
			}
			start, err := on.GetOn(cfg.Now())
			if err != nil {
				return output.HandleError(err)
			}
			i := ui.UI{
				Now:    cfg.Now(),
				Logger: cfg.Logger(),
				Months: cfg.Months,
				Start:  start,
			}
			return output.HandleError(i.Do(context.Background()))
		},
	}

	options.AddCalendarArgs(cmd, co)
	options.AddOnArgs(cmd, on)
	topLevel.AddCommand(cmd)
}
