package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/roundtrip/pkg/commands/options"
	"tableflip.dev/roundtrip/pkg/events"
	"tableflip.dev/roundtrip/pkg/runner/replay"
)

func addReplay(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	var asCalendar bool

	cmd := &cobra.Command{
		Use:   "replay EVENT...",
		Short: "Replay picker events and print the resulting cell tags",
		Example: `
roundtrip replay click:2024-02-10 click:2024-02-15
roundtrip replay click:2024-02-10 hover:2024-02-20 --calendar
roundtrip replay click:2024-02-10 adjust:departure:+1 next:return --json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires at least one event")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := co.Resolve()
			if err != nil {
				return output.HandleError(err)
			}
			evs, err := events.ParseAll(args...)
			if err != nil {
				return output.HandleError(err)
			}
			r := replay.Replay{
				Events:   evs,
				Now:      cfg.Now(),
				Logger:   cfg.Logger(),
				JSON:     output.JSON,
				Calendar: asCalendar,
				Months:   cfg.Months,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVar(&asCalendar, "calendar", false, "Print month grids instead of the cell table.")
	options.AddCalendarArgs(cmd, co)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
