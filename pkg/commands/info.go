package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/roundtrip/pkg/commands/options"
	"tableflip.dev/roundtrip/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the resolved configuration",
		Example: `
roundtrip info
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := co.Resolve()
			if err != nil {
				return output.HandleError(err)
			}
			i := info.Info{Config: cfg}
			return output.HandleError(i.Do(context.Background()))
		},
	}

	options.AddCalendarArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
