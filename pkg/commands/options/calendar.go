package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/roundtrip/pkg/config"
)

// CalendarOptions binds picker flags over the config file and environment.
type CalendarOptions struct {
	v *viper.Viper
}

func AddCalendarArgs(cmd *cobra.Command, o *CalendarOptions) {
	o.v = viper.New()
	cmd.Flags().Int("months", 2, "Number of months to show side by side.")
	cmd.Flags().String("today", "", `Pin "today" to a date, example: --today=2024-02-10.`)
	cmd.Flags().String("log-level", "warn", "Log level: debug, info, warn or error.")
	for _, name := range []string{"months", "today", "log-level"} {
		_ = o.v.BindPFlag(name, cmd.Flags().Lookup(name))
	}
}

// Resolve loads the configuration with flag overrides applied.
func (o *CalendarOptions) Resolve() (config.Config, error) {
	cfg, err := config.Load(o.v)
	if err != nil {
		return config.Config{}, err
	}
	if !cfg.Color {
		DisableColor()
	}
	return cfg, nil
}
