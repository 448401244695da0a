package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/roundtrip/pkg/dates"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects the day the picker cursor starts on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Start the cursor on a date, example: --on="2024-2-28" or --on="2/28".`)
}

// GetOn parses --on relative to now. An empty flag yields the zero date.
func (o *OnOptions) GetOn(now func() time.Time) (dates.Date, error) {
	if o.OnString == "" {
		return dates.Date{}, nil
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err == nil {
		return dates.FromTime(t), nil
	}
	// Let the year be the same.
	t, err = time.Parse(layoutISOShort, o.OnString)
	if err != nil {
		return dates.Date{}, fmt.Errorf("invalid --on %q", o.OnString)
	}
	today := dates.Today(now())
	on := dates.New(today.Year, t.Month(), t.Day())
	// 1/3 asked for on 12/5 means next year, not 11 months ago.
	if dates.IsEarlier(on, today) {
		on = dates.New(today.Year+1, t.Month(), t.Day())
	}
	return on, nil
}
