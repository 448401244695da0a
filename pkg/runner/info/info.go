package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/roundtrip/pkg/config"
)

// Info prints where configuration came from and what it resolved to.
type Info struct {
	Config config.Config
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("ROUNDTRIP_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "ROUNDTRIP_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "ROUNDTRIP_CONFIG_PATH env var not set")
	}

	_, _ = fmt.Fprintln(out, "Config.months: ", n.Config.Months)
	if n.Config.Today.IsZero() {
		_, _ = fmt.Fprintln(out, "Config.today:  (real clock)")
	} else {
		_, _ = fmt.Fprintln(out, "Config.today: ", n.Config.Today)
	}
	_, _ = fmt.Fprintln(out, "Config.log-level: ", n.Config.LogLevel)
	_, _ = fmt.Fprintln(out, "Config.color: ", n.Config.Color)
	return nil
}
