// Package replay feeds a scripted sequence of picker events through the
// selection engine and prints the resulting state and cell tags.
package replay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/roundtrip/pkg/dates"
	"tableflip.dev/roundtrip/pkg/events"
	"tableflip.dev/roundtrip/pkg/highlight"
	"tableflip.dev/roundtrip/pkg/printers"
	"tableflip.dev/roundtrip/pkg/selection"
)

// Replay applies Events to a fresh selection state.
type Replay struct {
	Events []events.Event
	Now    func() time.Time
	Logger *slog.Logger
	Out    io.Writer

	// JSON switches output to a single JSON document.
	JSON bool
	// Calendar prints month grids instead of the cell table.
	Calendar bool
	// Months is how many months the calendar output spans.
	Months int
}

// Result is the JSON form of a replay.
type Result struct {
	State selection.Snapshot `json:"state"`
	Cells []highlight.Cell   `json:"cells"`
}

// Do runs the replay and writes the result.
func (r *Replay) Do(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out := r.Out
	if out == nil {
		out = color.Output
	}

	state := selection.New(selection.Options{Now: r.Now, Logger: r.Logger})
	events.Replay(state, r.Events)
	snap := state.Snapshot()
	cells := highlight.Classify(snap)

	if r.JSON {
		b, err := json.MarshalIndent(Result{State: snap, Cells: cells}, "", "  ")
		if err != nil {
			return fmt.Errorf("replay: encode result: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	printers.Summary(out, snap)
	_, _ = fmt.Fprintln(out, "")
	if !r.Calendar {
		printers.Cells(out, cells)
		return nil
	}

	start := snap.Departure
	if start.IsZero() {
		start = state.Today()
	}
	months := r.Months
	if months < 1 {
		months = 1
	}
	pp := &printers.PrettyPrint{Out: out, Index: highlight.NewIndex(cells), Today: state.Today()}
	pp.PrintMonths(dates.MonthStart(start), months)
	return nil
}
