// Package key provides CLI helpers to display the calendar cell tag legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/roundtrip/pkg/highlight"
)

// Legend pairs a cell tag with its meaning.
type Legend struct {
	Tag     string
	Meaning string
}

// Legends lists every tag the classifier emits, in emission order.
func Legends() []Legend {
	return []Legend{
		{highlight.TagDeparture, "First day of the trip"},
		{highlight.TagReturn, "Last day of the trip"},
		{highlight.TagSelected, "A committed departure or return"},
		{highlight.TagNext, "The date the next pick will set"},
		{highlight.TagInRange, "Between departure and the range end"},
		{highlight.TagPickingLater, "End of a same-day trip being extended"},
		{highlight.TagTentative, "The hovered day previewed as return"},
	}
}

// Key prints the tag legend.
type Key struct {
	Out io.Writer
}

// Do renders the tag table.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Tag"), bold.Sprint("Meaning"))
	for _, l := range Legends() {
		tbl.AddRow(l.Tag, l.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
