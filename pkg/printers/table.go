package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/roundtrip/pkg/highlight"
	"tableflip.dev/roundtrip/pkg/selection"
)

// Summary prints the committed dates and the next pick target.
func Summary(w io.Writer, s selection.Snapshot) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Departure"), orDash(s.Departure.String()))
	tbl.AddRow(bold.Sprint("Return"), orDash(s.Return.String()))
	tbl.AddRow(bold.Sprint("Tentative"), orDash(s.Tentative.String()))
	tbl.AddRow(bold.Sprint("Next"), s.Next.String())
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, tbl)
}

// Cells prints one row per classified entry, in emission order.
func Cells(w io.Writer, cells []highlight.Cell) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Tags"))
	for _, c := range cells {
		tbl.AddRow(c.Date.String(), strings.Join(c.Tags, " "))
	}

	_, _ = fmt.Fprintln(w, tbl)
}

func orDash(s string) string {
	if s == "" {
		return "--"
	}
	return s
}
