package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/roundtrip/pkg/dates"
	"tableflip.dev/roundtrip/pkg/highlight"
)

const width = len("11 12 13 14 15 16 17") // an example week

// PrettyPrint writes colored month grids for a classified selection.
type PrettyPrint struct {
	Out   io.Writer
	Index *highlight.Index
	Today dates.Date
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

var (
	selected  = color.New(color.BgBlue, color.FgHiWhite, color.Bold)
	tentative = color.New(color.FgMagenta, color.Underline)
	inRange   = color.New(color.FgCyan)
	later     = color.New(color.FgCyan, color.Italic)
	past      = color.New(color.Faint, color.FgWhite)
	plain     = color.New(color.FgWhite)
	title     = color.New(color.FgWhite, color.Italic)
)

// printerFor picks the color for a day; later tags win over earlier ones.
func (pp *PrettyPrint) printerFor(d dates.Date) *color.Color {
	tags := pp.Index.Tags(d)
	switch {
	case has(tags, highlight.TagSelected):
		return selected
	case has(tags, highlight.TagTentative):
		return tentative
	case has(tags, highlight.TagPickingLater):
		return later
	case has(tags, highlight.TagInRange):
		return inRange
	case !pp.Today.IsZero() && dates.IsEarlier(d, pp.Today):
		return past
	default:
		return plain
	}
}

// PrintMonth prints the month containing month as a week grid.
func (pp *PrettyPrint) PrintMonth(month dates.Date) {
	w := pp.out()
	first := dates.MonthStart(month)

	m := fmt.Sprintf("%s %d", first.Month, first.Year)
	mid := (width - len(m)) / 2
	_, _ = title.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	d := first.Weekday()
	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(w, "   ")
	}

	days := dates.DaysInMonth(first.Year, first.Month)
	for i := 1; i <= days; i++ {
		day := dates.Date{Year: first.Year, Month: first.Month, Day: i}
		_, _ = pp.printerFor(day).Fprintf(w, "%2d", i)
		_, _ = fmt.Fprint(w, " ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		}
	}
	_, _ = fmt.Fprint(w, "\n\n")
}

// PrintMonths prints count consecutive months starting at month.
func (pp *PrettyPrint) PrintMonths(month dates.Date, count int) {
	for i := 0; i < count; i++ {
		pp.PrintMonth(dates.ShiftMonth(month, i))
	}
}

func has(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
