// Package calendar renders month grids decorated with round-trip selection
// tags.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/roundtrip/pkg/dates"
	"tableflip.dev/roundtrip/pkg/highlight"
	"tableflip.dev/roundtrip/pkg/tui/theme"
)

const weekdayHeader = "Su Mo Tu We Th Fr Sa"

// Width is the printable width of a rendered month.
var Width = len(weekdayHeader)

// Options controls what a month grid marks beyond the selection tags.
type Options struct {
	Theme  theme.CalendarTheme
	Today  dates.Date
	Cursor dates.Date
}

// Render produces a multi-line calendar string for the month containing
// month. Each day is styled from the tags idx holds for it.
func Render(month dates.Date, idx *highlight.Index, opts Options) string {
	if month.IsZero() {
		return ""
	}
	first := dates.MonthStart(month)
	daysInMonth := dates.DaysInMonth(first.Year, first.Month)

	lines := []string{
		center(opts.Theme.Header.Render(fmt.Sprintf("%s %d", first.Month, first.Year)), Width),
		opts.Theme.Weekdays.Render(weekdayHeader),
	}

	startOffset := int(first.Weekday())
	rows := (startOffset + daysInMonth + 6) / 7
	for row := 0; row < rows; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.Theme.Empty.Render("  "))
				continue
			}
			d := dates.Date{Year: first.Year, Month: first.Month, Day: day}
			cells = append(cells, renderDay(d, idx.Tags(d), opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

// RenderMonths renders count consecutive months starting at month, side by
// side.
func RenderMonths(month dates.Date, count int, idx *highlight.Index, opts Options) string {
	if count < 1 {
		count = 1
	}
	blocks := make([]string, 0, count*2)
	for i := 0; i < count; i++ {
		if i > 0 {
			blocks = append(blocks, "   ")
		}
		blocks = append(blocks, Render(dates.ShiftMonth(month, i), idx, opts))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// StyleFor layers the styles for a day, highest precedence first so that
// Inherit only fills what stronger tags left unset.
func StyleFor(d dates.Date, tags []string, opts Options) lipgloss.Style {
	th := opts.Theme
	var layers []lipgloss.Style
	if dates.IsSameDay(d, opts.Cursor) {
		layers = append(layers, th.Cursor)
	}
	if has(tags, highlight.TagSelected) {
		layers = append(layers, th.Selected)
	}
	if has(tags, highlight.TagNext) {
		layers = append(layers, th.Next)
	}
	if has(tags, highlight.TagTentative) {
		layers = append(layers, th.Tentative)
	}
	if has(tags, highlight.TagPickingLater) {
		layers = append(layers, th.PickingLater)
	}
	if has(tags, highlight.TagInRange) {
		layers = append(layers, th.InRange)
	}
	if dates.IsSameDay(d, opts.Today) {
		layers = append(layers, th.Today)
	}
	if !opts.Today.IsZero() && dates.IsEarlier(d, opts.Today) {
		layers = append(layers, th.Past)
	}
	layers = append(layers, th.Day)

	style := layers[0]
	for _, l := range layers[1:] {
		style = style.Inherit(l)
	}
	return style
}

func renderDay(d dates.Date, tags []string, opts Options) string {
	return StyleFor(d, tags, opts).Render(fmt.Sprintf("%2d", d.Day))
}

func center(s string, width int) string {
	w := ansi.PrintableRuneWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

func has(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
