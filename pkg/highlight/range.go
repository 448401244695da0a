// Package highlight turns a selection snapshot into the tagged calendar days
// the grid renderer styles.
package highlight

import (
	"tableflip.dev/roundtrip/pkg/dates"
	"tableflip.dev/roundtrip/pkg/selection"
)

// Presentation tags attached to calendar cells.
const (
	TagInRange      = "in-range"
	TagPickingLater = "picking-later"
	TagTentative    = "tentative-return-date"
	TagDeparture    = "departure-date"
	TagReturn       = "return-date"
	TagSelected     = "calendar__cell--selected"
	TagNext         = "next"
)

// Cell is one date with the tags one source attached to it.
type Cell struct {
	Date dates.Date `json:"date"`
	Tags []string   `json:"tags"`
}

// pickingLater reports the same-day case where the user is extending the
// return date past the shared day.
func pickingLater(s selection.Snapshot) bool {
	return !s.Departure.IsZero() &&
		!s.Tentative.IsZero() &&
		s.Next == selection.Return &&
		dates.IsSameDay(s.Departure, s.Return) &&
		dates.IsLater(s.Tentative, s.Departure)
}

// effectiveEnd resolves the last day of the range. tentative is true when the
// end comes from a hover rather than a committed return.
func effectiveEnd(s selection.Snapshot) (end dates.Date, tentative, later, ok bool) {
	switch {
	case !s.Departure.IsZero() && !s.Return.IsZero():
		if pickingLater(s) {
			return s.Tentative, true, true, true
		}
		return s.Return, false, false, true
	case !s.Departure.IsZero() && !s.Tentative.IsZero() && dates.IsLater(s.Tentative, s.Departure):
		return s.Tentative, true, false, true
	default:
		return dates.Date{}, false, false, false
	}
}

// Range materializes the highlighted days from departure through the
// effective end, inclusive. When the end is a hovered date, one more entry for
// that date tagged TagTentative follows the range; later entries win when the
// renderer resolves styles for a date.
func Range(s selection.Snapshot) []Cell {
	end, tentative, later, ok := effectiveEnd(s)
	if !ok {
		return nil
	}

	count := dates.DaysBetween(s.Departure, end) + 1
	if count < 1 {
		// Only reachable through an unguarded return adjustment.
		return nil
	}

	out := make([]Cell, 0, count+1)
	day := s.Departure
	for i := 0; i < count; i++ {
		tags := []string{TagInRange}
		if later && i == count-1 {
			tags = append(tags, TagPickingLater)
		}
		out = append(out, Cell{Date: day, Tags: tags})
		day = dates.AddDays(day, 1)
	}

	if tentative {
		out = append(out, Cell{Date: s.Tentative, Tags: []string{TagTentative}})
	}
	return out
}
