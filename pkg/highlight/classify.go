package highlight

import (
	"tableflip.dev/roundtrip/pkg/dates"
	"tableflip.dev/roundtrip/pkg/selection"
)

// Classify returns the tag sets for every decorated date: the departure marker,
// the return marker, then the materialized range. A date can appear more than
// once; entries are not merged.
func Classify(s selection.Snapshot) []Cell {
	out := make([]Cell, 0, 2)
	if !s.Departure.IsZero() {
		tags := []string{TagDeparture, TagSelected}
		if s.Next == selection.Departure {
			tags = append(tags, TagNext)
		}
		out = append(out, Cell{Date: s.Departure, Tags: tags})
	}
	if !s.Return.IsZero() {
		tags := []string{TagReturn, TagSelected}
		if s.Next == selection.Return {
			tags = append(tags, TagNext)
		}
		out = append(out, Cell{Date: s.Return, Tags: tags})
	}
	return append(out, Range(s)...)
}

// Index unions classified tags by date for renderer lookups.
type Index struct {
	order []dates.Date
	tags  map[dates.Date][]string
}

// NewIndex builds an Index from cells. Tags for a date keep the order they
// were emitted in, without duplicates.
func NewIndex(cells []Cell) *Index {
	idx := &Index{tags: make(map[dates.Date][]string, len(cells))}
	for _, c := range cells {
		existing, seen := idx.tags[c.Date]
		if !seen {
			idx.order = append(idx.order, c.Date)
		}
		for _, tag := range c.Tags {
			if !contains(existing, tag) {
				existing = append(existing, tag)
			}
		}
		idx.tags[c.Date] = existing
	}
	return idx
}

// Tags returns the union of tags for d, nil when undecorated.
func (i *Index) Tags(d dates.Date) []string {
	if i == nil {
		return nil
	}
	return i.tags[d]
}

// Has reports whether d carries tag.
func (i *Index) Has(d dates.Date, tag string) bool {
	return contains(i.Tags(d), tag)
}

// Dates returns every decorated date in first-seen order.
func (i *Index) Dates() []dates.Date {
	if i == nil {
		return nil
	}
	return append([]dates.Date(nil), i.order...)
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
