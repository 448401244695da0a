// Package events parses textual picker events and replays them against a
// selection state. Each event is one token:
//
//	click:2024-02-10
//	hover:2024-02-20
//	adjust:departure:-1
//	adjust:return:+1w
//	next:return
package events

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/roundtrip/pkg/dates"
	"tableflip.dev/roundtrip/pkg/selection"
	"tableflip.dev/roundtrip/pkg/timeutil"
)

var (
	// ErrUnknownEvent is returned for an unrecognized event kind.
	ErrUnknownEvent = errors.New("unknown event")
	// ErrBadTarget is returned when an event names neither departure nor return.
	ErrBadTarget = errors.New("target must be departure or return")
)

// Kind identifies the grid interaction an Event represents.
type Kind string

const (
	KindClick  Kind = "click"
	KindHover  Kind = "hover"
	KindAdjust Kind = "adjust"
	KindNext   Kind = "next"
)

// Event is a single parsed interaction.
type Event struct {
	Kind   Kind
	Date   dates.Date
	Target selection.PickTarget
	Delta  int
}

// String renders e back into its token form.
func (e Event) String() string {
	switch e.Kind {
	case KindClick, KindHover:
		return fmt.Sprintf("%s:%s", e.Kind, e.Date)
	case KindAdjust:
		return fmt.Sprintf("%s:%s:%+d", e.Kind, e.Target, e.Delta)
	case KindNext:
		return fmt.Sprintf("%s:%s", e.Kind, e.Target)
	default:
		return string(e.Kind)
	}
}

// Parse reads one event token.
func Parse(token string) (Event, error) {
	parts := strings.Split(strings.TrimSpace(token), ":")
	kind := Kind(strings.ToLower(parts[0]))
	args := parts[1:]

	switch kind {
	case KindClick, KindHover:
		if len(args) != 1 {
			return Event{}, fmt.Errorf("%s expects a date, got %q", kind, token)
		}
		d, err := dates.Parse(args[0])
		if err != nil {
			return Event{}, fmt.Errorf("%s: %w", kind, err)
		}
		return Event{Kind: kind, Date: d}, nil
	case KindAdjust:
		if len(args) != 2 {
			return Event{}, fmt.Errorf("adjust expects target and days, got %q", token)
		}
		target, ok := selection.ParseTarget(args[0])
		if !ok {
			return Event{}, fmt.Errorf("adjust %q: %w", args[0], ErrBadTarget)
		}
		delta, err := timeutil.ParseDayOffset(args[1])
		if err != nil {
			return Event{}, fmt.Errorf("adjust days %q: %w", args[1], err)
		}
		return Event{Kind: kind, Target: target, Delta: delta}, nil
	case KindNext:
		if len(args) != 1 {
			return Event{}, fmt.Errorf("next expects a target, got %q", token)
		}
		target, ok := selection.ParseTarget(args[0])
		if !ok {
			return Event{}, fmt.Errorf("next %q: %w", args[0], ErrBadTarget)
		}
		return Event{Kind: kind, Target: target}, nil
	default:
		return Event{}, fmt.Errorf("%q: %w", parts[0], ErrUnknownEvent)
	}
}

// ParseAll parses every whitespace or comma separated token in the inputs.
func ParseAll(inputs ...string) ([]Event, error) {
	var out []Event
	for _, in := range inputs {
		fields := strings.FieldsFunc(in, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\n' || r == '\t'
		})
		for _, f := range fields {
			ev, err := Parse(f)
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
		}
	}
	return out, nil
}

// Apply feeds e into s.
func Apply(s *selection.State, e Event) {
	switch e.Kind {
	case KindClick:
		s.CommitDate(e.Date)
	case KindHover:
		s.HoverDate(e.Date)
	case KindAdjust:
		s.AdjustByDays(e.Target, e.Delta)
	case KindNext:
		s.SetNext(e.Target)
	}
}

// Replay applies every event in order.
func Replay(s *selection.State, evs []Event) {
	for _, e := range evs {
		Apply(s, e)
	}
}
