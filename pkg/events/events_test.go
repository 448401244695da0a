package events

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/roundtrip/pkg/dates"
	"tableflip.dev/roundtrip/pkg/selection"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Event
	}{
		{"click:2024-02-10", Event{Kind: KindClick, Date: dates.New(2024, time.February, 10)}},
		{"HOVER:2024-02-20", Event{Kind: KindHover, Date: dates.New(2024, time.February, 20)}},
		{"adjust:departure:-1", Event{Kind: KindAdjust, Target: selection.Departure, Delta: -1}},
		{"adjust:r:+3", Event{Kind: KindAdjust, Target: selection.Return, Delta: 3}},
		{"adjust:return:1w2d", Event{Kind: KindAdjust, Target: selection.Return, Delta: 9}},
		{"next:return", Event{Kind: KindNext, Target: selection.Return}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("jump:2024-02-10"); !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("expected ErrUnknownEvent, got %v", err)
	}
	if _, err := Parse("next:sideways"); !errors.Is(err, ErrBadTarget) {
		t.Fatalf("expected ErrBadTarget, got %v", err)
	}
	if _, err := Parse("adjust:departure"); err == nil {
		t.Fatalf("expected error for missing days")
	}
	if _, err := Parse("adjust:departure:soon"); err == nil {
		t.Fatalf("expected error for bad days")
	}
	if _, err := Parse("click:tomorrow"); err == nil {
		t.Fatalf("expected error for bad date")
	}
}

func TestEventStringRoundTrips(t *testing.T) {
	for _, in := range []string{"click:2024-02-10", "hover:2024-02-20", "adjust:departure:-1", "adjust:return:+2", "next:return"} {
		ev, err := Parse(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.String() != in {
			t.Fatalf("expected %q, got %q", in, ev.String())
		}
	}
}

func TestReplay(t *testing.T) {
	evs, err := ParseAll("click:2024-02-10, hover:2024-02-20", "click:2024-02-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(evs) != 3 {
		t.Fatalf("expected 3 events, got %d", len(evs))
	}

	s := selection.New(selection.Options{Now: func() time.Time {
		return time.Date(2024, time.January, 1, 12, 0, 0, 0, time.Local)
	}})
	Replay(s, evs)

	if s.Departure() != dates.New(2024, time.February, 10) {
		t.Fatalf("unexpected departure %s", s.Departure())
	}
	if s.Return() != dates.New(2024, time.February, 15) {
		t.Fatalf("unexpected return %s", s.Return())
	}
	if s.Next() != selection.None {
		t.Fatalf("expected trip complete, got %s", s.Next())
	}
}
