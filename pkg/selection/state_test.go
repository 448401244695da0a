package selection

import (
	"testing"
	"time"

	"tableflip.dev/roundtrip/pkg/dates"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
	}
}

func newState() *State {
	return New(Options{Now: fixedClock(2024, time.January, 15)})
}

func d(month time.Month, day int) dates.Date {
	return dates.New(2024, month, day)
}

func TestNewStartsWithDeparture(t *testing.T) {
	s := newState()
	if s.Next() != Departure {
		t.Fatalf("expected departure next, got %s", s.Next())
	}
	if !s.Departure().IsZero() || !s.Return().IsZero() || !s.Tentative().IsZero() {
		t.Fatalf("expected empty state, got %+v", s.Snapshot())
	}
}

func TestCommitRoundTrip(t *testing.T) {
	s := newState()
	s.Commit(2024, time.February, 10)
	if s.Next() != Return {
		t.Fatalf("expected return next after departure, got %s", s.Next())
	}
	s.Commit(2024, time.February, 15)

	if s.Departure() != d(time.February, 10) {
		t.Fatalf("unexpected departure %s", s.Departure())
	}
	if s.Return() != d(time.February, 15) {
		t.Fatalf("unexpected return %s", s.Return())
	}
	if s.Next() != None {
		t.Fatalf("expected none next, got %s", s.Next())
	}
}

func TestCommitEarlierReanchorsDeparture(t *testing.T) {
	s := newState()
	s.Commit(2024, time.February, 10)
	s.Commit(2024, time.February, 5)

	if s.Departure() != d(time.February, 5) {
		t.Fatalf("expected departure to re-anchor, got %s", s.Departure())
	}
	if !s.Return().IsZero() {
		t.Fatalf("expected no return, got %s", s.Return())
	}
	if s.Next() != Return {
		t.Fatalf("expected return next, got %s", s.Next())
	}
}

func TestCommitSameDayCompletesTrip(t *testing.T) {
	s := newState()
	s.Commit(2024, time.February, 10)
	s.Commit(2024, time.February, 10)
	if s.Return() != d(time.February, 10) || s.Next() != None {
		t.Fatalf("expected same-day trip, got %+v", s.Snapshot())
	}
}

func TestCommitAfterCompletion(t *testing.T) {
	cases := []struct {
		name       string
		click      dates.Date
		wantDepart dates.Date
		wantReturn dates.Date
	}{
		{
			name:       "earlier than return keeps return",
			click:      d(time.February, 12),
			wantDepart: d(time.February, 12),
			wantReturn: d(time.February, 15),
		},
		{
			name:       "same as return keeps return",
			click:      d(time.February, 15),
			wantDepart: d(time.February, 15),
			wantReturn: d(time.February, 15),
		},
		{
			name:       "before departure keeps return",
			click:      d(time.February, 1),
			wantDepart: d(time.February, 1),
			wantReturn: d(time.February, 15),
		},
		{
			name:       "later than return clears return",
			click:      d(time.February, 20),
			wantDepart: d(time.February, 20),
			wantReturn: dates.Date{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newState()
			s.CommitDate(d(time.February, 10))
			s.CommitDate(d(time.February, 15))
			s.CommitDate(tc.click)

			if s.Departure() != tc.wantDepart {
				t.Fatalf("expected departure %s, got %s", tc.wantDepart, s.Departure())
			}
			if s.Return() != tc.wantReturn {
				t.Fatalf("expected return %q, got %q", tc.wantReturn, s.Return())
			}
			if s.Next() != Return {
				t.Fatalf("expected return next, got %s", s.Next())
			}
		})
	}
}

func TestCommitDepartureClearsEarlierReturn(t *testing.T) {
	s := newState()
	s.CommitDate(d(time.February, 10))
	s.CommitDate(d(time.February, 15))
	s.SetNext(Departure)
	s.CommitDate(d(time.February, 20))

	if !s.Return().IsZero() {
		t.Fatalf("expected return cleared, got %s", s.Return())
	}
	if s.Next() != Return {
		t.Fatalf("expected return next, got %s", s.Next())
	}

	s.CommitDate(d(time.February, 25))
	s.SetNext(Departure)
	s.CommitDate(d(time.February, 22))
	if s.Return() != d(time.February, 25) {
		t.Fatalf("expected return kept, got %s", s.Return())
	}
}

func TestCommitNoneWithEmptyStateInitializes(t *testing.T) {
	s := newState()
	s.SetNext(None)
	s.CommitDate(d(time.March, 3))
	if s.Departure() != d(time.March, 3) || s.Next() != Return {
		t.Fatalf("expected initialization to pick departure, got %+v", s.Snapshot())
	}
}

func TestReturnNeverBeforeDepartureAfterCommits(t *testing.T) {
	clicks := []dates.Date{
		d(time.March, 10), d(time.March, 4), d(time.March, 8), d(time.March, 2),
		d(time.March, 30), d(time.March, 1), d(time.March, 12), d(time.March, 12),
		d(time.April, 2), d(time.March, 20),
	}
	s := newState()
	for _, c := range clicks {
		s.CommitDate(c)
		if s.Next() == None && dates.IsEarlier(s.Return(), s.Departure()) {
			t.Fatalf("return %s earlier than departure %s", s.Return(), s.Departure())
		}
		if !s.Return().IsZero() && dates.IsEarlier(s.Return(), s.Departure()) {
			t.Fatalf("return %s earlier than departure %s", s.Return(), s.Departure())
		}
	}
}

func TestHover(t *testing.T) {
	s := newState()
	s.Hover(2024, time.February, 20)
	if !s.Tentative().IsZero() {
		t.Fatalf("expected hover without departure to be ignored")
	}

	s.Commit(2024, time.February, 10)
	s.Hover(2024, time.February, 8)
	if !s.Tentative().IsZero() {
		t.Fatalf("expected earlier hover to be ignored, got %s", s.Tentative())
	}

	s.Hover(2024, time.February, 20)
	if s.Tentative() != d(time.February, 20) {
		t.Fatalf("expected tentative 2024-02-20, got %s", s.Tentative())
	}

	s.Hover(2024, time.February, 10)
	if s.Tentative() != d(time.February, 20) {
		t.Fatalf("expected previous tentative to linger, got %s", s.Tentative())
	}
}

func TestHoverIgnoredWithDistinctReturn(t *testing.T) {
	s := newState()
	s.Commit(2024, time.February, 10)
	s.Commit(2024, time.February, 15)
	s.Hover(2024, time.February, 20)
	if !s.Tentative().IsZero() {
		t.Fatalf("expected hover to be ignored, got %s", s.Tentative())
	}
}

func TestHoverSameDayExtending(t *testing.T) {
	s := newState()
	s.Commit(2024, time.February, 10)
	s.Commit(2024, time.February, 10)

	// Trip complete, nothing to extend yet.
	s.Hover(2024, time.February, 14)
	if !s.Tentative().IsZero() {
		t.Fatalf("expected hover ignored while next is none, got %s", s.Tentative())
	}

	s.SetNext(Return)
	s.Hover(2024, time.February, 14)
	if s.Tentative() != d(time.February, 14) {
		t.Fatalf("expected tentative 2024-02-14, got %s", s.Tentative())
	}
}

func TestAdjustDeparture(t *testing.T) {
	s := newState()
	s.CommitDate(d(time.February, 10))
	s.CommitDate(d(time.February, 12))

	s.AdjustByDays(Departure, 1)
	if s.Departure() != d(time.February, 11) {
		t.Fatalf("expected departure 2024-02-11, got %s", s.Departure())
	}
	if s.Next() != Departure {
		t.Fatalf("expected departure next, got %s", s.Next())
	}

	s.AdjustByDays(Departure, 5)
	if s.Departure() != d(time.February, 16) {
		t.Fatalf("expected departure 2024-02-16, got %s", s.Departure())
	}
	if !s.Return().IsZero() {
		t.Fatalf("expected return cleared, got %s", s.Return())
	}
}

func TestAdjustDepartureRejectsPast(t *testing.T) {
	s := newState()
	s.CommitDate(d(time.January, 20))
	s.CommitDate(d(time.January, 25))
	before := s.Snapshot()

	s.AdjustByDays(Departure, -1000)
	if s.Snapshot() != before {
		t.Fatalf("expected state unchanged, got %+v", s.Snapshot())
	}

	// Today itself is allowed.
	s.AdjustByDays(Departure, -5)
	if s.Departure() != d(time.January, 15) {
		t.Fatalf("expected departure on today, got %s", s.Departure())
	}
	s.AdjustByDays(Departure, -1)
	if s.Departure() != d(time.January, 15) {
		t.Fatalf("expected yesterday to be rejected, got %s", s.Departure())
	}
}

// Return adjustments are not checked against today or the departure date.
func TestAdjustReturnIsUnguarded(t *testing.T) {
	s := newState()
	s.CommitDate(d(time.January, 20))
	s.CommitDate(d(time.January, 25))

	s.AdjustByDays(Return, -30)
	if s.Return() != dates.New(2023, time.December, 26) {
		t.Fatalf("expected unguarded return adjustment, got %s", s.Return())
	}
	if s.Next() != Return {
		t.Fatalf("expected return next, got %s", s.Next())
	}
}

func TestAdjustWithoutDateIsNoop(t *testing.T) {
	s := newState()
	s.AdjustByDays(Departure, 1)
	s.AdjustByDays(Return, 1)
	if s.Snapshot() != (Snapshot{Next: Departure}) {
		t.Fatalf("expected untouched state, got %+v", s.Snapshot())
	}
}

func TestSetNext(t *testing.T) {
	s := newState()
	s.SetNext(Return)
	if s.Next() != Departure {
		t.Fatalf("expected return request without departure to be ignored")
	}
	s.CommitDate(d(time.February, 10))
	s.SetNext(Departure)
	if s.Next() != Departure {
		t.Fatalf("expected departure next, got %s", s.Next())
	}
	s.SetNext(Return)
	if s.Next() != Return {
		t.Fatalf("expected return next, got %s", s.Next())
	}
}

func TestParseTarget(t *testing.T) {
	for in, want := range map[string]PickTarget{
		"departure": Departure,
		"D":         Departure,
		"return":    Return,
		" r ":       Return,
	} {
		got, ok := ParseTarget(in)
		if !ok || got != want {
			t.Fatalf("ParseTarget(%q) = %s, %v", in, got, ok)
		}
	}
	if _, ok := ParseTarget("sideways"); ok {
		t.Fatalf("expected unknown target to fail")
	}
}
