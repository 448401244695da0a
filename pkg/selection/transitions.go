package selection

import (
	"log/slog"
	"time"

	"tableflip.dev/roundtrip/pkg/dates"
)

// Commit handles a click on the cell for year/month/day.
func (s *State) Commit(year int, month time.Month, day int) {
	s.CommitDate(dates.New(year, month, day))
}

// CommitDate handles a click on the given day.
func (s *State) CommitDate(selected dates.Date) {
	switch s.next {
	case Departure:
		s.departure = selected
		if !s.ret.IsZero() && dates.IsEarlier(s.ret, selected) {
			s.ret = dates.Date{}
		}
		s.next = Return
	case Return:
		if dates.IsEarlier(selected, s.departure) {
			// Redefining the start; keep waiting for a return.
			s.departure = selected
			s.next = Return
		} else {
			s.ret = selected
			s.next = None
		}
	default:
		switch {
		case s.departure.IsZero() && s.ret.IsZero():
			s.next = Departure
			s.CommitDate(selected)
			return
		case !dates.IsLater(selected, s.ret):
			s.departure = selected
			s.next = Return
		default:
			s.departure = selected
			s.ret = dates.Date{}
			s.next = Return
		}
	}
	s.debug("commit", slog.String("selected", selected.String()))
}

// hoverEligible reports whether a hover may move the tentative return date.
func (s *State) hoverEligible() bool {
	if s.departure.IsZero() {
		return false
	}
	if s.ret.IsZero() {
		return true
	}
	return dates.IsSameDay(s.departure, s.ret) && s.next == Return
}

// Hover records the pointer entering year/month/day.
func (s *State) Hover(year int, month time.Month, day int) {
	s.HoverDate(dates.New(year, month, day))
}

// HoverDate records the pointer entering the given day. Only a day later than
// the departure, while no distinct return is committed, moves the tentative
// return date. Anything else leaves the previous tentative in place.
func (s *State) HoverDate(hovered dates.Date) {
	if !s.hoverEligible() || !dates.IsLater(hovered, s.departure) {
		s.debug("hover ignored", slog.String("hovered", hovered.String()))
		return
	}
	s.tentative = hovered
}

// AdjustByDays moves the departure or return date by n days. A departure that
// would land before today is rejected. The return date is not guarded.
func (s *State) AdjustByDays(target PickTarget, n int) {
	switch target {
	case Departure:
		if s.departure.IsZero() {
			s.debug("adjust ignored, no departure")
			return
		}
		candidate := dates.AddDays(s.departure, n)
		if dates.IsEarlier(candidate, s.Today()) {
			s.debug("adjust rejected, departure in the past", slog.String("candidate", candidate.String()))
			return
		}
		s.departure = candidate
		if !s.ret.IsZero() && dates.IsEarlier(s.ret, candidate) {
			s.ret = dates.Date{}
		}
		s.next = Departure
	case Return:
		if s.ret.IsZero() {
			s.debug("adjust ignored, no return")
			return
		}
		s.ret = dates.AddDays(s.ret, n)
		s.next = Return
	default:
		return
	}
	s.debug("adjust", slog.String("target", target.String()), slog.Int("days", n))
}

// SetNext changes which date the next click sets. Asking for a return before
// any departure exists is ignored.
func (s *State) SetNext(target PickTarget) {
	if target == Return && s.departure.IsZero() {
		s.debug("next ignored, no departure")
		return
	}
	s.next = target
}
