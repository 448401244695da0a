// Package selection owns the round-trip picker state: the committed departure
// and return dates, the hover preview and which date the next click sets.
package selection

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"tableflip.dev/roundtrip/pkg/dates"
)

// PickTarget names the date slot the next click writes to.
type PickTarget int

const (
	// None is the post-completion state; the next click reopens the selection.
	None PickTarget = iota
	// Departure means the next click sets the departure date.
	Departure
	// Return means the next click sets the return date.
	Return
)

// String implements fmt.Stringer.
func (p PickTarget) String() string {
	switch p {
	case Departure:
		return "departure"
	case Return:
		return "return"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p PickTarget) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParseTarget maps "departure"/"return" (or "d"/"r") to a PickTarget.
func ParseTarget(s string) (PickTarget, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "departure", "depart", "d":
		return Departure, true
	case "return", "r":
		return Return, true
	default:
		return None, false
	}
}

// Snapshot is an immutable copy of the state fields.
type Snapshot struct {
	Departure dates.Date `json:"departure"`
	Return    dates.Date `json:"return"`
	Tentative dates.Date `json:"tentative"`
	Next      PickTarget `json:"next"`
}

// Options configures a State.
type Options struct {
	// Now reports the current instant; "today" is its local calendar day.
	Now func() time.Time
	// Logger receives transition logs at debug level.
	Logger *slog.Logger
}

// State is the selection state machine. It is not safe for concurrent use;
// the owning widget serializes every event.
type State struct {
	departure dates.Date
	ret       dates.Date
	tentative dates.Date
	next      PickTarget

	now func() time.Time
	log *slog.Logger
}

// New returns an empty State with departure picked next.
func New(opts Options) *State {
	s := &State{
		next: Departure,
		now:  opts.Now,
		log:  opts.Logger,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Departure returns the departure date, zero when unset.
func (s *State) Departure() dates.Date { return s.departure }

// Return returns the return date, zero when unset.
func (s *State) Return() dates.Date { return s.ret }

// Tentative returns the last eligible hovered date.
func (s *State) Tentative() dates.Date { return s.tentative }

// Next returns the slot the next click writes to.
func (s *State) Next() PickTarget { return s.next }

// Today returns the local calendar day according to the state's clock.
func (s *State) Today() dates.Date { return dates.Today(s.now()) }

// Snapshot copies the current fields.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Departure: s.departure,
		Return:    s.ret,
		Tentative: s.tentative,
		Next:      s.next,
	}
}

func (s *State) debug(msg string, args ...any) {
	args = append(args,
		slog.String("departure", s.departure.String()),
		slog.String("return", s.ret.String()),
		slog.String("next", s.next.String()),
	)
	s.log.Debug(msg, args...)
}
