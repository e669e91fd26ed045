package interval

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("end must be after start")

// Interval is an immutable closed time range with start < end.
type Interval struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidRange
	}
	return Interval{start: start, end: end}, nil
}

// MustNew panics on an invalid range. Only for fixtures.
func MustNew(start, end time.Time) Interval {
	iv, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

func (iv Interval) Start() time.Time {
	return iv.start
}

func (iv Interval) End() time.Time {
	return iv.end
}

func (iv Interval) IsZero() bool {
	return iv.start.IsZero() && iv.end.IsZero()
}

// Overlaps reports strict overlap: touching endpoints do not count.
// Reservation conflicts are decided with this rule.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start.Before(other.end) && iv.end.After(other.start)
}

// OverlapsInclusive reports overlap where touching endpoints count.
// The public availability check uses this rule.
func (iv Interval) OverlapsInclusive(other Interval) bool {
	return !iv.start.After(other.end) && !iv.end.Before(other.start)
}

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

func (iv Interval) DurationHours() (float64, error) {
	d := iv.Duration()
	if d <= 0 {
		return 0, ErrInvalidRange
	}
	return d.Hours(), nil
}
