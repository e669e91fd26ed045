package revenue

import (
	"errors"
	"time"
)

// DayModeLimit is the widest window still bucketed by day.
const DayModeLimit = 31 * 24 * time.Hour

const defaultLookbackMonths = 6

var ErrInvalidRange = errors.New("report range end must not be before start")

type GroupBy string

const (
	GroupByDay   GroupBy = "day"
	GroupByMonth GroupBy = "month"
)

type Range struct {
	Start   time.Time
	End     time.Time
	GroupBy GroupBy
}

// Contains reports whether t falls inside [Start, End].
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ResolveRange builds the reporting window. Both bounds must be supplied together;
// otherwise the window covers the last six calendar months up to now, starting on day 1.
// A supplied end is stretched to the last millisecond of its day in loc.
func ResolveRange(start, end *time.Time, now time.Time, loc *time.Location) (Range, error) {
	if loc == nil {
		loc = time.UTC
	}

	var rng Range
	if start != nil && end != nil {
		s := start.In(loc)
		e := end.In(loc)
		rng.Start = s
		rng.End = time.Date(e.Year(), e.Month(), e.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	} else {
		n := now.In(loc)
		rng.Start = time.Date(n.Year(), n.Month()-defaultLookbackMonths, 1, 0, 0, 0, 0, loc)
		rng.End = n
	}

	if rng.End.Before(rng.Start) {
		return Range{}, ErrInvalidRange
	}
	rng.GroupBy = groupFor(rng.Start, rng.End)
	return rng, nil
}

func groupFor(start, end time.Time) GroupBy {
	if end.Sub(start) <= DayModeLimit {
		return GroupByDay
	}
	return GroupByMonth
}
