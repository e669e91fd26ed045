package revenue

import (
	"fmt"
	"time"
)

// Entry is one booking's contribution candidate.
type Entry struct {
	CreatedAt  time.Time
	TotalPrice int64
	Counts     bool
}

type Point struct {
	Label       string
	BucketStart time.Time
	Revenue     int64
}

// Aggregate sums counting entries created inside rng into day or month buckets and
// returns one point per bucket touched by rng, oldest first, zero-filled.
func Aggregate(entries []Entry, rng Range, loc *time.Location) []Point {
	if loc == nil {
		loc = time.UTC
	}

	sums := make(map[time.Time]int64)
	for _, e := range entries {
		if !e.Counts || !rng.Contains(e.CreatedAt) {
			continue
		}
		sums[bucketStart(e.CreatedAt.In(loc), rng.GroupBy)] += e.TotalPrice
	}

	end := rng.End.In(loc)
	points := make([]Point, 0)
	for cur := bucketStart(rng.Start.In(loc), rng.GroupBy); !cur.After(end); cur = next(cur, rng.GroupBy) {
		points = append(points, Point{
			Label:       label(cur, rng.GroupBy),
			BucketStart: cur,
			Revenue:     sums[cur],
		})
	}
	return points
}

// Total sums counting entries created inside rng.
func Total(entries []Entry, rng Range) int64 {
	var total int64
	for _, e := range entries {
		if e.Counts && rng.Contains(e.CreatedAt) {
			total += e.TotalPrice
		}
	}
	return total
}

func bucketStart(t time.Time, g GroupBy) time.Time {
	if g == GroupByMonth {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func next(t time.Time, g GroupBy) time.Time {
	if g == GroupByMonth {
		return t.AddDate(0, 1, 0)
	}
	return t.AddDate(0, 0, 1)
}

func label(t time.Time, g GroupBy) string {
	if g == GroupByMonth {
		return fmt.Sprintf("%s %d", t.Month().String()[:3], t.Year())
	}
	return fmt.Sprintf("%d/%d", t.Day(), int(t.Month()))
}
