package request

import (
	"strings"
	"time"

	"car-rental-engine/internal/pkg/errs"
	"car-rental-engine/internal/usecase/shared"
)

const dateOnlyLayout = "2006-01-02"

// ParseDate accepts RFC3339 timestamps or bare dates; a bare date means midnight in loc.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errs.Mark(errs.New("date is required"), errs.ErrInvalidInput)
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(dateOnlyLayout, raw, loc)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrap(err, "unrecognised date "+raw), errs.ErrInvalidInput)
	}
	return t, nil
}

func parseWindow(start, end string) (shared.DateWindow, error) {
	s, err := ParseDate(start, time.UTC)
	if err != nil {
		return shared.DateWindow{}, err
	}
	e, err := ParseDate(end, time.UTC)
	if err != nil {
		return shared.DateWindow{}, err
	}
	return shared.DateWindow{Start: s, End: e}, nil
}
