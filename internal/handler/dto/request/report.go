package request

import (
	"time"

	"car-rental-engine/internal/pkg/errs"
	"car-rental-engine/internal/usecase/queries"
)

type ReportQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// ToWindow parses both bounds in the report zone; supplying only one is rejected.
func (q ReportQuery) ToWindow(loc *time.Location) (queries.ReportWindow, error) {
	if q.StartDate == "" && q.EndDate == "" {
		return queries.ReportWindow{}, nil
	}
	if q.StartDate == "" || q.EndDate == "" {
		return queries.ReportWindow{}, errs.Mark(errs.New("startDate and endDate go together"), errs.ErrInvalidRange)
	}
	start, err := ParseDate(q.StartDate, loc)
	if err != nil {
		return queries.ReportWindow{}, err
	}
	end, err := ParseDate(q.EndDate, loc)
	if err != nil {
		return queries.ReportWindow{}, err
	}
	return queries.ReportWindow{Start: &start, End: &end}, nil
}
