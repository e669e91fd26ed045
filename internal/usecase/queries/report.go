package queries

import (
	"context"
	"time"

	"car-rental-engine/internal/domain/revenue"
	"car-rental-engine/internal/pkg/clock"
	"car-rental-engine/internal/pkg/errs"
	"car-rental-engine/internal/usecase/readmodel"

	"golang.org/x/sync/errgroup"
)

const recentActivityLimit = 10

type ReportWindow struct {
	Start *time.Time
	End   *time.Time
}

type RevenuePointView struct {
	Label       string    `json:"label"`
	BucketStart time.Time `json:"bucket_start"`
	Revenue     int64     `json:"revenue"`
}

type DateRangeView struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	GroupBy string    `json:"group_by"`
}

type RevenueSeries struct {
	Points    []RevenuePointView `json:"points"`
	DateRange DateRangeView      `json:"date_range"`
}

type DashboardStats struct {
	TotalCustomers int64                  `json:"total_customers"`
	TotalCars      int64                  `json:"total_cars"`
	ActiveBookings int64                  `json:"active_bookings"`
	TotalRevenue   int64                  `json:"total_revenue"`
	RecentActivity []*readmodel.BookingRM `json:"recent_activity"`
	RevenueChart   []RevenuePointView     `json:"revenue_chart"`
	DateRange      DateRangeView          `json:"date_range"`
}

type ReportReadStore interface {
	// RevenueEntries returns confirmed or completed bookings created in [start, end].
	RevenueEntries(ctx context.Context, start, end time.Time) ([]revenue.Entry, error)
	RecentBookings(ctx context.Context, start, end time.Time, limit int) ([]*readmodel.BookingRM, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountCars(ctx context.Context) (int64, error)
	CountActiveBookings(ctx context.Context, now time.Time) (int64, error)
}

type ReportQueries interface {
	Revenue(ctx context.Context, window ReportWindow) (*RevenueSeries, error)
	Dashboard(ctx context.Context, window ReportWindow) (*DashboardStats, error)
}

type reportQueriesImpl struct {
	store ReportReadStore
	clock clock.Clock
	loc   *time.Location
}

func NewReportQueries(store ReportReadStore, clk clock.Clock, loc *time.Location) ReportQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &reportQueriesImpl{store: store, clock: clk, loc: loc}
}

func (q *reportQueriesImpl) Revenue(ctx context.Context, window ReportWindow) (*RevenueSeries, error) {
	rng, err := q.resolve(window)
	if err != nil {
		return nil, err
	}
	entries, err := q.store.RevenueEntries(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}
	return &RevenueSeries{
		Points:    toPointViews(revenue.Aggregate(entries, rng, q.loc)),
		DateRange: toDateRangeView(rng),
	}, nil
}

func (q *reportQueriesImpl) Dashboard(ctx context.Context, window ReportWindow) (*DashboardStats, error) {
	rng, err := q.resolve(window)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()

	var (
		stats   DashboardStats
		entries []revenue.Entry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (gerr error) {
		stats.TotalCustomers, gerr = q.store.CountCustomers(gctx)
		return gerr
	})
	g.Go(func() (gerr error) {
		stats.TotalCars, gerr = q.store.CountCars(gctx)
		return gerr
	})
	g.Go(func() (gerr error) {
		stats.ActiveBookings, gerr = q.store.CountActiveBookings(gctx, now)
		return gerr
	})
	g.Go(func() (gerr error) {
		stats.RecentActivity, gerr = q.store.RecentBookings(gctx, rng.Start, rng.End, recentActivityLimit)
		return gerr
	})
	g.Go(func() (gerr error) {
		entries, gerr = q.store.RevenueEntries(gctx, rng.Start, rng.End)
		return gerr
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	stats.TotalRevenue = revenue.Total(entries, rng)
	stats.RevenueChart = toPointViews(revenue.Aggregate(entries, rng, q.loc))
	stats.DateRange = toDateRangeView(rng)
	return &stats, nil
}

func (q *reportQueriesImpl) resolve(window ReportWindow) (revenue.Range, error) {
	rng, err := revenue.ResolveRange(window.Start, window.End, q.clock.Now(), q.loc)
	if err != nil {
		return revenue.Range{}, errs.Mark(err, ErrInvalidRange)
	}
	return rng, nil
}

func toPointViews(points []revenue.Point) []RevenuePointView {
	out := make([]RevenuePointView, 0, len(points))
	for _, p := range points {
		out = append(out, RevenuePointView{Label: p.Label, BucketStart: p.BucketStart, Revenue: p.Revenue})
	}
	return out
}

func toDateRangeView(rng revenue.Range) DateRangeView {
	return DateRangeView{Start: rng.Start, End: rng.End, GroupBy: string(rng.GroupBy)}
}
