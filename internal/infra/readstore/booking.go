package readstore

import (
	"context"
	"time"

	"car-rental-engine/internal/domain/booking"
	"car-rental-engine/internal/domain/revenue"
	"car-rental-engine/internal/infra"
	"car-rental-engine/internal/infra/converter"
	"car-rental-engine/internal/infra/db"
	"car-rental-engine/internal/usecase/readmodel"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func bookingViewQuery() sq.SelectBuilder {
	cols := append(append([]string{}, converter.BookingColumns...), "c.brand || ' ' || c.model")
	return psql.Select(cols...).
		From("bookings b").
		Join("cars c ON c.id = b.car_id")
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	query, args, err := bookingViewQuery().Where(sq.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	var (
		row     converter.BookingRow
		carName string
	)
	if err = r.db.QueryRow(ctx, query, args...).Scan(append(row.ScanTargets(), &carName)...); err != nil {
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return converter.BookingToRM(row, carName), nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error) {
	return r.list(ctx, bookingViewQuery().
		Where(sq.Eq{"b.user_id": userID}).
		OrderBy("b.created_at DESC", "b.id"))
}

func (r *BookingReadStore) RecentBookings(ctx context.Context, start, end time.Time, limit int) ([]*readmodel.BookingRM, error) {
	return r.list(ctx, bookingViewQuery().
		Where(sq.GtOrEq{"b.created_at": start}).
		Where(sq.LtOrEq{"b.created_at": end}).
		OrderBy("b.created_at DESC", "b.id").
		Limit(uint64(limit)))
}

func (r *BookingReadStore) RevenueEntries(ctx context.Context, start, end time.Time) ([]revenue.Entry, error) {
	statuses := make([]string, 0, 2)
	for _, s := range booking.RevenueStatuses() {
		statuses = append(statuses, s.String())
	}
	query, args, err := psql.Select("created_at", "total_price").
		From("bookings").
		Where(sq.Eq{"status": statuses}).
		Where(sq.GtOrEq{"created_at": start}).
		Where(sq.LtOrEq{"created_at": end}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build revenue query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query revenue", err)
	}
	defer rows.Close()

	entries := make([]revenue.Entry, 0)
	for rows.Next() {
		e := revenue.Entry{Counts: true}
		if err = rows.Scan(&e.CreatedAt, &e.TotalPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan revenue entry", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate revenue entries", err)
	}
	return entries, nil
}

// CountCustomers counts distinct users that ever booked; accounts live in the auth service.
func (r *BookingReadStore) CountCustomers(ctx context.Context) (int64, error) {
	return r.count(ctx, "failed to count customers", `SELECT COUNT(DISTINCT user_id) FROM bookings`)
}

func (r *BookingReadStore) CountCars(ctx context.Context) (int64, error) {
	return r.count(ctx, "failed to count cars", `SELECT COUNT(*) FROM cars`)
}

func (r *BookingReadStore) CountActiveBookings(ctx context.Context, now time.Time) (int64, error) {
	return r.count(ctx, "failed to count active bookings",
		`SELECT COUNT(*) FROM bookings WHERE status = $1 AND end_at > $2`, booking.StatusConfirmed.String(), now)
}

func (r *BookingReadStore) count(ctx context.Context, msg, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr(msg, err)
	}
	return n, nil
}

func (r *BookingReadStore) list(ctx context.Context, q sq.SelectBuilder) ([]*readmodel.BookingRM, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	out := make([]*readmodel.BookingRM, 0)
	for rows.Next() {
		var (
			row     converter.BookingRow
			carName string
		)
		if err = rows.Scan(append(row.ScanTargets(), &carName)...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		out = append(out, converter.BookingToRM(row, carName))
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return out, nil
}
