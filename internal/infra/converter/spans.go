package converter

import (
	"context"

	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/domain/interval"
	"car-rental-engine/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Spans struct {
	Reserved    map[uuid.UUID][]car.ReservedSpan
	Maintenance map[uuid.UUID][]car.MaintenanceSpan
}

// LoadSpans fetches reserved and maintenance spans for the given cars. With a window,
// only spans touching it (endpoints included) are read, which is all the availability
// check looks at.
func LoadSpans(ctx context.Context, dbtx db.DBTX, carIDs []uuid.UUID, window *interval.Interval) (Spans, error) {
	spans := Spans{
		Reserved:    make(map[uuid.UUID][]car.ReservedSpan),
		Maintenance: make(map[uuid.UUID][]car.MaintenanceSpan),
	}
	if len(carIDs) == 0 {
		return spans, nil
	}

	reservedQ := psql.Select("car_id", "booking_id", "start_at", "end_at").
		From("car_reservations").
		Where(sq.Expr("car_id = ANY(?)", carIDs)).
		OrderBy("start_at")
	maintenanceQ := psql.Select("car_id", "id", "start_at", "end_at", "reason").
		From("car_maintenance").
		Where(sq.Expr("car_id = ANY(?)", carIDs)).
		OrderBy("start_at")
	if window != nil {
		touching := sq.And{sq.LtOrEq{"start_at": window.End()}, sq.GtOrEq{"end_at": window.Start()}}
		reservedQ = reservedQ.Where(touching)
		maintenanceQ = maintenanceQ.Where(touching)
	}

	if err := loadReserved(ctx, dbtx, reservedQ, spans.Reserved); err != nil {
		return Spans{}, err
	}
	if err := loadMaintenance(ctx, dbtx, maintenanceQ, spans.Maintenance); err != nil {
		return Spans{}, err
	}
	return spans, nil
}

func loadReserved(ctx context.Context, dbtx db.DBTX, q sq.SelectBuilder, out map[uuid.UUID][]car.ReservedSpan) error {
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}
	rows, err := dbtx.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			carID, bookingID uuid.UUID
			s                SpanRow
		)
		if err = rows.Scan(&carID, &bookingID, &s.Start, &s.End); err != nil {
			return err
		}
		span, serr := car.NewReservedSpan(interval.MustNew(s.Start, s.End), bookingID)
		if serr != nil {
			return serr
		}
		out[carID] = append(out[carID], span)
	}
	return rows.Err()
}

func loadMaintenance(ctx context.Context, dbtx db.DBTX, q sq.SelectBuilder, out map[uuid.UUID][]car.MaintenanceSpan) error {
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}
	rows, err := dbtx.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			carID, id uuid.UUID
			s         SpanRow
			reason    string
		)
		if err = rows.Scan(&carID, &id, &s.Start, &s.End, &reason); err != nil {
			return err
		}
		out[carID] = append(out[carID], car.ReconstructMaintenanceSpan(id, interval.MustNew(s.Start, s.End), reason))
	}
	return rows.Err()
}
