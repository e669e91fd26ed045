package repository

import (
	"context"

	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/infra"
	"car-rental-engine/internal/infra/converter"
	"car-rental-engine/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var carInsertColumns = []string{
	"id", "brand", "model", "category", "fuel_type", "transmission", "seats",
	"city", "area", "featured", "is_active", "manually_available",
	"base_rate_per_day", "extra_km_charge", "security_deposit",
	"total_bookings", "total_revenue", "created_at", "updated_at",
}

type CarRepository struct {
	db db.DBTX
}

func NewCarRepository(dbtx db.DBTX) *CarRepository {
	return &CarRepository{db: dbtx}
}

func (r *CarRepository) Create(ctx context.Context, c *car.Car) error {
	query, args, err := psql.Insert("cars").
		Columns(carInsertColumns...).
		Values(converter.CarToInsertValues(c)...).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build car insert", err)
	}
	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to create car", err)
	}
	return nil
}

func (r *CarRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	query, args, err := psql.Select(converter.CarColumns...).
		From("cars c").
		Where(sq.Eq{"c.id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build car lock query", err)
	}

	var row converter.CarRow
	if err = r.db.QueryRow(ctx, query, args...).Scan(row.ScanTargets()...); err != nil {
		return nil, infra.WrapRepoErr("failed to lock car", err)
	}

	spans, err := converter.LoadSpans(ctx, r.db, []uuid.UUID{id}, nil)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load car spans", err)
	}
	c, err := converter.CarToDomain(row, spans)
	if err != nil {
		return nil, infra.WrapRepoErr("stored car is invalid", err)
	}
	return c, nil
}

func (r *CarRepository) AddMaintenance(ctx context.Context, carID uuid.UUID, span car.MaintenanceSpan) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO car_maintenance (id, car_id, start_at, end_at, reason) VALUES ($1, $2, $3, $4, $5)`,
		span.ID(), carID, span.Interval().Start(), span.Interval().End(), span.Reason())
	if err != nil {
		return infra.WrapRepoErr("failed to add maintenance window", err)
	}
	return nil
}

func (r *CarRepository) RemoveMaintenance(ctx context.Context, carID, maintenanceID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM car_maintenance WHERE id = $1 AND car_id = $2`, maintenanceID, carID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to remove maintenance window", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CarRepository) SetManualAvailability(ctx context.Context, carID uuid.UUID, available bool) error {
	return r.update(ctx, "failed to set manual availability",
		`UPDATE cars SET manually_available = $2, updated_at = now() WHERE id = $1`, carID, available)
}

func (r *CarRepository) AddRevenue(ctx context.Context, carID uuid.UUID, amount int64) error {
	return r.update(ctx, "failed to update car revenue",
		`UPDATE cars SET total_revenue = total_revenue + $2, updated_at = now() WHERE id = $1`, carID, amount)
}

func (r *CarRepository) update(ctx context.Context, msg, query string, carID uuid.UUID, arg any) error {
	tag, err := r.db.Exec(ctx, query, carID, arg)
	if err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}
