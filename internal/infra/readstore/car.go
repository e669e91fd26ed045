package readstore

import (
	"context"
	"strings"

	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/infra"
	"car-rental-engine/internal/infra/converter"
	"car-rental-engine/internal/infra/db"
	"car-rental-engine/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type CarReadStore struct {
	db db.DBTX
}

func NewCarReadStore(dbtx db.DBTX) *CarReadStore {
	return &CarReadStore{db: dbtx}
}

func (r *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	query, args, err := psql.Select(converter.CarColumns...).
		From("cars c").
		Where(sq.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build car query", err)
	}

	var row converter.CarRow
	if err = r.db.QueryRow(ctx, query, args...).Scan(row.ScanTargets()...); err != nil {
		return nil, infra.WrapRepoErr("failed to get car", err)
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

func (r *CarReadStore) Search(ctx context.Context, filter queries.CarFilter) ([]*car.Car, error) {
	query, args, err := buildCarSearch(filter).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build car search", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search cars", err)
	}
	defer rows.Close()

	var (
		carRows []converter.CarRow
		ids     []uuid.UUID
	)
	for rows.Next() {
		var row converter.CarRow
		if err = rows.Scan(row.ScanTargets()...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan car", err)
		}
		carRows = append(carRows, row)
		ids = append(ids, row.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cars", err)
	}

	var spans converter.Spans
	if filter.Window != nil {
		spans, err = converter.LoadSpans(ctx, r.db, ids, filter.Window)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to load car spans", err)
		}
	}

	cars := make([]*car.Car, 0, len(carRows))
	for _, row := range carRows {
		c, cerr := converter.CarToDomain(row, spans)
		if cerr != nil {
			return nil, infra.WrapRepoErr("stored car is invalid", cerr)
		}
		cars = append(cars, c)
	}
	return cars, nil
}

func (r *CarReadStore) Cities(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `
SELECT DISTINCT city FROM cars
WHERE is_active AND manually_available
ORDER BY city`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cities", err)
	}
	defer rows.Close()

	cities := make([]string, 0)
	for rows.Next() {
		var city string
		if err = rows.Scan(&city); err != nil {
			return nil, infra.WrapRepoErr("failed to scan city", err)
		}
		cities = append(cities, city)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cities", err)
	}
	return cities, nil
}

func buildCarSearch(f queries.CarFilter) sq.SelectBuilder {
	q := psql.Select(converter.CarColumns...).
		From("cars c").
		Where(sq.Eq{"c.is_active": true})

	if f.City != "" {
		q = q.Where(sq.ILike{"c.city": "%" + escapeLike(f.City) + "%"})
	}
	if f.Category != "" {
		q = q.Where(sq.Eq{"c.category": strings.ToLower(f.Category)})
	}
	if f.Transmission != "" {
		q = q.Where(sq.Eq{"c.transmission": strings.ToLower(f.Transmission)})
	}
	if f.FuelType != "" {
		q = q.Where(sq.Eq{"c.fuel_type": strings.ToLower(f.FuelType)})
	}
	if f.MinPrice != nil {
		q = q.Where(sq.GtOrEq{"c.base_rate_per_day": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		q = q.Where(sq.LtOrEq{"c.base_rate_per_day": *f.MaxPrice})
	}
	if f.MinSeats != nil {
		q = q.Where(sq.GtOrEq{"c.seats": *f.MinSeats})
	}
	if f.Featured != nil {
		q = q.Where(sq.Eq{"c.featured": *f.Featured})
	}
	if f.Search != "" {
		pattern := "%" + escapeLike(f.Search) + "%"
		q = q.Where(sq.Or{
			sq.ILike{"c.brand": pattern},
			sq.ILike{"c.model": pattern},
			sq.ILike{"c.category": pattern},
			sq.ILike{"c.city": pattern},
		})
	}

	switch f.Sort {
	case queries.SortOldest:
		q = q.OrderBy("c.created_at ASC", "c.id ASC")
	case queries.SortPriceAsc:
		q = q.OrderBy("c.base_rate_per_day ASC", "c.created_at DESC", "c.id ASC")
	case queries.SortPriceDesc:
		q = q.OrderBy("c.base_rate_per_day DESC", "c.created_at DESC", "c.id ASC")
	default:
		q = q.OrderBy("c.created_at DESC", "c.id ASC")
	}
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
