package components

import (
	"car-rental-engine/internal/infra/memstore"
	"car-rental-engine/internal/infra/readstore"
	"car-rental-engine/internal/infra/uow"
	"car-rental-engine/internal/pkg/config"
	"car-rental-engine/internal/usecase/queries"
	"car-rental-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

// Persistence exposes one backend through the read and write ports.
type Persistence struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	Cars       queries.CarReadStore
	Bookings   queries.BookingReadStore
	Reports    queries.ReportReadStore
}

func NewPersistence(cfg config.Config, pool *pgxpool.Pool) Persistence {
	if cfg.Store.Driver == config.StoreDriverMemory {
		store := memstore.New()
		reads := store.BookingReads()
		return Persistence{
			UnitOfWork: store,
			Cars:       store,
			Bookings:   reads,
			Reports:    reads,
		}
	}

	bookings := readstore.NewBookingReadStore(pool)
	return Persistence{
		UnitOfWork: uow.NewPostgresUoW(pool),
		Cars:       readstore.NewCarReadStore(pool),
		Bookings:   bookings,
		Reports:    bookings,
	}
}
