package components

import (
	"context"
	"log/slog"

	"villa-booking/internal/infra/db"
	"villa-booking/internal/infra/memstore"
	"villa-booking/internal/infra/readstore"
	sqlc "villa-booking/internal/infra/sqlc/generated"
	"villa-booking/internal/infra/uow"
	"villa-booking/internal/pkg/config"
	"villa-booking/internal/pkg/errs"
	"villa-booking/internal/usecase/queries"
	"villa-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
	),
)

// Stores is everything the use cases need from the persistence backend.
type Stores struct {
	fx.Out

	UnitOfWork   shared.UnitOfWork
	Villas       queries.VillaReadStore
	Reservations queries.ReservationReadStore
	Gallery      queries.GalleryReadStore
	Users        queries.UserReadStore
}

// NewStores builds the backend selected by STORE_BACKEND.
func NewStores(lc fx.Lifecycle, cfg config.Config) (Stores, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		slog.Warn("Using the in-memory store; data is lost on restart")
		return memoryStores(memstore.New()), nil
	case config.BackendPostgres:
		pool, err := NewDB(lc, cfg)
		if err != nil {
			return Stores{}, err
		}
		return postgresStores(pool), nil
	default:
		return Stores{}, errs.Newf("unknown store backend %q", cfg.Store.Backend)
	}
}

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func postgresStores(pool *pgxpool.Pool) Stores {
	q := sqlc.New()
	return Stores{
		UnitOfWork:   uow.NewPostgresUoW(pool, q),
		Villas:       readstore.NewVillaReadStore(q, pool),
		Reservations: readstore.NewReservationReadStore(q, pool),
		Gallery:      readstore.NewGalleryReadStore(q, pool),
		Users:        readstore.NewUserReadStore(q, pool),
	}
}

func memoryStores(store *memstore.Store) Stores {
	return Stores{
		UnitOfWork:   memstore.NewUoW(store),
		Villas:       memstore.NewVillaReadStore(store),
		Reservations: memstore.NewReservationReadStore(store),
		Gallery:      memstore.NewGalleryReadStore(store),
		Users:        memstore.NewUserReadStore(store),
	}
}
