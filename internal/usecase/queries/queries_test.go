//go:build unit

package queries_test

import (
	"context"
	"testing"

	"villa-booking/internal/domain/reservation"
	"villa-booking/internal/infra/cache"
	"villa-booking/internal/infra/memstore"
	"villa-booking/internal/usecase/queries"
	"villa-booking/internal/usecase/shared"
	"villa-booking/tests/common/builder"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *memstore.Store
	villas   queries.VillaQueries
	bookings queries.BookingQueries
	gallery  queries.GalleryQueries
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	villaStore := memstore.NewVillaReadStore(store)
	return &fixture{
		store:    store,
		villas:   queries.NewVillaQueries(villaStore, cache.Noop{}, 0),
		bookings: queries.NewBookingQueries(memstore.NewReservationReadStore(store), villaStore, builder.NewTestCalculator()),
		gallery:  queries.NewGalleryQueries(memstore.NewGalleryReadStore(store)),
	}
}

func (f *fixture) within(t *testing.T, fn func(ctx context.Context, tx shared.Tx) error) {
	t.Helper()
	require.NoError(t, memstore.NewUoW(f.store).Within(context.Background(), fn))
}

func (f *fixture) seedVilla(t *testing.T, vb *builder.VillaBuilder) {
	t.Helper()
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		return tx.Villas().Create(ctx, vb.BuildStored())
	})
}

func (f *fixture) seedReservation(t *testing.T, res *reservation.Reservation) {
	t.Helper()
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, res)
	})
}

func (f *fixture) seedGallery(t *testing.T, gb *builder.GalleryBuilder) {
	t.Helper()
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		return tx.Gallery().Create(ctx, gb.BuildStored())
	})
}
