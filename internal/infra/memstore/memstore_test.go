//go:build unit

package memstore

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"villa-booking/internal/domain/reservation"
	"villa-booking/internal/domain/villa"
	"villa-booking/internal/infra"
	"villa-booking/internal/usecase/queries"
	"villa-booking/internal/usecase/shared"
	"villa-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVilla(t *testing.T, store *Store, vb *builder.VillaBuilder) {
	t.Helper()
	err := NewUoW(store).Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Villas().Create(ctx, vb.BuildStored())
	})
	require.NoError(t, err)
}

func seedReservation(t *testing.T, store *Store, res *reservation.Reservation) {
	t.Helper()
	err := NewUoW(store).Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, res)
	})
	require.NoError(t, err)
}

func TestWithin_RollsBackOnError(t *testing.T) {
	store := New()
	vb := builder.NewVillaBuilder()
	seedVilla(t, store, vb)
	boom := errors.New("boom")

	res := builder.NewReservationBuilder().WithVilla(vb.ID).BuildStored()
	err := NewUoW(store).Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		job := shared.NotificationJob{Kind: "email", Topic: "booking.created", Payload: []byte(`{}`), RunAt: builder.FixedNow}
		if err := tx.Notifications().Enqueue(ctx, job); err != nil {
			return err
		}
		if err := tx.Villas().UpdateStatus(ctx, vb.ID, villa.StatusInactive, builder.FixedNow); err != nil {
			return err
		}
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Empty(t, store.Jobs())

	_, err = NewReservationReadStore(store).FindByID(context.Background(), res.ID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	v, err := NewVillaReadStore(store).FindByID(context.Background(), vb.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", v.Status)
}

func TestVillaRepo_Constraints(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate slug", func(t *testing.T) {
		store := New()
		seedVilla(t, store, builder.NewVillaBuilder())

		err := NewUoW(store).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Villas().Create(ctx, builder.NewVillaBuilder().BuildStored())
		})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("delete with reservations", func(t *testing.T) {
		store := New()
		vb := builder.NewVillaBuilder()
		seedVilla(t, store, vb)
		seedReservation(t, store, builder.NewReservationBuilder().WithVilla(vb.ID).WithStatus("cancelled").BuildStored())

		err := NewUoW(store).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Villas().Delete(ctx, vb.ID)
		})
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("reservation for unknown villa", func(t *testing.T) {
		store := New()
		err := NewUoW(store).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Reservations().Create(ctx, builder.NewReservationBuilder().BuildStored())
		})
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestReservationRepo_OverlapBackstop(t *testing.T) {
	ctx := context.Background()
	store := New()
	vb := builder.NewVillaBuilder()
	seedVilla(t, store, vb)
	seedReservation(t, store, builder.NewReservationBuilder().WithVilla(vb.ID).WithStay("2025-09-10", "2025-09-13").BuildStored())

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		status   string
		wantErr  bool
	}{
		{name: "overlapping pending", checkIn: "2025-09-12", checkOut: "2025-09-14", status: "pending", wantErr: true},
		{name: "back to back", checkIn: "2025-09-13", checkOut: "2025-09-15", status: "confirmed"},
		{name: "ends on check-in day", checkIn: "2025-09-08", checkOut: "2025-09-10", status: "pending"},
		{name: "overlapping cancelled", checkIn: "2025-09-11", checkOut: "2025-09-12", status: "cancelled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := builder.NewReservationBuilder().WithVilla(vb.ID).WithStay(tt.checkIn, tt.checkOut).WithStatus(tt.status).BuildStored()
			err := NewUoW(store).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.Reservations().Create(ctx, res)
			})
			if tt.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindConflict))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReservationRepo_FindActiveByVilla(t *testing.T) {
	ctx := context.Background()
	store := New()
	vb := builder.NewVillaBuilder()
	seedVilla(t, store, vb)

	later := builder.NewReservationBuilder().WithVilla(vb.ID).WithStay("2025-09-20", "2025-09-22").WithStatus("confirmed").BuildStored()
	earlier := builder.NewReservationBuilder().WithVilla(vb.ID).WithStay("2025-09-10", "2025-09-12").BuildStored()
	cancelled := builder.NewReservationBuilder().WithVilla(vb.ID).WithStay("2025-09-14", "2025-09-16").WithStatus("cancelled").BuildStored()
	for _, r := range []*reservation.Reservation{later, earlier, cancelled} {
		seedReservation(t, store, r)
	}

	window, err := reservation.ParseStay("2025-09-01", "2025-10-01")
	require.NoError(t, err)

	var got []reservation.Occupancy
	err = NewUoW(store).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		got, err = tx.Reservations().FindActiveByVilla(ctx, vb.ID, window)
		return err
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, earlier.ID(), got[0].ReservationID)
	assert.Equal(t, later.ID(), got[1].ReservationID)
}

func TestWithin_RollsBackOnPanic(t *testing.T) {
	store := New()
	vb := builder.NewVillaBuilder()
	seedVilla(t, store, vb)
	res := builder.NewReservationBuilder().WithVilla(vb.ID).BuildStored()

	assert.PanicsWithValue(t, "boom", func() {
		_ = NewUoW(store).Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Villas().LockForBooking(ctx, vb.ID); err != nil {
				return err
			}
			if err := tx.Reservations().Create(ctx, res); err != nil {
				return err
			}
			panic("boom")
		})
	})

	_, err := NewReservationReadStore(store).FindByID(context.Background(), res.ID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	// the villa lock was released
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err = NewUoW(store).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Villas().LockForBooking(ctx, vb.ID)
		return err
	})
	assert.NoError(t, err)
}

func TestReservationReadStore_List(t *testing.T) {
	ctx := context.Background()
	store := New()
	vb := builder.NewVillaBuilder()
	seedVilla(t, store, vb)

	stays := [][2]string{{"2025-09-04", "2025-09-06"}, {"2025-09-10", "2025-09-12"}, {"2025-09-20", "2025-09-22"}}
	for i, stay := range stays {
		b := builder.NewReservationBuilder().WithVilla(vb.ID).WithStay(stay[0], stay[1])
		b.Now = builder.FixedNow.Add(time.Duration(i) * time.Hour)
		seedReservation(t, store, b.BuildStored())
	}

	items, total, err := NewReservationReadStore(store).List(ctx, queries.BookingFilter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 2)
	assert.True(t, items[0].CreatedAt.After(items[1].CreatedAt))
	assert.Equal(t, "Villa Sunset", items[0].VillaTitle)

	items, _, err = NewReservationReadStore(store).List(ctx, queries.BookingFilter{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, items)

	_, _, err = NewReservationReadStore(store).List(ctx, queries.BookingFilter{Page: 10737420, Limit: 200})
	assert.ErrorIs(t, err, queries.ErrPageOutOfRange)
}

func TestUserStore_LoginLookup(t *testing.T) {
	ctx := context.Background()
	store := New()
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, NewUoW(store).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	}))

	readStore := NewUserReadStore(store)
	for _, login := range []string{"admin", "ADMIN@villa.example.com"} {
		view, hash, err := readStore.FindByLogin(ctx, login)
		require.NoError(t, err, login)
		assert.Equal(t, u.ID(), view.ID)
		assert.Equal(t, "hashed_password", hash)
	}

	_, _, err = readStore.FindByLogin(ctx, "Admin")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

// Many goroutines race to book the same nights; the villa lock lets exactly one through.
func TestConcurrentBooking_SingleWinner(t *testing.T) {
	store := New()
	vb := builder.NewVillaBuilder()
	seedVilla(t, store, vb)
	uow := NewUoW(store)

	const attempts = 16
	errConflict := errors.New("dates taken")
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		conflicts atomic.Int32
	)
	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			res := builder.NewReservationBuilder().WithVilla(vb.ID).BuildStored()
			err := uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
				if _, err := tx.Villas().LockForBooking(ctx, vb.ID); err != nil {
					return err
				}
				existing, err := tx.Reservations().FindActiveByVilla(ctx, vb.ID, res.Stay())
				if err != nil {
					return err
				}
				if reservation.HasConflict(res.Stay(), existing) {
					return errConflict
				}
				return tx.Reservations().Create(ctx, res)
			})
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, errConflict):
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(attempts-1), conflicts.Load())
}
