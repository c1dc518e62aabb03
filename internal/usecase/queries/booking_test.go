//go:build unit

package queries_test

import (
	"context"
	"math"
	"testing"
	"time"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/domain/reservation"
	"villa-booking/internal/usecase/queries"
	"villa-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := pricing.ParseDate(s)
	require.NoError(t, err)
	return d
}

func stay(t *testing.T, checkIn, checkOut string) reservation.Stay {
	t.Helper()
	s, err := reservation.ParseStay(checkIn, checkOut)
	require.NoError(t, err)
	return s
}

func TestBookingQueries_Availability(t *testing.T) {
	ctx := context.Background()

	t.Run("pending and confirmed stays block, cancelled ones do not", func(t *testing.T) {
		f := newFixture(t)
		vb := builder.NewVillaBuilder()
		f.seedVilla(t, vb)
		f.seedReservation(t, builder.NewReservationBuilder().WithVilla(vb.ID).WithStay("2025-09-04", "2025-09-06").BuildStored())
		f.seedReservation(t, builder.NewReservationBuilder().WithVilla(vb.ID).WithStay("2025-09-10", "2025-09-12").WithStatus("confirmed").BuildStored())
		f.seedReservation(t, builder.NewReservationBuilder().WithVilla(vb.ID).WithStay("2025-09-06", "2025-09-08").WithStatus("cancelled").BuildStored())

		got, err := f.bookings.Availability(ctx, vb.Slug, date(t, "2025-09-05"), date(t, "2025-09-11"))
		require.NoError(t, err)

		assert.Equal(t, vb.ID, got.VillaID)
		assert.Len(t, got.Booked, 2)
		// ranges are clipped to the window; checkout days stay free
		want := []time.Time{date(t, "2025-09-05"), date(t, "2025-09-10")}
		if diff := cmp.Diff(want, got.BookedDates); diff != "" {
			t.Errorf("booked dates mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty window returns empty slices", func(t *testing.T) {
		f := newFixture(t)
		vb := builder.NewVillaBuilder()
		f.seedVilla(t, vb)

		got, err := f.bookings.Availability(ctx, vb.Slug, date(t, "2025-10-01"), date(t, "2025-10-31"))
		require.NoError(t, err)
		assert.NotNil(t, got.Booked)
		assert.Empty(t, got.BookedDates)
	})

	t.Run("window bounds", func(t *testing.T) {
		f := newFixture(t)
		vb := builder.NewVillaBuilder()
		f.seedVilla(t, vb)

		_, err := f.bookings.Availability(ctx, vb.Slug, date(t, "2025-09-05"), date(t, "2025-09-05"))
		assert.ErrorIs(t, err, queries.ErrInvalidWindow)

		_, err = f.bookings.Availability(ctx, vb.Slug, date(t, "2025-01-01"), date(t, "2026-01-03"))
		assert.ErrorIs(t, err, queries.ErrInvalidWindow)

		_, err = f.bookings.Availability(ctx, vb.Slug, date(t, "2025-01-01"), date(t, "2026-01-02"))
		assert.NoError(t, err)
	})

	t.Run("inactive and unknown villas are not found", func(t *testing.T) {
		f := newFixture(t)
		vb := builder.NewVillaBuilder().AsInactive()
		f.seedVilla(t, vb)

		_, err := f.bookings.Availability(ctx, vb.Slug, date(t, "2025-09-01"), date(t, "2025-09-30"))
		assert.ErrorIs(t, err, queries.ErrVillaNotFound)

		_, err = f.bookings.Availability(ctx, "nowhere", date(t, "2025-09-01"), date(t, "2025-09-30"))
		assert.ErrorIs(t, err, queries.ErrVillaNotFound)
	})
}

func TestBookingQueries_Quote(t *testing.T) {
	ctx := context.Background()

	t.Run("prices each night and reports availability", func(t *testing.T) {
		f := newFixture(t)
		vb := builder.NewVillaBuilder()
		f.seedVilla(t, vb)

		got, err := f.bookings.Quote(ctx, vb.Slug, stay(t, "2025-09-04", "2025-09-07"))
		require.NoError(t, err)

		want := []queries.NightView{
			{Date: date(t, "2025-09-04"), Tier: "weekday", Rate: 2_000_000},
			{Date: date(t, "2025-09-05"), Tier: "high_season", Rate: 3_750_000},
			{Date: date(t, "2025-09-06"), Tier: "weekend", Rate: 2_500_000},
		}
		if diff := cmp.Diff(want, got.Breakdown); diff != "" {
			t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 3, got.Nights)
		assert.Equal(t, int64(8_250_000), got.TotalPrice)
		assert.Equal(t, "Rp 8.250.000", got.TotalDisplay)
		assert.True(t, got.Available)
	})

	t.Run("overlapping pending stay makes it unavailable", func(t *testing.T) {
		f := newFixture(t)
		vb := builder.NewVillaBuilder()
		f.seedVilla(t, vb)
		f.seedReservation(t, builder.NewReservationBuilder().WithVilla(vb.ID).WithStay("2025-09-06", "2025-09-08").BuildStored())

		got, err := f.bookings.Quote(ctx, vb.Slug, stay(t, "2025-09-04", "2025-09-07"))
		require.NoError(t, err)
		assert.False(t, got.Available)

		got, err = f.bookings.Quote(ctx, vb.Slug, stay(t, "2025-09-04", "2025-09-06"))
		require.NoError(t, err)
		assert.True(t, got.Available, "checkout on the other stay's check-in day is free")
	})

	t.Run("incomplete pricing is rejected", func(t *testing.T) {
		f := newFixture(t)
		vb := builder.NewVillaBuilder().WithoutHighSeasonPrice()
		f.seedVilla(t, vb)

		_, err := f.bookings.Quote(ctx, vb.Slug, stay(t, "2025-09-04", "2025-09-06"))
		assert.ErrorIs(t, err, pricing.ErrIncompletePricingProfile)
	})

	t.Run("unloaded calendar year is rejected", func(t *testing.T) {
		f := newFixture(t)
		vb := builder.NewVillaBuilder()
		f.seedVilla(t, vb)

		_, err := f.bookings.Quote(ctx, vb.Slug, stay(t, "2026-12-30", "2027-01-02"))
		assert.ErrorIs(t, err, pricing.ErrCalendarYearNotLoaded)
	})
}

func TestBookingQueries_List(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	vb := builder.NewVillaBuilder()
	f.seedVilla(t, vb)
	f.seedReservation(t, builder.NewReservationBuilder().WithVilla(vb.ID).WithStay("2025-09-04", "2025-09-06").BuildStored())
	f.seedReservation(t, builder.NewReservationBuilder().WithVilla(vb.ID).WithStay("2025-09-10", "2025-09-12").WithStatus("confirmed").BuildStored())
	f.seedReservation(t, builder.NewReservationBuilder().WithVilla(vb.ID).WithStay("2025-09-20", "2025-09-22").WithStatus("confirmed").BuildStored())

	t.Run("defaults page and limit", func(t *testing.T) {
		got, err := f.bookings.List(ctx, queries.BookingFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Total)
		assert.Equal(t, 1, got.Page)
		assert.Equal(t, queries.DefaultListLimit, got.Limit)
		assert.Len(t, got.Items, 3)
		assert.Equal(t, "Villa Sunset", got.Items[0].VillaTitle)
	})

	t.Run("filters by status and paginates", func(t *testing.T) {
		status := "confirmed"
		got, err := f.bookings.List(ctx, queries.BookingFilter{Status: &status, Page: 2, Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Total)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "confirmed", got.Items[0].Status)
	})

	t.Run("unknown villa yields an empty page", func(t *testing.T) {
		other := uuid.New()
		got, err := f.bookings.List(ctx, queries.BookingFilter{VillaID: &other})
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.Total)
		assert.NotNil(t, got.Items)
	})

	t.Run("invalid status", func(t *testing.T) {
		status := "archived"
		_, err := f.bookings.List(ctx, queries.BookingFilter{Status: &status})
		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})

	t.Run("page past the offset range", func(t *testing.T) {
		_, err := f.bookings.List(ctx, queries.BookingFilter{Page: 10737420, Limit: queries.MaxListLimit})
		assert.ErrorIs(t, err, queries.ErrPageOutOfRange)

		_, err = f.bookings.List(ctx, queries.BookingFilter{Page: math.MaxInt, Limit: 1})
		assert.ErrorIs(t, err, queries.ErrPageOutOfRange)
	})
}

func TestRowOffset(t *testing.T) {
	got, err := queries.RowOffset(3, 20)
	require.NoError(t, err)
	assert.Equal(t, 40, got)

	last := queries.MaxRowOffset/queries.MaxListLimit + 1
	got, err = queries.RowOffset(last, queries.MaxListLimit)
	require.NoError(t, err)
	assert.LessOrEqual(t, got, queries.MaxRowOffset)

	_, err = queries.RowOffset(last+1, queries.MaxListLimit)
	assert.ErrorIs(t, err, queries.ErrPageOutOfRange)

	_, err = queries.RowOffset(0, 20)
	assert.ErrorIs(t, err, queries.ErrPageOutOfRange)
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	vb := builder.NewVillaBuilder()
	f.seedVilla(t, vb)
	rb := builder.NewReservationBuilder().WithVilla(vb.ID)
	f.seedReservation(t, rb.BuildStored())

	got, err := f.bookings.GetByID(ctx, rb.ID)
	require.NoError(t, err)
	assert.Equal(t, rb.GuestEmail, got.GuestEmail)
	assert.Equal(t, int32(2), got.TotalNights)
	assert.Equal(t, int64(5_750_000), got.TotalPrice)

	_, err = f.bookings.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, queries.ErrBookingNotFound)
}
