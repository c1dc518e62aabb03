package queries

import (
	"context"
	"time"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/domain/reservation"
	"villa-booking/internal/domain/villa"
	"villa-booking/internal/infra"
	"villa-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxWindowDays bounds availability lookups.
const MaxWindowDays = 366

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrInvalidWindow   = errs.New("availability window must end after it starts and span at most 366 days")
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// List returns one page and the total number of matching bookings.
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, int64, error)
	// ListBookedRanges returns pending and confirmed stays of a villa overlapping [from, to).
	ListBookedRanges(ctx context.Context, villaID uuid.UUID, from, to time.Time) ([]BookedRange, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) (*BookingPage, error)
	Availability(ctx context.Context, slug string, from, to time.Time) (*AvailabilityView, error)
	Quote(ctx context.Context, slug string, stay reservation.Stay) (*QuoteView, error)
}

type bookingQueriesImpl struct {
	bookings ReservationReadStore
	villas   VillaReadStore
	quoter   reservation.Quoter
}

func NewBookingQueries(bookings ReservationReadStore, villas VillaReadStore, quoter reservation.Quoter) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, villas: villas, quoter: quoter}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter) (*BookingPage, error) {
	if filter.Status != nil {
		if _, err := reservation.NewStatus(*filter.Status); err != nil {
			return nil, err
		}
	}
	filter.Page = ValidatePage(filter.Page)
	filter.Limit = ValidateLimit(filter.Limit)
	if _, err := RowOffset(filter.Page, filter.Limit); err != nil {
		return nil, err
	}

	items, total, err := q.bookings.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*BookingView{}
	}
	return &BookingPage{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (q *bookingQueriesImpl) Availability(ctx context.Context, slug string, from, to time.Time) (*AvailabilityView, error) {
	from, to = pricing.DateOf(from), pricing.DateOf(to)
	if days := pricing.DaysBetween(from, to); days < 1 || days > MaxWindowDays {
		return nil, ErrInvalidWindow
	}

	v, err := q.activeVilla(ctx, slug)
	if err != nil {
		return nil, err
	}

	booked, err := q.bookings.ListBookedRanges(ctx, v.ID, from, to)
	if err != nil {
		return nil, err
	}
	if booked == nil {
		booked = []BookedRange{}
	}

	return &AvailabilityView{
		VillaID:     v.ID,
		From:        from,
		To:          to,
		Booked:      booked,
		BookedDates: bookedDates(booked, from, to),
	}, nil
}

func (q *bookingQueriesImpl) Quote(ctx context.Context, slug string, stay reservation.Stay) (*QuoteView, error) {
	v, err := q.activeVilla(ctx, slug)
	if err != nil {
		return nil, err
	}

	quote, err := q.quoter.PriceStay(stay.CheckIn(), stay.CheckOut(), ProfileOf(v))
	if err != nil {
		return nil, err
	}

	booked, err := q.bookings.ListBookedRanges(ctx, v.ID, stay.CheckIn(), stay.CheckOut())
	if err != nil {
		return nil, err
	}

	breakdown := make([]NightView, 0, len(quote.Breakdown))
	for _, n := range quote.Breakdown {
		breakdown = append(breakdown, NightView{Date: n.Date, Tier: n.Tier.String(), Rate: n.Rate})
	}

	return &QuoteView{
		VillaID:      v.ID,
		CheckIn:      quote.CheckIn,
		CheckOut:     quote.CheckOut,
		Nights:       quote.Nights(),
		TotalPrice:   quote.TotalPrice,
		TotalDisplay: pricing.FormatRupiah(quote.TotalPrice),
		Breakdown:    breakdown,
		Available:    !reservation.HasConflict(stay, occupancies(booked)),
	}, nil
}

func (q *bookingQueriesImpl) activeVilla(ctx context.Context, slug string) (*VillaView, error) {
	v, err := q.villas.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVillaNotFound
		}
		return nil, err
	}
	if v.Status != villa.StatusActive.String() {
		return nil, ErrVillaNotFound
	}
	return v, nil
}

func occupancies(booked []BookedRange) []reservation.Occupancy {
	out := make([]reservation.Occupancy, 0, len(booked))
	for _, b := range booked {
		stay, err := reservation.NewStay(b.CheckIn, b.CheckOut)
		if err != nil {
			continue
		}
		out = append(out, reservation.Occupancy{
			ReservationID: b.ReservationID,
			Stay:          stay,
			Status:        reservation.Status(b.Status),
		})
	}
	return out
}

// bookedDates flattens booked nights into a sorted, de-duplicated list clipped to [from, to).
func bookedDates(booked []BookedRange, from, to time.Time) []time.Time {
	seen := make(map[time.Time]struct{})
	for _, b := range booked {
		for d := pricing.DateOf(b.CheckIn); d.Before(pricing.DateOf(b.CheckOut)); d = d.AddDate(0, 0, 1) {
			if d.Before(from) || !d.Before(to) {
				continue
			}
			seen[d] = struct{}{}
		}
	}

	out := make([]time.Time, 0, len(seen))
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		if _, ok := seen[d]; ok {
			out = append(out, d)
		}
	}
	return out
}
