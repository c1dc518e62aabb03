//go:build unit || e2e

package builder

import (
	"time"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/domain/reservation"
	sqlc "villa-booking/internal/infra/sqlc/generated"
	"villa-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID              uuid.UUID
	VillaID         uuid.UUID
	VillaTitle      string
	VillaSlug       string
	MaxGuests       int
	Pricing         pricing.Profile
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	CheckIn         string
	CheckOut        string
	GuestsCount     int
	ExtraBedCount   int
	ExtraBedPrice   int64
	SpecialRequests string
	Source          string
	Status          string
	Now             time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          uuid.New(),
		VillaID:     uuid.New(),
		VillaTitle:  "Villa Sunset",
		VillaSlug:   "villa-sunset",
		MaxGuests:   6,
		Pricing:     pricing.NewProfile(2_000_000, 2_500_000, 3_750_000),
		GuestName:   "Budi Santoso",
		GuestEmail:  "budi@example.com",
		GuestPhone:  "+62 812 3456 7890",
		CheckIn:     "2025-09-04",
		CheckOut:    "2025-09-06",
		GuestsCount: 2,
		Source:      "website",
		Status:      "pending",
		Now:         FixedNow,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut string) *ReservationBuilder {
	b.CheckIn, b.CheckOut = checkIn, checkOut
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithVilla(id uuid.UUID) *ReservationBuilder {
	b.VillaID = id
	return b
}

func (b *ReservationBuilder) Stay() reservation.Stay {
	stay, err := reservation.ParseStay(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return stay
}

func (b *ReservationBuilder) VillaSpec() reservation.VillaSpec {
	return reservation.VillaSpec{
		ID:        b.VillaID,
		Title:     b.VillaTitle,
		MaxGuests: b.MaxGuests,
		Active:    true,
		Pricing:   b.Pricing,
	}
}

// BuildDomain creates a priced reservation through NewReservation; the ID is generated.
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	guest, err := reservation.NewGuest(b.GuestName, b.GuestEmail, b.GuestPhone)
	if err != nil {
		return nil, err
	}
	stay, err := reservation.ParseStay(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	beds, err := reservation.NewExtraBeds(b.ExtraBedCount, b.ExtraBedPrice)
	if err != nil {
		return nil, err
	}
	notes, err := reservation.NewSpecialRequests(b.SpecialRequests)
	if err != nil {
		return nil, err
	}
	source, err := reservation.NewSource(b.Source)
	if err != nil {
		return nil, err
	}
	// Only pending and confirmed can be created; other statuses are reached by transitions.
	initial := reservation.Status(b.Status)
	if !initial.Blocks() {
		initial = reservation.StatusPending
	}

	res, err := reservation.NewReservation(NewBookingServices(b.Now), b.VillaSpec(), reservation.Draft{
		Guest:           guest,
		Stay:            stay,
		GuestsCount:     b.GuestsCount,
		ExtraBeds:       beds,
		SpecialRequests: notes,
		Source:          source,
		Status:          initial,
	})
	if err != nil {
		return nil, err
	}
	if reservation.Status(b.Status) != initial {
		if initial == reservation.StatusPending && b.Status == string(reservation.StatusCompleted) {
			if err := res.TransitionTo(reservation.StatusConfirmed, b.Now); err != nil {
				return nil, err
			}
		}
		if err := res.TransitionTo(reservation.Status(b.Status), b.Now); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// BuildStored keeps the builder's ID and prices the stay with the test calendar.
func (b *ReservationBuilder) BuildStored() *reservation.Reservation {
	stay := b.Stay()
	quote, err := NewTestCalculator().PriceStay(stay.CheckIn(), stay.CheckOut(), b.Pricing)
	if err != nil {
		panic(err)
	}
	beds, _ := reservation.NewExtraBeds(b.ExtraBedCount, b.ExtraBedPrice)
	bedTotal, err := beds.TotalFor(stay.Nights())
	if err != nil {
		panic(err)
	}
	return reservation.ReconstructReservation(
		b.ID,
		b.VillaID,
		reservation.ReconstructGuest(b.GuestName, b.GuestEmail, b.GuestPhone),
		stay,
		b.GuestsCount,
		beds,
		bedTotal,
		quote.TotalPrice+bedTotal,
		reservation.ReconstructSpecialRequests(b.SpecialRequests),
		reservation.Source(b.Source),
		reservation.Status(b.Status),
		b.Now,
		b.Now,
	)
}

func (b *ReservationBuilder) BuildInfra() sqlc.GetReservationByIDRow {
	res := b.BuildStored()
	stay := res.Stay()
	return sqlc.GetReservationByIDRow{
		ID:              res.ID(),
		VillaID:         res.VillaID(),
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		CheckIn:         pgtype.Date{Time: stay.CheckIn(), Valid: true},
		CheckOut:        pgtype.Date{Time: stay.CheckOut(), Valid: true},
		GuestsCount:     int32(b.GuestsCount),   // #nosec G115
		ExtraBedCount:   int32(b.ExtraBedCount), // #nosec G115
		ExtraBedPrice:   b.ExtraBedPrice,
		ExtraBedTotal:   res.ExtraBedTotal(),
		TotalNights:     pgtype.Int4{Int32: int32(stay.Nights()), Valid: true}, // #nosec G115
		TotalPrice:      res.TotalPrice(),
		SpecialRequests: b.SpecialRequests,
		BookingSource:   b.Source,
		Status:          b.Status,
		CreatedAt:       pgtype.Timestamptz{Time: b.Now, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.Now, Valid: true},
		VillaTitle:      b.VillaTitle,
		VillaSlug:       b.VillaSlug,
	}
}

func (b *ReservationBuilder) BuildView() *queries.BookingView {
	res := b.BuildStored()
	stay := res.Stay()
	return &queries.BookingView{
		ID:              res.ID(),
		VillaID:         res.VillaID(),
		VillaTitle:      b.VillaTitle,
		VillaSlug:       b.VillaSlug,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		CheckIn:         stay.CheckIn(),
		CheckOut:        stay.CheckOut(),
		GuestsCount:     int32(b.GuestsCount),   // #nosec G115
		ExtraBedCount:   int32(b.ExtraBedCount), // #nosec G115
		ExtraBedPrice:   b.ExtraBedPrice,
		ExtraBedTotal:   res.ExtraBedTotal(),
		TotalNights:     int32(stay.Nights()), // #nosec G115
		TotalPrice:      res.TotalPrice(),
		SpecialRequests: b.SpecialRequests,
		BookingSource:   b.Source,
		Status:          b.Status,
		CreatedAt:       b.Now,
		UpdatedAt:       b.Now,
	}
}

func (b *ReservationBuilder) BuildBookedRange() queries.BookedRange {
	stay := b.Stay()
	return queries.BookedRange{
		ReservationID: b.ID,
		CheckIn:       stay.CheckIn(),
		CheckOut:      stay.CheckOut(),
		Status:        b.Status,
	}
}
