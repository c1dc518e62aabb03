package reservation

import (
	"errors"
	"time"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidRange             = pricing.ErrInvalidRange
	ErrInvalidStatus            = errors.New("invalid reservation status")
	ErrInvalidStatusTransition  = errors.New("invalid reservation status transition")
	ErrInvalidInitialStatus     = errors.New("reservation must start as pending or confirmed")
	ErrInvalidSource            = errors.New("invalid booking source")
	ErrInvalidGuestName         = errors.New("guest name is required")
	ErrInvalidGuestEmail        = errors.New("invalid guest email")
	ErrInvalidGuestPhone        = errors.New("invalid guest phone")
	ErrInvalidGuestCount        = errors.New("guests count must be at least 1")
	ErrTooManyGuests            = errors.New("guests count exceeds villa capacity")
	ErrInvalidExtraBeds         = errors.New("invalid extra beds")
	ErrSpecialRequestsTooLong   = errors.New("special requests too long")
	ErrCheckInInPast            = errors.New("check-in date cannot be in the past")
	ErrVillaInactive            = errors.New("villa is not available for booking")
	ErrReservationNotModifiable = errors.New("reservation can no longer be modified")
)

type Quoter interface {
	PriceStay(checkIn, checkOut time.Time, profile pricing.Profile) (pricing.Quote, error)
}

type Services struct {
	Clock    clock.Clock
	Quoter   Quoter
	Location *time.Location
}

func (s *Services) today() time.Time {
	return clock.Today(s.Clock, s.Location)
}

type VillaSpec struct {
	ID        uuid.UUID
	Title     string
	MaxGuests int
	Active    bool
	Pricing   pricing.Profile
}

type Draft struct {
	Guest           Guest
	Stay            Stay
	GuestsCount     int
	ExtraBeds       ExtraBeds
	SpecialRequests SpecialRequests
	Source          Source
	Status          Status
}

type Reservation struct {
	id              uuid.UUID
	villaID         uuid.UUID
	guest           Guest
	stay            Stay
	guestsCount     int
	extraBeds       ExtraBeds
	extraBedTotal   int64
	totalPrice      int64
	specialRequests SpecialRequests
	source          Source
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

func NewReservation(services *Services, villa VillaSpec, d Draft) (*Reservation, error) {
	if !villa.Active {
		return nil, ErrVillaInactive
	}
	if err := checkGuests(villa, d.GuestsCount); err != nil {
		return nil, err
	}
	if d.Stay.CheckIn().Before(services.today()) {
		return nil, ErrCheckInInPast
	}

	status := d.Status
	if status == "" {
		status = StatusPending
	}
	if status != StatusPending && status != StatusConfirmed {
		return nil, ErrInvalidInitialStatus
	}
	source := d.Source
	if source == "" {
		source = SourceWebsite
	}

	r := &Reservation{
		id:              uuid.New(),
		villaID:         villa.ID,
		guest:           d.Guest,
		stay:            d.Stay,
		guestsCount:     d.GuestsCount,
		extraBeds:       d.ExtraBeds,
		specialRequests: d.SpecialRequests,
		source:          source,
		status:          status,
		createdAt:       services.Clock.Now(),
		updatedAt:       services.Clock.Now(),
	}
	if err := r.reprice(services.Quoter, villa.Pricing); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructReservation(
	id, villaID uuid.UUID,
	guest Guest,
	stay Stay,
	guestsCount int,
	extraBeds ExtraBeds,
	extraBedTotal, totalPrice int64,
	specialRequests SpecialRequests,
	source Source,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		villaID:         villaID,
		guest:           guest,
		stay:            stay,
		guestsCount:     guestsCount,
		extraBeds:       extraBeds,
		extraBedTotal:   extraBedTotal,
		totalPrice:      totalPrice,
		specialRequests: specialRequests,
		source:          source,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

type Changes struct {
	Guest           *Guest
	Stay            *Stay
	GuestsCount     *int
	ExtraBeds       *ExtraBeds
	SpecialRequests *SpecialRequests
}

// Apply edits a reservation that still holds its dates. Nights and price are recomputed
// whenever the stay or extra beds change.
func (r *Reservation) Apply(services *Services, villa VillaSpec, c Changes) error {
	if !r.status.Blocks() {
		return ErrReservationNotModifiable
	}
	if c.Guest != nil {
		r.guest = *c.Guest
	}
	if c.GuestsCount != nil {
		if err := checkGuests(villa, *c.GuestsCount); err != nil {
			return err
		}
		r.guestsCount = *c.GuestsCount
	}
	if c.SpecialRequests != nil {
		r.specialRequests = *c.SpecialRequests
	}

	repriced := false
	if c.Stay != nil && !c.Stay.Equal(r.stay) {
		if c.Stay.CheckIn().Before(services.today()) && !c.Stay.CheckIn().Equal(r.stay.CheckIn()) {
			return ErrCheckInInPast
		}
		r.stay = *c.Stay
		repriced = true
	}
	if c.ExtraBeds != nil {
		r.extraBeds = *c.ExtraBeds
		repriced = true
	}
	if repriced {
		if err := r.reprice(services.Quoter, villa.Pricing); err != nil {
			return err
		}
	}
	r.updatedAt = services.Clock.Now()
	return nil
}

func (r *Reservation) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) reprice(q Quoter, profile pricing.Profile) error {
	quote, err := q.PriceStay(r.stay.CheckIn(), r.stay.CheckOut(), profile)
	if err != nil {
		return err
	}
	bedTotal, err := r.extraBeds.TotalFor(quote.Nights())
	if err != nil {
		return err
	}
	total, err := pricing.AddPrice(quote.TotalPrice, bedTotal)
	if err != nil {
		return err
	}
	r.extraBedTotal = bedTotal
	r.totalPrice = total
	return nil
}

func checkGuests(villa VillaSpec, n int) error {
	if n < 1 {
		return ErrInvalidGuestCount
	}
	if villa.MaxGuests > 0 && n > villa.MaxGuests {
		return ErrTooManyGuests
	}
	return nil
}

func (r *Reservation) Occupancy() Occupancy {
	return Occupancy{ReservationID: r.id, Stay: r.stay, Status: r.status}
}

func (r *Reservation) ID() uuid.UUID                    { return r.id }
func (r *Reservation) VillaID() uuid.UUID               { return r.villaID }
func (r *Reservation) Guest() Guest                     { return r.guest }
func (r *Reservation) Stay() Stay                       { return r.stay }
func (r *Reservation) Nights() int                      { return r.stay.Nights() }
func (r *Reservation) GuestsCount() int                 { return r.guestsCount }
func (r *Reservation) ExtraBeds() ExtraBeds             { return r.extraBeds }
func (r *Reservation) ExtraBedTotal() int64             { return r.extraBedTotal }
func (r *Reservation) TotalPrice() int64                { return r.totalPrice }
func (r *Reservation) SpecialRequests() SpecialRequests { return r.specialRequests }
func (r *Reservation) Source() Source                   { return r.source }
func (r *Reservation) Status() Status                   { return r.status }
func (r *Reservation) CreatedAt() time.Time             { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time             { return r.updatedAt }
