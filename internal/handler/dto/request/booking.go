package request

import (
	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/domain/reservation"
	"villa-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	VillaID         uuid.UUID `json:"villa_id" binding:"required"`
	GuestName       string    `json:"guest_name" binding:"required,max=120"`
	GuestEmail      string    `json:"guest_email" binding:"required,email"`
	GuestPhone      string    `json:"guest_phone" binding:"required,max=20"`
	CheckIn         string    `json:"check_in" binding:"required,date"`
	CheckOut        string    `json:"check_out" binding:"required,date"`
	GuestsCount     int       `json:"guests_count" binding:"required,min=1"`
	SpecialRequests string    `json:"special_requests" binding:"max=2000"`
	// Admin only; ignored on the public endpoint.
	ExtraBedCount int    `json:"extra_bed_count" binding:"min=0,max=10"`
	ExtraBedPrice int64  `json:"extra_bed_price" binding:"min=0,max=10000000"`
	BookingSource string `json:"booking_source" binding:"omitempty,booking_source"`
	Status        string `json:"status" binding:"omitempty,oneof=pending confirmed"`
}

func (r *CreateBookingRequest) ToDraft() (reservation.Draft, error) {
	guest, err := reservation.NewGuest(r.GuestName, r.GuestEmail, r.GuestPhone)
	if err != nil {
		return reservation.Draft{}, err
	}
	stay, err := reservation.ParseStay(r.CheckIn, r.CheckOut)
	if err != nil {
		return reservation.Draft{}, err
	}
	beds, err := reservation.NewExtraBeds(r.ExtraBedCount, r.ExtraBedPrice)
	if err != nil {
		return reservation.Draft{}, err
	}
	notes, err := reservation.NewSpecialRequests(r.SpecialRequests)
	if err != nil {
		return reservation.Draft{}, err
	}
	source, err := reservation.NewSource(r.BookingSource)
	if err != nil {
		return reservation.Draft{}, err
	}
	var status reservation.Status
	if r.Status != "" {
		if status, err = reservation.NewStatus(r.Status); err != nil {
			return reservation.Draft{}, err
		}
	}

	return reservation.Draft{
		Guest:           guest,
		Stay:            stay,
		GuestsCount:     r.GuestsCount,
		ExtraBeds:       beds,
		SpecialRequests: notes,
		Source:          source,
		Status:          status,
	}, nil
}

// UpdateBookingRequest is a partial update; omitted fields keep their stored value.
type UpdateBookingRequest struct {
	GuestName       *string `json:"guest_name" binding:"omitempty,max=120"`
	GuestEmail      *string `json:"guest_email" binding:"omitempty,email"`
	GuestPhone      *string `json:"guest_phone" binding:"omitempty,max=20"`
	CheckIn         *string `json:"check_in" binding:"omitempty,date"`
	CheckOut        *string `json:"check_out" binding:"omitempty,date"`
	GuestsCount     *int    `json:"guests_count" binding:"omitempty,min=1"`
	ExtraBedCount   *int    `json:"extra_bed_count" binding:"omitempty,min=0,max=10"`
	ExtraBedPrice   *int64  `json:"extra_bed_price" binding:"omitempty,min=0,max=10000000"`
	SpecialRequests *string `json:"special_requests" binding:"omitempty,max=2000"`
}

func (r *UpdateBookingRequest) ToChanges(existing *reservation.Reservation) (reservation.Changes, error) {
	var c reservation.Changes

	if r.GuestName != nil || r.GuestEmail != nil || r.GuestPhone != nil {
		current := existing.Guest()
		guest, err := reservation.NewGuest(
			patch.Coalesce(r.GuestName, current.Name()),
			patch.Coalesce(r.GuestEmail, current.Email()),
			patch.Coalesce(r.GuestPhone, current.Phone()),
		)
		if err != nil {
			return c, err
		}
		c.Guest = &guest
	}

	if r.CheckIn != nil || r.CheckOut != nil {
		current := existing.Stay()
		stay, err := reservation.ParseStay(
			patch.Coalesce(r.CheckIn, pricing.FormatDate(current.CheckIn())),
			patch.Coalesce(r.CheckOut, pricing.FormatDate(current.CheckOut())),
		)
		if err != nil {
			return c, err
		}
		c.Stay = &stay
	}

	c.GuestsCount = r.GuestsCount

	if r.ExtraBedCount != nil || r.ExtraBedPrice != nil {
		current := existing.ExtraBeds()
		beds, err := reservation.NewExtraBeds(
			patch.Coalesce(r.ExtraBedCount, current.Count()),
			patch.Coalesce(r.ExtraBedPrice, current.Price()),
		)
		if err != nil {
			return c, err
		}
		c.ExtraBeds = &beds
	}

	if r.SpecialRequests != nil {
		notes, err := reservation.NewSpecialRequests(*r.SpecialRequests)
		if err != nil {
			return c, err
		}
		c.SpecialRequests = &notes
	}
	return c, nil
}

func (r *UpdateBookingRequest) IsEmpty() bool {
	return r.GuestName == nil && r.GuestEmail == nil && r.GuestPhone == nil &&
		r.CheckIn == nil && r.CheckOut == nil && r.GuestsCount == nil &&
		r.ExtraBedCount == nil && r.ExtraBedPrice == nil && r.SpecialRequests == nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

type ListBookingsQuery struct {
	Status  string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	VillaID string `form:"villa_id" binding:"omitempty,uuid"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
	Limit   int    `form:"limit" binding:"omitempty,min=1"`
}

type AvailabilityQuery struct {
	From string `form:"from" binding:"required,date"`
	To   string `form:"to" binding:"required,date"`
}

type QuoteQuery struct {
	CheckIn  string `form:"check_in" binding:"required,date"`
	CheckOut string `form:"check_out" binding:"required,date"`
}
