package response

import (
	"time"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/usecase/commands"
	"villa-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingResponse struct {
	BookingID   uuid.UUID `json:"booking_id"`
	VillaName   string    `json:"villa_name"`
	TotalNights int       `json:"total_nights"`
	TotalPrice  int64     `json:"total_price"`
	Status      string    `json:"status"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	var resp CreateBookingResponse
	copyInto(&resp, r)
	return &resp
}

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	VillaID         uuid.UUID `json:"villa_id"`
	VillaTitle      string    `json:"villa_title"`
	VillaSlug       string    `json:"villa_slug"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      string    `json:"guest_phone"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	GuestsCount     int32     `json:"guests_count"`
	ExtraBedCount   int32     `json:"extra_bed_count"`
	ExtraBedPrice   int64     `json:"extra_bed_price"`
	ExtraBedTotal   int64     `json:"extra_bed_total"`
	TotalNights     int32     `json:"total_nights"`
	TotalPrice      int64     `json:"total_price"`
	TotalDisplay    string    `json:"total_display"`
	SpecialRequests string    `json:"special_requests"`
	BookingSource   string    `json:"booking_source"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	copyInto(&resp, v)
	resp.TotalDisplay = pricing.FormatRupiah(v.TotalPrice)
	return &resp
}

type BookingPageResponse struct {
	Items      []*BookingResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int64              `json:"total_pages"`
}

func FromBookingPage(p *queries.BookingPage) *BookingPageResponse {
	items := make([]*BookingResponse, len(p.Items))
	for i, v := range p.Items {
		items[i] = FromBookingView(v)
	}
	var pages int64
	if p.Limit > 0 {
		pages = (p.Total + int64(p.Limit) - 1) / int64(p.Limit)
	}
	return &BookingPageResponse{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: pages,
	}
}

type BookedRangeResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	Status        string    `json:"status"`
}

type AvailabilityResponse struct {
	VillaID     uuid.UUID             `json:"villa_id"`
	From        string                `json:"from"`
	To          string                `json:"to"`
	Booked      []BookedRangeResponse `json:"booked"`
	BookedDates []string              `json:"booked_dates"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	booked := make([]BookedRangeResponse, len(v.Booked))
	for i := range v.Booked {
		copyInto(&booked[i], &v.Booked[i])
	}
	return &AvailabilityResponse{
		VillaID:     v.VillaID,
		From:        pricing.FormatDate(v.From),
		To:          pricing.FormatDate(v.To),
		Booked:      booked,
		BookedDates: formatDates(v.BookedDates),
	}
}

type NightResponse struct {
	Date string `json:"date"`
	Tier string `json:"tier"`
	Rate int64  `json:"rate"`
}

type QuoteResponse struct {
	VillaID      uuid.UUID       `json:"villa_id"`
	CheckIn      string          `json:"check_in"`
	CheckOut     string          `json:"check_out"`
	Nights       int             `json:"nights"`
	TotalPrice   int64           `json:"total_price"`
	TotalDisplay string          `json:"total_display"`
	Breakdown    []NightResponse `json:"breakdown"`
	Available    bool            `json:"available"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	nights := make([]NightResponse, len(v.Breakdown))
	for i := range v.Breakdown {
		copyInto(&nights[i], &v.Breakdown[i])
	}
	return &QuoteResponse{
		VillaID:      v.VillaID,
		CheckIn:      pricing.FormatDate(v.CheckIn),
		CheckOut:     pricing.FormatDate(v.CheckOut),
		Nights:       v.Nights,
		TotalPrice:   v.TotalPrice,
		TotalDisplay: v.TotalDisplay,
		Breakdown:    nights,
		Available:    v.Available,
	}
}
