package queries

import (
	"time"

	"github.com/google/uuid"
)

type AmenityView struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

type VillaImageView struct {
	URL       string `json:"url"`
	AltText   string `json:"alt_text"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int32  `json:"sort_order"`
}

// VillaView carries nullable rates so that a villa saved without full pricing still lists.
type VillaView struct {
	ID              uuid.UUID        `json:"id"`
	Slug            string           `json:"slug"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	LongDescription string           `json:"long_description"`
	Location        string           `json:"location"`
	MaxGuests       int32            `json:"max_guests"`
	Status          string           `json:"status"`
	WeekdayPrice    *int64           `json:"weekday_price"`
	WeekendPrice    *int64           `json:"weekend_price"`
	HighSeasonPrice *int64           `json:"high_season_price"`
	Amenities       []AmenityView    `json:"amenities"`
	Features        []string         `json:"features"`
	Images          []VillaImageView `json:"images"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type PriceRangeView struct {
	Min     int64  `json:"min"`
	Max     int64  `json:"max"`
	Display string `json:"display"`
}

type VillaDetail struct {
	Villa      *VillaView      `json:"villa"`
	PriceRange *PriceRangeView `json:"price_range,omitempty"`
}

type VillaListFilter struct {
	Status *string
	Limit  int
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	VillaID         uuid.UUID `json:"villa_id"`
	VillaTitle      string    `json:"villa_title"`
	VillaSlug       string    `json:"villa_slug"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      string    `json:"guest_phone"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	GuestsCount     int32     `json:"guests_count"`
	ExtraBedCount   int32     `json:"extra_bed_count"`
	ExtraBedPrice   int64     `json:"extra_bed_price"`
	ExtraBedTotal   int64     `json:"extra_bed_total"`
	TotalNights     int32     `json:"total_nights"`
	TotalPrice      int64     `json:"total_price"`
	SpecialRequests string    `json:"special_requests"`
	BookingSource   string    `json:"booking_source"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingFilter struct {
	Status  *string
	VillaID *uuid.UUID
	Page    int
	Limit   int
}

type BookingPage struct {
	Items []*BookingView `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// BookedRange is a blocking stay, half-open [CheckIn, CheckOut).
type BookedRange struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	Status        string    `json:"status"`
}

type AvailabilityView struct {
	VillaID     uuid.UUID     `json:"villa_id"`
	From        time.Time     `json:"from"`
	To          time.Time     `json:"to"`
	Booked      []BookedRange `json:"booked"`
	BookedDates []time.Time   `json:"booked_dates"`
}

type NightView struct {
	Date time.Time `json:"date"`
	Tier string    `json:"tier"`
	Rate int64     `json:"rate"`
}

type QuoteView struct {
	VillaID      uuid.UUID   `json:"villa_id"`
	CheckIn      time.Time   `json:"check_in"`
	CheckOut     time.Time   `json:"check_out"`
	Nights       int         `json:"nights"`
	TotalPrice   int64       `json:"total_price"`
	TotalDisplay string      `json:"total_display"`
	Breakdown    []NightView `json:"breakdown"`
	Available    bool        `json:"available"`
}

type GalleryItemView struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	AltText      string    `json:"alt_text"`
	DisplayOrder int32     `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	// Permissions is filled by UserQueries from the role.
	Permissions []string `json:"permissions,omitempty"`
}

type HighSeasonDateView struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}
