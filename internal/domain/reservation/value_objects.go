package reservation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"villa-booking/internal/domain/pricing"
)

// Stay is the half-open night range [checkIn, checkOut).
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	in, out := pricing.DateOf(checkIn), pricing.DateOf(checkOut)
	if !out.After(in) {
		return Stay{}, ErrInvalidRange
	}
	return Stay{checkIn: in, checkOut: out}, nil
}

func ParseStay(checkIn, checkOut string) (Stay, error) {
	in, err := pricing.ParseDate(checkIn)
	if err != nil {
		return Stay{}, ErrInvalidRange
	}
	out, err := pricing.ParseDate(checkOut)
	if err != nil {
		return Stay{}, ErrInvalidRange
	}
	return NewStay(in, out)
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) Nights() int {
	return pricing.DaysBetween(s.checkIn, s.checkOut)
}

// Overlaps treats touching endpoints as free: a checkout day may be the next check-in day.
func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

// Dates lists every night of the stay in calendar order; the checkout day is excluded.
func (s Stay) Dates() []time.Time {
	out := make([]time.Time, 0, s.Nights())
	for d := s.checkIn; d.Before(s.checkOut); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

func (s Stay) Contains(day time.Time) bool {
	d := pricing.DateOf(day)
	return !d.Before(s.checkIn) && d.Before(s.checkOut)
}

// ToDaterange renders the stay as a Postgres daterange literal.
func (s Stay) ToDaterange() string {
	return "[" + pricing.FormatDate(s.checkIn) + "," + pricing.FormatDate(s.checkOut) + ")"
}

func (s Stay) Equal(other Stay) bool {
	return s.checkIn.Equal(other.checkIn) && s.checkOut.Equal(other.checkOut)
}

func (s Stay) String() string {
	return s.ToDaterange()
}

const (
	MaxGuestNameLength       = 120
	MaxSpecialRequestsLength = 2000
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,19}$`)
)

type Guest struct {
	name  string
	email string
	phone string
}

func NewGuest(name, email, phone string) (Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxGuestNameLength {
		return Guest{}, ErrInvalidGuestName
	}
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Guest{}, ErrInvalidGuestEmail
	}
	phone = strings.TrimSpace(phone)
	if !phoneRegex.MatchString(phone) {
		return Guest{}, ErrInvalidGuestPhone
	}
	return Guest{name: name, email: email, phone: phone}, nil
}

// ReconstructGuest rebuilds stored guest details without validating them again.
func ReconstructGuest(name, email, phone string) Guest {
	return Guest{name: name, email: email, phone: phone}
}

func (g Guest) Name() string  { return g.name }
func (g Guest) Email() string { return g.email }
func (g Guest) Phone() string { return g.phone }

const (
	MaxExtraBedCount       = 10
	MaxExtraBedPrice int64 = 10_000_000
)

type ExtraBeds struct {
	count int
	price int64
}

func NewExtraBeds(count int, price int64) (ExtraBeds, error) {
	if count < 0 || count > MaxExtraBedCount || price < 0 || price > MaxExtraBedPrice {
		return ExtraBeds{}, ErrInvalidExtraBeds
	}
	return ExtraBeds{count: count, price: price}, nil
}

func (e ExtraBeds) Count() int   { return e.count }
func (e ExtraBeds) Price() int64 { return e.price }

// TotalFor charges each bed per night.
func (e ExtraBeds) TotalFor(nights int) (int64, error) {
	perNight, err := pricing.MulPrice(e.price, int64(e.count))
	if err != nil {
		return 0, err
	}
	return pricing.MulPrice(perNight, int64(nights))
}

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(s string) (SpecialRequests, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxSpecialRequestsLength {
		return SpecialRequests{}, ErrSpecialRequestsTooLong
	}
	return SpecialRequests{value: s}, nil
}

func ReconstructSpecialRequests(s string) SpecialRequests {
	return SpecialRequests{value: s}
}

func (n SpecialRequests) String() string {
	return n.value
}

func (n SpecialRequests) IsEmpty() bool {
	return n.value == ""
}
