//go:build unit || e2e

package builder

import (
	"time"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/domain/reservation"
	"villa-booking/internal/pkg/clock"
)

// FixedNow is the reference "now" of unit tests: Monday 2025-09-01, before every default stay.
var FixedNow = time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

func mustDate(s string) time.Time {
	d, err := pricing.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewTestCalendar loads 2025 and 2026 with a small holiday set. 2025-09-05 is a holiday
// so the default stay spans a weekday and a high-season night.
func NewTestCalendar() *pricing.Calendar {
	cal, err := pricing.NewCalendar(
		pricing.YearData{
			Year: 2025,
			Holidays: []pricing.Holiday{
				{Date: mustDate("2025-08-17"), Name: "Hari Kemerdekaan RI"},
				{Date: mustDate("2025-09-05"), Name: "Maulid Nabi Muhammad SAW"},
				{Date: mustDate("2025-12-25"), Name: "Hari Raya Natal"},
			},
			SchoolBreaks: []pricing.SchoolBreak{
				{Start: mustDate("2025-12-14"), End: mustDate("2026-01-12")},
			},
		},
		pricing.YearData{
			Year: 2026,
			Holidays: []pricing.Holiday{
				{Date: mustDate("2026-01-01"), Name: "Tahun Baru Masehi"},
			},
		},
	)
	if err != nil {
		panic(err)
	}
	return cal
}

func NewTestCalculator() *pricing.Calculator {
	return pricing.NewCalculator(pricing.NewClassifier(NewTestCalendar()))
}

func NewBookingServices(now time.Time) *reservation.Services {
	return &reservation.Services{
		Clock:    clock.NewMockClock(now),
		Quoter:   NewTestCalculator(),
		Location: time.UTC,
	}
}
