package pricing

import (
	"fmt"
	"time"
)

const DefaultUpcomingLimit = 5

type HighSeasonDate struct {
	Date time.Time
	Name string
}

type Classifier struct {
	cal *Calendar
}

func NewClassifier(cal *Calendar) *Classifier {
	return &Classifier{cal: cal}
}

func (c *Classifier) Calendar() *Calendar {
	return c.cal
}

// Classify maps a calendar day to its tier. Order: holiday, school break, weekend, weekday.
func (c *Classifier) Classify(date time.Time) (Tier, error) {
	d := DateOf(date)
	if !c.cal.HasYear(d.Year()) {
		return "", fmt.Errorf("%w: %d", ErrCalendarYearNotLoaded, d.Year())
	}

	if _, ok := c.cal.HolidayName(d); ok {
		return TierHighSeason, nil
	}
	if _, ok := c.cal.SchoolBreakAt(d); ok {
		return TierHighSeason, nil
	}

	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return TierWeekend, nil
	default:
		return TierWeekday, nil
	}
}

// UpcomingHighSeason lists holidays and school-break start days strictly after from, earliest
// first. A holiday sorts before a break starting on the same day.
func (c *Classifier) UpcomingHighSeason(from time.Time, limit int) []HighSeasonDate {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	after := dayKey(from)

	var holidays []HighSeasonDate
	for _, h := range c.cal.Holidays() {
		if dayKey(h.Date) > after {
			holidays = append(holidays, HighSeasonDate(h))
		}
	}
	var breaks []HighSeasonDate
	for _, b := range c.cal.SchoolBreaks() {
		if dayKey(b.Start) > after {
			breaks = append(breaks, HighSeasonDate{Date: b.Start, Name: b.Name})
		}
	}

	out := make([]HighSeasonDate, 0, limit)
	for len(out) < limit && (len(holidays) > 0 || len(breaks) > 0) {
		if len(breaks) == 0 || (len(holidays) > 0 && dayKey(holidays[0].Date) <= dayKey(breaks[0].Date)) {
			out = append(out, holidays[0])
			holidays = holidays[1:]
			continue
		}
		out = append(out, breaks[0])
		breaks = breaks[1:]
	}
	return out
}
