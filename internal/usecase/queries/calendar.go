package queries

import (
	"context"
	"time"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/pkg/clock"
)

const maxUpcomingHighSeason = 50

type CalendarQueries interface {
	UpcomingHighSeason(ctx context.Context, limit int) ([]HighSeasonDateView, error)
}

type calendarQueriesImpl struct {
	classifier *pricing.Classifier
	clock      clock.Clock
	loc        *time.Location
}

func NewCalendarQueries(classifier *pricing.Classifier, clk clock.Clock, loc *time.Location) CalendarQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &calendarQueriesImpl{classifier: classifier, clock: clk, loc: loc}
}

// UpcomingHighSeason lists high-season dates after today in the booking zone.
func (q *calendarQueriesImpl) UpcomingHighSeason(_ context.Context, limit int) ([]HighSeasonDateView, error) {
	if limit > maxUpcomingHighSeason {
		limit = maxUpcomingHighSeason
	}
	today := clock.Today(q.clock, q.loc)

	dates := q.classifier.UpcomingHighSeason(today, limit)
	out := make([]HighSeasonDateView, 0, len(dates))
	for _, d := range dates {
		out = append(out, HighSeasonDateView{Date: d.Date, Name: d.Name})
	}
	return out, nil
}
