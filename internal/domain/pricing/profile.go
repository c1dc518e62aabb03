package pricing

import (
	"errors"
	"fmt"
)

var ErrIncompletePricingProfile = errors.New("incomplete pricing profile")

// Profile carries the three nightly rates of a villa. A nil rate means the
// villa was saved without it and cannot be priced.
type Profile struct {
	WeekdayRate    *int64
	WeekendRate    *int64
	HighSeasonRate *int64
}

func NewProfile(weekday, weekend, highSeason int64) Profile {
	return Profile{
		WeekdayRate:    &weekday,
		WeekendRate:    &weekend,
		HighSeasonRate: &highSeason,
	}
}

type Rates struct {
	Weekday    int64
	Weekend    int64
	HighSeason int64
}

func (p Profile) Rates() (Rates, error) {
	check := func(name string, v *int64) (int64, error) {
		if v == nil {
			return 0, fmt.Errorf("%w: %s rate missing", ErrIncompletePricingProfile, name)
		}
		if *v < 0 {
			return 0, fmt.Errorf("%w: %s rate negative", ErrIncompletePricingProfile, name)
		}
		return *v, nil
	}

	weekday, err := check("weekday", p.WeekdayRate)
	if err != nil {
		return Rates{}, err
	}
	weekend, err := check("weekend", p.WeekendRate)
	if err != nil {
		return Rates{}, err
	}
	high, err := check("high_season", p.HighSeasonRate)
	if err != nil {
		return Rates{}, err
	}
	return Rates{Weekday: weekday, Weekend: weekend, HighSeason: high}, nil
}

func (r Rates) For(t Tier) int64 {
	switch t {
	case TierWeekend:
		return r.Weekend
	case TierHighSeason:
		return r.HighSeason
	default:
		return r.Weekday
	}
}
