package pricing

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("check-out must be after check-in")

type NightPrice struct {
	Date time.Time
	Tier Tier
	Rate int64
}

type Quote struct {
	CheckIn    time.Time
	CheckOut   time.Time
	TotalPrice int64
	Breakdown  []NightPrice
}

func (q Quote) Nights() int {
	return len(q.Breakdown)
}

type Range struct {
	Min int64
	Max int64
}

type Calculator struct {
	classifier *Classifier
}

func NewCalculator(classifier *Classifier) *Calculator {
	return &Calculator{classifier: classifier}
}

// PriceStay prices every night in [checkIn, checkOut). On error no quote is returned.
func (c *Calculator) PriceStay(checkIn, checkOut time.Time, profile Profile) (Quote, error) {
	in, out := DateOf(checkIn), DateOf(checkOut)
	if !out.After(in) {
		return Quote{}, ErrInvalidRange
	}

	rates, err := profile.Rates()
	if err != nil {
		return Quote{}, err
	}

	nights := DaysBetween(in, out)
	breakdown := make([]NightPrice, 0, nights)
	var total int64
	for d := in; d.Before(out); d = d.AddDate(0, 0, 1) {
		tier, err := c.classifier.Classify(d)
		if err != nil {
			return Quote{}, err
		}
		rate := rates.For(tier)
		breakdown = append(breakdown, NightPrice{Date: d, Tier: tier, Rate: rate})
		if total, err = AddPrice(total, rate); err != nil {
			return Quote{}, err
		}
	}

	return Quote{
		CheckIn:    in,
		CheckOut:   out,
		TotalPrice: total,
		Breakdown:  breakdown,
	}, nil
}

func PriceRange(profile Profile) (Range, error) {
	rates, err := profile.Rates()
	if err != nil {
		return Range{}, err
	}
	return Range{
		Min: min(rates.Weekday, rates.Weekend, rates.HighSeason),
		Max: max(rates.Weekday, rates.Weekend, rates.HighSeason),
	}, nil
}
