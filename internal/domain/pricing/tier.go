package pricing

type Tier string

const (
	TierWeekday    Tier = "weekday"
	TierWeekend    Tier = "weekend"
	TierHighSeason Tier = "high_season"
)

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	switch t {
	case TierWeekday, TierWeekend, TierHighSeason:
		return true
	default:
		return false
	}
}
