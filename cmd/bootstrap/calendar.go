package bootstrap

import (
	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/infra/calendarfile"
	"villa-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		NewCalendar,
		pricing.NewClassifier,
	),
)

func NewCalendar(cfg config.Config) (*pricing.Calendar, error) {
	return calendarfile.Load(cfg.Calendar.Path)
}
