package bootstrap

import (
	"villa-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	CalendarModule,
	IntegrationsModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
