package components

import (
	"time"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/domain/reservation"
	"villa-booking/internal/pkg/clock"
	"villa-booking/internal/pkg/config"
	"villa-booking/internal/usecase"
	"villa-booking/internal/usecase/commands"
	"villa-booking/internal/usecase/queries"
	"villa-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewCalculator,
		fx.As(new(reservation.Quoter)),
	),
	func(clk clock.Clock, quoter reservation.Quoter, loc *time.Location) *reservation.Services {
		return &reservation.Services{
			Clock:    clk,
			Quoter:   quoter,
			Location: loc,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		func(uow shared.UnitOfWork, services *reservation.Services, cfg config.BookingConfig) commands.BookingCommands {
			return commands.NewBookingCommands(uow, services, cfg.NotificationTopic)
		},
		commands.NewVillaCommands,
		commands.NewGalleryCommands,
		func(storage shared.ImageStorage, villas commands.VillaCommands, cfg config.CloudinaryConfig) commands.UploadCommands {
			return commands.NewUploadCommands(storage, villas, cfg.MaxUploadBytes)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		func(bookings queries.ReservationReadStore, villas queries.VillaReadStore, quoter reservation.Quoter) queries.BookingQueries {
			return queries.NewBookingQueries(bookings, villas, quoter)
		},
		func(store queries.VillaReadStore, cache shared.Cache, cfg config.RedisConfig) queries.VillaQueries {
			return queries.NewVillaQueries(store, cache, cfg.TTL)
		},
		queries.NewGalleryQueries,
		func(classifier *pricing.Classifier, clk clock.Clock, loc *time.Location) queries.CalendarQueries {
			return queries.NewCalendarQueries(classifier, clk, loc)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
