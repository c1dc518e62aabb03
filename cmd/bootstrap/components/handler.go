package components

import (
	"villa-booking/internal/handler"
	"villa-booking/internal/handler/api"
	"villa-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewVillaHandler,
		api.NewGalleryHandler,
		api.NewCalendarHandler,
		api.NewUploadHandler,
		middleware.NewAuthMiddleware,
		middleware.NewRateLimiter,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Villa    *api.VillaHandler
	Gallery  *api.GalleryHandler
	Calendar *api.CalendarHandler
	Upload   *api.UploadHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:     p.Auth,
		Booking:  p.Booking,
		Villa:    p.Villa,
		Gallery:  p.Gallery,
		Calendar: p.Calendar,
		Upload:   p.Upload,
	}
}
