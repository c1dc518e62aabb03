package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"villa-booking/internal/domain/user"
	"villa-booking/internal/handler/api"
	"villa-booking/internal/handler/middleware"
	"villa-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Villa    *api.VillaHandler
	Gallery  *api.GalleryHandler
	Calendar *api.CalendarHandler
	Upload   *api.UploadHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/villas", Handler: h.Villa.ListPublic},
			{Method: http.MethodGet, Path: "/villas/:slug", Handler: h.Villa.GetBySlug},
			{Method: http.MethodGet, Path: "/villas/:slug/availability", Handler: h.Villa.Availability},
			{Method: http.MethodGet, Path: "/villas/:slug/quote", Handler: h.Villa.Quote},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.CreatePublic, Mw: []gin.HandlerFunc{limiter.Middleware()}},
			{Method: http.MethodGet, Path: "/gallery", Handler: h.Gallery.ListPublic},
			{Method: http.MethodGet, Path: "/calendar/high-season", Handler: h.Calendar.HighSeason},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/auth/login", Handler: h.Auth.Login},
			})

			authRequired := admin.Group("")
			authRequired.Use(authMiddleware.RequireAuth())

			can := authMiddleware.RequirePermission
			readBookings := []gin.HandlerFunc{can(user.PermBookingsRead)}
			writeBookings := []gin.HandlerFunc{can(user.PermBookingsWrite)}
			villas := []gin.HandlerFunc{can(user.PermVillasWrite)}
			gallery := []gin.HandlerFunc{can(user.PermGalleryWrite)}

			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/auth/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/auth/me", Handler: h.Auth.Me},

				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List, Mw: readBookings},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get, Mw: readBookings},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Booking.ChangeStatus, Mw: []gin.HandlerFunc{can(user.PermBookingsStatus)}},
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.CreateAdmin, Mw: writeBookings},
				{Method: http.MethodPut, Path: "/bookings/:id", Handler: h.Booking.Update, Mw: writeBookings},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.Delete, Mw: writeBookings},

				{Method: http.MethodGet, Path: "/villas", Handler: h.Villa.ListAdmin, Mw: villas},
				{Method: http.MethodPost, Path: "/villas", Handler: h.Villa.Create, Mw: villas},
				{Method: http.MethodGet, Path: "/villas/:id", Handler: h.Villa.Get, Mw: villas},
				{Method: http.MethodPut, Path: "/villas/:id", Handler: h.Villa.Update, Mw: villas},
				{Method: http.MethodPatch, Path: "/villas/:id/toggle", Handler: h.Villa.Toggle, Mw: villas},
				{Method: http.MethodDelete, Path: "/villas/:id", Handler: h.Villa.Delete, Mw: villas},

				{Method: http.MethodGet, Path: "/gallery", Handler: h.Gallery.ListAdmin, Mw: gallery},
				{Method: http.MethodPost, Path: "/gallery", Handler: h.Gallery.Create, Mw: gallery},
				{Method: http.MethodPut, Path: "/gallery/:id", Handler: h.Gallery.Update, Mw: gallery},
				{Method: http.MethodPatch, Path: "/gallery/:id/toggle", Handler: h.Gallery.Toggle, Mw: gallery},
				{Method: http.MethodDelete, Path: "/gallery/:id", Handler: h.Gallery.Delete, Mw: gallery},

				{Method: http.MethodPost, Path: "/upload", Handler: h.Upload.Upload, Mw: []gin.HandlerFunc{can(user.PermUploads)}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
