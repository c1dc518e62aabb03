package middleware

import (
	"log/slog"
	"slices"

	"villa-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets the public site and the admin panel call the API from the
// configured origins. The admin panel authenticates with a cookie, so credentials
// stay allowed unless the origin list is the "*" wildcard, which browsers refuse
// to combine with credentials.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    append(slices.Clone(cfg.ExposeHeaders), "X-Request-ID", "Retry-After"),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
		slog.Warn("CORS allows every origin; admin cookies will not be sent cross-site")
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
		slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	}
	return cors.New(corsCfg)
}
