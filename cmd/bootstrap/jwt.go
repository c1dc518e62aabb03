package bootstrap

import (
	"villa-booking/internal/pkg/config"
	"villa-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService relies on config.Validate having rejected short secrets and
// non-positive durations.
func NewJWTService(cfg config.JWTConfig) *jwt.Service {
	return jwt.NewService(cfg.Secret, cfg.Duration)
}
