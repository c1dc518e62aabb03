package bootstrap

import (
	"time"

	"villa-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	ConfigSections,
)

// ConfigSections splits an already provided Config into the sections that
// components depend on, so most constructors never see the whole Config.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.JWTConfig { return cfg.JWT },
	func(cfg config.Config) config.BookingConfig { return cfg.Booking },
	func(cfg config.Config) config.RateLimitConfig { return cfg.RateLimit },
	func(cfg config.Config) config.RedisConfig { return cfg.Redis },
	func(cfg config.Config) config.CloudinaryConfig { return cfg.Cloudinary },
	func(cfg config.Config) config.AdminConfig { return cfg.Admin },
	func(cfg config.BookingConfig) *time.Location { return cfg.Location() },
)
