package bootstrap

import (
	"villa-booking/internal/infra/cache"
	"villa-booking/internal/infra/storage"

	"go.uber.org/fx"
)

// IntegrationsModule wires the optional external services. Both fall back to
// local no-op implementations when their settings are empty.
var IntegrationsModule = fx.Module("integrations",
	fx.Provide(
		cache.New,
		storage.New,
	),
)
