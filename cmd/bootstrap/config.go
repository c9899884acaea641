package bootstrap

import (
	"go.uber.org/fx"

	"donor-booking/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
