package bootstrap

import (
	"log/slog"

	"go.uber.org/fx"

	"donor-booking/internal/handler/middleware"
	"donor-booking/internal/pkg/config"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
