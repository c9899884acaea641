package components

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"donor-booking/internal/pkg/config"
	"donor-booking/internal/pkg/errs"
	"donor-booking/internal/pkg/metrics"
	"donor-booking/internal/usecase/booking"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		fx.Annotate(
			NewRouter,
			fx.As(new(booking.Service)),
		),
	),
	fx.Invoke(CheckRemoteAtStartup),
)

func NewRouter(cfg config.Config, local booking.LocalBackend, remote booking.RemoteBackend, logger *slog.Logger, m *metrics.Metrics) (*booking.Router, error) {
	mode, err := booking.ParseMode(cfg.Booking.Mode)
	if err != nil {
		return nil, err
	}
	return booking.NewRouter(mode, local, remote, logger, m)
}

// CheckRemoteAtStartup checks the remote backend at start-up. Remote-only deployments
// refuse to start without it; fallback deployments keep serving from the ledger.
func CheckRemoteAtStartup(lc fx.Lifecycle, svc booking.Service, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			mode := svc.Mode()
			if !mode.UsesRemote() {
				logger.Info("Booking backend ready", slog.String("mode", mode.String()))
				return nil
			}
			if err := svc.TestConnection(ctx); err != nil {
				if mode == booking.ModeRemoteOnly {
					return errs.Wrap(err, "remote backend is unreachable")
				}
				logger.Warn("Remote backend is unreachable, serving from local ledger until it recovers",
					slog.String("mode", mode.String()),
					slog.String("error", err.Error()),
				)
				return nil
			}
			logger.Info("Remote backend connected", slog.String("mode", mode.String()))
			return nil
		},
	})
}
