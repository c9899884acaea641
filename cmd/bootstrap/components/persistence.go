package components

import (
	"log/slog"
	"strings"

	"go.uber.org/fx"

	"donor-booking/internal/infra/ledger"
	"donor-booking/internal/infra/remote"
	"donor-booking/internal/pkg/clock"
	"donor-booking/internal/pkg/config"
	"donor-booking/internal/pkg/errs"
	"donor-booking/internal/pkg/metrics"
	"donor-booking/internal/usecase/booking"
)

// PersistenceModule provides the two sources of truth: the in-process ledger
// and, when the mode needs it, the remote client.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		clock.NewRealClock,
		NewLedger,
		func(l *ledger.Ledger) booking.LocalBackend { return l },
		NewRemoteBackend,
	),
)

func NewLedger(clk clock.Clock, cfg config.Config) (*ledger.Ledger, error) {
	opts := []ledger.Option{
		ledger.WithHorizonDays(cfg.Booking.HorizonDays),
		ledger.WithMaxResults(cfg.Booking.MaxDates),
	}
	if cfg.Booking.SeedDemo {
		opts = append(opts, ledger.WithSeed(ledger.DemoSeed()...))
	}
	return ledger.New(clk, opts...)
}

// NewRemoteBackend returns nil in local-only mode.
func NewRemoteBackend(cfg config.Config, clk clock.Clock, logger *slog.Logger, m *metrics.Metrics) (booking.RemoteBackend, error) {
	mode, err := booking.ParseMode(cfg.Booking.Mode)
	if err != nil {
		return nil, err
	}
	if !mode.UsesRemote() {
		return nil, nil
	}
	if strings.TrimSpace(cfg.Booking.RemoteURL) == "" {
		return nil, errs.Newf("BOOKING_REMOTE_URL is required in %s mode", mode)
	}
	client, err := remote.New(cfg.Booking.RemoteURL,
		remote.WithTimeout(cfg.Booking.RemoteTimeout),
		remote.WithCacheTTL(cfg.Booking.CacheTTL),
		remote.WithClock(clk),
		remote.WithLogger(logger),
		remote.WithMetrics(m),
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}
