package components

import (
	"context"

	"go.uber.org/fx"

	"donor-booking/internal/handler"
	"donor-booking/internal/handler/api"
	"donor-booking/internal/handler/middleware"
	"donor-booking/internal/pkg/config"
	"donor-booking/internal/pkg/metrics"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAdminHandler,
		api.NewRPCHandler,
		middleware.NewRequesterMiddleware,
		NewRateLimiter,
		func(b *api.BookingHandler, a *api.AdminHandler, r *api.RPCHandler, req *middleware.RequesterMiddleware, rl *middleware.RateLimiter) handler.Handlers {
			return handler.Handlers{Booking: b, Admin: a, RPC: r, Requester: req, RateLimit: rl}
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(lc fx.Lifecycle, cfg config.Config, m *metrics.Metrics) *middleware.RateLimiter {
	rl := middleware.NewRateLimiter(cfg.RateLimit, m)
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			rl.StartJanitor(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return rl
}
