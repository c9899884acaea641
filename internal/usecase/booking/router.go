package booking

import (
	"context"
	"log/slog"

	"donor-booking/internal/domain/calendar"
	"donor-booking/internal/pkg/errs"
	"donor-booking/internal/pkg/metrics"
)

const (
	backendLocal  = "local"
	backendRemote = "remote"
)

// Router selects the backend for every operation according to its mode.
// It holds no lock of its own: the remote call completes before the ledger
// is touched on the fallback path.
type Router struct {
	mode    Mode
	local   LocalBackend
	remote  RemoteBackend
	logger  *slog.Logger
	metrics *metrics.Metrics
}

var _ Service = (*Router)(nil)

func NewRouter(mode Mode, local LocalBackend, remote RemoteBackend, logger *slog.Logger, m *metrics.Metrics) (*Router, error) {
	switch mode {
	case ModeLocalOnly:
		if local == nil {
			return nil, errs.New("local-only mode requires a local ledger")
		}
	case ModeRemoteOnly:
		if remote == nil {
			return nil, errs.New("remote-only mode requires a remote client")
		}
	case ModeRemoteWithFallback:
		if local == nil || remote == nil {
			return nil, errs.New("fallback mode requires both a remote client and a local ledger")
		}
	default:
		return nil, errs.Mark(errs.Newf("unknown mode: %q", mode), errs.ErrUnknownMode)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		mode:    mode,
		local:   local,
		remote:  remote,
		logger:  logger,
		metrics: m,
	}, nil
}

func (r *Router) Mode() Mode {
	return r.mode
}

func dispatch[T any](ctx context.Context, r *Router, op string, call func(Backend) (T, error)) (T, error) {
	switch r.mode {
	case ModeLocalOnly:
		res, err := call(r.local)
		r.metrics.ObserveOperation(backendLocal, op, err)
		return res, err

	case ModeRemoteOnly:
		res, err := call(r.remote)
		r.metrics.ObserveOperation(backendRemote, op, err)
		return res, err

	case ModeRemoteWithFallback:
		res, err := call(r.remote)
		r.metrics.ObserveOperation(backendRemote, op, err)
		if err == nil {
			return res, nil
		}
		r.logger.WarnContext(ctx, "remote backend failed, retrying on local ledger",
			slog.String("operation", op),
			slog.String("error", err.Error()),
		)
		r.metrics.ObserveFallback(op)
		res, err = call(r.local)
		r.metrics.ObserveOperation(backendLocal, op, err)
		return res, err

	default:
		var zero T
		return zero, errs.Mark(errs.Newf("unknown mode: %q", r.mode), errs.ErrUnknownMode)
	}
}

func (r *Router) ListBookableDates(ctx context.Context, requesterID int64, forceRefresh bool) (*AvailableDates, error) {
	return dispatch(ctx, r, OpListBookableDates, func(b Backend) (*AvailableDates, error) {
		return b.ListBookableDates(ctx, requesterID, forceRefresh)
	})
}

func (r *Router) ListFreeSlots(ctx context.Context, date, category string) (*FreeSlots, error) {
	return dispatch(ctx, r, OpListFreeSlots, func(b Backend) (*FreeSlots, error) {
		return b.ListFreeSlots(ctx, date, category)
	})
}

func (r *Router) CheckExisting(ctx context.Context, date string, requesterID int64) (*ExistingCheck, error) {
	return dispatch(ctx, r, OpCheckExisting, func(b Backend) (*ExistingCheck, error) {
		return b.CheckExisting(ctx, date, requesterID)
	})
}

func (r *Router) Reserve(ctx context.Context, date, category, timeOfDay string, requesterID int64) (*Registration, error) {
	return dispatch(ctx, r, OpReserve, func(b Backend) (*Registration, error) {
		return b.Reserve(ctx, date, category, timeOfDay, requesterID)
	})
}

func (r *Router) Cancel(ctx context.Context, date, confirmationCode string, requesterID int64) (*Cancellation, error) {
	return dispatch(ctx, r, OpCancel, func(b Backend) (*Cancellation, error) {
		return b.Cancel(ctx, date, confirmationCode, requesterID)
	})
}

func (r *Router) ListUserBookings(ctx context.Context, requesterID int64) (*UserBookings, error) {
	return dispatch(ctx, r, OpListUserBookings, func(b Backend) (*UserBookings, error) {
		return b.ListUserBookings(ctx, requesterID)
	})
}

func (r *Router) AggregateStats(ctx context.Context) (*Stats, error) {
	return dispatch(ctx, r, OpAggregateStats, func(b Backend) (*Stats, error) {
		return b.AggregateStats(ctx)
	})
}

func (r *Router) AggregateQuotas(ctx context.Context) (*Quotas, error) {
	return dispatch(ctx, r, OpAggregateQuotas, func(b Backend) (*Quotas, error) {
		return b.AggregateQuotas(ctx)
	})
}

// ClearCache is a no-op in local-only mode.
func (r *Router) ClearCache() {
	if !r.mode.UsesRemote() {
		return
	}
	r.remote.ClearCache()
	r.logger.Info("remote cache cleared")
}

// Reset wipes the local ledger back to its default quotas and drops cached
// remote reads. The remote side's own state is untouched.
func (r *Router) Reset(ctx context.Context) {
	if r.local != nil {
		r.local.Reset()
	}
	r.ClearCache()
	r.logger.InfoContext(ctx, "booking state reset", slog.String("mode", r.mode.String()))
}

// ReplaceQuotas swaps the local quota table. Remote-only deployments keep
// their quotas on the remote side.
func (r *Router) ReplaceQuotas(ctx context.Context, t calendar.QuotaTable) error {
	if r.mode == ModeRemoteOnly {
		return errs.Mark(errs.New("quotas are managed by the remote backend"), errs.ErrUnsupportedOperation)
	}
	r.local.ReplaceQuotas(t)
	r.logger.InfoContext(ctx, "quota table replaced", slog.Int("weekdays", len(t)))
	return nil
}

// TestConnection checks the remote backend; local-only routers are always reachable.
func (r *Router) TestConnection(ctx context.Context) error {
	if !r.mode.UsesRemote() {
		return nil
	}
	return r.remote.TestConnection(ctx)
}
