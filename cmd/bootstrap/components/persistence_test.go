//go:build unit

package components_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donor-booking/cmd/bootstrap/components"
	"donor-booking/internal/pkg/clock"
	"donor-booking/internal/pkg/config"
	"donor-booking/internal/pkg/errs"
	"donor-booking/internal/pkg/metrics"
)

func TestNewRemoteBackend(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	build := func(mode, url string) error {
		cfg := config.NewTestConfig()
		cfg.Booking.Mode = mode
		cfg.Booking.RemoteURL = url
		_, err := components.NewRemoteBackend(cfg, clock.NewRealClock(), logger, metrics.NewNop())
		return err
	}

	t.Run("local mode has no remote", func(t *testing.T) {
		cfg := config.NewTestConfig()
		backend, err := components.NewRemoteBackend(cfg, clock.NewRealClock(), logger, metrics.NewNop())
		require.NoError(t, err)
		assert.Nil(t, backend)
	})

	t.Run("mode aliases are accepted", func(t *testing.T) {
		for _, mode := range []string{"google", "Hybrid", "RemoteWithFallback", "remoteonly"} {
			assert.NoError(t, build(mode, "http://127.0.0.1:1/exec"), mode)
		}
	})

	t.Run("remote modes need a url", func(t *testing.T) {
		for _, mode := range []string{"remote", "hybrid"} {
			err := build(mode, "  ")
			require.Error(t, err, mode)
			assert.Contains(t, err.Error(), "BOOKING_REMOTE_URL is required")
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		err := build("sheets", "http://127.0.0.1:1/exec")
		assert.True(t, errs.Is(err, errs.ErrUnknownMode))
	})

	t.Run("remote client is built", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Booking.Mode = "remote"
		cfg.Booking.RemoteURL = "http://127.0.0.1:1/exec"
		backend, err := components.NewRemoteBackend(cfg, clock.NewRealClock(), logger, metrics.NewNop())
		require.NoError(t, err)
		assert.NotNil(t, backend)
	})
}
