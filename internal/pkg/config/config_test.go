//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donor-booking/internal/pkg/config"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "8080")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "local", cfg.Booking.Mode)
		assert.Equal(t, 15*time.Second, cfg.Booking.RemoteTimeout)
		assert.Equal(t, 300*time.Second, cfg.Booking.CacheTTL)
		assert.Equal(t, 6, cfg.Booking.MaxDates)
		assert.Equal(t, 30, cfg.Booking.HorizonDays)
		assert.Equal(t, 15, cfg.RateLimit.Requests)
		assert.Equal(t, time.Minute, cfg.RateLimit.Window)
		assert.Equal(t, 600*time.Second, cfg.Session.Timeout)
	})

	t.Run("admin ids and remote mode", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("ADMIN_IDS", "5097581039,42")
		t.Setenv("BOOKING_MODE", "hybrid")
		t.Setenv("BOOKING_REMOTE_URL", "https://example.test/exec")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, []int64{5097581039, 42}, cfg.Admin.IDs)
		assert.True(t, cfg.Admin.IsAdmin(42))
		assert.False(t, cfg.Admin.IsAdmin(43))
	})

	t.Run("port is required", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		require.NoError(t, os.Unsetenv("PORT"))

		_, err := config.LoadConfig()
		require.Error(t, err)
	})
}

func TestBookingConfig_Validate(t *testing.T) {
	valid := config.NewTestConfig().Booking

	tests := []struct {
		name    string
		mutate  func(c *config.BookingConfig)
		wantErr string
	}{
		{name: "test config", mutate: func(c *config.BookingConfig) {}},
		{name: "max dates", mutate: func(c *config.BookingConfig) { c.MaxDates = 0 }, wantErr: "BOOKING_MAX_DATES"},
		{name: "horizon", mutate: func(c *config.BookingConfig) { c.HorizonDays = -1 }, wantErr: "BOOKING_HORIZON_DAYS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
