//go:build unit

package booking_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donor-booking/internal/pkg/errs"
	"donor-booking/internal/usecase/booking"
)

func TestParseMode(t *testing.T) {
	cases := map[string]booking.Mode{
		"local":              booking.ModeLocalOnly,
		"LOCAL":              booking.ModeLocalOnly,
		"LocalOnly":          booking.ModeLocalOnly,
		"remote":             booking.ModeRemoteOnly,
		"google":             booking.ModeRemoteOnly,
		"RemoteOnly":         booking.ModeRemoteOnly,
		"hybrid":             booking.ModeRemoteWithFallback,
		" HYBRID ":           booking.ModeRemoteWithFallback,
		"RemoteWithFallback": booking.ModeRemoteWithFallback,
	}
	for in, want := range cases {
		got, err := booking.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := booking.ParseMode("cloud")
	assert.True(t, errs.Is(err, errs.ErrUnknownMode))

	assert.False(t, booking.ModeLocalOnly.UsesRemote())
	assert.True(t, booking.ModeRemoteOnly.UsesRemote())
	assert.True(t, booking.ModeRemoteWithFallback.UsesRemote())
}

func TestEnvelope(t *testing.T) {
	t.Run("success carries the object", func(t *testing.T) {
		env := booking.Wrap(&booking.UserBookings{Bookings: []booking.BookingItem{}, Count: 0}, nil)
		assert.True(t, env.IsSuccess())

		b, err := json.Marshal(env)
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"success","data":{"bookings":[],"count":0}}`, string(b))
	})

	t.Run("error data is a plain string", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("booking not found"), errs.ErrBookingNotFound), "cancel")
		env := booking.Wrap((*booking.Cancellation)(nil), err)
		assert.False(t, env.IsSuccess())

		b, mErr := json.Marshal(env)
		require.NoError(t, mErr)
		assert.JSONEq(t, `{"status":"error","data":"cancel: booking not found"}`, string(b))
	})

	t.Run("missing error message", func(t *testing.T) {
		assert.Equal(t, "unknown error", booking.Message(nil))
		assert.Equal(t, booking.StatusError, booking.Failure(nil).Status)
	})
}
