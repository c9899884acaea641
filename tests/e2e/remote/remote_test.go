//go:build e2e

package remote_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donor-booking/internal/pkg/config"
	"donor-booking/internal/usecase/booking"
	"donor-booking/tests/common/builder"
	"donor-booking/tests/common/httptest"
	"donor-booking/tests/e2e"
)

const bookingsURL = "/api/bookings"

// An instance in remote-only mode keeps no state of its own: every booking
// lands in the upstream ledger behind the wire endpoint.
func TestRemoteOnly(t *testing.T) {
	t.Parallel()

	upstream := e2e.StartApp(t, config.NewTestConfig())
	front := e2e.StartApp(t, e2e.RemoteConfig("remote", e2e.ServeRPC(t, upstream)))
	require.Equal(t, booking.ModeRemoteOnly, front.Service.Mode())

	b := builder.NewBookingBuilder().WithRequester(8001)

	var reg booking.Registration
	rec := httptest.PerformRequest(t, front.Router, http.MethodPost, bookingsURL, b.BuildReserveDTO(), b.RequesterID)
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &reg)

	mine, err := upstream.Service.ListUserBookings(context.Background(), b.RequesterID)
	require.NoError(t, err)
	require.Equal(t, 1, mine.Count)
	assert.Equal(t, reg.ConfirmationCode, mine.Bookings[0].ConfirmationCode)

	local, err := front.Ledger.ListUserBookings(context.Background(), b.RequesterID)
	require.NoError(t, err)
	assert.Zero(t, local.Count)

	t.Run("remote-reported errors surface as bad gateway", func(t *testing.T) {
		rec := httptest.PerformRequest(t, front.Router, http.MethodPost, bookingsURL, b.BuildReserveDTO(), b.RequesterID)
		httptest.AssertErrorResponse(t, rec, http.StatusBadGateway, "already have a booking")
	})

	t.Run("cached dates are served until cleared", func(t *testing.T) {
		var first, second booking.AvailableDates
		rec := httptest.PerformRequest(t, front.Router, http.MethodGet, "/api/dates", nil, b.RequesterID)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &first)

		rec = httptest.PerformRequest(t, front.Router, http.MethodGet, "/api/dates", nil, b.RequesterID)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &second)
		assert.Equal(t, first, second)

		rec = httptest.PerformRequest(t, front.Router, http.MethodPost, "/api/admin/cache/clear", nil, front.Config.Admin.IDs[0])
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})
}

func TestRemoteOnly_RefusesToStartWithoutRemote(t *testing.T) {
	t.Parallel()

	cfg := e2e.RemoteConfig("remote", e2e.UnreachableURL(t))
	_, _, err := e2e.TryStartApp(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote backend is unreachable")
}

// With the remote down, the fallback mode serves from the local ledger.
func TestRemoteWithFallback(t *testing.T) {
	t.Parallel()

	app := e2e.StartApp(t, e2e.RemoteConfig("hybrid", e2e.UnreachableURL(t)))
	require.Equal(t, booking.ModeRemoteWithFallback, app.Service.Mode())

	b := builder.NewBookingBuilder().WithRequester(9001)

	var reg booking.Registration
	rec := httptest.PerformRequest(t, app.Router, http.MethodPost, bookingsURL, b.BuildReserveDTO(), b.RequesterID)
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &reg)

	local, err := app.Ledger.ListUserBookings(context.Background(), b.RequesterID)
	require.NoError(t, err)
	require.Equal(t, 1, local.Count)

	// local invariants still hold behind the fallback
	rec = httptest.PerformRequest(t, app.Router, http.MethodPost, bookingsURL, b.BuildReserveDTO(), b.RequesterID)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already have a booking")

	rec = httptest.PerformRequest(t, app.Router, http.MethodGet, "/metrics", nil, 0)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `booking_fallbacks_total{operation="register"} 2`)
}
