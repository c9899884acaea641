//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"donor-booking/internal/handler/api"
	"donor-booking/internal/pkg/errs"
	"donor-booking/internal/usecase/booking"
	"donor-booking/tests/common/builder"
	"donor-booking/tests/common/httptest"
	bookingmock "donor-booking/tests/mock/booking"
)

func setupRPC(t *testing.T) (*gin.Engine, *bookingmock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	service := bookingmock.NewMockService(ctrl)

	r := gin.New()
	r.POST("/rpc", api.NewRPCHandler(service).Handle)
	return r, service
}

func TestRPCHandler(t *testing.T) {
	b := builder.NewBookingBuilder().WithDate("2025-01-06").WithRequester(42)

	t.Run("register with numeric user_id", func(t *testing.T) {
		r, service := setupRPC(t)
		want := b.BuildRegistration("T-1")
		service.EXPECT().Reserve(gomock.Any(), "2025-01-06", "O+", "09:00", int64(42)).Return(want, nil).Times(1)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/rpc", b.RPCBody(booking.OpReserve, nil), 0)

		var got booking.Registration
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		assert.Equal(t, "T-1", got.ConfirmationCode)
	})

	t.Run("user_id as string", func(t *testing.T) {
		r, service := setupRPC(t)
		service.EXPECT().ListUserBookings(gomock.Any(), int64(42)).Return(&booking.UserBookings{}, nil).Times(1)

		body := map[string]any{"action": booking.OpListUserBookings, "user_id": "42"}
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/rpc", body, 0)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("cancel passes the ticket", func(t *testing.T) {
		r, service := setupRPC(t)
		service.EXPECT().Cancel(gomock.Any(), "2025-01-06", "T-9", int64(42)).
			Return(&booking.Cancellation{ConfirmationCode: "T-9"}, nil).Times(1)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/rpc", b.RPCBody(booking.OpCancel, map[string]any{"ticket": "T-9"}), 0)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("failures are reported with HTTP 200", func(t *testing.T) {
		r, service := setupRPC(t)
		service.EXPECT().CheckExisting(gomock.Any(), "2025-01-06", int64(42)).
			Return(nil, errs.Mark(errs.New("invalid date format"), errs.ErrInvalidInput)).Times(1)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/rpc", b.RPCBody(booking.OpCheckExisting, nil), 0)
		httptest.AssertErrorResponse(t, rec, http.StatusOK, "invalid date format")
	})

	t.Run("unknown action", func(t *testing.T) {
		r, _ := setupRPC(t)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/rpc", map[string]any{"action": "explode"}, 0)
		httptest.AssertErrorResponse(t, rec, http.StatusOK, `unsupported action: "explode"`)
	})

	t.Run("missing action", func(t *testing.T) {
		r, _ := setupRPC(t)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/rpc", map[string]any{"date": "2025-01-06"}, 0)
		httptest.AssertErrorResponse(t, rec, http.StatusOK, "invalid request format")
	})

	t.Run("test action reports mode", func(t *testing.T) {
		r, service := setupRPC(t)
		service.EXPECT().Mode().Return(booking.ModeLocalOnly).Times(1)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/rpc", map[string]any{"action": booking.OpTest}, 0)
		require.Equal(t, http.StatusOK, rec.Code)

		var env struct {
			Status string          `json:"status"`
			Data   json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, booking.StatusSuccess, env.Status)
		assert.JSONEq(t, `{"message":"Connection OK","mode":"`+booking.ModeLocalOnly.String()+`"}`, string(env.Data))
	})
}
