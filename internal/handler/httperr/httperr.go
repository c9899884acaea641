package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"donor-booking/internal/pkg/errs"
	"donor-booking/internal/usecase/booking"
)

// Response is the error envelope plus the HTTP status it is written with.
type Response struct {
	HTTPStatus int `json:"-"`
	booking.Envelope
}

// StatusFor picks the HTTP status for a booking error.
func StatusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrBookingNotFound):
		return http.StatusNotFound
	case errs.IsAny(err, errs.ErrDuplicateBooking, errs.ErrSlotTaken, errs.ErrQuotaExceeded):
		return http.StatusConflict
	case errs.Is(err, errs.ErrNoQuotaConfigured):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrUnsupportedOperation):
		return http.StatusBadRequest
	case errs.IsRemote(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Abort writes err as an envelope with the status chosen by StatusFor.
func Abort(c *gin.Context, err error) {
	AbortWithError(c, StatusFor(err), err)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"status", status,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 8),
		)
	}

	resp := Response{HTTPStatus: status, Envelope: booking.Failure(err)}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithMessage is for failures detected by the HTTP layer itself.
func AbortWithMessage(c *gin.Context, status int, msg string) {
	AbortWithError(c, status, errs.New(msg))
}
