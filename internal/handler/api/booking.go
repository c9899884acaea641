package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "donor-booking/internal/handler/dto/request"
	"donor-booking/internal/handler/httperr"
	"donor-booking/internal/handler/middleware"
	"donor-booking/internal/usecase/booking"
)

type BookingHandler struct {
	service booking.Service
}

func NewBookingHandler(service booking.Service) *BookingHandler {
	return &BookingHandler{
		service: service,
	}
}

// respond writes the envelope for a typed result.
func respond[T any](c *gin.Context, status int, result T, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, booking.Success(result))
}

func requester(c *gin.Context) (int64, bool) {
	id, ok := middleware.GetRequesterID(c)
	if !ok {
		// Unexpected error: should be used after RequireRequester()
		httperr.AbortWithMessage(c, http.StatusInternalServerError, "Internal server error")
	}
	return id, ok
}

// @Summary List bookable dates
// @Description Upcoming dates with configured capacity
// @Tags bookings
// @Produce json
// @Param X-Requester-ID header int true "Requester id"
// @Param force_refresh query bool false "Bypass the remote cache"
// @Success 200 {object} resdto.Envelope{data=booking.AvailableDates}
// @Failure 401 {object} resdto.Envelope
// @Failure 502 {object} resdto.Envelope
// @Router /dates [get]
func (h *BookingHandler) ListDates(c *gin.Context) {
	id, ok := requester(c)
	if !ok {
		return
	}
	var q reqdto.DatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithMessage(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := h.service.ListBookableDates(c.Request.Context(), id, q.ForceRefresh)
	respond(c, http.StatusOK, res, err)
}

// @Summary List free slots
// @Description Free times and quota usage for a date and blood group
// @Tags bookings
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param category query string true "Blood group"
// @Success 200 {object} resdto.Envelope{data=booking.FreeSlots}
// @Failure 400 {object} resdto.Envelope
// @Router /slots [get]
func (h *BookingHandler) ListSlots(c *gin.Context) {
	var q reqdto.SlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithMessage(c, http.StatusBadRequest, "date and category are required")
		return
	}

	res, err := h.service.ListFreeSlots(c.Request.Context(), q.Date, q.Category)
	respond(c, http.StatusOK, res, err)
}

// @Summary Check existing booking
// @Tags bookings
// @Produce json
// @Param X-Requester-ID header int true "Requester id"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.Envelope{data=booking.ExistingCheck}
// @Failure 400 {object} resdto.Envelope
// @Router /bookings/existing [get]
func (h *BookingHandler) CheckExisting(c *gin.Context) {
	id, ok := requester(c)
	if !ok {
		return
	}
	var q reqdto.ExistingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithMessage(c, http.StatusBadRequest, "date is required")
		return
	}

	res, err := h.service.CheckExisting(c.Request.Context(), q.Date, id)
	respond(c, http.StatusOK, res, err)
}

// @Summary Book a visit
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Requester-ID header int true "Requester id"
// @Param request body reqdto.ReserveRequest true "Booking request"
// @Success 201 {object} resdto.Envelope{data=booking.Registration}
// @Failure 400 {object} resdto.Envelope
// @Failure 409 {object} resdto.Envelope
// @Failure 422 {object} resdto.Envelope
// @Router /bookings [post]
func (h *BookingHandler) Reserve(c *gin.Context) {
	id, ok := requester(c)
	if !ok {
		return
	}
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithMessage(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := h.service.Reserve(c.Request.Context(), req.Date, req.Category, req.Time, id)
	respond(c, http.StatusCreated, res, err)
}

// @Summary Cancel a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Requester-ID header int true "Requester id"
// @Param request body reqdto.CancelRequest true "Cancel request"
// @Success 200 {object} resdto.Envelope{data=booking.Cancellation}
// @Failure 404 {object} resdto.Envelope
// @Router /bookings/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := requester(c)
	if !ok {
		return
	}
	var req reqdto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithMessage(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := h.service.Cancel(c.Request.Context(), req.Date, req.ConfirmationCode, id)
	respond(c, http.StatusOK, res, err)
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Param X-Requester-ID header int true "Requester id"
// @Success 200 {object} resdto.Envelope{data=booking.UserBookings}
// @Router /bookings [get]
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	id, ok := requester(c)
	if !ok {
		return
	}

	res, err := h.service.ListUserBookings(c.Request.Context(), id)
	respond(c, http.StatusOK, res, err)
}

// @Summary Booking statistics
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.Envelope{data=booking.Stats}
// @Router /stats [get]
func (h *BookingHandler) Stats(c *gin.Context) {
	res, err := h.service.AggregateStats(c.Request.Context())
	respond(c, http.StatusOK, res, err)
}
