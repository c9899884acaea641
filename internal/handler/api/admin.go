package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"donor-booking/internal/domain/calendar"
	reqdto "donor-booking/internal/handler/dto/request"
	resdto "donor-booking/internal/handler/dto/response"
	"donor-booking/internal/handler/httperr"
	"donor-booking/internal/handler/middleware"
	"donor-booking/internal/usecase/booking"
)

// AdminHandler serves the privileged operations. Access is checked by
// RequesterMiddleware.RequireAdmin.
type AdminHandler struct {
	service booking.Service
}

func NewAdminHandler(service booking.Service) *AdminHandler {
	return &AdminHandler{
		service: service,
	}
}

// @Summary Quota usage per weekday
// @Tags admin
// @Produce json
// @Param X-Requester-ID header int true "Admin requester id"
// @Success 200 {object} resdto.Envelope{data=booking.Quotas}
// @Failure 403 {object} resdto.Envelope
// @Router /admin/quotas [get]
func (h *AdminHandler) Quotas(c *gin.Context) {
	res, err := h.service.AggregateQuotas(c.Request.Context())
	respond(c, http.StatusOK, res, err)
}

// @Summary Replace the weekday quota table
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Requester-ID header int true "Admin requester id"
// @Param request body reqdto.QuotasRequest true "Quota per weekday and blood group"
// @Success 200 {object} resdto.Envelope{data=resdto.QuotasUpdated}
// @Failure 400 {object} resdto.Envelope
// @Router /admin/quotas [put]
func (h *AdminHandler) UpdateQuotas(c *gin.Context) {
	var req reqdto.QuotasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithMessage(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	table, err := calendar.ParseQuotaTable(req.Quotas)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := h.service.ReplaceQuotas(c.Request.Context(), table); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, booking.Success(resdto.QuotasUpdated{Message: "Quotas updated"}))
}

// @Summary Clear the remote response cache
// @Tags admin
// @Produce json
// @Param X-Requester-ID header int true "Admin requester id"
// @Success 200 {object} resdto.Envelope{data=resdto.CacheCleared}
// @Router /admin/cache/clear [post]
func (h *AdminHandler) ClearCache(c *gin.Context) {
	h.service.ClearCache()
	c.JSON(http.StatusOK, booking.Success(resdto.CacheCleared{Message: "Cache cleared"}))
}

// @Summary Refresh the list of bookable dates
// @Tags admin
// @Produce json
// @Param X-Requester-ID header int true "Admin requester id"
// @Success 200 {object} resdto.Envelope{data=booking.AvailableDates}
// @Router /admin/cache/refresh [post]
func (h *AdminHandler) RefreshDates(c *gin.Context) {
	id, _ := middleware.GetRequesterID(c)
	res, err := h.service.ListBookableDates(c.Request.Context(), id, true)
	respond(c, http.StatusOK, res, err)
}

// @Summary Reset all bookings
// @Description Drops local bookings, restores default quotas and clears the cache
// @Tags admin
// @Produce json
// @Param X-Requester-ID header int true "Admin requester id"
// @Success 200 {object} resdto.Envelope{data=resdto.ResetDone}
// @Router /admin/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	ctx := c.Request.Context()
	h.service.Reset(ctx)

	id, _ := middleware.GetRequesterID(c)
	dates, err := h.service.ListBookableDates(ctx, id, true)
	if err != nil {
		// the reset itself succeeded
		dates = nil
	}
	c.JSON(http.StatusOK, booking.Success(resdto.ResetDone{Message: "Data reset", Dates: dates}))
}
