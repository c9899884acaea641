package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "donor-booking/internal/handler/dto/request"
	resdto "donor-booking/internal/handler/dto/response"
	"donor-booking/internal/pkg/errs"
	"donor-booking/internal/usecase/booking"
)

// RPCHandler speaks the single-endpoint JSON contract so that one instance can
// serve as the remote backend of another. Failures are reported in the
// envelope with HTTP 200; any other status means the transport failed.
type RPCHandler struct {
	service booking.Service
}

func NewRPCHandler(service booking.Service) *RPCHandler {
	return &RPCHandler{
		service: service,
	}
}

// @Summary Wire-contract endpoint
// @Tags rpc
// @Accept json
// @Produce json
// @Param request body reqdto.RPCRequest true "Action and parameters"
// @Success 200 {object} resdto.Envelope
// @Router /rpc [post]
func (h *RPCHandler) Handle(c *gin.Context) {
	var req reqdto.RPCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, booking.Failure(errs.Mark(errs.New("invalid request format"), errs.ErrInvalidInput)))
		return
	}
	c.JSON(http.StatusOK, h.dispatch(c, req))
}

func (h *RPCHandler) dispatch(c *gin.Context, req reqdto.RPCRequest) booking.Envelope {
	ctx := c.Request.Context()
	requesterID := int64(req.RequesterID)

	switch req.Action {
	case booking.OpListBookableDates:
		return booking.Wrap(h.service.ListBookableDates(ctx, requesterID, req.ForceRefresh))
	case booking.OpListFreeSlots:
		return booking.Wrap(h.service.ListFreeSlots(ctx, req.Date, req.Category))
	case booking.OpCheckExisting:
		return booking.Wrap(h.service.CheckExisting(ctx, req.Date, requesterID))
	case booking.OpReserve:
		return booking.Wrap(h.service.Reserve(ctx, req.Date, req.Category, req.Time, requesterID))
	case booking.OpCancel:
		return booking.Wrap(h.service.Cancel(ctx, req.Date, req.ConfirmationCode, requesterID))
	case booking.OpListUserBookings:
		return booking.Wrap(h.service.ListUserBookings(ctx, requesterID))
	case booking.OpAggregateStats:
		return booking.Wrap(h.service.AggregateStats(ctx))
	case booking.OpAggregateQuotas:
		return booking.Wrap(h.service.AggregateQuotas(ctx))
	case booking.OpTest:
		return booking.Success(resdto.TestResult{Message: "Connection OK", Mode: h.service.Mode().String()})
	default:
		return booking.Failure(errs.Mark(errs.Newf("unsupported action: %q", req.Action), errs.ErrUnsupportedOperation))
	}
}
