package request

import (
	"strconv"
	"strings"
)

// ReserveRequest books a visit for the calling requester.
type ReserveRequest struct {
	Date     string `json:"date" binding:"required"`
	Category string `json:"blood_group" binding:"required"`
	Time     string `json:"time" binding:"required"`
}

type CancelRequest struct {
	Date             string `json:"date" binding:"required"`
	ConfirmationCode string `json:"ticket" binding:"required"`
}

type SlotsQuery struct {
	Date     string `form:"date" binding:"required"`
	Category string `form:"category" binding:"required"`
}

type ExistingQuery struct {
	Date string `form:"date" binding:"required"`
}

// QuotasRequest maps weekday name to blood group to daily quota.
type QuotasRequest struct {
	Quotas map[string]map[string]int `json:"quotas" binding:"required"`
}

type DatesQuery struct {
	ForceRefresh bool `form:"force_refresh"`
}

// RPCRequest is the single-endpoint wire format. Action-specific fields are optional.
type RPCRequest struct {
	Action           string `json:"action" binding:"required"`
	RequesterID      WireID `json:"user_id"`
	Date             string `json:"date"`
	Category         string `json:"blood_group"`
	Time             string `json:"time"`
	ConfirmationCode string `json:"ticket"`
	ForceRefresh     bool   `json:"force_refresh"`
}

// WireID accepts the requester id as either a JSON string or a number.
type WireID int64

func (id *WireID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*id = WireID(n)
	return nil
}
