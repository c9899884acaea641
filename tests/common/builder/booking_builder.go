//go:build unit || e2e

package builder

import (
	"time"

	reqdto "donor-booking/internal/handler/dto/request"
	"donor-booking/internal/usecase/booking"
)

type BookingBuilder struct {
	Date        string
	Category    string
	Time        string
	RequesterID int64
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Date:        NextWeekday(time.Now(), time.Monday),
		Category:    "O+",
		Time:        "09:00",
		RequesterID: 1001,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithCategory(category string) *BookingBuilder {
	b.Category = category
	return b
}

func (b *BookingBuilder) WithTime(t string) *BookingBuilder {
	b.Time = t
	return b
}

func (b *BookingBuilder) WithRequester(id int64) *BookingBuilder {
	b.RequesterID = id
	return b
}

// Build methods
func (b *BookingBuilder) BuildReserveDTO() reqdto.ReserveRequest {
	return reqdto.ReserveRequest{
		Date:     b.Date,
		Category: b.Category,
		Time:     b.Time,
	}
}

func (b *BookingBuilder) BuildCancelDTO(code string) reqdto.CancelRequest {
	return reqdto.CancelRequest{
		Date:             b.Date,
		ConfirmationCode: code,
	}
}

func (b *BookingBuilder) BuildRegistration(code string) *booking.Registration {
	return &booking.Registration{
		ConfirmationCode: code,
		Weekday:          "Monday",
		Date:             b.Date,
		Time:             b.Time,
		Category:         b.Category,
		QuotaRemaining:   9,
		QuotaTotal:       10,
		QuotaUsed:        1,
		RegisteredAt:     "2025-01-01T09:00:00Z",
	}
}

// RPCBody renders the wire-contract request for action with the builder's fields.
func (b *BookingBuilder) RPCBody(action string, extra map[string]any) map[string]any {
	body := map[string]any{
		"action":      action,
		"date":        b.Date,
		"blood_group": b.Category,
		"time":        b.Time,
	}
	if b.RequesterID != 0 {
		body["user_id"] = b.RequesterID
	}
	for k, v := range extra {
		body[k] = v
	}
	return body
}

// NextWeekday returns the first date strictly after from that falls on wd, as YYYY-MM-DD.
func NextWeekday(from time.Time, wd time.Weekday) string {
	d := from.AddDate(0, 0, 1)
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}
