package remote

import (
	"context"
	"encoding/json"

	"donor-booking/internal/infra"
	"donor-booking/internal/usecase/booking"
)

func call[T any](ctx context.Context, c *Client, action string, params map[string]any, requesterID int64, forceRefresh bool) (*T, error) {
	data, err := c.Call(ctx, action, params, requesterID, forceRefresh)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, infra.WrapBackendErr(c.logger, infra.KindBadFormat, "bad response format", err)
	}
	return &out, nil
}

func (c *Client) ListBookableDates(ctx context.Context, requesterID int64, forceRefresh bool) (*booking.AvailableDates, error) {
	return call[booking.AvailableDates](ctx, c, actionAvailableDates, nil, requesterID, forceRefresh)
}

func (c *Client) ListFreeSlots(ctx context.Context, date, category string) (*booking.FreeSlots, error) {
	return call[booking.FreeSlots](ctx, c, actionFreeTimes, map[string]any{
		"date":        date,
		"blood_group": category,
	}, 0, false)
}

func (c *Client) CheckExisting(ctx context.Context, date string, requesterID int64) (*booking.ExistingCheck, error) {
	return call[booking.ExistingCheck](ctx, c, actionCheckExisting, map[string]any{
		"date": date,
	}, requesterID, false)
}

func (c *Client) Reserve(ctx context.Context, date, category, timeOfDay string, requesterID int64) (*booking.Registration, error) {
	return call[booking.Registration](ctx, c, actionRegister, map[string]any{
		"date":        date,
		"blood_group": category,
		"time":        timeOfDay,
	}, requesterID, false)
}

func (c *Client) Cancel(ctx context.Context, date, confirmationCode string, requesterID int64) (*booking.Cancellation, error) {
	return call[booking.Cancellation](ctx, c, actionCancel, map[string]any{
		"date":   date,
		"ticket": confirmationCode,
	}, requesterID, false)
}

func (c *Client) ListUserBookings(ctx context.Context, requesterID int64) (*booking.UserBookings, error) {
	return call[booking.UserBookings](ctx, c, actionUserBookings, nil, requesterID, false)
}

func (c *Client) AggregateStats(ctx context.Context) (*booking.Stats, error) {
	return call[booking.Stats](ctx, c, actionStats, nil, 0, false)
}

func (c *Client) AggregateQuotas(ctx context.Context) (*booking.Quotas, error) {
	return call[booking.Quotas](ctx, c, actionQuotas, nil, 0, false)
}
