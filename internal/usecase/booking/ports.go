//go:generate mockgen -source=ports.go -destination=../../../tests/mock/booking/ports.go -package=bookingmock

package booking

import (
	"context"

	"donor-booking/internal/domain/calendar"
)

// Backend is the capability set every source of truth implements.
type Backend interface {
	ListBookableDates(ctx context.Context, requesterID int64, forceRefresh bool) (*AvailableDates, error)
	ListFreeSlots(ctx context.Context, date, category string) (*FreeSlots, error)
	CheckExisting(ctx context.Context, date string, requesterID int64) (*ExistingCheck, error)
	Reserve(ctx context.Context, date, category, timeOfDay string, requesterID int64) (*Registration, error)
	Cancel(ctx context.Context, date, confirmationCode string, requesterID int64) (*Cancellation, error)
	ListUserBookings(ctx context.Context, requesterID int64) (*UserBookings, error)
	AggregateStats(ctx context.Context) (*Stats, error)
	AggregateQuotas(ctx context.Context) (*Quotas, error)
}

type LocalBackend interface {
	Backend
	Reset()
	ReplaceQuotas(t calendar.QuotaTable)
}

type RemoteBackend interface {
	Backend
	ClearCache()
	TestConnection(ctx context.Context) error
}

// Service is what front-ends talk to.
type Service interface {
	Backend
	Mode() Mode
	ClearCache()
	Reset(ctx context.Context)
	ReplaceQuotas(ctx context.Context, t calendar.QuotaTable) error
	TestConnection(ctx context.Context) error
}
