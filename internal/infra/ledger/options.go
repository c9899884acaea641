package ledger

import (
	"donor-booking/internal/domain/calendar"
	"donor-booking/internal/domain/reservation"
)

const (
	DefaultHorizonDays = 30
	DefaultMaxResults  = 6
)

type options struct {
	horizonDays int
	maxResults  int
	quotas      calendar.QuotaTable
	schedule    calendar.Schedule
	codes       reservation.CodeGenerator
	seed        []SeedEntry
}

type Option func(*options)

func defaultOptions() options {
	return options{
		horizonDays: DefaultHorizonDays,
		maxResults:  DefaultMaxResults,
		quotas:      calendar.DefaultQuotaTable(),
		schedule:    calendar.DefaultSchedule(),
	}
}

// WithHorizonDays sets how many days ahead ListBookableDates scans.
func WithHorizonDays(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.horizonDays = n
		}
	}
}

// WithMaxResults caps the number of dates ListBookableDates returns.
func WithMaxResults(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxResults = n
		}
	}
}

func WithQuotas(t calendar.QuotaTable) Option {
	return func(o *options) {
		if t != nil {
			o.quotas = t.Clone()
		}
	}
}

func WithSchedule(s calendar.Schedule) Option {
	return func(o *options) {
		if len(s) > 0 {
			o.schedule = append(calendar.Schedule(nil), s...)
		}
	}
}

func WithCodeGenerator(g reservation.CodeGenerator) Option {
	return func(o *options) {
		o.codes = g
	}
}

// WithSeed books the given entries at construction time.
func WithSeed(entries ...SeedEntry) Option {
	return func(o *options) {
		o.seed = append(o.seed, entries...)
	}
}
