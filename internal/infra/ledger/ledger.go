package ledger

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"donor-booking/internal/domain/calendar"
	"donor-booking/internal/domain/reservation"
	"donor-booking/internal/pkg/clock"
	"donor-booking/internal/pkg/errs"
	"donor-booking/internal/usecase/booking"
)

const noData = "no data"

// Ledger is the in-memory source of truth for reservations.
//
// A single lock guards all state. Reserve, Cancel and CheckExisting take it
// exclusively so that the checks and the insertion form one critical section;
// read views share it.
type Ledger struct {
	mu sync.RWMutex

	// requester -> date -> reservation
	bookings map[int64]map[string]*reservation.Reservation
	codes    map[reservation.ConfirmationCode]struct{}
	quotas   calendar.QuotaTable

	clock    clock.Clock
	factory  *reservation.Factory
	schedule calendar.Schedule

	horizonDays int
	maxResults  int
}

var _ booking.LocalBackend = (*Ledger)(nil)

func New(clk clock.Clock, opts ...Option) (*Ledger, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}

	l := &Ledger{
		bookings:    make(map[int64]map[string]*reservation.Reservation),
		codes:       make(map[reservation.ConfirmationCode]struct{}),
		quotas:      o.quotas,
		clock:       clk,
		factory:     reservation.NewFactory(clk, o.codes),
		schedule:    o.schedule,
		horizonDays: o.horizonDays,
		maxResults:  o.maxResults,
	}

	today := reservation.DateOf(clk.Now())
	for _, e := range o.seed {
		date := today.AddDays(e.DayOffset)
		if _, err := l.Reserve(context.Background(), date.String(), e.Category.String(), e.TimeOfDay, e.RequesterID); err != nil {
			return nil, errs.Wrap(err, fmt.Sprintf("failed to seed booking on %s", date))
		}
	}

	return l, nil
}

func (l *Ledger) ListBookableDates(_ context.Context, _ int64, _ bool) (*booking.AvailableDates, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	now := l.clock.Now()
	dates := make([]booking.DateInfo, 0, l.maxResults)
	for i := 1; i <= l.horizonDays && len(dates) < l.maxResults; i++ {
		at := now.AddDate(0, 0, i)
		date := reservation.DateOf(at)
		day := date.Weekday()
		if !l.quotas.HasCapacity(day) {
			continue
		}
		dates = append(dates, booking.DateInfo{
			Date:           date.String(),
			DayOfWeek:      day.String(),
			DisplayDate:    date.Display(),
			DayOfWeekShort: day.Short(),
			Timestamp:      at.Unix(),
		})
	}

	return &booking.AvailableDates{
		Dates:   dates,
		Message: fmt.Sprintf("Found %d available dates", len(dates)),
		Count:   len(dates),
	}, nil
}

func (l *Ledger) ListFreeSlots(_ context.Context, date, category string) (*booking.FreeSlots, error) {
	d, err := reservation.ParseDate(date)
	if err != nil {
		return nil, err
	}
	c, err := calendar.ParseCategory(category)
	if err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	busy := make(map[string]struct{})
	for _, r := range l.reservationsOn(d) {
		if r.Category() == c {
			busy[r.TimeOfDay()] = struct{}{}
		}
	}

	free := make([]string, 0, len(l.schedule))
	for _, t := range l.schedule {
		if _, ok := busy[t]; !ok {
			free = append(free, t)
		}
	}

	total, _ := l.quotas.Quota(d.Weekday(), c)
	used := len(busy)

	return &booking.FreeSlots{
		Times:          free,
		QuotaRemaining: max(0, total-used),
		QuotaTotal:     total,
		QuotaUsed:      used,
		Message:        fmt.Sprintf("Found %d free slots", len(free)),
	}, nil
}

func (l *Ledger) CheckExisting(_ context.Context, date string, requesterID int64) (*booking.ExistingCheck, error) {
	d, err := reservation.ParseDate(date)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := l.lookup(requesterID, d)
	if !ok {
		return &booking.ExistingCheck{Exists: false}, nil
	}
	return &booking.ExistingCheck{
		Exists:           true,
		ConfirmationCode: r.Code().String(),
		Time:             r.TimeOfDay(),
		Category:         r.Category().String(),
		Weekday:          r.Weekday().String(),
		Date:             r.Date().String(),
	}, nil
}

func (l *Ledger) Reserve(_ context.Context, date, category, timeOfDay string, requesterID int64) (*booking.Registration, error) {
	d, err := reservation.ParseDate(date)
	if err != nil {
		return nil, err
	}
	c, err := calendar.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	t, err := calendar.ParseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, err
	}
	if !l.schedule.Contains(t) {
		return nil, errs.Mark(errs.Newf("time %s is outside working hours", t), errs.ErrInvalidInput)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.lookup(requesterID, d); ok {
		return nil, errs.Mark(errs.Newf("you already have a booking on %s", d), errs.ErrDuplicateBooking)
	}

	used := 0
	for _, r := range l.reservationsOn(d) {
		if r.Occupies(d, t, c) {
			return nil, errs.Mark(errs.Newf("time %s is already taken", t), errs.ErrSlotTaken)
		}
		if r.Category() == c {
			used++
		}
	}

	day := d.Weekday()
	total, configured := l.quotas.Quota(day, c)
	if !configured {
		return nil, errs.Mark(errs.Newf("no quotas configured for %s", day), errs.ErrNoQuotaConfigured)
	}
	if used >= total {
		return nil, errs.Mark(errs.Newf("all %s quotas on %s are taken", c, d), errs.ErrQuotaExceeded)
	}

	r, err := l.factory.CreateReservation(d, t, c, requesterID, l.codeTaken)
	if err != nil {
		return nil, err
	}
	l.insert(r)

	return &booking.Registration{
		ConfirmationCode: r.Code().String(),
		Weekday:          day.String(),
		Date:             d.String(),
		Time:             t,
		Category:         c.String(),
		QuotaRemaining:   max(0, total-used-1),
		QuotaTotal:       total,
		QuotaUsed:        used + 1,
		RegisteredAt:     r.CreatedAt().Format(time.RFC3339),
	}, nil
}

func (l *Ledger) Cancel(_ context.Context, date, confirmationCode string, requesterID int64) (*booking.Cancellation, error) {
	d, err := reservation.ParseDate(date)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := l.lookup(requesterID, d)
	if !ok || r.Code() != reservation.ConfirmationCode(confirmationCode) {
		return nil, errs.Mark(errs.New("booking not found"), errs.ErrBookingNotFound)
	}
	l.remove(r)

	return &booking.Cancellation{
		Message:          "Booking cancelled",
		ConfirmationCode: r.Code().String(),
		Weekday:          r.Weekday().String(),
		Date:             d.String(),
		Time:             r.TimeOfDay(),
		Category:         r.Category().String(),
	}, nil
}

func (l *Ledger) ListUserBookings(_ context.Context, requesterID int64) (*booking.UserBookings, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	items := make([]booking.BookingItem, 0, len(l.bookings[requesterID]))
	for _, r := range l.bookings[requesterID] {
		items = append(items, booking.BookingItem{
			Date:             r.Date().String(),
			Weekday:          r.Weekday().String(),
			ConfirmationCode: r.Code().String(),
			Time:             r.TimeOfDay(),
			Category:         r.Category().String(),
		})
	}
	sortBookingItems(items)

	return &booking.UserBookings{Bookings: items, Count: len(items)}, nil
}

func (l *Ledger) AggregateQuotas(_ context.Context) (*booking.Quotas, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	summary := l.quotaSummary()
	return &booking.Quotas{
		Quotas: summary,
		Message: fmt.Sprintf("Total quota: %d, used: %d, remaining: %d",
			summary.TotalQuota, summary.TotalUsed, summary.Remaining),
	}, nil
}

func (l *Ledger) AggregateStats(_ context.Context) (*booking.Stats, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	dayCounts := make(map[calendar.Weekday]int)
	categoryCounts := make(map[calendar.Category]int)
	total := 0
	for _, byDate := range l.bookings {
		for _, r := range byDate {
			dayCounts[r.Weekday()]++
			categoryCounts[r.Category()]++
			total++
		}
	}

	stats := &booking.Stats{
		TotalBookings:       total,
		TotalUsers:          len(l.bookings),
		DayStats:            make(map[string]int, len(dayCounts)),
		CategoryStats:       make(map[string]int, len(categoryCounts)),
		MostPopularDay:      noData,
		MostPopularCategory: noData,
		QuotaStats:          l.quotaSummary(),
	}

	best := 0
	for _, day := range calendar.Weekdays {
		n := dayCounts[day]
		if n == 0 {
			continue
		}
		stats.DayStats[day.String()] = n
		if n > best {
			best = n
			stats.MostPopularDay = day.String()
		}
	}
	best = 0
	for _, c := range calendar.Categories {
		n := categoryCounts[c]
		if n == 0 {
			continue
		}
		stats.CategoryStats[c.String()] = n
		if n > best {
			best = n
			stats.MostPopularCategory = c.String()
		}
	}

	return stats, nil
}

// Reset drops every reservation and restores the default quota table.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.bookings = make(map[int64]map[string]*reservation.Reservation)
	l.codes = make(map[reservation.ConfirmationCode]struct{})
	l.quotas = calendar.DefaultQuotaTable()
}

// ReplaceQuotas swaps the quota table. Existing reservations are kept even
// when they exceed the new capacity.
func (l *Ledger) ReplaceQuotas(t calendar.QuotaTable) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.quotas = t.Clone()
}

// Everything below expects l.mu to be held.

func (l *Ledger) lookup(requesterID int64, d reservation.Date) (*reservation.Reservation, bool) {
	r, ok := l.bookings[requesterID][d.String()]
	return r, ok
}

func (l *Ledger) reservationsOn(d reservation.Date) []*reservation.Reservation {
	key := d.String()
	var out []*reservation.Reservation
	for _, byDate := range l.bookings {
		if r, ok := byDate[key]; ok {
			out = append(out, r)
		}
	}
	return out
}

func (l *Ledger) codeTaken(code reservation.ConfirmationCode) bool {
	_, ok := l.codes[code]
	return ok
}

func (l *Ledger) insert(r *reservation.Reservation) {
	byDate, ok := l.bookings[r.RequesterID()]
	if !ok {
		byDate = make(map[string]*reservation.Reservation)
		l.bookings[r.RequesterID()] = byDate
	}
	byDate[r.Date().String()] = r
	l.codes[r.Code()] = struct{}{}
}

func (l *Ledger) remove(r *reservation.Reservation) {
	byDate := l.bookings[r.RequesterID()]
	delete(byDate, r.Date().String())
	if len(byDate) == 0 {
		delete(l.bookings, r.RequesterID())
	}
	delete(l.codes, r.Code())
}

func (l *Ledger) quotaSummary() booking.QuotaSummary {
	used := make(map[calendar.Weekday]int)
	for _, byDate := range l.bookings {
		for _, r := range byDate {
			used[r.Weekday()]++
		}
	}

	summary := booking.QuotaSummary{ByDay: make(map[string]booking.DayQuota, len(l.quotas))}
	for _, day := range calendar.Weekdays {
		quotas, ok := l.quotas[day]
		if !ok {
			continue
		}
		perCategory := make(map[string]int, len(quotas))
		for c, n := range quotas {
			perCategory[c.String()] = n
		}
		total := l.quotas.DayTotal(day)
		summary.ByDay[day.String()] = booking.DayQuota{
			Total:     total,
			Used:      used[day],
			Remaining: total - used[day],
			Quotas:    perCategory,
		}
		summary.TotalQuota += total
		summary.TotalUsed += used[day]
	}
	summary.Remaining = summary.TotalQuota - summary.TotalUsed
	return summary
}

func sortBookingItems(items []booking.BookingItem) {
	slices.SortFunc(items, func(a, b booking.BookingItem) int {
		return cmp.Compare(a.Date, b.Date)
	})
}
