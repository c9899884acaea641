package ledger

import (
	"donor-booking/internal/domain/calendar"
)

// SeedEntry is a reservation booked when the ledger starts. DayOffset is
// relative to the ledger clock's current date.
type SeedEntry struct {
	DayOffset   int
	TimeOfDay   string
	Category    calendar.Category
	RequesterID int64
}

// DemoSeed fills the next few days with a handful of bookings so a fresh
// instance has something to show.
func DemoSeed() []SeedEntry {
	return []SeedEntry{
		{DayOffset: 1, TimeOfDay: "08:00", Category: calendar.APositive, RequesterID: 100001},
		{DayOffset: 1, TimeOfDay: "09:30", Category: calendar.OPositive, RequesterID: 100002},
		{DayOffset: 2, TimeOfDay: "10:00", Category: calendar.BNegative, RequesterID: 100003},
		{DayOffset: 2, TimeOfDay: "10:00", Category: calendar.APositive, RequesterID: 100001},
		{DayOffset: 3, TimeOfDay: "12:30", Category: calendar.ABPositive, RequesterID: 100004},
	}
}
