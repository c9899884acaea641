package reservation

import (
	"time"

	"donor-booking/internal/domain/calendar"
)

// Reservation is immutable once created; cancellation removes it from the ledger.
type Reservation struct {
	code        ConfirmationCode
	date        Date
	timeOfDay   string
	category    calendar.Category
	weekday     calendar.Weekday
	requesterID int64
	createdAt   time.Time
}

func ReconstructReservation(
	code ConfirmationCode,
	date Date,
	timeOfDay string,
	category calendar.Category,
	requesterID int64,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		code:        code,
		date:        date,
		timeOfDay:   timeOfDay,
		category:    category,
		weekday:     date.Weekday(),
		requesterID: requesterID,
		createdAt:   createdAt,
	}
}

func (r *Reservation) Code() ConfirmationCode      { return r.code }
func (r *Reservation) Date() Date                  { return r.date }
func (r *Reservation) TimeOfDay() string           { return r.timeOfDay }
func (r *Reservation) Category() calendar.Category { return r.category }
func (r *Reservation) Weekday() calendar.Weekday   { return r.weekday }
func (r *Reservation) RequesterID() int64          { return r.requesterID }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }

func (r *Reservation) Occupies(date Date, timeOfDay string, category calendar.Category) bool {
	return r.date.Equal(date) && r.timeOfDay == timeOfDay && r.category == category
}
