package reservation

import (
	"strings"
	"time"

	"donor-booking/internal/domain/calendar"
	"donor-booking/internal/pkg/errs"
)

const (
	DateLayout        = "2006-01-02"
	DisplayDateLayout = "02.01.2006"
)

// Date is a calendar day without time-of-day or zone semantics.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, errs.Mark(errs.Newf("invalid date format: %q", s), errs.ErrInvalidInput)
	}
	return Date{t: t}, nil
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) Display() string {
	return d.t.Format(DisplayDateLayout)
}

func (d Date) Weekday() calendar.Weekday {
	return calendar.WeekdayOf(d.t)
}

func (d Date) Equal(o Date) bool {
	return d.t.Equal(o.t)
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

type ConfirmationCode string

func (c ConfirmationCode) String() string {
	return string(c)
}
