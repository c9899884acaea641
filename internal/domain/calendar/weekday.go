package calendar

import (
	"strings"
	"time"

	"donor-booking/internal/pkg/errs"
)

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists the week starting on Monday. Aggregations iterate in this order.
var Weekdays = [...]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayOf depends only on the calendar date of t in its own location.
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday starts on Sunday
	return Weekdays[(int(t.Weekday())+6)%7]
}

func (w Weekday) String() string {
	return string(w)
}

func (w Weekday) Short() string {
	if len(w) < 3 {
		return string(w)
	}
	return string(w)[:3]
}

func (w Weekday) IsWeekend() bool {
	return w == Saturday || w == Sunday
}

// ParseWeekday accepts full English names in any case.
func ParseWeekday(s string) (Weekday, error) {
	name := strings.TrimSpace(s)
	for _, d := range Weekdays {
		if strings.EqualFold(string(d), name) {
			return d, nil
		}
	}
	return "", errs.Mark(errs.Newf("unknown weekday: %q", s), errs.ErrInvalidInput)
}
