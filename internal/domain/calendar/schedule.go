package calendar

import (
	"strings"
	"time"

	"donor-booking/internal/pkg/errs"
)

const timeOfDayLayout = "15:04"

// Schedule is the ordered list of bookable times of day shared by all dates and categories.
type Schedule []string

func DefaultSchedule() Schedule {
	s, err := NewSchedule("07:30", "14:00", 30*time.Minute)
	if err != nil {
		panic(err)
	}
	return s
}

// NewSchedule builds slots from first to last inclusive.
func NewSchedule(first, last string, step time.Duration) (Schedule, error) {
	start, err := time.Parse(timeOfDayLayout, first)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid schedule start"), errs.ErrInvalidInput)
	}
	end, err := time.Parse(timeOfDayLayout, last)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid schedule end"), errs.ErrInvalidInput)
	}
	if step <= 0 || end.Before(start) {
		return nil, errs.Mark(errs.Newf("invalid schedule %s-%s step %s", first, last, step), errs.ErrInvalidInput)
	}
	var out Schedule
	for t := start; !t.After(end); t = t.Add(step) {
		out = append(out, t.Format(timeOfDayLayout))
	}
	return out, nil
}

func (s Schedule) Contains(timeOfDay string) bool {
	for _, t := range s {
		if t == timeOfDay {
			return true
		}
	}
	return false
}

// ParseTimeOfDay normalises "9:00" to "09:00".
func ParseTimeOfDay(s string) (string, error) {
	t, err := time.Parse(timeOfDayLayout, strings.TrimSpace(s))
	if err != nil {
		return "", errs.Mark(errs.Newf("invalid time format: %q", s), errs.ErrInvalidInput)
	}
	return t.Format(timeOfDayLayout), nil
}
