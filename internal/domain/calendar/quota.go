package calendar

import (
	"github.com/jinzhu/copier"

	"donor-booking/internal/pkg/errs"
)

// QuotaTable maps a weekday to per-category capacity.
type QuotaTable map[Weekday]map[Category]int

var (
	weekdayPreset = map[Category]int{
		APositive: 10, ANegative: 5, BPositive: 10, BNegative: 5,
		ABPositive: 5, ABNegative: 3, OPositive: 10, ONegative: 5,
	}
	weekendPreset = map[Category]int{
		APositive: 8, ANegative: 4, BPositive: 8, BNegative: 4,
		ABPositive: 3, ABNegative: 2, OPositive: 8, ONegative: 4,
	}
)

func DefaultQuotaTable() QuotaTable {
	table := make(QuotaTable, len(Weekdays))
	for _, day := range Weekdays {
		preset := weekdayPreset
		if day.IsWeekend() {
			preset = weekendPreset
		}
		quotas := make(map[Category]int, len(preset))
		for c, n := range preset {
			quotas[c] = n
		}
		table[day] = quotas
	}
	return table
}

// Quota returns the capacity and whether the weekday is configured at all.
// A configured weekday without an entry for c has capacity 0.
func (t QuotaTable) Quota(day Weekday, c Category) (int, bool) {
	quotas, ok := t[day]
	if !ok {
		return 0, false
	}
	return quotas[c], true
}

func (t QuotaTable) HasCapacity(day Weekday) bool {
	for _, n := range t[day] {
		if n > 0 {
			return true
		}
	}
	return false
}

func (t QuotaTable) DayTotal(day Weekday) int {
	total := 0
	for _, n := range t[day] {
		total += n
	}
	return total
}

func (t QuotaTable) Clone() QuotaTable {
	if t == nil {
		return nil
	}
	out := make(QuotaTable, len(t))
	if err := copier.CopyWithOption(&out, &t, copier.Option{DeepCopy: true}); err != nil {
		// source and destination share one type
		panic(errs.Wrap(err, "clone quota table"))
	}
	return out
}

// ParseQuotaTable builds a table from weekday and category names.
// Weekdays left out of raw have no capacity configured.
func ParseQuotaTable(raw map[string]map[string]int) (QuotaTable, error) {
	if len(raw) == 0 {
		return nil, errs.Mark(errs.New("quota table is empty"), errs.ErrInvalidInput)
	}
	table := make(QuotaTable, len(raw))
	for dayName, byCategory := range raw {
		day, err := ParseWeekday(dayName)
		if err != nil {
			return nil, err
		}
		if _, dup := table[day]; dup {
			return nil, errs.Mark(errs.Newf("weekday %s is listed twice", day), errs.ErrInvalidInput)
		}
		quotas := make(map[Category]int, len(byCategory))
		for name, n := range byCategory {
			c, err := ParseCategory(name)
			if err != nil {
				return nil, err
			}
			if n < 0 {
				return nil, errs.Mark(errs.Newf("quota for %s on %s must not be negative", c, day), errs.ErrInvalidInput)
			}
			quotas[c] = n
		}
		table[day] = quotas
	}
	return table, nil
}
