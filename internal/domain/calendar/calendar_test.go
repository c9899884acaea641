//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donor-booking/internal/domain/calendar"
	"donor-booking/internal/pkg/errs"
)

func TestWeekdayOf(t *testing.T) {
	cases := []struct {
		date string
		want calendar.Weekday
	}{
		{"2025-01-06", calendar.Monday},
		{"2025-01-07", calendar.Tuesday},
		{"2025-01-08", calendar.Wednesday},
		{"2025-01-09", calendar.Thursday},
		{"2025-01-10", calendar.Friday},
		{"2025-01-11", calendar.Saturday},
		{"2025-01-12", calendar.Sunday},
	}
	for _, tc := range cases {
		t.Run(tc.date, func(t *testing.T) {
			d, err := time.Parse("2006-01-02", tc.date)
			require.NoError(t, err)
			assert.Equal(t, tc.want, calendar.WeekdayOf(d))
		})
	}

	t.Run("time of day does not matter", func(t *testing.T) {
		loc := time.FixedZone("MSK", 3*60*60)
		late := time.Date(2025, 1, 6, 23, 59, 0, 0, loc)
		assert.Equal(t, calendar.Monday, calendar.WeekdayOf(late))
	})

	t.Run("short names", func(t *testing.T) {
		assert.Equal(t, "Mon", calendar.Monday.Short())
		assert.Equal(t, "Sun", calendar.Sunday.Short())
		assert.True(t, calendar.Saturday.IsWeekend())
		assert.False(t, calendar.Friday.IsWeekend())
	})
}

func TestDefaultQuotaTable(t *testing.T) {
	table := calendar.DefaultQuotaTable()
	require.Len(t, table, 7)

	weekday := map[calendar.Category]int{
		calendar.APositive: 10, calendar.ANegative: 5, calendar.BPositive: 10, calendar.BNegative: 5,
		calendar.ABPositive: 5, calendar.ABNegative: 3, calendar.OPositive: 10, calendar.ONegative: 5,
	}
	weekend := map[calendar.Category]int{
		calendar.APositive: 8, calendar.ANegative: 4, calendar.BPositive: 8, calendar.BNegative: 4,
		calendar.ABPositive: 3, calendar.ABNegative: 2, calendar.OPositive: 8, calendar.ONegative: 4,
	}

	for _, day := range calendar.Weekdays {
		want := weekday
		if day.IsWeekend() {
			want = weekend
		}
		if diff := cmp.Diff(want, table[day]); diff != "" {
			t.Errorf("%s quotas mismatch (-want +got):\n%s", day, diff)
		}
	}

	assert.Equal(t, 53, table.DayTotal(calendar.Monday))
	assert.Equal(t, 41, table.DayTotal(calendar.Sunday))
}

func TestQuotaTable(t *testing.T) {
	t.Run("missing weekday is not configured", func(t *testing.T) {
		table := calendar.QuotaTable{calendar.Monday: {calendar.OPositive: 2}}

		n, ok := table.Quota(calendar.Tuesday, calendar.OPositive)
		assert.False(t, ok)
		assert.Zero(t, n)

		n, ok = table.Quota(calendar.Monday, calendar.APositive)
		assert.True(t, ok, "configured weekday without the category has capacity 0")
		assert.Zero(t, n)

		n, ok = table.Quota(calendar.Monday, calendar.OPositive)
		assert.True(t, ok)
		assert.Equal(t, 2, n)
	})

	t.Run("capacity", func(t *testing.T) {
		table := calendar.QuotaTable{
			calendar.Monday:  {calendar.OPositive: 0, calendar.APositive: 0},
			calendar.Tuesday: {calendar.OPositive: 0, calendar.APositive: 1},
		}
		assert.False(t, table.HasCapacity(calendar.Monday))
		assert.True(t, table.HasCapacity(calendar.Tuesday))
		assert.False(t, table.HasCapacity(calendar.Sunday))
	})

	t.Run("clone is independent", func(t *testing.T) {
		original := calendar.DefaultQuotaTable()
		clone := original.Clone()
		clone[calendar.Monday][calendar.OPositive] = 99
		delete(clone, calendar.Sunday)

		assert.Equal(t, 10, original[calendar.Monday][calendar.OPositive])
		assert.Contains(t, original, calendar.Sunday)
		assert.Nil(t, calendar.QuotaTable(nil).Clone())
	})
}

func TestParseCategory(t *testing.T) {
	for _, c := range calendar.Categories {
		got, err := calendar.ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := calendar.ParseCategory(" ab- ")
	require.NoError(t, err)
	assert.Equal(t, calendar.ABNegative, got)

	for _, bad := range []string{"", "C+", "A", "O++", "AB"} {
		_, err := calendar.ParseCategory(bad)
		assert.True(t, errs.Is(err, errs.ErrInvalidInput), "input %q", bad)
	}
}

func TestSchedule(t *testing.T) {
	s := calendar.DefaultSchedule()
	require.Len(t, s, 14)
	assert.Equal(t, "07:30", s[0])
	assert.Equal(t, "14:00", s[len(s)-1])
	assert.True(t, s.Contains("10:30"))
	assert.False(t, s.Contains("10:15"))

	_, err := calendar.NewSchedule("10:00", "09:00", 30*time.Minute)
	assert.True(t, errs.Is(err, errs.ErrInvalidInput))

	_, err = calendar.NewSchedule("10:00", "11:00", 0)
	assert.True(t, errs.Is(err, errs.ErrInvalidInput))
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:00", want: "09:00"},
		{in: "9:00", want: "09:00"},
		{in: " 13:30 ", want: "13:30"},
		{in: "25:00", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := calendar.ParseTimeOfDay(tc.in)
			if tc.wantErr {
				assert.True(t, errs.Is(err, errs.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseWeekday(t *testing.T) {
	for _, d := range calendar.Weekdays {
		got, err := calendar.ParseWeekday(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := calendar.ParseWeekday(" saturday ")
	require.NoError(t, err)
	assert.Equal(t, calendar.Saturday, got)

	for _, bad := range []string{"", "Mon", "Funday"} {
		_, err := calendar.ParseWeekday(bad)
		assert.True(t, errs.Is(err, errs.ErrInvalidInput), "input %q", bad)
	}
}

func TestParseQuotaTable(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := calendar.ParseQuotaTable(map[string]map[string]int{
			"Monday": {"O+": 2, "ab-": 0},
			"sunday": {"A+": 1},
		})
		require.NoError(t, err)

		want := calendar.QuotaTable{
			calendar.Monday: {calendar.OPositive: 2, calendar.ABNegative: 0},
			calendar.Sunday: {calendar.APositive: 1},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("quota table mismatch (-want +got):\n%s", diff)
		}
	})

	cases := []struct {
		name string
		raw  map[string]map[string]int
	}{
		{name: "empty", raw: map[string]map[string]int{}},
		{name: "unknown weekday", raw: map[string]map[string]int{"Mon": {"O+": 1}}},
		{name: "unknown category", raw: map[string]map[string]int{"Monday": {"X": 1}}},
		{name: "negative quota", raw: map[string]map[string]int{"Monday": {"O+": -1}}},
		{name: "weekday twice", raw: map[string]map[string]int{"Monday": {"O+": 1}, "monday": {"A+": 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calendar.ParseQuotaTable(tc.raw)
			assert.True(t, errs.Is(err, errs.ErrInvalidInput), "got %v", err)
		})
	}
}
