//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donor-booking/internal/domain/calendar"
	"donor-booking/internal/domain/reservation"
	"donor-booking/internal/pkg/clock"
	"donor-booking/internal/pkg/errs"
)

// sequenceCodes hands out the given codes in order, repeating the last one.
type sequenceCodes struct {
	codes []reservation.ConfirmationCode
	calls int
}

func (s *sequenceCodes) Generate(calendar.Weekday, calendar.Category) reservation.ConfirmationCode {
	i := min(s.calls, len(s.codes)-1)
	s.calls++
	return s.codes[i]
}

func TestParseDate(t *testing.T) {
	d, err := reservation.ParseDate("2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-06", d.String())
	assert.Equal(t, "06.01.2025", d.Display())
	assert.Equal(t, calendar.Monday, d.Weekday())
	assert.Equal(t, "2025-01-07", d.AddDays(1).String())

	for _, bad := range []string{"not-a-date", "06.01.2025", "2025-13-01", "2025-02-30", ""} {
		_, err := reservation.ParseDate(bad)
		assert.True(t, errs.Is(err, errs.ErrInvalidInput), "input %q", bad)
	}
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	d := reservation.DateOf(time.Date(2025, 1, 6, 23, 30, 0, 0, loc))
	parsed, err := reservation.ParseDate("2025-01-06")
	require.NoError(t, err)
	assert.True(t, d.Equal(parsed))
}

func TestRandomCodeGenerator(t *testing.T) {
	gen := reservation.RandomCodeGenerator{}
	for range 200 {
		code := gen.Generate(calendar.Monday, calendar.OPositive).String()
		assert.Regexp(t, `^T-Mon-O\+-[1-9][0-9]{3}$`, code)
	}
}

func TestFactory(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	date, err := reservation.ParseDate("2025-01-06")
	require.NoError(t, err)

	t.Run("creates reservation with clock time", func(t *testing.T) {
		f := reservation.NewFactory(clock.NewMockClock(now), &sequenceCodes{codes: []reservation.ConfirmationCode{"T-Mon-O+-1234"}})

		r, err := f.CreateReservation(date, "09:00", calendar.OPositive, 42, nil)
		require.NoError(t, err)
		assert.Equal(t, reservation.ConfirmationCode("T-Mon-O+-1234"), r.Code())
		assert.Equal(t, calendar.Monday, r.Weekday())
		assert.Equal(t, int64(42), r.RequesterID())
		assert.Equal(t, now, r.CreatedAt())
		assert.True(t, r.Occupies(date, "09:00", calendar.OPositive))
		assert.False(t, r.Occupies(date, "09:00", calendar.APositive))
	})

	t.Run("retries until the code is unused", func(t *testing.T) {
		codes := &sequenceCodes{codes: []reservation.ConfirmationCode{"T-Mon-O+-1111", "T-Mon-O+-1111", "T-Mon-O+-2222"}}
		f := reservation.NewFactory(clock.NewMockClock(now), codes)
		taken := func(c reservation.ConfirmationCode) bool { return c == "T-Mon-O+-1111" }

		r, err := f.CreateReservation(date, "09:00", calendar.OPositive, 42, taken)
		require.NoError(t, err)
		assert.Equal(t, reservation.ConfirmationCode("T-Mon-O+-2222"), r.Code())
		assert.Equal(t, 3, codes.calls)
	})

	t.Run("gives up when every code is taken", func(t *testing.T) {
		f := reservation.NewFactory(clock.NewMockClock(now), &sequenceCodes{codes: []reservation.ConfirmationCode{"T-Mon-O+-1111"}})

		_, err := f.CreateReservation(date, "09:00", calendar.OPositive, 42, func(reservation.ConfirmationCode) bool { return true })
		assert.ErrorIs(t, err, reservation.ErrCodeSpaceExhausted)
	})
}
