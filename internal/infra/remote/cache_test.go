//go:build unit

package remote

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donor-booking/internal/pkg/clock"
)

func TestResponseCache(t *testing.T) {
	payload := json.RawMessage(`{"count":0}`)

	t.Run("freshness follows the injected clock", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC))
		c := newResponseCache(time.Minute, 0, clk)

		c.put("k", payload)
		clk.Add(59 * time.Second)
		got, ok := c.get("k")
		require.True(t, ok)
		assert.JSONEq(t, string(payload), string(got))

		clk.Add(time.Second)
		_, ok = c.get("k")
		assert.False(t, ok)
		assert.Zero(t, c.len(), "stale entry is dropped on read")
	})

	t.Run("entries for other keys expire without being read", func(t *testing.T) {
		c := newResponseCache(20*time.Millisecond, 0, clock.NewRealClock())
		for i := range 10 {
			c.put(fmt.Sprintf("get_available_dates|%d|{}", i), payload)
		}
		require.Equal(t, 10, c.len())

		time.Sleep(50 * time.Millisecond)
		c.put("get_stats|0|{}", payload)
		assert.Equal(t, 1, c.len())
	})

	t.Run("capacity bounds the number of entries", func(t *testing.T) {
		c := newResponseCache(time.Hour, 3, clock.NewRealClock())
		for i := range 5 {
			c.put(fmt.Sprintf("k%d", i), payload)
		}
		assert.Equal(t, 3, c.len())
		_, ok := c.get("k4")
		assert.True(t, ok)
	})

	t.Run("disabled when ttl is zero", func(t *testing.T) {
		c := newResponseCache(0, 0, clock.NewRealClock())
		c.put("k", payload)
		_, ok := c.get("k")
		assert.False(t, ok)
	})

	t.Run("clear", func(t *testing.T) {
		c := newResponseCache(time.Hour, 0, clock.NewRealClock())
		c.put("a", payload)
		c.put("b", payload)
		c.clear()
		assert.Zero(t, c.len())
	})
}
