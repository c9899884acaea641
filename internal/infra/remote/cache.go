package remote

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"donor-booking/internal/pkg/clock"
)

// DefaultCacheCapacity bounds the number of cached responses; dates are cached per requester.
const DefaultCacheCapacity = 4096

// Read-only actions whose successful responses may be reused within the TTL.
var cacheableActions = map[string]struct{}{
	actionAvailableDates: {},
	actionStats:          {},
	actionQuotas:         {},
}

func isCacheable(action string) bool {
	_, ok := cacheableActions[action]
	return ok
}

type cacheEntry struct {
	data     json.RawMessage
	storedAt time.Time
}

// responseCache evicts by wall time in ttlcache and judges freshness by the injected clock.
type responseCache struct {
	ttl     time.Duration
	clock   clock.Clock
	entries *ttlcache.Cache[string, cacheEntry]
}

func newResponseCache(ttl time.Duration, capacity uint64, clk clock.Clock) *responseCache {
	opts := []ttlcache.Option[string, cacheEntry]{
		ttlcache.WithDisableTouchOnHit[string, cacheEntry](),
	}
	if ttl > 0 {
		opts = append(opts, ttlcache.WithTTL[string, cacheEntry](ttl))
	}
	if capacity > 0 {
		opts = append(opts, ttlcache.WithCapacity[string, cacheEntry](capacity))
	}
	return &responseCache{
		ttl:     ttl,
		clock:   clk,
		entries: ttlcache.New(opts...),
	}
}

// cacheKey is stable for equal params: encoding/json sorts map keys.
func cacheKey(action string, requesterID int64, params map[string]any) string {
	canonical, err := json.Marshal(params)
	if err != nil {
		canonical = nil
	}
	return action + "|" + strconv.FormatInt(requesterID, 10) + "|" + string(canonical)
}

func (c *responseCache) get(key string) (json.RawMessage, bool) {
	item := c.entries.Get(key)
	if item == nil {
		return nil, false
	}
	e := item.Value()
	if c.clock.Now().Sub(e.storedAt) >= c.ttl {
		c.entries.Delete(key)
		return nil, false
	}
	return e.data, true
}

func (c *responseCache) put(key string, data json.RawMessage) {
	if c.ttl <= 0 {
		return
	}
	c.entries.DeleteExpired()
	c.entries.Set(key, cacheEntry{data: data, storedAt: c.clock.Now()}, ttlcache.DefaultTTL)
}

func (c *responseCache) clear() {
	c.entries.DeleteAll()
}

func (c *responseCache) len() int {
	return c.entries.Len()
}
