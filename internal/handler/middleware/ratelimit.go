package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"donor-booking/internal/handler/httperr"
	"donor-booking/internal/pkg/config"
	"donor-booking/internal/pkg/metrics"
)

// RateLimiter keeps one token bucket per requester (or client IP when the
// requester is unknown). Idle buckets are dropped by the janitor.
type RateLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	metrics *metrics.Metrics
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows cfg.Requests per cfg.Window, all of which may be spent at once.
func NewRateLimiter(cfg config.RateLimitConfig, m *metrics.Metrics) *RateLimiter {
	limit := rate.Inf
	burst := 0
	if cfg.Requests > 0 && cfg.Window > 0 {
		limit = rate.Limit(float64(cfg.Requests) / cfg.Window.Seconds())
		burst = cfg.Requests
	}
	idle := 2 * cfg.Window
	if idle < time.Minute {
		idle = time.Minute
	}
	return &RateLimiter{
		entries: make(map[string]*limiterEntry),
		limit:   limit,
		burst:   burst,
		idleTTL: idle,
		metrics: m,
	}
}

func (r *RateLimiter) get(key string, now time.Time) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ent, ok := r.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(r.limit, r.burst)
	r.entries[key] = &limiterEntry{lim: lim, lastSeen: now}
	return lim
}

// Allow reports whether key may proceed now and, if not, how long to wait.
func (r *RateLimiter) Allow(key string) (bool, time.Duration) {
	now := time.Now()
	res := r.get(key, now).ReserveN(now, 1)
	if !res.OK() {
		return false, 0
	}
	delay := res.DelayFrom(now)
	if delay == 0 {
		return true, 0
	}
	res.CancelAt(now)
	return false, delay
}

func (r *RateLimiter) Cleanup() {
	cutoff := time.Now().Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()

	for k, ent := range r.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(r.entries, k)
		}
	}
}

// StartJanitor cleans idle buckets until ctx is done.
func (r *RateLimiter) StartJanitor(ctx context.Context) {
	t := time.NewTicker(r.idleTTL)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				r.Cleanup()
			}
		}
	}()
}

// Middleware must run after the requester middleware to key by requester.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if id, ok := GetRequesterID(c); ok {
			key = "requester:" + strconv.FormatInt(id, 10)
		}

		allowed, retryAfter := r.Allow(key)
		if !allowed {
			r.metrics.ObserveRateLimited()
			if retryAfter > 0 {
				c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			}
			httperr.AbortWithMessage(c, http.StatusTooManyRequests, "Too many requests, please wait")
			return
		}
		c.Next()
	}
}
