package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net"
	"net/http"
	"strconv"
	"time"

	"donor-booking/internal/infra"
	"donor-booking/internal/pkg/clock"
	"donor-booking/internal/pkg/errs"
	"donor-booking/internal/pkg/metrics"
	"donor-booking/internal/usecase/booking"
)

const (
	DefaultTimeout  = 15 * time.Second
	DefaultCacheTTL = 300 * time.Second

	maxResponseBytes = 4 << 20
)

// Wire actions understood by the remote scheduling service.
const (
	actionAvailableDates = booking.OpListBookableDates
	actionFreeTimes      = booking.OpListFreeSlots
	actionCheckExisting  = booking.OpCheckExisting
	actionRegister       = booking.OpReserve
	actionCancel         = booking.OpCancel
	actionUserBookings   = booking.OpListUserBookings
	actionStats          = booking.OpAggregateStats
	actionQuotas         = booking.OpAggregateQuotas
	actionTest           = booking.OpTest
)

// Client talks to a remote scheduling service over its single JSON endpoint.
// It keeps no booking state apart from a short-lived cache of read responses.
type Client struct {
	url        string
	httpClient *http.Client
	cache      *responseCache
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

var _ booking.RemoteBackend = (*Client)(nil)

type options struct {
	httpClient    *http.Client
	timeout       time.Duration
	cacheTTL      time.Duration
	cacheCapacity uint64 // zero means unbounded
	clock         clock.Clock
	logger        *slog.Logger
	metrics       *metrics.Metrics
}

type Option func(*options)

// WithHTTPClient replaces the transport client; its own Timeout wins over WithTimeout.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithCacheTTL sets how long read responses are reused. Zero disables caching.
func WithCacheTTL(d time.Duration) Option {
	return func(o *options) { o.cacheTTL = d }
}

// WithCacheCapacity caps the number of cached responses.
func WithCacheCapacity(n uint64) Option {
	return func(o *options) { o.cacheCapacity = n }
}

func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func New(url string, opts ...Option) (*Client, error) {
	if url == "" {
		return nil, errs.New("remote url is required")
	}
	o := options{
		timeout:       DefaultTimeout,
		cacheTTL:      DefaultCacheTTL,
		cacheCapacity: DefaultCacheCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = clock.NewRealClock()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		url:        url,
		httpClient: o.httpClient,
		cache:      newResponseCache(o.cacheTTL, o.cacheCapacity, o.clock),
		logger:     o.logger,
		metrics:    o.metrics,
	}, nil
}

type wireResponse struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Call performs one request against the remote endpoint and returns the raw
// data payload of a successful response.
func (c *Client) Call(ctx context.Context, action string, params map[string]any, requesterID int64, forceRefresh bool) (json.RawMessage, error) {
	cacheable := isCacheable(action)
	key := ""
	if cacheable {
		key = cacheKey(action, requesterID, params)
		if !forceRefresh {
			if data, ok := c.cache.get(key); ok {
				c.metrics.ObserveCache(true)
				c.logger.DebugContext(ctx, "remote cache hit", slog.String("action", action))
				return data, nil
			}
		}
		c.metrics.ObserveCache(false)
	}

	body := make(map[string]any, len(params)+2)
	maps.Copy(body, params)
	body["action"] = action
	if requesterID != 0 {
		body["user_id"] = strconv.FormatInt(requesterID, 10)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to encode request"), errs.ErrInvalidInput)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, infra.WrapBackendErr(c.logger, infra.KindConnection, "connection error", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, infra.WrapBackendErr(c.logger, infra.KindTimeout, "request timed out", err)
		}
		return nil, infra.WrapBackendErr(c.logger, infra.KindConnection, "connection error", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, infra.WrapBackendErr(c.logger, infra.KindConnection,
			fmt.Sprintf("remote returned HTTP %d", resp.StatusCode), nil)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if isTimeout(err) {
			return nil, infra.WrapBackendErr(c.logger, infra.KindTimeout, "request timed out", err)
		}
		return nil, infra.WrapBackendErr(c.logger, infra.KindConnection, "connection error", err)
	}

	var wr wireResponse
	if err := json.Unmarshal(raw, &wr); err != nil {
		return nil, infra.WrapBackendErr(c.logger, infra.KindBadFormat, "bad response format", err)
	}

	switch wr.Status {
	case booking.StatusSuccess:
		if cacheable {
			c.cache.put(key, wr.Data)
		}
		return wr.Data, nil
	case booking.StatusError:
		return nil, infra.WrapBackendErr(c.logger, infra.KindRemoteReported, reportedMessage(wr.Data), nil)
	default:
		return nil, infra.WrapBackendErr(c.logger, infra.KindBadFormat,
			fmt.Sprintf("bad response format: unexpected status %q", wr.Status), nil)
	}
}

// ClearCache drops cached responses. The remote side is not contacted.
func (c *Client) ClearCache() {
	c.cache.clear()
}

// TestConnection sends the no-op test action.
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.Call(ctx, actionTest, nil, 0, true)
	return err
}

// reportedMessage flattens the remote error payload into a plain string.
func reportedMessage(data json.RawMessage) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "unknown error"
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		if s == "" {
			return "unknown error"
		}
		return s
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return string(trimmed)
	}
	return compact.String()
}

func isTimeout(err error) bool {
	if errs.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errs.As(err, &ne) && ne.Timeout()
}
