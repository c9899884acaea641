package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"

	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Metrics groups the booking collectors. All of them are registered on the
// registry handed to New so tests can build isolated instances.
type Metrics struct {
	Operations  *prometheus.CounterVec
	Fallbacks   *prometheus.CounterVec
	RemoteCache *prometheus.CounterVec
	RateLimited prometheus.Counter
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_operations_total",
			Help: "Booking operations by backend, operation and outcome",
		}, []string{"backend", "operation", "outcome"}),

		Fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_fallbacks_total",
			Help: "Operations retried against the local ledger after a remote failure",
		}, []string{"operation"}),

		RemoteCache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_remote_cache_total",
			Help: "Remote read cache lookups by result",
		}, []string{"result"}),

		RateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "booking_rate_limited_total",
			Help: "Requests rejected by the per-requester rate limiter",
		}),
	}
}

// NewNop builds collectors on a throwaway registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) ObserveOperation(backend, operation string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.Operations.WithLabelValues(backend, operation, outcome).Inc()
}

func (m *Metrics) ObserveFallback(operation string) {
	if m == nil {
		return
	}
	m.Fallbacks.WithLabelValues(operation).Inc()
}

func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.RemoteCache.WithLabelValues(CacheHit).Inc()
		return
	}
	m.RemoteCache.WithLabelValues(CacheMiss).Inc()
}

func (m *Metrics) ObserveRateLimited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}
