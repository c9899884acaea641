package bootstrap

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"donor-booking/internal/pkg/metrics"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
		func(reg *prometheus.Registry) prometheus.Gatherer {
			return reg
		},
		func(reg *prometheus.Registry) *metrics.Metrics {
			return metrics.New(reg)
		},
	),
)
