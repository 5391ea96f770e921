package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the application counters.
type Metrics struct {
	RateRefreshTotal *prometheus.CounterVec
	TradesTotal      *prometheus.CounterVec
}

// NewMetrics registers the application counters with the given registerer.
// Tests pass a fresh registry to avoid duplicate registration panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RateRefreshTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_refresh_total",
				Help: "Total number of rate refresh attempts by outcome",
			},
			[]string{"status"},
		),

		TradesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trades_total",
				Help: "Total number of executed trades by direction",
			},
			[]string{"direction"},
		),
	}
}
