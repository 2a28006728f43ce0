package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the simulator's Prometheus metrics. A nil *Metrics ignores
// observations.
type Metrics struct {
	SessionsTotal *prometheus.CounterVec
	LandingsTotal *prometheus.CounterVec
	FlightSeconds prometheus.Histogram
	FuelRemaining prometheus.Histogram
}

// NewMetrics registers the simulator metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SessionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lander_sessions_total",
				Help: "Flown sessions by result (success, failure, unfinished)",
			},
			[]string{"result"},
		),
		LandingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lander_landings_total",
				Help: "Successful landings by pad kind",
			},
			[]string{"pad"},
		),
		FlightSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lander_flight_seconds",
				Help:    "Simulated flight duration in seconds",
				Buckets: []float64{1, 2, 5, 10, 20, 30, 60, 120, 300},
			},
		),
		FuelRemaining: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lander_fuel_remaining",
				Help:    "Fuel left when the session ended",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
	}
}

// Observe records one result.
func (m *Metrics) Observe(r Result) {
	if m == nil {
		return
	}
	m.SessionsTotal.WithLabelValues(resultLabel(r)).Inc()
	if r.Finished && r.Outcome.Success {
		if kind, ok := r.Outcome.Pad(); ok {
			m.LandingsTotal.WithLabelValues(kind.String()).Inc()
		}
	}
	m.FlightSeconds.Observe(r.Elapsed)
	m.FuelRemaining.Observe(r.FuelLeft)
}

func resultLabel(r Result) string {
	switch {
	case !r.Finished:
		return "unfinished"
	case r.Outcome.Success:
		return "success"
	default:
		return "failure"
	}
}
