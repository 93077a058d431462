package cache

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the collectors updated by a PreparedStatementCache. A nil
// *Metrics records nothing.
type Metrics struct {
	Hits            prometheus.Counter
	Prepares        *prometheus.CounterVec
	PrepareDuration prometheus.Histogram
	Entries         prometheus.Gauge
	InFlight        prometheus.Gauge
}

// NewMetrics creates the cache collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "triggerx",
			Subsystem: "prepared_statement_cache",
			Name:      "hits_total",
			Help:      "Lookups answered from the cache without a prepare round trip",
		}),
		Prepares: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "triggerx",
			Subsystem: "prepared_statement_cache",
			Name:      "prepares_total",
			Help:      "Prepare round trips issued by the cache",
		}, []string{"status"}),
		PrepareDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "triggerx",
			Subsystem: "prepared_statement_cache",
			Name:      "prepare_duration_seconds",
			Help:      "Duration of prepare round trips",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		Entries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "triggerx",
			Subsystem: "prepared_statement_cache",
			Name:      "entries",
			Help:      "Prepared handles currently cached",
		}),
		InFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "triggerx",
			Subsystem: "prepared_statement_cache",
			Name:      "in_flight_prepares",
			Help:      "Prepare round trips currently running",
		}),
	}
}

func (m *Metrics) hit() {
	if m != nil {
		m.Hits.Inc()
	}
}

// trackPrepare marks a prepare as started and returns the function that
// records its outcome.
func (m *Metrics) trackPrepare() func(err error) {
	if m == nil {
		return func(error) {}
	}
	start := time.Now()
	m.InFlight.Inc()
	return func(err error) {
		m.InFlight.Dec()
		m.PrepareDuration.Observe(time.Since(start).Seconds())
		status := "success"
		if err != nil {
			status = "error"
		}
		m.Prepares.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) setEntries(n int) {
	if m != nil {
		m.Entries.Set(float64(n))
	}
}
