package routing

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the optional Prometheus instrumentation for the search
// layer. A nil *Metrics is valid everywhere it's accepted; every method on
// it is a no-op in that case, so callers that don't want metrics never pay
// for them.
type Metrics struct {
	searchesTotal  *prometheus.CounterVec
	searchDuration prometheus.Histogram
	routesReturned prometheus.Histogram
}

// NewMetrics constructs a Metrics registered under the given namespace. The
// caller registers the result with a prometheus.Registerer of its choosing.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		searchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "routing",
			Name:      "searches_total",
			Help:      "Number of route searches, labeled by outcome.",
		}, []string{"outcome"}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "routing",
			Name:      "search_duration_seconds",
			Help:      "Wall-clock duration of a single route search.",
			Buckets:   prometheus.DefBuckets,
		}),
		routesReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "routing",
			Name:      "routes_returned",
			Help:      "Number of candidate routes returned per Session.FindRoute search.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
		}),
	}
}

// Collectors returns every collector so the caller can register them in one
// call: prometheus.WrapRegistererWith / MustRegister(m.Collectors()...).
func (m *Metrics) Collectors() []prometheus.Collector {
	if m == nil {
		return nil
	}

	return []prometheus.Collector{
		m.searchesTotal, m.searchDuration, m.routesReturned,
	}
}

func (m *Metrics) observeSearch(outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.searchesTotal.WithLabelValues(outcome).Inc()
	m.searchDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) observeRoutesReturned(n int) {
	if m == nil {
		return
	}
	m.routesReturned.Observe(float64(n))
}
