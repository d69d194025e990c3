package observe

import (
	"math"
	"time"

	"github.com/katalvlaran/pathfind/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "pathfind"

// Metrics collects search metrics. All series are labelled by mode
// ("dijkstra" or "astar"):
//
//   - pathfind_searches_total{mode, outcome}: counter of finished searches
//   - pathfind_frontier_pops{mode}: histogram of frontier pops per search
//   - pathfind_expanded_nodes{mode}: histogram of expanded nodes per search
//   - pathfind_search_duration_seconds{mode}: histogram of wall time
//   - pathfind_path_cost{mode}: histogram of costs of found paths
//
// A nil *Metrics records nothing.
type Metrics struct {
	searches *prometheus.CounterVec
	pops     *prometheus.HistogramVec
	expanded *prometheus.HistogramVec
	duration *prometheus.HistogramVec
	cost     *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg
// (prometheus.DefaultRegisterer when nil). Registering twice on the same
// registry panics, as with any promauto collector.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	workBuckets := prometheus.ExponentialBuckets(1, 4, 10) // 1 .. 262144

	return &Metrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "searches_total",
			Help:      "Finished searches by mode and outcome",
		}, []string{"mode", "outcome"}),
		pops: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "frontier_pops",
			Help:      "Frontier pops per search, stale entries included",
			Buckets:   workBuckets,
		}, []string{"mode"}),
		expanded: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "expanded_nodes",
			Help:      "Nodes expanded per search",
			Buckets:   workBuckets,
		}, []string{"mode"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of one search",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8), // 1µs .. 10s
		}, []string{"mode"}),
		cost: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "path_cost",
			Help:      "Cost of found paths",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 12),
		}, []string{"mode"}),
	}
}

// observe records one finished search.
func (m *Metrics) observe(mode search.Mode, outcome Outcome, st search.Stats, cost float64, took time.Duration) {
	if m == nil {
		return
	}
	label := mode.String()
	m.searches.WithLabelValues(label, string(outcome)).Inc()
	m.pops.WithLabelValues(label).Observe(float64(st.Pops))
	m.expanded.WithLabelValues(label).Observe(float64(st.Expanded))
	m.duration.WithLabelValues(label).Observe(took.Seconds())
	if outcome == OutcomeFound && !math.IsInf(cost, 0) {
		m.cost.WithLabelValues(label).Observe(cost)
	}
}
