// Package metrics collects word-ladder statistics in a private Prometheus
// registry and exports them in the text exposition format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
)

// Graph is the part of a word graph the registry reports on.
type Graph interface {
	Order() int
	Size() int
}

// Registry holds every wordladder metric.
type Registry struct {
	registry *prometheus.Registry

	DictionaryLinesTotal    prometheus.Counter
	DictionaryRejectedTotal prometheus.Counter
	GraphNodes              prometheus.Gauge
	GraphEdges              prometheus.Gauge
	BFSVisitedTotal         prometheus.Counter
	LaddersEmittedTotal     prometheus.Counter
	LadderLength            prometheus.Gauge
	QueryDuration           prometheus.Histogram
}

// NewRegistry creates a Registry with all metrics registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	factory := promauto.With(r.registry)

	r.DictionaryLinesTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "wordladder_dictionary_lines_total",
		Help: "Dictionary lines read",
	})
	r.DictionaryRejectedTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "wordladder_dictionary_rejected_total",
		Help: "Dictionary lines ignored for having the wrong length",
	})
	r.GraphNodes = factory.NewGauge(prometheus.GaugeOpts{
		Name: "wordladder_graph_nodes",
		Help: "Words in the graph",
	})
	r.GraphEdges = factory.NewGauge(prometheus.GaugeOpts{
		Name: "wordladder_graph_edges",
		Help: "One-letter links between words in the graph",
	})
	r.BFSVisitedTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "wordladder_bfs_visited_total",
		Help: "Words visited by the breadth-first layering",
	})
	r.LaddersEmittedTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "wordladder_ladders_emitted_total",
		Help: "Ladders produced by the enumerator",
	})
	r.LadderLength = factory.NewGauge(prometheus.GaugeOpts{
		Name: "wordladder_ladder_length",
		Help: "Substitutions on the shortest ladder, -1 when none exists",
	})
	r.QueryDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordladder_query_duration_seconds",
		Help:    "Time from graph construction to the last printed ladder",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
	})

	return r
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// ObserveLoad records one dictionary ingestion.
func (r *Registry) ObserveLoad(s dictionary.Stats) {
	r.DictionaryLinesTotal.Add(float64(s.Lines))
	r.DictionaryRejectedTotal.Add(float64(s.Rejected))
}

// ObserveGraph records the current size of g.
func (r *Registry) ObserveGraph(g Graph) {
	r.GraphNodes.Set(float64(g.Order()))
	r.GraphEdges.Set(float64(g.Size()))
}

// ObserveVisit counts one word visited by the breadth-first layering.
func (r *Registry) ObserveVisit() {
	r.BFSVisitedTotal.Inc()
}

// ObserveLadder counts one emitted ladder and records its length.
func (r *Registry) ObserveLadder(l ladder.Ladder) {
	r.LaddersEmittedTotal.Inc()
	r.LadderLength.Set(float64(l.Len()))
}

// ObserveNoLadder marks a query that produced nothing.
func (r *Registry) ObserveNoLadder() {
	r.LadderLength.Set(-1)
}

// ObserveQuery records the duration of one query.
func (r *Registry) ObserveQuery(d time.Duration) {
	r.QueryDuration.Observe(d.Seconds())
}

// WriteTextfile writes every metric to path, replacing it atomically.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
