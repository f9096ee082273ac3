// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "copurchase"

// Metric names used as the "metric" label value.
const (
	MetricDegree     = "degree"
	MetricCloseness  = "closeness"
	MetricClustering = "clustering"
	MetricRanking    = "ranking"
)

// Metrics holds the pipeline's Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	duration *prometheus.HistogramVec
	nodes    prometheus.Gauge
	edges    prometheus.Gauge
	sampled  prometheus.Gauge
	runs     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "metric_duration_seconds",
				Help:      "Wall time spent computing each metric in seconds",
				Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 15, 60, 300},
			},
			[]string{"metric"},
		),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "graph_nodes",
			Help:      "Number of nodes in the analyzed graph",
		}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "graph_edges",
			Help:      "Number of undirected edges in the analyzed graph",
		}),
		sampled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "closeness_sampled_nodes",
			Help:      "Number of source nodes sampled for closeness",
		}),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "runs_total",
				Help:      "Pipeline runs by outcome",
			},
			[]string{"status"},
		),
	}
	for _, c := range []prometheus.Collector{m.duration, m.nodes, m.edges, m.sampled, m.runs} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("NewMetrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) observe(metric string, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(metric).Observe(d.Seconds())
}

func (m *Metrics) setGraph(nodes, edges int) {
	if m == nil {
		return
	}
	m.nodes.Set(float64(nodes))
	m.edges.Set(float64(edges))
}

func (m *Metrics) setSampled(n int) {
	if m == nil {
		return
	}
	m.sampled.Set(float64(n))
}

func (m *Metrics) finish(err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.runs.WithLabelValues(status).Inc()
}
