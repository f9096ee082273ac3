// SPDX-License-Identifier: MIT

package report

import (
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/copurchase/core"
	"github.com/katalvlaran/copurchase/ranking"
)

// Input carries the maps a report is built from.
type Input struct {
	Labels     core.Labeler // nil renders NodeIDs as decimal
	Degree     core.DegreeMap
	Closeness  core.MetricMap // usually normalized
	Clustering core.MetricMap
	Top        []ranking.Entry
}

// Meta describes the run. Zero RunID and GeneratedAt are filled in by New.
type Meta struct {
	RunID       string
	GeneratedAt time.Time
	Source      string
	Nodes       int
	Edges       int
	SampleSize  int
	Elapsed     time.Duration
}

// NodeScore is one labeled score.
type NodeScore struct {
	Node  string  `yaml:"node"`
	Score float64 `yaml:"score"`
}

// Ranked is one top-N line.
type Ranked struct {
	Rank  int     `yaml:"rank"`
	Node  string  `yaml:"node"`
	Score float64 `yaml:"score"`
}

// Summary holds distribution statistics for one metric.
type Summary struct {
	Metric string  `yaml:"metric"`
	Count  int     `yaml:"count"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
	Min    float64 `yaml:"min"`
	Median float64 `yaml:"median"`
	P90    float64 `yaml:"p90"`
	Max    float64 `yaml:"max"`
}

// Report is the rendered-ready view of one analysis.
type Report struct {
	RunID       string        `yaml:"run_id"`
	GeneratedAt time.Time     `yaml:"generated_at"`
	Source      string        `yaml:"source,omitempty"`
	Nodes       int           `yaml:"nodes"`
	Edges       int           `yaml:"edges"`
	SampleSize  int           `yaml:"sample_size"`
	Elapsed     time.Duration `yaml:"elapsed"`

	Summaries  []Summary   `yaml:"summaries"`
	Top        []Ranked    `yaml:"top"`
	Degree     []NodeScore `yaml:"degree"`
	Closeness  []NodeScore `yaml:"closeness"`
	Clustering []NodeScore `yaml:"clustering"`
}

// New assembles a Report. Maps are copied into id-ordered slices.
func New(in Input, meta Meta) *Report {
	if meta.RunID == "" {
		meta.RunID = uuid.NewString()
	}
	if meta.GeneratedAt.IsZero() {
		meta.GeneratedAt = time.Now().UTC()
	}
	label := labelFunc(in.Labels)

	degree := in.Degree.AsMetric()
	r := &Report{
		RunID:       meta.RunID,
		GeneratedAt: meta.GeneratedAt,
		Source:      meta.Source,
		Nodes:       meta.Nodes,
		Edges:       meta.Edges,
		SampleSize:  meta.SampleSize,
		Elapsed:     meta.Elapsed,
		Degree:      scores(degree, label),
		Closeness:   scores(in.Closeness, label),
		Clustering:  scores(in.Clustering, label),
		Summaries: []Summary{
			Summarize("degree", degree.Values()),
			Summarize("closeness", in.Closeness.Values()),
			Summarize("clustering", in.Clustering.Values()),
		},
		Top: make([]Ranked, len(in.Top)),
	}
	for i, e := range in.Top {
		r.Top[i] = Ranked{Rank: i + 1, Node: label(e.Node), Score: e.Score}
	}

	return r
}

// Summarize computes count, mean, sample stddev, min, empirical median,
// p90 and max of values. An empty input yields a zero Summary; a single
// value has stddev 0. values is not modified.
func Summarize(metric string, values []float64) Summary {
	s := Summary{Metric: metric, Count: len(values)}
	if len(values) == 0 {
		return s
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	s.Mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)

	return s
}

func scores(m core.MetricMap, label func(core.NodeID) string) []NodeScore {
	ids := m.SortedIDs()
	out := make([]NodeScore, len(ids))
	for i, id := range ids {
		out[i] = NodeScore{Node: label(id), Score: m[id]}
	}

	return out
}

func labelFunc(l core.Labeler) func(core.NodeID) string {
	if l == nil {
		return func(id core.NodeID) string { return strconv.Itoa(int(id)) }
	}
	return func(id core.NodeID) string {
		if s := l.Label(id); s != "" {
			return s
		}
		return strconv.Itoa(int(id))
	}
}

// formatFloat renders v in the shortest form that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fixed4 renders summary statistics with four decimals.
func fixed4(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
