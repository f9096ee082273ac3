// SPDX-License-Identifier: MIT

package clustering

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/copurchase/core"
	"github.com/katalvlaran/copurchase/internal/workpool"
)

// nodeTriangles returns T(v) and d(v) for one node.
func nodeTriangles(g core.View, v core.NodeID) (t, d int) {
	nbrs := g.Neighbors(v)
	d = len(nbrs)
	for i := 0; i < d; i++ {
		for j := i + 1; j < d; j++ {
			if g.HasEdge(nbrs[i], nbrs[j]) {
				t++
			}
		}
	}

	return t, d
}

// Coefficient returns C(v) given T(v) and d(v).
func Coefficient(triangles, degree int) float64 {
	if degree < 2 {
		return 0
	}

	return 2 * float64(triangles) / (float64(degree) * float64(degree-1))
}

// perNode runs fn over every node in parallel and returns the values in id order.
func perNode[T any](g core.View, workers int, fn func(core.NodeID) T) []T {
	n := g.NodeCount()
	parts, _ := workpool.Map(n, workers, func(r workpool.Range) ([]T, error) {
		out := make([]T, r.Len())
		for i := range out {
			out[i] = fn(core.NodeID(r.Lo + i))
		}
		return out, nil
	})
	flat := make([]T, 0, n)
	for _, p := range parts {
		flat = append(flat, p...)
	}

	return flat
}

// Coefficients returns the local clustering coefficient of every node in g.
// The empty graph yields an empty map.
func Coefficients(g core.View, opts ...Option) core.MetricMap {
	o := resolve(opts)
	if g == nil {
		return core.MetricMap{}
	}
	start := time.Now()

	scores := perNode(g, o.workers, func(v core.NodeID) float64 {
		return Coefficient(nodeTriangles(g, v))
	})
	result := make(core.MetricMap, len(scores))
	for i, c := range scores {
		result[core.NodeID(i)] = c
	}

	o.logger.Debug("clustering coefficients computed",
		zap.Int("nodes", len(scores)),
		zap.Duration("elapsed", time.Since(start)))

	return result
}

// Triangles returns T(v) for every node in g. Σ T(v) = 3 × (triangles in g).
func Triangles(g core.View, opts ...Option) core.DegreeMap {
	o := resolve(opts)
	if g == nil {
		return core.DegreeMap{}
	}
	counts := perNode(g, o.workers, func(v core.NodeID) int {
		t, _ := nodeTriangles(g, v)
		return t
	})
	result := make(core.DegreeMap, len(counts))
	for i, t := range counts {
		result[core.NodeID(i)] = t
	}

	return result
}

// Average returns the mean coefficient over m, or 0 for an empty map.
func Average(m core.MetricMap) float64 {
	if len(m) == 0 {
		return 0
	}
	var sum float64
	for _, c := range m {
		sum += c
	}

	return sum / float64(len(m))
}
