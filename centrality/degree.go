package centrality

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/copurchase/core"
	"github.com/katalvlaran/copurchase/internal/workpool"
)

// Degree returns the number of incident edges of every node in g.
// A self-loop counts once per entry in the node's neighbor list.
// The empty graph yields an empty map.
//
// Complexity: O(V + E) work, O(V) extra space.
func Degree(g core.View, opts ...Option) core.DegreeMap {
	o := resolve(opts)
	if g == nil {
		return core.DegreeMap{}
	}
	start := time.Now()
	n := g.NodeCount()

	// Each worker fills a private slice for its node range.
	parts, _ := workpool.Map(n, o.Workers, func(r workpool.Range) ([]int, error) {
		out := make([]int, r.Len())
		for i := range out {
			out[i] = len(g.Neighbors(core.NodeID(r.Lo + i)))
		}
		return out, nil
	})

	// Single-threaded merge, in range order.
	result := make(core.DegreeMap, n)
	id := 0
	for _, part := range parts {
		for _, deg := range part {
			result[core.NodeID(id)] = deg
			id++
		}
	}

	o.Logger.Debug("degree centrality computed",
		zap.Int("nodes", n),
		zap.Int("ranges", len(parts)),
		zap.Duration("elapsed", time.Since(start)))

	return result
}
