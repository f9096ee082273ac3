package centrality

import (
	"math/rand"

	"github.com/katalvlaran/copurchase/core"
)

// Sample draws min(k, len(nodes)) distinct nodes uniformly at random
// without replacement, using a partial Fisher–Yates shuffle over a copy of
// nodes. The input slice is not modified. k ≤ 0 yields an empty sample.
//
// Complexity: O(len(nodes)) for the copy plus O(k) swaps.
func Sample(nodes []core.NodeID, k int, r *rand.Rand) []core.NodeID {
	if k <= 0 || len(nodes) == 0 {
		return []core.NodeID{}
	}
	pool := make([]core.NodeID, len(nodes))
	copy(pool, nodes)
	if k >= len(pool) {
		return pool
	}
	for i := 0; i < k; i++ {
		j := i + r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k:k]
}
