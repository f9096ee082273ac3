// Package clustering computes local clustering coefficients over a core.View.
//
// For a node v with neighbor list N(v) of length d, let T(v) be the number of
// unordered neighbor pairs {a,b} ⊆ N(v) with an edge a–b (the triangles that
// pass through v). Then
//
//	C(v) = 2·T(v) / (d·(d−1))   for d ≥ 2
//	C(v) = 0                    for d < 2
//
// Every node of the graph gets an entry; degree-0 and degree-1 nodes score 0
// rather than being omitted.
//
// Cost is Σ d(v)² pairwise HasEdge probes. core.Graph answers HasEdge from a
// per-node hash set, so a dense neighborhood costs O(d²), not O(d³).
// Nodes are split into contiguous ranges across workers (internal/workpool)
// and merged on the calling goroutine.
package clustering
