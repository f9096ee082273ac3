// Package centrality computes per-node importance scores over a core.View.
//
// What
//
//   - Degree: number of incident edges of every node. O(V + E).
//   - Closeness: sampled approximation of closeness centrality. A uniform
//     sample of k distinct source nodes is drawn without replacement; each
//     source runs one queue-based BFS over its own component and scores
//
//     closeness(s) = R / D   (R = nodes reached incl. s, D = Σ hop distances)
//
//     with closeness(s) = 0 when D = 0 (isolated source). Only sampled
//     sources appear in the result. O(k·(V + E)) instead of O(V·(V + E)).
//
// Parallelism
//
//	Both metrics partition their input (nodes for Degree, sampled sources
//	for Closeness) into contiguous ranges, one per worker. Workers read the
//	shared graph, write only worker-local buffers, and return their partial
//	results; a single goroutine merges them into the output map. There is
//	no lock on the hot path. See internal/workpool.
//
// Randomness
//
//	Sampling uses a fresh time-seeded source unless WithSeed or WithRand
//	pins one, in which case the sample (and therefore the result map's key
//	set) is reproducible.
//
// Options
//
//   - WithWorkers(n):  worker count; n ≤ 0 means GOMAXPROCS.
//   - WithSeed(seed):  deterministic sampling.
//   - WithRand(r):     caller-owned *rand.Rand (nil → ErrOptionViolation).
//   - WithLogger(l):   zap logger for debug summaries (default no-op).
//
// Errors
//
//   - ErrInvalidSampleSize  if k < 0.
//   - ErrOptionViolation    for invalid options.
package centrality
