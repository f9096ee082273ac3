// Package bfs provides breadth-first search over a core.View, returning
// unweighted shortest-path (hop) distances.
//
// What
//
//   - BFS explores nodes layer by layer from a start node and returns a
//     Result with visit Order, hop Depth and BFS-tree Parent links.
//   - Walker is the allocation-free variant used by centrality: it keeps
//     its distance and queue buffers between runs and only reports how many
//     nodes were reached and the sum of their distances.
//   - Supports hooks (OnVisit), depth limits (WithMaxDepth) and edge
//     filtering (WithFilterNeighbor) on BFS.
//
// Why a queue
//
//	Closeness scores are only correct if every node is finalized at its true
//	shortest hop distance. A FIFO queue guarantees that: nodes are discovered
//	in non-decreasing distance, so the first time a node is seen is the
//	shortest. A stack-based walk does not have this property.
//
// Determinism
//
//	Neighbors are enqueued in the order the View returns them, so for a
//	*core.Graph the visit sequence follows edge insertion order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) per run (each node and edge seen at most once)
//   - Memory: O(V) (queue and distance buffers)
//   - Walker reset cost is proportional to the component reached, not to V.
//
// Usage
//
//	res, err := bfs.BFS(g, start, bfs.WithMaxDepth(3))
//
//	w := bfs.NewWalker(g)
//	reached, sum, err := w.Reach(start)
//
// Errors
//
//   - ErrGraphNil           if the view is nil.
//   - ErrStartNodeNotFound  if the start node is outside [0, NodeCount()).
//   - ErrOptionViolation    if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped OnVisit errors.
package bfs
