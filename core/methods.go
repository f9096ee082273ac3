// Package core: Graph method implementations.
//
// Mutations take the write side of the relevant lock; queries take the read
// side. Neighbor lists are handed out as capacity-clipped sub-slices of the
// internal storage, so readers never copy and an append by the caller can
// never scribble over graph state.

package core

import "fmt"

// AddNode inserts a node with the given label and returns its NodeID.
// If the label is already present, the existing NodeID is returned (idempotent).
// Returns ErrEmptyLabel if label is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(label string) (NodeID, error) {
	if label == "" {
		return 0, ErrEmptyLabel
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if id, ok := g.index[label]; ok {
		return id, nil
	}
	id := NodeID(len(g.labels))
	g.labels = append(g.labels, label)
	g.index[label] = id

	// Keep adjacency dense and aligned with labels.
	g.muAdj.Lock()
	g.adjacency = append(g.adjacency, nil)
	g.neighborSet = append(g.neighborSet, nil)
	g.muAdj.Unlock()

	return id, nil
}

// NodeByLabel returns the NodeID registered for label.
// Complexity: O(1).
func (g *Graph) NodeByLabel(label string) (NodeID, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	id, ok := g.index[label]

	return id, ok
}

// Label returns the label of id, or "" if id is unknown.
// Complexity: O(1).
func (g *Graph) Label(id NodeID) string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if id < 0 || int(id) >= len(g.labels) {
		return ""
	}

	return g.labels[id]
}

// AddEdge connects u and v with an undirected edge.
//
// Returns ErrNodeNotFound, ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v NodeID) error {
	if u == v && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	if !g.validLocked(u) {
		return fmt.Errorf("AddEdge: u=%d: %w", u, ErrNodeNotFound)
	}
	if !g.validLocked(v) {
		return fmt.Errorf("AddEdge: v=%d: %w", v, ErrNodeNotFound)
	}
	if !g.allowMulti && g.neighborSet[u][v] > 0 {
		return ErrMultiEdgeNotAllowed
	}

	g.link(u, v)
	if u != v {
		// mirror for the other endpoint; loops are stored once
		g.link(v, u)
	}
	g.edgeCount++

	return nil
}

// AddEdgeByLabel adds both labeled nodes if absent and connects them.
// The NodeIDs are returned even when the edge itself is rejected, so a
// loader can keep node identity stable across skipped lines.
func (g *Graph) AddEdgeByLabel(a, b string) (NodeID, NodeID, error) {
	u, err := g.AddNode(a)
	if err != nil {
		return 0, 0, err
	}
	v, err := g.AddNode(b)
	if err != nil {
		return u, 0, err
	}

	return u, v, g.AddEdge(u, v)
}

// link appends to to from's neighbor list. Caller must hold muAdj.
func (g *Graph) link(from, to NodeID) {
	g.adjacency[from] = append(g.adjacency[from], to)
	if g.neighborSet[from] == nil {
		g.neighborSet[from] = make(map[NodeID]int, 1)
	}
	g.neighborSet[from][to]++
}

// validLocked reports whether id is in range. Caller must hold muAdj.
func (g *Graph) validLocked(id NodeID) bool {
	return id >= 0 && int(id) < len(g.adjacency)
}

// HasEdge reports whether at least one edge joins u and v.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v NodeID) bool {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	if !g.validLocked(u) || !g.validLocked(v) {
		return false
	}

	return g.neighborSet[u][v] > 0
}

// Neighbors returns the neighbor list of id: one entry per incident edge,
// in insertion order. Unknown ids yield nil.
//
// The returned slice aliases graph storage and must be treated as read-only.
// Complexity: O(1).
func (g *Graph) Neighbors(id NodeID) []NodeID {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	if !g.validLocked(id) {
		return nil
	}
	nbrs := g.adjacency[id]

	return nbrs[:len(nbrs):len(nbrs)]
}

// Degree returns the number of entries in id's neighbor list.
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) (int, error) {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	if !g.validLocked(id) {
		return 0, ErrNodeNotFound
	}

	return len(g.adjacency[id]), nil
}

// Nodes returns every NodeID in ascending order.
// Complexity: O(V).
func (g *Graph) Nodes() []NodeID {
	n := g.NodeCount()
	out := make([]NodeID, n)
	for i := range out {
		out[i] = NodeID(i)
	}

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns |E| (a self-loop counts as one edge).
func (g *Graph) EdgeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.edgeCount
}

// EachEdge calls fn once per edge with u ≤ v, in ascending order of u.
// Parallel edges are reported once per copy.
// Complexity: O(V + E).
func (g *Graph) EachEdge(fn func(u, v NodeID)) {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	for u, nbrs := range g.adjacency {
		for _, v := range nbrs {
			if NodeID(u) <= v {
				fn(NodeID(u), v)
			}
		}
	}
}

// Stats produces a read-only snapshot of flags and sizes.
// Complexity: O(V + E) for the loop count scan.
func (g *Graph) Stats() *GraphStats {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	stats := GraphStats{
		NodeCount:   len(g.adjacency),
		EdgeCount:   g.edgeCount,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
	}
	for u, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			stats.IsolatedCount++
		}
		if len(nbrs) > stats.MaxDegree {
			stats.MaxDegree = len(nbrs)
		}
		stats.LoopCount += g.neighborSet[u][NodeID(u)]
	}

	return &stats
}
