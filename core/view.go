// File: view.go
// Role: the read-only contract the analytics packages consume, and the
// metric map types they hand back.
// AI-HINT (file):
//   - Implementations must be safe for concurrent readers.
//   - Neighbors(u) must contain v exactly once per distinct edge {u,v}.

package core

import "sort"

// View is the read-only adjacency surface every analytics routine accepts.
// *Graph implements it; any other structure that can enumerate nodes, list
// neighbors and answer edge existence can be plugged in instead.
type View interface {
	// NodeCount returns |V|; node identifiers are exactly [0, NodeCount()).
	NodeCount() int

	// Nodes returns all node identifiers in ascending order.
	Nodes() []NodeID

	// Neighbors returns the neighbor list of id. The slice is read-only.
	Neighbors(id NodeID) []NodeID

	// HasEdge reports whether u and v are adjacent. Must be O(1) or O(log d).
	HasEdge(u, v NodeID) bool
}

// Labeler resolves a NodeID to a human-readable label.
type Labeler interface {
	Label(id NodeID) string
}

// compile-time checks
var (
	_ View    = (*Graph)(nil)
	_ Labeler = (*Graph)(nil)
)

// DegreeMap maps each node to its number of incident edges.
type DegreeMap map[NodeID]int

// MetricMap maps a node to a real-valued score (closeness, clustering,
// normalized values). Every call that produces one allocates it fresh.
type MetricMap map[NodeID]float64

// AsMetric converts a DegreeMap into a MetricMap so it can be normalized or ranked.
func (d DegreeMap) AsMetric() MetricMap {
	out := make(MetricMap, len(d))
	for id, deg := range d {
		out[id] = float64(deg)
	}

	return out
}

// Sum returns the total of all degrees (2·|E| for a loop-free graph).
func (d DegreeMap) Sum() int {
	total := 0
	for _, deg := range d {
		total += deg
	}

	return total
}

// Values returns the scores in ascending NodeID order.
func (m MetricMap) Values() []float64 {
	ids := m.SortedIDs()
	out := make([]float64, len(ids))
	for i, id := range ids {
		out[i] = m[id]
	}

	return out
}

// SortedIDs returns the map's keys in ascending order.
func (m MetricMap) SortedIDs() []NodeID { return sortedKeys(m) }

// SortedIDs returns the map's keys in ascending order.
func (d DegreeMap) SortedIDs() []NodeID { return sortedKeys(d) }

func sortedKeys[V any](m map[NodeID]V) []NodeID {
	ids := make([]NodeID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
