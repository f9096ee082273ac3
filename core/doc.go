// Package core provides the in-memory undirected Graph consumed by the
// analytics packages, together with the shared result types they produce.
//
// The Graph G = (V,E) is tuned for read-heavy traversal over large
// co-purchase networks:
//
//   - Dense node identifiers: every node gets a NodeID in [0, V) at insertion
//     time, so per-node state can live in plain slices instead of maps.
//   - Optional string labels: the token an edge list used for a node is kept
//     for reporting and looked up in O(1) via NodeByLabel.
//   - Neighbor lists in insertion order plus a per-node neighbor set, giving
//     O(d) iteration and O(1) HasEdge.
//   - Separate sync.RWMutex for node catalog (muNode) and adjacency (muAdj),
//     so a loader can keep writing while readers query.
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()   keep parallel edges; otherwise AddEdge returns ErrMultiEdgeNotAllowed.
//	– WithLoops()        allow self-loops; otherwise AddEdge(v,v) returns ErrLoopNotAllowed.
//	– WithCapacity(n)    pre-size internal slices for n nodes.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(label string) (NodeID, error)       // O(1), idempotent per label
//	NodeByLabel(label string) (NodeID, bool)     // O(1)
//	Label(id NodeID) string                      // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v NodeID) error                   // O(1) amortized
//	AddEdgeByLabel(a, b string) (u, v NodeID, err error)
//	HasEdge(u, v NodeID) bool                    // O(1)
//
//	// Query (View)
//	Nodes() []NodeID                             // O(V), ascending
//	Neighbors(id NodeID) []NodeID                // O(1), shared read-only slice
//	NodeCount() int, EdgeCount() int             // O(1)
//	Degree(id NodeID) (int, error)               // O(1)
//
// The analytics packages never depend on *Graph directly: they accept the
// View interface, which any read-only adjacency structure can satisfy.
// FromGonum converts a gonum undirected graph into a *Graph.
//
// Errors:
//
//	ErrEmptyLabel          – zero-length node label
//	ErrNodeNotFound        – NodeID outside [0, V)
//	ErrLoopNotAllowed      – self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges are disabled
package core
