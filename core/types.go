// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NodeID, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - muNode guards labels and the label index.
//   - muAdj guards neighbor lists, neighbor sets and the edge counter.
//   - Lock order when both are needed: muNode before muAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates that a node label is the empty string.
	ErrEmptyLabel = errors.New("core: node label is empty")

	// ErrNodeNotFound indicates an operation referenced a NodeID outside [0, V).
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// NodeID is a dense node identifier assigned by the Graph at insertion time.
// Identifiers start at 0 and are never reused; there is no node removal.
type NodeID int

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same nodes.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity pre-sizes the node catalog for n nodes. Values ≤ 0 are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is an undirected graph over dense NodeIDs.
//
// adjacency[v] lists v's neighbors in insertion order, one entry per
// distinct edge (a parallel edge appears twice, a self-loop once).
// neighborSet[v][u] holds the multiplicity of edge {v,u} for O(1) HasEdge.
type Graph struct {
	muNode sync.RWMutex // guards labels and index
	muAdj  sync.RWMutex // guards adjacency, neighborSet and edgeCount

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	capacity   int  // initial node capacity hint

	// Node catalog
	labels []string          // NodeID → label
	index  map[string]NodeID // label → NodeID

	// Adjacency
	adjacency   [][]NodeID
	neighborSet []map[NodeID]int
	edgeCount   int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph rejects self-loops and parallel edges.
// Complexity: O(capacity)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.labels = make([]string, 0, g.capacity)
	g.index = make(map[string]NodeID, g.capacity)
	g.adjacency = make([][]NodeID, 0, g.capacity)
	g.neighborSet = make([]map[NodeID]int, 0, g.capacity)

	return g
}

// GraphStats is a read-only snapshot of configuration flags and sizes.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	LoopCount     int
	IsolatedCount int
	MaxDegree     int
	AllowsMulti   bool
	AllowsLoops   bool
}
