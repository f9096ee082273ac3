// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: import graphs built with gonum.org/v1/gonum/graph into a core.Graph.
// Determinism:
//   - gonum iterates nodes in map order; we sort by gonum ID first so the
//     resulting NodeIDs are stable for a given source graph.

package core

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
)

// FromGonum copies an undirected gonum graph into a new *Graph.
// Node labels are the decimal gonum node IDs; NodeIDs are assigned in
// ascending gonum ID order. Each gonum edge becomes one core edge.
//
// Complexity: O(V log V + E log d).
func FromGonum(src graph.Undirected, opts ...GraphOption) (*Graph, error) {
	nodes := graph.NodesOf(src.Nodes())
	sortByID(nodes)

	g := NewGraph(append([]GraphOption{WithCapacity(len(nodes))}, opts...)...)
	ids := make(map[int64]NodeID, len(nodes))
	for _, n := range nodes {
		id, err := g.AddNode(strconv.FormatInt(n.ID(), 10))
		if err != nil {
			return nil, fmt.Errorf("FromGonum: AddNode(%d): %w", n.ID(), err)
		}
		ids[n.ID()] = id
	}

	for _, n := range nodes {
		nbrs := graph.NodesOf(src.From(n.ID()))
		sortByID(nbrs)
		for _, m := range nbrs {
			// every undirected edge is seen from both ends; keep the u ≤ v copy
			if m.ID() < n.ID() {
				continue
			}
			if err := g.AddEdge(ids[n.ID()], ids[m.ID()]); err != nil {
				return nil, fmt.Errorf("FromGonum: AddEdge(%d,%d): %w", n.ID(), m.ID(), err)
			}
		}
	}

	return g, nil
}

func sortByID(nodes []graph.Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
}
