// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for copurchase/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep assertions on *testing.T out of goroutines.

package core_test

import (
	"testing"

	"github.com/katalvlaran/copurchase/core"
	"github.com/stretchr/testify/require"
)

// Common node labels used across core tests.
const (
	LabelA = "A"
	LabelB = "B"
	LabelC = "C"
	LabelX = "X"
	LabelY = "Y"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// mustNode adds label to g and fails the test on error.
func mustNode(t *testing.T, g *core.Graph, label string) core.NodeID {
	t.Helper()
	id, err := g.AddNode(label)
	require.NoError(t, err)

	return id
}

// buildTriangle returns A–B, A–C, B–C with ids 0,1,2.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{LabelA, LabelB}, {LabelA, LabelC}, {LabelB, LabelC}} {
		_, _, err := g.AddEdgeByLabel(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// countOf counts occurrences of id in ids.
func countOf(ids []core.NodeID, id core.NodeID) int {
	n := 0
	for _, x := range ids {
		if x == id {
			n++
		}
	}

	return n
}
