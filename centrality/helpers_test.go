// SPDX-License-Identifier: MIT
// Package centrality_test contains fixtures shared by the centrality tests.

package centrality_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/copurchase/core"
	"github.com/stretchr/testify/require"
)

// Fixed seed so sampled tests are reproducible.
const testSeed = 42

// graphOf builds an undirected graph from label pairs; ids follow first appearance.
func graphOf(t testing.TB, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, _, err := g.AddEdgeByLabel(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// star builds center "C" (id 0) with leaves L1..Ln.
func star(t testing.TB, leaves int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i <= leaves; i++ {
		_, _, err := g.AddEdgeByLabel("C", fmt.Sprintf("L%d", i))
		require.NoError(t, err)
	}

	return g
}

// ladder builds a 2×n grid, a connected graph with many equal-length routes.
func ladder(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithCapacity(2 * n))
	top := func(i int) string { return fmt.Sprintf("t%d", i) }
	bot := func(i int) string { return fmt.Sprintf("b%d", i) }
	for i := 0; i < n; i++ {
		_, _, err := g.AddEdgeByLabel(top(i), bot(i))
		require.NoError(t, err)
		if i > 0 {
			_, _, err = g.AddEdgeByLabel(top(i-1), top(i))
			require.NoError(t, err)
			_, _, err = g.AddEdgeByLabel(bot(i-1), bot(i))
			require.NoError(t, err)
		}
	}

	return g
}
