package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/copurchase/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddNode_Idempotent verifies that a label maps to one NodeID forever.
func TestAddNode_Idempotent(t *testing.T) {
	g := core.NewGraph()
	a, err := g.AddNode(LabelA)
	require.NoError(t, err)
	b, err := g.AddNode(LabelB)
	require.NoError(t, err)
	again, err := g.AddNode(LabelA)
	require.NoError(t, err)

	assert.Equal(t, core.NodeID(0), a)
	assert.Equal(t, core.NodeID(1), b)
	assert.Equal(t, a, again, "re-adding a label must return the same id")
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, LabelB, g.Label(b))

	id, ok := g.NodeByLabel(LabelB)
	require.True(t, ok)
	assert.Equal(t, b, id)
	_, ok = g.NodeByLabel("missing")
	assert.False(t, ok)
}

// TestAddNode_EmptyLabel checks the empty label sentinel.
func TestAddNode_EmptyLabel(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode("")
	require.ErrorIs(t, err, core.ErrEmptyLabel)
}

// TestAddEdge_Errors covers every rejection path of AddEdge.
func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()
	a := mustNode(t, g, LabelA)
	b := mustNode(t, g, LabelB)

	cases := []struct {
		name string
		u, v core.NodeID
		want error
	}{
		{"unknown u", core.NodeID(7), b, core.ErrNodeNotFound},
		{"unknown v", a, core.NodeID(-1), core.ErrNodeNotFound},
		{"self loop", a, a, core.ErrLoopNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.AddEdge(tc.u, tc.v)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	require.NoError(t, g.AddEdge(a, b))
	require.ErrorIs(t, g.AddEdge(b, a), core.ErrMultiEdgeNotAllowed, "reverse copy is a parallel edge")
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_Symmetric checks the undirected invariant: each endpoint sees
// the other exactly once per distinct edge.
func TestAddEdge_Symmetric(t *testing.T) {
	g := buildTriangle(t)
	for _, id := range g.Nodes() {
		nbrs := g.Neighbors(id)
		assert.Len(t, nbrs, 2)
		for _, n := range nbrs {
			assert.True(t, g.HasEdge(id, n))
			assert.True(t, g.HasEdge(n, id))
			assert.Equal(t, 1, countOf(g.Neighbors(n), id))
		}
	}
	assert.Equal(t, 3, g.EdgeCount())
}

// TestMultiEdgesAndLoops verifies how parallel edges and loops are stored.
func TestMultiEdgesAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	x := mustNode(t, g, LabelX)
	y := mustNode(t, g, LabelY)

	require.NoError(t, g.AddEdge(x, y))
	require.NoError(t, g.AddEdge(x, y))
	require.NoError(t, g.AddEdge(x, x))

	deg, err := g.Degree(x)
	require.NoError(t, err)
	assert.Equal(t, 3, deg, "two parallel edges plus one loop entry")
	assert.Equal(t, 2, countOf(g.Neighbors(y), x))
	assert.Equal(t, 3, g.EdgeCount())

	stats := g.Stats()
	assert.Equal(t, 1, stats.LoopCount)
	assert.Equal(t, 3, stats.MaxDegree)
	assert.True(t, stats.AllowsMulti)
	assert.True(t, stats.AllowsLoops)
}

// TestNeighbors_ReadOnlyAlias ensures appending to a returned neighbor list
// never changes the graph.
func TestNeighbors_ReadOnlyAlias(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(8))
	a := mustNode(t, g, LabelA)
	b := mustNode(t, g, LabelB)
	c := mustNode(t, g, LabelC)
	require.NoError(t, g.AddEdge(a, b))

	nbrs := g.Neighbors(a)
	_ = append(nbrs, c)
	require.NoError(t, g.AddEdge(a, c))

	assert.Equal(t, []core.NodeID{b, c}, g.Neighbors(a))
	assert.Nil(t, g.Neighbors(core.NodeID(99)))
}

// TestEachEdge reports each edge once with u ≤ v.
func TestEachEdge(t *testing.T) {
	g := buildTriangle(t)
	var got [][2]core.NodeID
	g.EachEdge(func(u, v core.NodeID) {
		got = append(got, [2]core.NodeID{u, v})
	})
	assert.Equal(t, [][2]core.NodeID{{0, 1}, {0, 2}, {1, 2}}, got)
}

// TestStats_Isolated counts isolated nodes.
func TestStats_Isolated(t *testing.T) {
	g := core.NewGraph()
	mustNode(t, g, LabelA)
	_, _, err := g.AddEdgeByLabel(LabelB, LabelC)
	require.NoError(t, err)

	stats := g.Stats()
	assert.Equal(t, 3, stats.NodeCount)
	assert.Equal(t, 1, stats.EdgeCount)
	assert.Equal(t, 1, stats.IsolatedCount)
}

// TestDegreeMapHelpers covers the small conversions on the result types.
func TestDegreeMapHelpers(t *testing.T) {
	d := core.DegreeMap{2: 1, 0: 3, 1: 2}
	assert.Equal(t, 6, d.Sum())
	assert.Equal(t, []core.NodeID{0, 1, 2}, d.SortedIDs())
	assert.Equal(t, []float64{3, 2, 1}, d.AsMetric().Values())
}
