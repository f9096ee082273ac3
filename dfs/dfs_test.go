package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/copurchase/core"
	"github.com/katalvlaran/copurchase/dfs"
)

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

// square is A–B, A–C, B–D, C–D with ids A=0 B=1 C=2 D=3.
func square(t testing.TB) *core.Graph {
	return graphOf(t, [2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"}, [2]string{"C", "D"})
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(core.NewGraph(), 0)
	assert.ErrorIs(t, err, dfs.ErrStartNodeNotFound)

	_, err = dfs.DFS(square(t), 4)
	assert.ErrorIs(t, err, dfs.ErrStartNodeNotFound)
}

func TestDFS_OrderDepthParent(t *testing.T) {
	res, err := dfs.DFS(square(t), 0)
	require.NoError(t, err)

	// A → B → D → C, then unwind
	assert.Equal(t, []core.NodeID{2, 3, 1, 0}, res.Order)
	assert.Equal(t, map[core.NodeID]int{0: 0, 1: 1, 3: 2, 2: 3}, res.Depth)
	assert.Equal(t, map[core.NodeID]core.NodeID{1: 0, 3: 1, 2: 3}, res.Parent)
	assert.Equal(t, []core.NodeID{0}, res.Roots)
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(square(t), 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 0}, res.Order)

	res, err = dfs.DFS(square(t), 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	res, err := dfs.DFS(square(t), 0, dfs.WithFilterNeighbor(func(_, nbr core.NodeID) bool {
		return nbr != 1
	}))
	require.NoError(t, err)
	assert.NotContains(t, res.Depth, core.NodeID(1))
	assert.Equal(t, 2, res.SkippedNeighbors) // A→B and D→B
	assert.Equal(t, []core.NodeID{3, 2, 0}, res.Order)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := graphOf(t, [2]string{"X", "Y"}, [2]string{"P", "Q"})
	_, err := g.AddNode("lonely")
	require.NoError(t, err)

	res, err := dfs.DFS(g, -1, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 2, 4}, res.Roots)
	assert.Len(t, res.Order, 5)
}

func TestDFS_Hooks(t *testing.T) {
	var pre, post []core.NodeID
	_, err := dfs.DFS(square(t), 0,
		dfs.WithOnVisit(func(id core.NodeID, _ int) error { pre = append(pre, id); return nil }),
		dfs.WithOnExit(func(id core.NodeID) error { post = append(post, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 3, 2}, pre)
	assert.Equal(t, []core.NodeID{2, 3, 1, 0}, post)

	stop := errors.New("stop")
	_, err = dfs.DFS(square(t), 0, dfs.WithOnVisit(func(id core.NodeID, depth int) error {
		if depth == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	_, err = dfs.DFS(square(t), 0, dfs.WithOnExit(func(core.NodeID) error { return stop }))
	assert.ErrorIs(t, err, stop)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(square(t), 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
