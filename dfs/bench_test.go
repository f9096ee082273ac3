package dfs_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/copurchase/core"
	"github.com/katalvlaran/copurchase/dfs"
)

// BenchmarkConnectedComponents_Chain labels a 10,000-node chain.
func BenchmarkConnectedComponents_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph(core.WithCapacity(N + 1))
	for i := 0; i < N; i++ {
		_, _, _ = g.AddEdgeByLabel("v"+strconv.Itoa(i), "v"+strconv.Itoa(i+1))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.ConnectedComponents(g)
	}
}

// BenchmarkDFS_Chain measures a full walk down the same chain.
func BenchmarkDFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph(core.WithCapacity(N + 1))
	for i := 0; i < N; i++ {
		_, _, _ = g.AddEdgeByLabel("v"+strconv.Itoa(i), "v"+strconv.Itoa(i+1))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}
