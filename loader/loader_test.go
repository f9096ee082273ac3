// SPDX-License-Identifier: MIT

package loader_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/copurchase/builder"
	"github.com/katalvlaran/copurchase/core"
	"github.com/katalvlaran/copurchase/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const sample = `# Directed graph (each unordered pair of nodes is saved once)
# FromNodeId	ToNodeId
0	1
0	2
1	0
2	3   

3
4 5 6
3	3
7	8
`

func TestLoad_Basic(t *testing.T) {
	g, st, err := loader.Load(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, loader.Stats{
		Lines:      11,
		Comments:   3,
		Edges:      4,
		Skipped:    2,
		Duplicates: 1,
		SelfLoops:  1,
	}, st)
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())

	// first-seen interning: "0"→0, "1"→1, "2"→2, "3"→3, "7"→4, "8"→5
	for i, label := range []string{"0", "1", "2", "3", "7", "8"} {
		assert.Equal(t, label, g.Label(core.NodeID(i)))
	}
	_, ok := g.NodeByLabel("4")
	assert.False(t, ok, "tokens from skipped lines must not become nodes")
}

func TestLoad_ArbitraryTokens(t *testing.T) {
	g, _, err := loader.Load(strings.NewReader("B000123 B000456\nB000456 ASIN-9\n"))
	require.NoError(t, err)
	a, _ := g.NodeByLabel("B000123")
	b, _ := g.NodeByLabel("ASIN-9")
	mid, _ := g.NodeByLabel("B000456")
	assert.True(t, g.HasEdge(a, mid))
	assert.True(t, g.HasEdge(mid, b))
	assert.False(t, g.HasEdge(a, b))
}

func TestLoad_MultiEdgesAndLoops(t *testing.T) {
	g, st, err := loader.Load(strings.NewReader(sample),
		loader.WithGraphOptions(core.WithMultiEdges(), core.WithLoops()))
	require.NoError(t, err)
	assert.Equal(t, 6, st.Edges)
	assert.Zero(t, st.Duplicates)
	assert.Zero(t, st.SelfLoops)
	assert.Equal(t, 6, g.EdgeCount())
}

func TestLoad_Strict(t *testing.T) {
	_, _, err := loader.Load(strings.NewReader(sample), loader.WithStrict())
	require.ErrorIs(t, err, loader.ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 8")
}

func TestLoad_Empty(t *testing.T) {
	g, st, err := loader.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, st.Lines)

	_, _, err = loader.Load(nil)
	assert.ErrorIs(t, err, loader.ErrNilReader)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestLoad_ReadError(t *testing.T) {
	_, _, err := loader.Load(io.MultiReader(strings.NewReader("a b\n"), failingReader{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestLoad_LogsSummary(t *testing.T) {
	obsCore, logs := observer.New(zap.DebugLevel)
	_, _, err := loader.Load(strings.NewReader(sample), loader.WithLogger(zap.New(obsCore)))
	require.NoError(t, err)
	assert.Equal(t, 2, logs.FilterMessage("skipping malformed line").Len())
	summary := logs.FilterMessage("edge list loaded").All()
	require.Len(t, summary, 1)
	assert.EqualValues(t, 4, summary[0].ContextMap()["edges"])
}

func TestWriteEdgeList_RoundTrip(t *testing.T) {
	src, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(4), builder.WithSymbNumb("p")},
		builder.PreferentialAttachment(120, 2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.WriteEdgeList(&buf, src, "synthetic\nseed=4"))
	assert.True(t, strings.HasPrefix(buf.String(), "# synthetic\n# seed=4\n"))

	dst, st, err := loader.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Comments)
	assertSameGraph(t, src, dst)
}

func TestFile_RoundTripCompressed(t *testing.T) {
	src, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbNumb("v")}, builder.Grid(6, 7))
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"edges.txt", "edges.txt.gz", "edges.txt.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, loader.WriteFile(path, src, ""))
			dst, st, err := loader.LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, src.EdgeCount(), st.Edges)
			assertSameGraph(t, src, dst)
		})
	}

	raw, err := os.ReadFile(filepath.Join(dir, "edges.txt.gz"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2], "gzip magic")
}

func TestLoadFile_Errors(t *testing.T) {
	_, _, err := loader.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.gz")
	require.NoError(t, os.WriteFile(bad, []byte("not gzip at all"), 0o600))
	_, _, err = loader.LoadFile(bad)
	assert.Error(t, err)
}

// assertSameGraph compares two graphs by label-level edge sets.
func assertSameGraph(t *testing.T, want, got *core.Graph) {
	t.Helper()
	require.Equal(t, want.EdgeCount(), got.EdgeCount())
	want.EachEdge(func(u, v core.NodeID) {
		a, ok := got.NodeByLabel(want.Label(u))
		if !assert.True(t, ok) {
			return
		}
		b, ok := got.NodeByLabel(want.Label(v))
		if !assert.True(t, ok) {
			return
		}
		assert.True(t, got.HasEdge(a, b), "%s–%s", want.Label(u), want.Label(v))
	})
}
