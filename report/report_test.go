// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/copurchase/centrality"
	"github.com/katalvlaran/copurchase/clustering"
	"github.com/katalvlaran/copurchase/core"
	"github.com/katalvlaran/copurchase/ranking"
	"github.com/katalvlaran/copurchase/report"
)

var fixedTime = time.Date(2024, 3, 2, 10, 30, 0, 0, time.UTC)

// fixture is a triangle A–B–C with a pendant D on C.
func fixture(t *testing.T) (*core.Graph, report.Input) {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"C", "D"}} {
		_, _, err := g.AddEdgeByLabel(e[0], e[1])
		require.NoError(t, err)
	}
	closeness := core.MetricMap{0: 0.75, 1: 0.75, 2: 1, 3: 0.5}
	top, err := ranking.TopN(closeness, 3)
	require.NoError(t, err)

	return g, report.Input{
		Labels:     g,
		Degree:     centrality.Degree(g),
		Closeness:  closeness,
		Clustering: clustering.Coefficients(g),
		Top:        top,
	}
}

func TestWriteText_Golden(t *testing.T) {
	g, in := fixture(t)
	r := report.New(in, report.Meta{RunID: "fixed", GeneratedAt: fixedTime, Nodes: g.NodeCount(), Edges: g.EdgeCount()})

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, r))

	gold := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
	gold.Assert(t, "report_text", buf.Bytes())
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	g, in := fixture(t)
	r := report.New(in, report.Meta{
		RunID: "run-1", GeneratedAt: fixedTime, Source: "amazon0302.txt",
		Nodes: g.NodeCount(), Edges: g.EdgeCount(), SampleSize: 150, Elapsed: 1500 * time.Millisecond,
	})

	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, r))
	assert.Contains(t, buf.String(), "run_id: run-1")
	assert.Contains(t, buf.String(), "elapsed: 1.5s")

	var back report.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.True(t, fixedTime.Equal(back.GeneratedAt))
	assert.Equal(t, r.Top, back.Top)
	assert.Equal(t, r.Degree, back.Degree)
	assert.Equal(t, r.Summaries, back.Summaries)
	assert.Equal(t, 1500*time.Millisecond, back.Elapsed)
}

func TestNew_DefaultsRunIDAndTime(t *testing.T) {
	_, in := fixture(t)
	r := report.New(in, report.Meta{})
	_, err := uuid.Parse(r.RunID)
	assert.NoError(t, err)
	assert.False(t, r.GeneratedAt.IsZero())
}

func TestNew_NilLabelerUsesIDs(t *testing.T) {
	r := report.New(report.Input{Degree: core.DegreeMap{3: 1, 1: 2}}, report.Meta{RunID: "x"})
	assert.Equal(t, []report.NodeScore{{Node: "1", Score: 2}, {Node: "3", Score: 1}}, r.Degree)
	assert.Empty(t, r.Closeness)
}

func TestSummarize(t *testing.T) {
	s := report.Summarize("degree", []float64{3, 1, 2, 2})
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 2.0, s.Mean)
	assert.InDelta(t, 0.8165, s.StdDev, 1e-4)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 2.0, s.Median)
	assert.Equal(t, 3.0, s.P90)
	assert.Equal(t, 3.0, s.Max)

	assert.Equal(t, report.Summary{Metric: "empty"}, report.Summarize("empty", nil))
	one := report.Summarize("one", []float64{4})
	assert.Zero(t, one.StdDev)
	assert.Equal(t, 4.0, one.Median)
}

func TestSummarize_DoesNotSortInput(t *testing.T) {
	in := []float64{3, 1, 2}
	_ = report.Summarize("x", in)
	assert.Equal(t, []float64{3, 1, 2}, in)
}

func TestWriteFile(t *testing.T) {
	_, in := fixture(t)
	r := report.New(in, report.Meta{RunID: "f", GeneratedAt: fixedTime})
	dir := t.TempDir()

	txt := filepath.Join(dir, "report.txt")
	require.NoError(t, report.WriteFile(txt, report.FormatText, r))
	raw, err := os.ReadFile(txt)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "Degree Centrality:\n"))

	yml := filepath.Join(dir, "report.yaml")
	require.NoError(t, report.WriteFile(yml, report.FormatYAML, r))

	err = report.WriteFile(filepath.Join(dir, "r.csv"), "csv", r)
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}
