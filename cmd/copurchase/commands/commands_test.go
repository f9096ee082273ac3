// SPDX-License-Identifier: MIT

package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/copurchase/builder"
	"github.com/katalvlaran/copurchase/cmd/copurchase/commands"
	"github.com/katalvlaran/copurchase/internal/config"
)

// run executes one CLI invocation on a fresh command tree.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := commands.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestGenerateThenAnalyze(t *testing.T) {
	dir := t.TempDir()
	edges := filepath.Join(dir, "star.txt.gz")

	out, err := run(t, "generate", "star", "--n", "6", "--prefix", "L", "--out", edges, "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 6 nodes, 5 edges")

	reportPath := filepath.Join(dir, "report.yaml")
	closenessPNG := filepath.Join(dir, "closeness.png")
	clusteringPNG := filepath.Join(dir, "clustering.png")
	metricsPath := filepath.Join(dir, "metrics.prom")
	out, err = run(t, "analyze", edges,
		"--seed", "1",
		"--top", "3",
		"--format", "yaml",
		"--report", reportPath,
		"--closeness-chart", closenessPNG,
		"--clustering-chart", clusteringPNG,
		"--metrics-out", metricsPath,
		"--log-format", "json",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Top 3 nodes by closeness centrality")
	assert.Contains(t, out, "Center")
	assert.Contains(t, out, "1.0000")
	assert.Contains(t, out, "L1")
	assert.Contains(t, out, "0.5556")
	assert.Contains(t, out, "Elapsed time:")

	rep, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(rep), "nodes: 6")
	assert.Contains(t, string(rep), "sample_size: 6")

	metrics, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "copurchase_graph_nodes 6")
	assert.Contains(t, string(metrics), `copurchase_runs_total{status="ok"} 1`)

	for _, png := range []string{closenessPNG, clusteringPNG} {
		_, err = os.Stat(png)
		assert.NoError(t, err, png)
	}
}

func TestAnalyze_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	edges := filepath.Join(dir, "edges.txt")
	require.NoError(t, os.WriteFile(edges, []byte("a b\nb c\nc a\nc d\n"), 0o644))

	cfgPath := filepath.Join(dir, "copurchase.yaml")
	body := "input: " + edges + "\ntop_n: 2\nseed: 3\nreport:\n  path: " +
		filepath.Join(dir, "report.txt") + "\ncharts:\n  closeness: \"\"\n  clustering: \"\"\nlog:\n  format: json\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	out, err := run(t, "analyze", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Top 2 nodes")

	rep, err := os.ReadFile(filepath.Join(dir, "report.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(rep), "Degree Centrality:")
	assert.Contains(t, string(rep), "Clustering Coefficient:")
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := run(t, "analyze", "--log-format", "json")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "analyze", filepath.Join(t.TempDir(), "missing.txt"), "--log-format", "json")
	assert.Error(t, err)

	_, err = run(t, "analyze", "x.txt", "--format", "xml")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestGenerate_UnknownTopology(t *testing.T) {
	_, err := run(t, "generate", "lattice", "--out", filepath.Join(t.TempDir(), "x.txt"))
	assert.ErrorIs(t, err, builder.ErrUnknownTopology)
}

func TestInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte("# header\na b\nb a\nc c\nbroken\nb c\n"), 0o644))

	out, err := run(t, "inspect", path, "--log-format", "json")
	require.NoError(t, err)
	assert.Regexp(t, `nodes\s+3`, out)
	assert.Regexp(t, `edges\s+2`, out)
	assert.Regexp(t, `duplicates\s+1`, out)
	assert.Regexp(t, `skipped\s+1`, out)
	assert.Regexp(t, `components\s+1`, out)
	assert.Regexp(t, `largest component\s+3`, out)
}
