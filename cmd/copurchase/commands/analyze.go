// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/copurchase/core"
	"github.com/katalvlaran/copurchase/dfs"
	"github.com/katalvlaran/copurchase/internal/config"
	"github.com/katalvlaran/copurchase/loader"
	"github.com/katalvlaran/copurchase/pipeline"
	"github.com/katalvlaran/copurchase/ranking"
	"github.com/katalvlaran/copurchase/report"
	"github.com/katalvlaran/copurchase/visualize"
)

func newAnalyzeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [edge-list]",
		Short: "Compute centrality and clustering metrics for an edge list",
		Long: `Loads an undirected edge list (plain, .gz or .zst), computes degree
centrality, closeness centrality over a random sample of source nodes and
local clustering coefficients, then writes the report and bar charts.

Example:
  copurchase analyze amazon0302.txt.gz --sample-size 150 --top 10
  copurchase analyze edges.txt --seed 42 --format yaml --report report.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set(config.KeyInput, args[0])
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runAnalyze(cmd, cfg, logger)
		},
	}

	f := cmd.Flags()
	f.Int("sample-size", 150, "Closeness source sample size")
	f.Int("top", 10, "Number of top closeness nodes to list")
	f.Int("workers", 0, "Workers per metric (0 = GOMAXPROCS)")
	f.Int64("seed", 0, "Seed for closeness sampling (default: time-seeded)")
	f.Bool("strict", false, "Fail on malformed lines instead of skipping them")
	f.String("report", "report.txt", "Report path (empty disables)")
	f.String("format", "text", "Report format: text or yaml")
	f.String("closeness-chart", "closeness_centrality.png", "Closeness chart path (empty disables)")
	f.String("clustering-chart", "clustering_coefficient.png", "Clustering chart path (empty disables)")
	f.String("metrics-out", "", "Write Prometheus metrics in text format to this path")

	for key, name := range map[string]string{
		config.KeySampleSize:      "sample-size",
		config.KeyTopN:            "top",
		config.KeyWorkers:         "workers",
		config.KeySeed:            "seed",
		config.KeyStrict:          "strict",
		config.KeyReportPath:      "report",
		config.KeyReportFormat:    "format",
		config.KeyClosenessChart:  "closeness-chart",
		config.KeyClusteringChart: "clustering-chart",
		config.KeyMetricsOut:      "metrics-out",
	} {
		mustBind(v, key, f.Lookup(name))
	}

	return cmd
}

func runAnalyze(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger) error {
	lopts := []loader.Option{loader.WithLogger(logger)}
	if cfg.Strict {
		lopts = append(lopts, loader.WithStrict())
	}
	g, stats, err := loader.LoadFile(cfg.Input, lopts...)
	if err != nil {
		return err
	}
	if stats.Skipped > 0 {
		logger.Warn("malformed lines skipped", zap.Int("skipped", stats.Skipped))
	}
	comps := dfs.ConnectedComponents(g)
	_, largest := comps.Largest()
	logger.Info("graph structure",
		zap.Int("components", comps.Count()),
		zap.Int("largest_component", largest),
		zap.Int("isolated", comps.Singletons()))

	reg := prometheus.NewRegistry()
	metrics, err := pipeline.NewMetrics(reg)
	if err != nil {
		return err
	}
	res, err := pipeline.Run(cmd.Context(), g, pipeline.Config{
		SampleSize: cfg.SampleSize,
		TopN:       cfg.TopN,
		Workers:    cfg.Workers,
		Seed:       cfg.Seed,
		Logger:     logger,
		Metrics:    metrics,
	})
	if err != nil {
		return err
	}

	if cfg.Report.Path != "" {
		rep := report.New(report.Input{
			Labels:     g,
			Degree:     res.Degree,
			Closeness:  res.NormalizedCloseness,
			Clustering: res.Clustering,
			Top:        res.Top,
		}, report.Meta{
			Source:     cfg.Input,
			Nodes:      g.NodeCount(),
			Edges:      g.EdgeCount(),
			SampleSize: len(res.Closeness),
			Elapsed:    res.Elapsed,
		})
		if err := report.WriteFile(cfg.Report.Path, cfg.Report.Format, rep); err != nil {
			return err
		}
		logger.Info("report written", zap.String("path", cfg.Report.Path), zap.String("format", cfg.Report.Format))
	}

	charts := []struct {
		path, title string
		data        core.MetricMap
		opts        []visualize.Option
	}{
		{cfg.Charts.Closeness, "Closeness Centrality", res.NormalizedCloseness, []visualize.Option{visualize.PositiveOnly()}},
		{cfg.Charts.Clustering, "Clustering Coefficient", res.Clustering, nil},
	}
	for _, c := range charts {
		if c.path == "" {
			continue
		}
		err := visualize.BarChart(c.data, c.title, c.path, c.opts...)
		switch {
		case errors.Is(err, visualize.ErrNoData):
			logger.Warn("chart skipped, no data", zap.String("chart", c.title))
		case err != nil:
			return err
		default:
			logger.Info("chart written", zap.String("path", c.path))
		}
	}

	if cfg.MetricsOut != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsOut, reg); err != nil {
			return fmt.Errorf("metrics-out: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Top %d nodes by closeness centrality:\n", len(res.Top))
	fmt.Fprintln(out, topTable(res.Top, g))
	fmt.Fprintf(out, "Elapsed time: %v\n", res.Elapsed)

	return nil
}

// topTable renders the ranking as a bordered table.
func topTable(top []ranking.Entry, labels core.Labeler) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99")).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("RANK", "NODE", "SCORE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for i, e := range top {
		t.Row(strconv.Itoa(i+1), labels.Label(e.Node), strconv.FormatFloat(e.Score, 'f', 4, 64))
	}

	return t.Render()
}
