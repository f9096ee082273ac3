// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/copurchase/centrality"
	"github.com/katalvlaran/copurchase/clustering"
	"github.com/katalvlaran/copurchase/core"
	"github.com/katalvlaran/copurchase/ranking"
)

// Defaults taken by Run when the corresponding Config field is zero.
const (
	DefaultSampleSize = 150
	DefaultTopN       = 10
)

// ErrNilGraph is returned when Run receives a nil graph.
var ErrNilGraph = errors.New("pipeline: graph is nil")

// Config tunes one Run.
type Config struct {
	SampleSize int    // closeness sources; 0 means DefaultSampleSize
	TopN       int    // ranking length; 0 means DefaultTopN
	Workers    int    // per-metric workers; ≤ 0 means GOMAXPROCS
	Seed       *int64 // pins closeness sampling when non-nil

	Logger  *zap.Logger // nil means no-op
	Metrics *Metrics    // nil means uninstrumented
}

// Result holds every map the run produced. All maps are owned by the caller.
type Result struct {
	Degree              core.DegreeMap
	Closeness           core.MetricMap // raw R/D scores of sampled sources
	NormalizedCloseness core.MetricMap // Closeness / max(Closeness)
	Clustering          core.MetricMap
	Top                 []ranking.Entry // top-N of NormalizedCloseness

	Timings map[string]time.Duration
	Elapsed time.Duration
}

// edgeCounter is implemented by *core.Graph.
type edgeCounter interface{ EdgeCount() int }

// Run computes all metrics for g.
func Run(ctx context.Context, g core.View, cfg Config) (res *Result, err error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	k := cfg.SampleSize
	if k == 0 {
		k = DefaultSampleSize
	}
	topN := cfg.TopN
	if topN == 0 {
		topN = DefaultTopN
	}
	defer func() { cfg.Metrics.finish(err) }()

	start := time.Now()
	res = &Result{Timings: make(map[string]time.Duration, 4)}
	var mu sync.Mutex
	timed := func(ctx context.Context, name string, fn func() error) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		logger.Info("metric started", zap.String("metric", name))
		t0 := time.Now()
		if err := fn(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		d := time.Since(t0)
		cfg.Metrics.observe(name, d)
		mu.Lock()
		res.Timings[name] = d
		mu.Unlock()
		logger.Info("metric finished", zap.String("metric", name), zap.Duration("elapsed", d))
		return nil
	}

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return timed(gctx, MetricDegree, func() error {
			res.Degree = centrality.Degree(g,
				centrality.WithWorkers(cfg.Workers), centrality.WithLogger(logger))
			return nil
		})
	})
	grp.Go(func() error {
		return timed(gctx, MetricCloseness, func() error {
			opts := []centrality.Option{centrality.WithWorkers(cfg.Workers), centrality.WithLogger(logger)}
			if cfg.Seed != nil {
				opts = append(opts, centrality.WithSeed(*cfg.Seed))
			}
			m, err := centrality.Closeness(g, k, opts...)
			res.Closeness = m
			return err
		})
	})
	grp.Go(func() error {
		return timed(gctx, MetricClustering, func() error {
			res.Clustering = clustering.Coefficients(g,
				clustering.WithWorkers(cfg.Workers), clustering.WithLogger(logger))
			return nil
		})
	})
	if err = grp.Wait(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	edges := res.Degree.Sum() / 2
	if ec, ok := g.(edgeCounter); ok {
		edges = ec.EdgeCount()
	}
	cfg.Metrics.setGraph(g.NodeCount(), edges)
	cfg.Metrics.setSampled(len(res.Closeness))

	if err = timed(ctx, MetricRanking, func() error {
		norm, err := ranking.Normalize(res.Closeness)
		if err != nil {
			return err
		}
		res.NormalizedCloseness = norm
		res.Top, err = ranking.TopN(norm, topN)
		return err
	}); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	res.Elapsed = time.Since(start)
	logger.Info("analysis complete",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", edges),
		zap.Int("sampled", len(res.Closeness)),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}
