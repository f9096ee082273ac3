package centrality

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/copurchase/bfs"
	"github.com/katalvlaran/copurchase/core"
	"github.com/katalvlaran/copurchase/internal/workpool"
)

// sourceScore is one worker-local closeness result.
type sourceScore struct {
	id    core.NodeID
	score float64
}

// Closeness approximates closeness centrality for a uniform random sample
// of min(k, |V|) distinct nodes. Each sampled source s gets R/D from its
// own BFS (see ClosenessScore); nodes that were not sampled are absent
// from the result.
//
// k == 0 or an empty graph yields an empty map; k < 0 is ErrInvalidSampleSize.
func Closeness(g core.View, k int, opts ...Option) (core.MetricMap, error) {
	o := resolve(opts)
	if o.err != nil {
		return nil, o.err
	}
	if k < 0 {
		return nil, fmt.Errorf("Closeness: k=%d: %w", k, ErrInvalidSampleSize)
	}
	if g == nil || k == 0 {
		return core.MetricMap{}, nil
	}
	start := time.Now()

	sources := Sample(g.Nodes(), k, o.rng())
	parts, err := workpool.Map(len(sources), o.Workers, func(r workpool.Range) ([]sourceScore, error) {
		// one walker per worker: buffers are reused across its sources
		w := bfs.NewWalker(g)
		out := make([]sourceScore, 0, r.Len())
		for _, s := range sources[r.Lo:r.Hi] {
			reached, sum, err := w.Reach(s)
			if err != nil {
				return nil, fmt.Errorf("source %d: %w", s, err)
			}
			out = append(out, sourceScore{id: s, score: ClosenessScore(reached, sum)})
		}
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("Closeness: %w", err)
	}

	result := make(core.MetricMap, len(sources))
	for _, part := range parts {
		for _, sc := range part {
			result[sc.id] = sc.score
		}
	}

	o.Logger.Debug("closeness centrality computed",
		zap.Int("requested", k),
		zap.Int("sampled", len(sources)),
		zap.Int("ranges", len(parts)),
		zap.Duration("elapsed", time.Since(start)))

	return result, nil
}

// ClosenessScore is R/D for reached nodes R and distance sum D, or 0 when
// D is 0 (a source that reaches nobody else).
func ClosenessScore(reached int, distanceSum int64) float64 {
	if distanceSum <= 0 {
		return 0
	}

	return float64(reached) / float64(distanceSum)
}
