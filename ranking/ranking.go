// SPDX-License-Identifier: MIT

package ranking

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/copurchase/core"
)

// Sentinel errors for ranking and normalization.
var (
	// ErrNaNScore is returned when a score is NaN and cannot be ordered.
	ErrNaNScore = errors.New("ranking: NaN score")

	// ErrUndefinedNormalization is returned when the maximum score is ≤ 0.
	ErrUndefinedNormalization = errors.New("ranking: normalization undefined for non-positive maximum")
)

// Entry is one ranked (node, score) pair.
type Entry struct {
	Node  core.NodeID
	Score float64
}

// checkNaN reports the lowest NodeID carrying a NaN score, for a stable error.
func checkNaN(m core.MetricMap) error {
	bad := core.NodeID(-1)
	for id, s := range m {
		if math.IsNaN(s) && (bad < 0 || id < bad) {
			bad = id
		}
	}
	if bad >= 0 {
		return fmt.Errorf("%w at node %d", ErrNaNScore, bad)
	}

	return nil
}

// TopN returns the n highest scores in m. Ties are ordered by ascending
// NodeID. n ≤ 0 or an empty map yields an empty, non-nil slice.
//
// Complexity: O(V log V).
func TopN(m core.MetricMap, n int) ([]Entry, error) {
	if err := checkNaN(m); err != nil {
		return nil, fmt.Errorf("TopN: %w", err)
	}
	if n <= 0 || len(m) == 0 {
		return []Entry{}, nil
	}

	all := make([]Entry, 0, len(m))
	for id, s := range m {
		all = append(all, Entry{Node: id, Score: s})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].Node < all[j].Node
	})
	if n > len(all) {
		n = len(all)
	}
	out := make([]Entry, n)
	copy(out, all[:n])

	return out, nil
}

// TopNDegree ranks a DegreeMap the same way TopN ranks scores.
func TopNDegree(d core.DegreeMap, n int) []Entry {
	// integer degrees cannot be NaN
	out, _ := TopN(d.AsMetric(), n)

	return out
}

// Normalize returns a new map with every score divided by the maximum.
// The entry holding the maximum maps to exactly 1.0.
//
// An empty map yields an empty map. A NaN score yields ErrNaNScore; a
// maximum ≤ 0 yields ErrUndefinedNormalization.
func Normalize(m core.MetricMap) (core.MetricMap, error) {
	if len(m) == 0 {
		return core.MetricMap{}, nil
	}
	if err := checkNaN(m); err != nil {
		return nil, fmt.Errorf("Normalize: %w", err)
	}

	maxScore := math.Inf(-1)
	for _, s := range m {
		if s > maxScore {
			maxScore = s
		}
	}
	if maxScore <= 0 || math.IsInf(maxScore, 1) {
		return nil, fmt.Errorf("Normalize: max=%v: %w", maxScore, ErrUndefinedNormalization)
	}

	out := make(core.MetricMap, len(m))
	for id, s := range m {
		out[id] = s / maxScore
	}

	return out, nil
}
