package bench

import (
	"context"
	"fmt"
	"sort"

	mireval "github.com/hendriks73/mir-eval"
)

// SweepResult holds pooled detection metrics for one window size.
type SweepResult struct {
	Window  float64
	Metrics Metrics
}

// SweepWindows generates window sizes from min (inclusive) to max
// (exclusive) with the given step.
func SweepWindows(min, max, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	var windows []float64
	for i := 0; ; i++ {
		w := min + float64(i)*step
		if w >= max {
			break
		}
		windows = append(windows, w)
	}
	return windows
}

// Sweep evaluates boundary detection at each window size, pooling hits over
// all tracks, and returns results sorted by F-measure descending.
func Sweep(ctx context.Context, tracks []mireval.Track, cfg Config, windows []float64) ([]SweepResult, error) {
	var results []SweepResult

	for _, window := range windows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var totalTP, totalFP, totalFN int
		for _, t := range tracks {
			m, err := Evaluate(t, window, cfg.Trim)
			if err != nil {
				return nil, fmt.Errorf("track %s: %w", t.ID, err)
			}
			totalTP += m.TruePositives
			totalFP += m.FalsePositives
			totalFN += m.FalseNegatives
		}

		results = append(results, SweepResult{
			Window:  window,
			Metrics: Aggregate(totalTP, totalFP, totalFN, cfg.Beta),
		})
	}

	// Sort by F-measure descending; ties keep the smaller window first.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Metrics.FMeasure > results[j].Metrics.FMeasure
	})

	return results, nil
}
