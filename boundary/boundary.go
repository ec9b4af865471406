// Package boundary scores segment boundary placement, following the
// MIREX structural segmentation protocol:
//
//   - Detection: precision, recall and F-measure of boundary hits within a window.
//   - Deviation: median distance from each boundary to the nearest boundary
//     of the other segmentation.
package boundary

import (
	"fmt"
	"math"

	"github.com/hendriks73/mir-eval/util"
)

// Validate checks that both interval sequences are usable as segment
// boundaries: finite, non-negative times and strictly positive durations.
func Validate(ref, est []util.Interval) error {
	if err := validateIntervals(ref); err != nil {
		return fmt.Errorf("reference intervals: %w", err)
	}
	if err := validateIntervals(est); err != nil {
		return fmt.Errorf("estimated intervals: %w", err)
	}
	return nil
}

func validateIntervals(intervals []util.Interval) error {
	if !util.Finite(intervals) {
		return fmt.Errorf("%w: non-finite interval times found", util.ErrRange)
	}
	for _, iv := range intervals {
		if iv.Start < 0 || iv.End < 0 {
			return fmt.Errorf("%w: negative interval times found", util.ErrRange)
		}
	}
	for _, iv := range intervals {
		if iv.Duration() <= 0 {
			return fmt.Errorf("%w: non-positive interval detected: [%.3f, %.3f]", util.ErrRange, iv.Start, iv.End)
		}
	}
	return nil
}

// Boundaries extracts boundary times, dropping the first and last when trim
// is set (these usually mark the start and end of the track).
func Boundaries(intervals []util.Interval, trim bool) []float64 {
	b := util.IntervalsToBoundaries(intervals)
	if trim {
		if len(b) <= 2 {
			return nil
		}
		b = b[1 : len(b)-1]
	}
	return b
}

// Detection computes the boundary detection hit rate. A hit is an estimated
// boundary within window seconds of a reference boundary; each boundary is
// matched at most once.
//
// With no boundaries on either side (possibly after trimming) all three
// scores are 0.
func Detection(ref, est []util.Interval, window, beta float64, trim bool) (precision, recall, fMeasure float64, err error) {
	if err := Validate(ref, est); err != nil {
		return 0, 0, 0, err
	}
	if err := util.CheckParameter("window", window); err != nil {
		return 0, 0, 0, err
	}
	if err := util.CheckParameter("beta", beta); err != nil {
		return 0, 0, 0, err
	}

	refBounds := Boundaries(ref, trim)
	estBounds := Boundaries(est, trim)
	if len(refBounds) == 0 || len(estBounds) == 0 {
		return 0, 0, 0, nil
	}

	hits := float64(len(util.MatchEvents(refBounds, estBounds, window)))
	precision = hits / float64(len(estBounds))
	recall = hits / float64(len(refBounds))
	return precision, recall, util.FMeasure(precision, recall, beta), nil
}

// Deviation computes the median time from each reference boundary to the
// closest estimated boundary, and from each estimated boundary to the
// closest reference boundary. No window applies.
//
// With no boundaries on either side both values are NaN.
func Deviation(ref, est []util.Interval, trim bool) (refToEst, estToRef float64, err error) {
	if err := Validate(ref, est); err != nil {
		return 0, 0, err
	}

	refBounds := Boundaries(ref, trim)
	estBounds := Boundaries(est, trim)
	if len(refBounds) == 0 || len(estBounds) == 0 {
		return math.NaN(), math.NaN(), nil
	}

	return util.Median(nearest(refBounds, estBounds)), util.Median(nearest(estBounds, refBounds)), nil
}

// nearest returns, for every element of from, the absolute distance to the
// closest element of to.
func nearest(from, to []float64) []float64 {
	dists := make([]float64, len(from))
	for i, f := range from {
		best := math.Inf(1)
		for _, t := range to {
			best = math.Min(best, math.Abs(f-t))
		}
		dists[i] = best
	}
	return dists
}
