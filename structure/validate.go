package structure

import (
	"fmt"

	"github.com/hendriks73/mir-eval/util"
)

// Validate checks that two labeled segmentations can be compared frame by
// frame: each is non-empty with finite, non-negative times, one label per interval,
// and a start at 0; both end at the same time.
func Validate(refIntervals []util.Interval, refLabels []string, estIntervals []util.Interval, estLabels []string) error {
	if err := validateAnnotation(refIntervals, refLabels); err != nil {
		return fmt.Errorf("reference: %w", err)
	}
	if err := validateAnnotation(estIntervals, estLabels); err != nil {
		return fmt.Errorf("estimate: %w", err)
	}

	refEnd := refIntervals[len(refIntervals)-1].End
	estEnd := estIntervals[len(estIntervals)-1].End
	if !util.Close(refEnd, estEnd) {
		return fmt.Errorf("%w: end times do not match (%.3f != %.3f)", util.ErrAlignment, refEnd, estEnd)
	}
	return nil
}

func validateAnnotation(intervals []util.Interval, labels []string) error {
	if len(intervals) == 0 {
		return fmt.Errorf("%w: no intervals", util.ErrShape)
	}
	if !util.Finite(intervals) {
		return fmt.Errorf("%w: non-finite interval times found", util.ErrRange)
	}
	for _, iv := range intervals {
		if iv.Start < 0 || iv.End < 0 {
			return fmt.Errorf("%w: negative interval times found", util.ErrRange)
		}
	}
	if len(intervals) != len(labels) {
		return fmt.Errorf("%w: %d intervals, %d labels", util.ErrCardinality, len(intervals), len(labels))
	}
	if !util.Close(intervals[0].Start, 0) {
		return fmt.Errorf("%w: segment intervals do not start at 0 (start %.3f)", util.ErrAlignment, intervals[0].Start)
	}
	return nil
}
