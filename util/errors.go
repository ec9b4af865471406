package util

import "errors"

// Sentinel errors for malformed input. Degenerate but valid input (no
// boundaries left after trimming, a single cluster) is never reported
// through these; it yields sentinel scores instead.
var (
	// ErrShape indicates an interval array is not n-by-2, or is empty where
	// a non-empty sequence is required.
	ErrShape = errors.New("mireval: intervals must be an n-by-2 array")

	// ErrRange indicates a negative timestamp or a non-positive duration.
	ErrRange = errors.New("mireval: interval times out of range")

	// ErrCardinality indicates the label count differs from the interval count.
	ErrCardinality = errors.New("mireval: number of intervals does not match number of labels")

	// ErrAlignment indicates a segmentation does not start at 0 or the
	// reference and estimate end at different times.
	ErrAlignment = errors.New("mireval: segmentations are not aligned")

	// ErrParameter indicates a non-positive window, beta, or frame size.
	ErrParameter = errors.New("mireval: invalid metric parameter")
)
