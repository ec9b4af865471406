package mireval

import "github.com/hendriks73/mir-eval/util"

// Sentinel errors for malformed input, shared with the metric packages.
var (
	// ErrShape indicates an interval array is not n-by-2 or is empty.
	ErrShape = util.ErrShape

	// ErrRange indicates a negative time or a non-positive interval duration.
	ErrRange = util.ErrRange

	// ErrCardinality indicates a label count that differs from the interval count.
	ErrCardinality = util.ErrCardinality

	// ErrAlignment indicates segmentations that do not start at 0 or do not
	// end at the same time.
	ErrAlignment = util.ErrAlignment

	// ErrParameter indicates a non-positive window, beta, or frame size.
	ErrParameter = util.ErrParameter
)
