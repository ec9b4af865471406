// Package util holds the interval and label helpers shared by the boundary
// and structure metrics: boundary extraction, uniform sampling, label
// indexing, windowed event matching, and the weighted F-measure.
package util

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
)

// Metric parameter defaults.
const (
	DefaultWindow    = 0.5
	DefaultBeta      = 1.0
	DefaultTrim      = false
	DefaultFrameSize = 0.1
)

// FillLabel marks frames that fall in a gap between intervals.
const FillLabel = "__no_label__"

// Tolerances used when comparing timestamps, matching numpy.allclose.
const (
	absTol = 1e-8
	relTol = 1e-5
)

// Interval is a segment [Start, End] in seconds.
type Interval struct {
	Start float64
	End   float64
}

// Duration returns End - Start.
func (iv Interval) Duration() float64 {
	return iv.End - iv.Start
}

// IntervalsFromRows converts an n-by-2 array into intervals.
// Any row without exactly two columns yields ErrShape.
func IntervalsFromRows(rows [][]float64) ([]Interval, error) {
	intervals := make([]Interval, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrShape, i, len(row))
		}
		intervals[i] = Interval{Start: row[0], End: row[1]}
	}
	return intervals, nil
}

// Close reports whether a and b agree within numpy.allclose tolerances.
func Close(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, absTol, relTol)
}

// Finite reports whether every interval endpoint is a finite number.
func Finite(intervals []Interval) bool {
	for _, iv := range intervals {
		if math.IsNaN(iv.Start) || math.IsInf(iv.Start, 0) || math.IsNaN(iv.End) || math.IsInf(iv.End, 0) {
			return false
		}
	}
	return true
}

// CheckParameter returns ErrParameter unless v is finite and strictly positive.
func CheckParameter(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be > 0, got %v", ErrParameter, name, v)
	}
	return nil
}

// IntervalsToBoundaries returns the distinct interval endpoints in
// ascending order. For contiguous segments this is the start of the first
// interval followed by the end of every interval.
func IntervalsToBoundaries(intervals []Interval) []float64 {
	if len(intervals) == 0 {
		return nil
	}

	times := make([]float64, 0, 2*len(intervals))
	for _, iv := range intervals {
		times = append(times, iv.Start, iv.End)
	}
	sort.Float64s(times)

	boundaries := times[:1]
	for _, t := range times[1:] {
		if t != boundaries[len(boundaries)-1] {
			boundaries = append(boundaries, t)
		}
	}
	return boundaries
}

// IntervalsToSamples samples a labeled segmentation every sampleSize
// seconds, starting at 0. The number of samples is
// floor(maxEnd / sampleSize): a trailing partial frame is dropped.
// Samples not covered by any interval take fill.
func IntervalsToSamples[L any](intervals []Interval, labels []L, sampleSize float64, fill L) ([]float64, []L) {
	if len(intervals) == 0 || sampleSize <= 0 {
		return nil, nil
	}

	maxEnd := intervals[0].End
	for _, iv := range intervals[1:] {
		maxEnd = math.Max(maxEnd, iv.End)
	}
	n := int(math.Floor(maxEnd / sampleSize))
	if n <= 0 {
		return nil, nil
	}

	// Visit intervals in start order so each sample can binary-search.
	order := make([]int, len(intervals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return intervals[order[a]].Start < intervals[order[b]].Start
	})

	times := make([]float64, n)
	sampled := make([]L, n)
	for i := range times {
		t := float64(i) * sampleSize
		times[i] = t

		// Last interval starting at or before t.
		k := sort.Search(len(order), func(j int) bool {
			return intervals[order[j]].Start > t
		}) - 1
		if k >= 0 && t <= intervals[order[k]].End {
			sampled[i] = labels[order[k]]
		} else {
			sampled[i] = fill
		}
	}
	return times, sampled
}

// IndexLabels maps each label to a dense integer id. Ids are assigned in
// order of first appearance; idToLabel[id] recovers the label.
func IndexLabels[L comparable](labels []L) (ids []int, idToLabel []L) {
	labelToID := make(map[L]int)
	ids = make([]int, len(labels))
	for i, l := range labels {
		id, ok := labelToID[l]
		if !ok {
			id = len(idToLabel)
			labelToID[l] = id
			idToLabel = append(idToLabel, l)
		}
		ids[i] = id
	}
	return ids, idToLabel
}

// FMeasure is the weighted harmonic mean of precision and recall:
//
//	(1 + beta^2) * P * R / (beta^2 * P + R)
//
// It is 0 when the denominator is 0. NaN inputs propagate.
func FMeasure(precision, recall, beta float64) float64 {
	b2 := beta * beta
	den := b2*precision + recall
	if den == 0 {
		return 0
	}
	return (1 + b2) * precision * recall / den
}

// Median returns the median of values, averaging the two middle elements
// for even lengths. It returns NaN for an empty slice. values is not modified.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
