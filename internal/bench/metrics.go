package bench

import (
	"math"

	"gonum.org/v1/gonum/stat"

	mireval "github.com/hendriks73/mir-eval"
	"github.com/hendriks73/mir-eval/boundary"
	"github.com/hendriks73/mir-eval/util"
)

// Metrics holds boundary detection counts pooled over one or more tracks.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	FMeasure       float64
}

// Evaluate counts boundary hits of one track within window. Counts, not
// ratios, are returned so that tracks can be pooled with Aggregate.
func Evaluate(t mireval.Track, window float64, trim bool) (Metrics, error) {
	ref, est := t.Reference.Intervals, t.Estimate.Intervals
	if err := boundary.Validate(ref, est); err != nil {
		return Metrics{}, err
	}
	if err := util.CheckParameter("window", window); err != nil {
		return Metrics{}, err
	}

	refBounds := boundary.Boundaries(ref, trim)
	estBounds := boundary.Boundaries(est, trim)
	tp := len(util.MatchEvents(refBounds, estBounds, window))

	return Metrics{
		TruePositives:  tp,
		FalsePositives: len(estBounds) - tp,
		FalseNegatives: len(refBounds) - tp,
	}, nil
}

// Aggregate computes precision, recall and F-measure from pooled counts.
func Aggregate(tp, fp, fn int, beta float64) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	m.FMeasure = util.FMeasure(m.Precision, m.Recall, beta)
	return m
}

// Summarize returns the per-score mean over tracks, skipping NaN values.
// A score that is NaN for every track stays NaN. Scores follow the order
// of the first track.
func Summarize(results []mireval.Scores) []mireval.Score {
	if len(results) == 0 {
		return nil
	}

	values := make(map[string][]float64)
	for _, r := range results {
		for _, e := range r.Entries {
			if !math.IsNaN(e.Value) {
				values[e.Name()] = append(values[e.Name()], e.Value)
			}
		}
	}

	summary := make([]mireval.Score, len(results[0].Entries))
	for i, e := range results[0].Entries {
		summary[i] = mireval.Score{Metric: e.Metric, Output: e.Output, Value: math.NaN()}
		if v := values[e.Name()]; len(v) > 0 {
			summary[i].Value = stat.Mean(v, nil)
		}
	}
	return summary
}
