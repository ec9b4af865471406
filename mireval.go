package mireval

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hendriks73/mir-eval/boundary"
	"github.com/hendriks73/mir-eval/structure"
	"github.com/hendriks73/mir-eval/util"
)

// Track is a reference and an estimated segmentation of the same audio.
type Track struct {
	ID        string
	Reference structure.Annotation
	Estimate  structure.Annotation
}

// Score is one named metric output, e.g. Metric "detection", Output "recall".
type Score struct {
	Metric string
	Output string
	Value  float64
}

// Name returns "metric.output".
func (s Score) Name() string {
	return s.Metric + "." + s.Output
}

// Scores holds every metric output for one track, in reporting order.
type Scores struct {
	TrackID string
	Entries []Score
}

// Get returns the value of the score with the given "metric.output" name.
func (s Scores) Get(name string) (float64, bool) {
	for _, e := range s.Entries {
		if e.Name() == name {
			return e.Value, true
		}
	}
	return 0, false
}

// Evaluator computes segmentation metrics with a fixed configuration.
// It is safe for concurrent use.
type Evaluator struct {
	boundary    boundary.Params
	structure   structure.Params
	metrics     map[string]bool
	concurrency int
	logger      *slog.Logger
}

// New creates an Evaluator. It fails with ErrParameter if the window, beta,
// or frame size is not positive.
func New(opts ...Option) (*Evaluator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := util.CheckParameter("window", cfg.boundary.Window); err != nil {
		return nil, err
	}
	if err := util.CheckParameter("beta", cfg.boundary.Beta); err != nil {
		return nil, err
	}
	if err := util.CheckParameter("frame size", cfg.structure.FrameSize); err != nil {
		return nil, err
	}

	return &Evaluator{
		boundary:    cfg.boundary,
		structure:   cfg.structure,
		metrics:     cfg.metrics,
		concurrency: cfg.concurrency,
		logger:      cfg.logger,
	}, nil
}

func (e *Evaluator) enabled(metric string) bool {
	return e.metrics == nil || e.metrics[metric]
}

// Evaluate computes the boundary metrics and then the structure metrics for
// one track. The first validation error aborts the track.
func (e *Evaluator) Evaluate(ctx context.Context, t Track) (Scores, error) {
	if err := ctx.Err(); err != nil {
		return Scores{}, err
	}

	start := time.Now()
	scores := Scores{TrackID: t.ID}

	for _, m := range boundary.Metrics {
		if !e.enabled(m.Name) {
			continue
		}
		values, err := m.Compute(t.Reference.Intervals, t.Estimate.Intervals, e.boundary)
		if err != nil {
			return Scores{}, fmt.Errorf("%s: %w", m.Name, err)
		}
		scores.Entries = appendScores(scores.Entries, m.Name, m.Outputs, values)
	}

	for _, m := range structure.Metrics {
		if !e.enabled(m.Name) {
			continue
		}
		values, err := m.Compute(t.Reference, t.Estimate, e.structure)
		if err != nil {
			return Scores{}, fmt.Errorf("%s: %w", m.Name, err)
		}
		scores.Entries = appendScores(scores.Entries, m.Name, m.Outputs, values)
	}

	e.logger.Debug("evaluated track",
		"track", t.ID,
		"scores", len(scores.Entries),
		"elapsed", time.Since(start))
	return scores, nil
}

func appendScores(dst []Score, metric string, outputs []string, values []float64) []Score {
	for i, out := range outputs {
		dst = append(dst, Score{Metric: metric, Output: out, Value: values[i]})
	}
	return dst
}

// EvaluateBatch evaluates tracks in parallel, at most WithConcurrency at a
// time, and returns their scores in input order. The first failing track
// cancels the remaining work and its error is returned.
func (e *Evaluator) EvaluateBatch(ctx context.Context, tracks []Track) ([]Scores, error) {
	results := make([]Scores, len(tracks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, t := range tracks {
		i, t := i, t
		g.Go(func() error {
			s, err := e.Evaluate(ctx, t)
			if err != nil {
				e.logger.Warn("track evaluation failed", "track", t.ID, "error", err)
				return fmt.Errorf("track %s: %w", t.ID, err)
			}
			results[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
