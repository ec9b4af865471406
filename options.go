package mireval

import (
	"log/slog"
	"runtime"

	"github.com/hendriks73/mir-eval/boundary"
	"github.com/hendriks73/mir-eval/structure"
)

// Option configures an Evaluator.
type Option func(*config)

type config struct {
	boundary    boundary.Params
	structure   structure.Params
	metrics     map[string]bool
	concurrency int
	logger      *slog.Logger
}

func defaultConfig() config {
	return config{
		boundary:    boundary.DefaultParams(),
		structure:   structure.DefaultParams(),
		concurrency: runtime.NumCPU(),
		logger:      slog.Default(),
	}
}

// WithWindow sets the boundary detection window in seconds (default: 0.5).
func WithWindow(w float64) Option {
	return func(c *config) {
		c.boundary.Window = w
	}
}

// WithBeta sets the F-measure weight used by every metric (default: 1.0).
func WithBeta(b float64) Option {
	return func(c *config) {
		c.boundary.Beta = b
		c.structure.Beta = b
	}
}

// WithTrim drops the first and last boundary before boundary scoring
// (default: false).
func WithTrim(trim bool) Option {
	return func(c *config) {
		c.boundary.Trim = trim
	}
}

// WithFrameSize sets the frame length in seconds for the structure metrics
// (default: 0.1).
func WithFrameSize(s float64) Option {
	return func(c *config) {
		c.structure.FrameSize = s
	}
}

// WithNormalization sets how entropies are averaged when normalizing mutual
// information (default: structure.Arithmetic).
func WithNormalization(n structure.Normalization) Option {
	return func(c *config) {
		c.structure.Normalization = n
	}
}

// WithMetrics restricts evaluation to the named metrics, e.g. "detection"
// or "nce". Unknown names are ignored. By default every metric runs.
func WithMetrics(names ...string) Option {
	return func(c *config) {
		if len(names) == 0 {
			return
		}
		c.metrics = make(map[string]bool, len(names))
		for _, n := range names {
			c.metrics[n] = true
		}
	}
}

// WithConcurrency sets how many tracks EvaluateBatch scores at once
// (default: runtime.NumCPU()).
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
