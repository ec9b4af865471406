package boundary

import "github.com/hendriks73/mir-eval/util"

// Params holds the options shared by the boundary metrics.
type Params struct {
	Window float64
	Beta   float64
	Trim   bool
}

// DefaultParams returns window 0.5s, beta 1.0, no trimming.
func DefaultParams() Params {
	return Params{
		Window: util.DefaultWindow,
		Beta:   util.DefaultBeta,
		Trim:   util.DefaultTrim,
	}
}

// Metric is a named boundary metric with named outputs.
type Metric struct {
	Name    string
	Outputs []string
	Compute func(ref, est []util.Interval, p Params) ([]float64, error)
}

// Metrics lists the boundary metrics in reporting order.
var Metrics = []Metric{
	{
		Name:    "detection",
		Outputs: []string{"precision", "recall", "f_measure"},
		Compute: func(ref, est []util.Interval, p Params) ([]float64, error) {
			precision, recall, f, err := Detection(ref, est, p.Window, p.Beta, p.Trim)
			if err != nil {
				return nil, err
			}
			return []float64{precision, recall, f}, nil
		},
	},
	{
		Name:    "deviation",
		Outputs: []string{"ref_to_est", "est_to_ref"},
		Compute: func(ref, est []util.Interval, p Params) ([]float64, error) {
			r2e, e2r, err := Deviation(ref, est, p.Trim)
			if err != nil {
				return nil, err
			}
			return []float64{r2e, e2r}, nil
		},
	},
}
