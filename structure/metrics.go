package structure

import "github.com/hendriks73/mir-eval/util"

// Params holds the options shared by the structure metrics.
type Params struct {
	FrameSize     float64
	Beta          float64
	Normalization Normalization
}

// DefaultParams returns 0.1s frames, beta 1.0, arithmetic normalization.
func DefaultParams() Params {
	return Params{
		FrameSize:     util.DefaultFrameSize,
		Beta:          util.DefaultBeta,
		Normalization: Arithmetic,
	}
}

// Annotation is a labeled segmentation.
type Annotation struct {
	Intervals []util.Interval
	Labels    []string
}

// Metric is a named structure metric with named outputs.
type Metric struct {
	Name    string
	Outputs []string
	Compute func(ref, est Annotation, p Params) ([]float64, error)
}

// Metrics lists the structure metrics in reporting order.
var Metrics = []Metric{
	{
		Name:    "pairwise",
		Outputs: []string{"precision", "recall", "f_measure"},
		Compute: func(ref, est Annotation, p Params) ([]float64, error) {
			precision, recall, f, err := Pairwise(ref.Intervals, ref.Labels, est.Intervals, est.Labels, p.FrameSize, p.Beta)
			if err != nil {
				return nil, err
			}
			return []float64{precision, recall, f}, nil
		},
	},
	{
		Name:    "ari",
		Outputs: []string{"ari"},
		Compute: func(ref, est Annotation, p Params) ([]float64, error) {
			v, err := ARI(ref.Intervals, ref.Labels, est.Intervals, est.Labels, p.FrameSize)
			if err != nil {
				return nil, err
			}
			return []float64{v}, nil
		},
	},
	{
		Name:    "mutual_information",
		Outputs: []string{"mi", "ami", "nmi"},
		Compute: func(ref, est Annotation, p Params) ([]float64, error) {
			mi, ami, nmi, err := MutualInformationWithNorm(ref.Intervals, ref.Labels, est.Intervals, est.Labels, p.FrameSize, p.Normalization)
			if err != nil {
				return nil, err
			}
			return []float64{mi, ami, nmi}, nil
		},
	},
	{
		Name:    "nce",
		Outputs: []string{"s_over", "s_under", "s_f"},
		Compute: func(ref, est Annotation, p Params) ([]float64, error) {
			sOver, sUnder, sF, err := NCE(ref.Intervals, ref.Labels, est.Intervals, est.Labels, p.FrameSize, p.Beta)
			if err != nil {
				return nil, err
			}
			return []float64{sOver, sUnder, sF}, nil
		},
	},
}
