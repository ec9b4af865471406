package boundary

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/hendriks73/mir-eval/util"
)

const tol = 1e-12

func TestValidate(t *testing.T) {
	good := []util.Interval{{Start: 0, End: 10}, {Start: 10, End: 20}}

	tests := []struct {
		name    string
		ref     []util.Interval
		est     []util.Interval
		wantErr error
		wantMsg string
	}{
		{name: "valid", ref: good, est: good},
		{name: "empty is valid", ref: nil, est: good},
		{
			name:    "negative time",
			ref:     []util.Interval{{Start: -1, End: 10}},
			est:     good,
			wantErr: util.ErrRange,
			wantMsg: "reference intervals",
		},
		{
			name:    "zero duration",
			ref:     good,
			est:     []util.Interval{{Start: 0, End: 1}, {Start: 1, End: 1}},
			wantErr: util.ErrRange,
			wantMsg: "[1.000, 1.000]",
		},
		{
			name:    "NaN time",
			ref:     good,
			est:     []util.Interval{{Start: 0, End: math.NaN()}},
			wantErr: util.ErrRange,
			wantMsg: "non-finite",
		},
		{
			name:    "infinite time",
			ref:     []util.Interval{{Start: 0, End: math.Inf(1)}},
			est:     good,
			wantErr: util.ErrRange,
			wantMsg: "reference intervals",
		},
		{
			name:    "reversed interval",
			ref:     good,
			est:     []util.Interval{{Start: 5, End: 2}},
			wantErr: util.ErrRange,
			wantMsg: "estimated intervals",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.ref, tt.est)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestDetection(t *testing.T) {
	ref := []util.Interval{{Start: 0, End: 10}, {Start: 10, End: 20}}

	tests := []struct {
		name   string
		est    []util.Interval
		window float64
		beta   float64
		trim   bool
		wantP  float64
		wantR  float64
		wantF  float64
	}{
		{
			name:   "identical",
			est:    []util.Interval{{Start: 0, End: 10}, {Start: 10, End: 20}},
			window: 0.5, beta: 1,
			wantP: 1, wantR: 1, wantF: 1,
		},
		{
			name:   "extra estimated boundary",
			est:    []util.Interval{{Start: 0, End: 5}, {Start: 5, End: 10}, {Start: 10, End: 20}},
			window: 0.5, beta: 1,
			wantP: 0.75, wantR: 1, wantF: 2 * 0.75 / 1.75,
		},
		{
			name:   "one boundary outside window",
			est:    []util.Interval{{Start: 0, End: 10.4}, {Start: 10.4, End: 19}},
			window: 0.5, beta: 1,
			wantP: 2.0 / 3, wantR: 2.0 / 3, wantF: 2.0 / 3,
		},
		{
			name:   "wide window recovers it",
			est:    []util.Interval{{Start: 0, End: 10.4}, {Start: 10.4, End: 19}},
			window: 3, beta: 1,
			wantP: 1, wantR: 1, wantF: 1,
		},
		{
			name:   "trim drops track markers",
			est:    []util.Interval{{Start: 0, End: 10.2}, {Start: 10.2, End: 25}},
			window: 0.5, beta: 1, trim: true,
			wantP: 1, wantR: 1, wantF: 1,
		},
		{
			name:   "beta favours recall",
			est:    []util.Interval{{Start: 0, End: 5}, {Start: 5, End: 10}, {Start: 10, End: 20}},
			window: 0.5, beta: 2,
			wantP: 0.75, wantR: 1, wantF: 5 * 0.75 / (4*0.75 + 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, r, f, err := Detection(ref, tt.est, tt.window, tt.beta, tt.trim)
			if err != nil {
				t.Fatalf("Detection() error = %v", err)
			}
			if math.Abs(p-tt.wantP) > tol {
				t.Errorf("precision = %v, want %v", p, tt.wantP)
			}
			if math.Abs(r-tt.wantR) > tol {
				t.Errorf("recall = %v, want %v", r, tt.wantR)
			}
			if math.Abs(f-tt.wantF) > tol {
				t.Errorf("f_measure = %v, want %v", f, tt.wantF)
			}
		})
	}
}

func TestDetection_EmptyAfterTrim(t *testing.T) {
	ref := []util.Interval{{Start: 0, End: 20}}
	est := []util.Interval{{Start: 0, End: 10}, {Start: 10, End: 20}}

	p, r, f, err := Detection(ref, est, 0.5, 1, true)
	if err != nil {
		t.Fatalf("Detection() error = %v", err)
	}
	if p != 0 || r != 0 || f != 0 {
		t.Errorf("Detection() = (%v, %v, %v), want zeros", p, r, f)
	}
}

func TestDetection_Bounds(t *testing.T) {
	ref := []util.Interval{{Start: 0, End: 3}, {Start: 3, End: 7.5}, {Start: 7.5, End: 12}, {Start: 12, End: 30}}
	ests := [][]util.Interval{
		{{Start: 0, End: 30}},
		{{Start: 0, End: 1}, {Start: 1, End: 2}, {Start: 2, End: 3}, {Start: 3, End: 4}, {Start: 4, End: 30}},
		{{Start: 0, End: 7}, {Start: 7, End: 12.4}, {Start: 12.4, End: 29}},
	}

	for _, est := range ests {
		p, r, f, err := Detection(ref, est, 0.5, 1, false)
		if err != nil {
			t.Fatalf("Detection() error = %v", err)
		}
		for _, v := range []float64{p, r, f} {
			if v < 0 || v > 1 {
				t.Errorf("score %v out of [0, 1] for %v", v, est)
			}
		}
		if (p == 0 || r == 0) != (f == 0) {
			t.Errorf("f = %v inconsistent with p = %v, r = %v", f, p, r)
		}
	}
}

func TestDetection_InvalidParameters(t *testing.T) {
	ref := []util.Interval{{Start: 0, End: 10}}

	if _, _, _, err := Detection(ref, ref, 0, 1, false); !errors.Is(err, util.ErrParameter) {
		t.Errorf("window 0: error = %v, want ErrParameter", err)
	}
	if _, _, _, err := Detection(ref, ref, 0.5, -1, false); !errors.Is(err, util.ErrParameter) {
		t.Errorf("beta -1: error = %v, want ErrParameter", err)
	}
}

func TestDetection_InvalidIntervals(t *testing.T) {
	good := []util.Interval{{Start: 0, End: 10}}
	bad := []util.Interval{{Start: 0, End: -10}}

	if _, _, _, err := Detection(good, bad, 0.5, 1, false); !errors.Is(err, util.ErrRange) {
		t.Errorf("error = %v, want ErrRange", err)
	}
}

func TestDeviation(t *testing.T) {
	ref := []util.Interval{{Start: 0, End: 10}, {Start: 10, End: 20}}
	est := []util.Interval{{Start: 0, End: 5}, {Start: 5, End: 11}, {Start: 11, End: 20}}

	r2e, e2r, err := Deviation(ref, est, false)
	if err != nil {
		t.Fatalf("Deviation() error = %v", err)
	}
	// ref {0,10,20} -> nearest {0,1,0}; est {0,5,11,20} -> nearest {0,5,1,0}.
	if r2e != 0 {
		t.Errorf("ref_to_est = %v, want 0", r2e)
	}
	if e2r != 0.5 {
		t.Errorf("est_to_ref = %v, want 0.5", e2r)
	}

	swappedR2E, swappedE2R, err := Deviation(est, ref, false)
	if err != nil {
		t.Fatalf("Deviation() error = %v", err)
	}
	if swappedR2E != e2r || swappedE2R != r2e {
		t.Errorf("swapped = (%v, %v), want (%v, %v)", swappedR2E, swappedE2R, e2r, r2e)
	}
}

func TestDeviation_Trim(t *testing.T) {
	ref := []util.Interval{{Start: 0, End: 10}, {Start: 10, End: 20}}
	est := []util.Interval{{Start: 0, End: 12}, {Start: 12, End: 30}}

	r2e, e2r, err := Deviation(ref, est, true)
	if err != nil {
		t.Fatalf("Deviation() error = %v", err)
	}
	if r2e != 2 || e2r != 2 {
		t.Errorf("Deviation() = (%v, %v), want (2, 2)", r2e, e2r)
	}
}

func TestDeviation_EmptyAfterTrim(t *testing.T) {
	ref := []util.Interval{{Start: 0, End: 20}}
	est := []util.Interval{{Start: 0, End: 10}, {Start: 10, End: 20}}

	r2e, e2r, err := Deviation(ref, est, true)
	if err != nil {
		t.Fatalf("Deviation() error = %v", err)
	}
	if !math.IsNaN(r2e) || !math.IsNaN(e2r) {
		t.Errorf("Deviation() = (%v, %v), want NaN", r2e, e2r)
	}
}

func TestMetrics(t *testing.T) {
	ref := []util.Interval{{Start: 0, End: 10}, {Start: 10, End: 20}}
	est := []util.Interval{{Start: 0, End: 9.8}, {Start: 9.8, End: 20}}

	names := make([]string, 0, len(Metrics))
	for _, m := range Metrics {
		names = append(names, m.Name)
		values, err := m.Compute(ref, est, DefaultParams())
		if err != nil {
			t.Fatalf("%s: error = %v", m.Name, err)
		}
		if len(values) != len(m.Outputs) {
			t.Errorf("%s: got %d values for %d outputs", m.Name, len(values), len(m.Outputs))
		}
	}

	if got := strings.Join(names, ","); got != "detection,deviation" {
		t.Errorf("metric order = %s", got)
	}
}
