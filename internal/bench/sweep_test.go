package bench

import (
	"context"
	"errors"
	"testing"

	mireval "github.com/hendriks73/mir-eval"
)

func TestSweepWindows(t *testing.T) {
	windows := SweepWindows(0.5, 3.0, 0.5)

	want := []float64{0.5, 1.0, 1.5, 2.0, 2.5}
	if len(windows) != len(want) {
		t.Errorf("got %d windows, want %d", len(windows), len(want))
		t.Logf("got: %v", windows)
		return
	}

	for i := range want {
		diff := windows[i] - want[i]
		if diff < -0.001 || diff > 0.001 {
			t.Errorf("window[%d] = %v, want %v", i, windows[i], want[i])
		}
	}

	if got := SweepWindows(0, 1, 0); got != nil {
		t.Errorf("zero step: got %v, want nil", got)
	}
}

func TestSweep(t *testing.T) {
	tracks := []mireval.Track{
		track("a", []float64{0, 10, 20, 30}, []float64{0, 10.8, 21.5, 30}),
		track("b", []float64{0, 15, 30}, []float64{0, 14, 30}),
	}
	cfg := DefaultConfig()

	results, err := Sweep(context.Background(), tracks, cfg, []float64{0.5, 1, 2})
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	best := results[0]
	if best.Window != 2 {
		t.Errorf("best window = %v, want 2", best.Window)
	}
	if best.Metrics.FMeasure != 1 {
		t.Errorf("best F = %v, want 1", best.Metrics.FMeasure)
	}
	if results[2].Window != 0.5 || results[2].Metrics.TruePositives != 4 {
		t.Errorf("worst = %+v, want window 0.5 with 4 hits", results[2])
	}
}

func TestSweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Sweep(ctx, nil, DefaultConfig(), []float64{0.5})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Sweep() error = %v, want context.Canceled", err)
	}
}

func TestSweep_Corpus(t *testing.T) {
	tracks, err := LoadCorpus("../../testdata/corpus")
	if err != nil {
		t.Skipf("corpus not available: %v", err)
	}
	if len(tracks) == 0 {
		t.Skip("corpus is empty")
	}

	results, err := Sweep(context.Background(), tracks, DefaultConfig(), SweepWindows(0.5, 3.5, 0.5))
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}

	for i := 1; i < len(results); i++ {
		if results[i].Metrics.FMeasure > results[i-1].Metrics.FMeasure {
			t.Errorf("results not sorted by F-measure at %d", i)
		}
	}
	// Widening the window never loses a hit.
	best := results[0]
	for _, r := range results {
		if r.Window > best.Window && r.Metrics.TruePositives < best.Metrics.TruePositives {
			t.Errorf("window %.2f has %d hits, fewer than %d at %.2f",
				r.Window, r.Metrics.TruePositives, best.Metrics.TruePositives, best.Window)
		}
	}
}
