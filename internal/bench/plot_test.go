package bench

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPlotSweep(t *testing.T) {
	results := []SweepResult{
		{Window: 1, Metrics: Aggregate(8, 2, 2, 1)},
		{Window: 0.5, Metrics: Aggregate(5, 5, 5, 1)},
		{Window: 2, Metrics: Aggregate(10, 0, 0, 1)},
	}

	path := filepath.Join(t.TempDir(), "sweep.png")
	if err := PlotSweep(results, path); err != nil {
		t.Fatalf("PlotSweep() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
	if results[0].Window != 1 {
		t.Error("PlotSweep reordered its input")
	}
}

func TestPlotSweep_Empty(t *testing.T) {
	if err := PlotSweep(nil, filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("expected error for empty results")
	}
}
