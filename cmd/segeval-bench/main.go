package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hendriks73/mir-eval/internal/bench"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config file")
		corpusDir  = flag.String("corpus", "testdata/corpus", "Directory containing track manifests")
		sweep      = flag.Bool("sweep", false, "Run detection window sweep")
		sweepMin   = flag.Float64("sweep-min", 0.25, "Sweep minimum window in seconds")
		sweepMax   = flag.Float64("sweep-max", 3.25, "Sweep maximum window in seconds (exclusive)")
		sweepStep  = flag.Float64("sweep-step", 0.25, "Sweep step size in seconds")
		plotPath   = flag.String("plot", "", "Write a precision/recall/F chart to this file (.png, .svg, .pdf)")
	)
	flag.Parse()

	cfg, err := bench.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	tracks, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d tracks from %s\n\n", len(tracks), *corpusDir)

	windows := []float64{cfg.Window}
	if *sweep {
		windows = bench.SweepWindows(*sweepMin, *sweepMax, *sweepStep)
	}

	results, err := bench.Sweep(context.Background(), tracks, cfg, windows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during sweep: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Boundary Detection (beta=%.1f, trim=%v)\n", cfg.Beta, cfg.Trim)
	fmt.Println(strings.Repeat("-", 58))
	fmt.Printf("%-8s %-8s %-8s %-8s %-8s %-8s\n", "Window", "Prec", "Rec", "F", "TP", "FN")

	// Print in window order for readability
	for _, w := range windows {
		for _, r := range results {
			if r.Window == w {
				fmt.Printf("%-8.2f %-8.2f %-8.2f %-8.2f %-8d %-8d\n",
					r.Window, r.Metrics.Precision, r.Metrics.Recall, r.Metrics.FMeasure,
					r.Metrics.TruePositives, r.Metrics.FalseNegatives)
				break
			}
		}
	}

	fmt.Println(strings.Repeat("-", 58))
	if len(results) > 0 {
		best := results[0]
		fmt.Printf("Optimal: %.2fs (F: %.2f)\n", best.Window, best.Metrics.FMeasure)
	}

	if *plotPath != "" {
		if err := bench.PlotSweep(results, *plotPath); err != nil {
			fmt.Fprintf(os.Stderr, "error writing plot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Plot written to %s\n", *plotPath)
	}
}
