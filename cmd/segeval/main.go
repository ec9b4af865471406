package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	mireval "github.com/hendriks73/mir-eval"
	"github.com/hendriks73/mir-eval/internal/bench"
	"github.com/hendriks73/mir-eval/internal/report"
)

var (
	version = "dev"
	commit  string
	date    string
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config file")
		corpusDir  = flag.String("corpus", "", "Directory containing track manifests")
		format     = flag.String("format", "text", "Output format: text, json, yaml or proto")
		verbose    = flag.Bool("v", false, "Enable debug logging")
		showVer    = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVer {
		fmt.Printf("segeval %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	if *corpusDir == "" && flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: segeval [-config FILE] [-format FORMAT] (-corpus DIR | MANIFEST...)")
		flag.PrintDefaults()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	outFormat, err := report.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := bench.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	tracks, err := loadTracks(*corpusDir, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tracks: %v\n", err)
		os.Exit(1)
	}
	logger.Info("loaded tracks", "count", len(tracks))

	opts, err := cfg.Options(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ev, err := mireval.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating evaluator: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := ev.EvaluateBatch(ctx, tracks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := report.New(cfg, results).Write(os.Stdout, outFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}
}

func loadTracks(corpusDir string, manifests []string) ([]mireval.Track, error) {
	var tracks []mireval.Track
	if corpusDir != "" {
		corpus, err := bench.LoadCorpus(corpusDir)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, corpus...)
	}
	for _, path := range manifests {
		t, err := bench.LoadTrack(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}
