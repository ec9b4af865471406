// Package report renders evaluation results as text, JSON, YAML or a
// protobuf Struct.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	mireval "github.com/hendriks73/mir-eval"
	"github.com/hendriks73/mir-eval/internal/bench"
)

// Format selects the output encoding of a report.
type Format string

const (
	Text  Format = "text"
	JSON  Format = "json"
	YAML  Format = "yaml"
	Proto Format = "proto"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML, Proto:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// Report is the result of one evaluation run.
type Report struct {
	RunID     string
	CreatedAt time.Time
	Config    bench.Config
	Tracks    []mireval.Scores
	Summary   []mireval.Score
}

// New builds a report for results, summarizing them over all tracks.
func New(cfg bench.Config, results []mireval.Scores) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Config:    cfg,
		Tracks:    results,
		Summary:   bench.Summarize(results),
	}
}

// Write encodes r to w in the given format.
func (r *Report) Write(w io.Writer, format Format) error {
	switch format {
	case Text:
		return r.writeText(w)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r.document())
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.document()); err != nil {
			return err
		}
		return enc.Close()
	case Proto:
		data, err := r.MarshalProto()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown report format %q", format)
}

// MarshalProto encodes the report as a binary google.protobuf.Struct.
func (r *Report) MarshalProto() ([]byte, error) {
	s, err := structpb.NewStruct(r.document())
	if err != nil {
		return nil, fmt.Errorf("build struct: %w", err)
	}
	return proto.Marshal(s)
}

func (r *Report) writeText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Run %s (%s)\n", r.RunID, r.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "window=%.2f beta=%.2f trim=%v frame_size=%.2f normalization=%s concurrency=%d\n",
		r.Config.Window, r.Config.Beta, r.Config.Trim, r.Config.FrameSize, r.Config.Normalization, r.Config.Concurrency)

	for _, t := range r.Tracks {
		b.WriteString(strings.Repeat("-", 40) + "\n")
		fmt.Fprintf(&b, "%s\n", t.TrackID)
		writeScores(&b, t.Entries)
	}

	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "Mean over %d tracks\n", len(r.Tracks))
	writeScores(&b, r.Summary)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeScores(b *strings.Builder, scores []mireval.Score) {
	for _, s := range scores {
		fmt.Fprintf(b, "  %-28s %8.4f\n", s.Name(), s.Value)
	}
}

// document returns the report as plain maps and slices. NaN scores become
// nil since JSON has no representation for them.
func (r *Report) document() map[string]any {
	metrics := make([]any, len(r.Config.Metrics))
	for i, m := range r.Config.Metrics {
		metrics[i] = m
	}

	tracks := make([]any, len(r.Tracks))
	for i, t := range r.Tracks {
		tracks[i] = map[string]any{
			"id":     t.TrackID,
			"scores": scoreList(t.Entries),
		}
	}

	return map[string]any{
		"run_id":     r.RunID,
		"created_at": r.CreatedAt.Format(time.RFC3339),
		"config": map[string]any{
			"window":        r.Config.Window,
			"beta":          r.Config.Beta,
			"trim":          r.Config.Trim,
			"frame_size":    r.Config.FrameSize,
			"normalization": r.Config.Normalization,
			"metrics":       metrics,
			"concurrency":   r.Config.Concurrency,
		},
		"tracks":  tracks,
		"summary": scoreList(r.Summary),
	}
}

func scoreList(scores []mireval.Score) []any {
	out := make([]any, len(scores))
	for i, s := range scores {
		var v any = s.Value
		if math.IsNaN(s.Value) || math.IsInf(s.Value, 0) {
			v = nil
		}
		out[i] = map[string]any{
			"metric": s.Metric,
			"output": s.Output,
			"value":  v,
		}
	}
	return out
}
