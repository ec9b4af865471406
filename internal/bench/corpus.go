// Package bench provides benchmarking utilities for segmentation evaluation:
// track manifests, corpus loading, and detection window sweeps.
package bench

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	mireval "github.com/hendriks73/mir-eval"
	"github.com/hendriks73/mir-eval/structure"
	"github.com/hendriks73/mir-eval/util"
)

// Segment is one labeled interval of a manifest.
type Segment struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Label string  `yaml:"label"`
}

// Manifest is the on-disk description of one track to score.
//
//	id: track01
//	title: Some Song
//	reference:
//	  - {start: 0, end: 12.5, label: intro}
//	estimate:
//	  - {start: 0, end: 12.5, label: A}
type Manifest struct {
	ID        string    `yaml:"id"`
	Title     string    `yaml:"title"`
	Source    string    `yaml:"source"`
	Reference []Segment `yaml:"reference"`
	Estimate  []Segment `yaml:"estimate"`
}

// ParseManifest decodes a YAML manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	if len(m.Reference) == 0 {
		return Manifest{}, errors.New("missing reference segments")
	}
	if len(m.Estimate) == 0 {
		return Manifest{}, errors.New("missing estimate segments")
	}
	return m, nil
}

// Track converts the manifest into an evaluator track.
func (m Manifest) Track() mireval.Track {
	return mireval.Track{
		ID:        m.ID,
		Reference: annotation(m.Reference),
		Estimate:  annotation(m.Estimate),
	}
}

func annotation(segments []Segment) structure.Annotation {
	a := structure.Annotation{
		Intervals: make([]util.Interval, len(segments)),
		Labels:    make([]string, len(segments)),
	}
	for i, s := range segments {
		a.Intervals[i] = util.Interval{Start: s.Start, End: s.End}
		a.Labels[i] = s.Label
	}
	return a
}

// LoadTrack loads a manifest file. A manifest without an id takes the file
// name without extension.
func LoadTrack(path string) (mireval.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mireval.Track{}, fmt.Errorf("read file: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return mireval.Track{}, fmt.Errorf("parse manifest: %w", err)
	}

	if m.ID == "" {
		base := filepath.Base(path)
		m.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return m.Track(), nil
}

// LoadCorpus loads all .yaml and .yml manifests from a directory.
func LoadCorpus(dir string) ([]mireval.Track, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var tracks []mireval.Track
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
		default:
			continue
		}

		path := filepath.Join(dir, entry.Name())
		track, err := LoadTrack(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		tracks = append(tracks, track)
	}

	return tracks, nil
}
