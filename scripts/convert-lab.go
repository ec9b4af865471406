//go:build ignore

// Convert paired MIREX .lab annotations into segeval track manifests.
// Expects <in>/reference/<id>.lab and <in>/estimate/<id>.lab.
// Usage: go run ./scripts/convert-lab.go [in-dir] [out-dir]
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hendriks73/mir-eval/internal/bench"
)

func main() {
	inDir := "testdata/lab"
	outDir := "testdata/corpus"
	if len(os.Args) > 1 {
		inDir = os.Args[1]
	}
	if len(os.Args) > 2 {
		outDir = os.Args[2]
	}

	refs, err := filepath.Glob(filepath.Join(inDir, "reference", "*.lab"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing %s: %v\n", inDir, err)
		os.Exit(1)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outDir, err)
		os.Exit(1)
	}

	converted := 0
	for _, refPath := range refs {
		id := strings.TrimSuffix(filepath.Base(refPath), ".lab")
		estPath := filepath.Join(inDir, "estimate", id+".lab")

		m, err := convert(id, refPath, estPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting %s: %v\n", id, err)
			continue
		}

		outFile := filepath.Join(outDir, id+".yaml")
		if err := writeManifest(outFile, m); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outFile, err)
			continue
		}

		fmt.Printf("  -> %s (%d reference, %d estimated segments)\n", outFile, len(m.Reference), len(m.Estimate))
		converted++
	}

	fmt.Printf("\nDone! Converted %d of %d tracks into %s/\n", converted, len(refs), outDir)
}

func convert(id, refPath, estPath string) (bench.Manifest, error) {
	ref, err := bench.LoadLab(refPath)
	if err != nil {
		return bench.Manifest{}, fmt.Errorf("reference: %w", err)
	}
	est, err := bench.LoadLab(estPath)
	if err != nil {
		return bench.Manifest{}, fmt.Errorf("estimate: %w", err)
	}

	return bench.Manifest{
		ID:        id,
		Source:    refPath,
		Reference: ref,
		Estimate:  est,
	}, nil
}

func writeManifest(path string, m bench.Manifest) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(m); err != nil {
		return err
	}
	return encoder.Close()
}
