package bench

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseLab reads MIREX-style labeled intervals: one "start end label" row
// per line, separated by whitespace. Blank lines and lines starting with #
// are skipped. The label may contain spaces.
func ParseLab(r io.Reader) ([]Segment, error) {
	var segments []Segment

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: want start, end and label, got %q", lineNo, line)
		}
		start, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: start: %w", lineNo, err)
		}
		end, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: end: %w", lineNo, err)
		}

		segments = append(segments, Segment{
			Start: start,
			End:   end,
			Label: strings.Join(fields[2:], " "),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning: %w", err)
	}

	return segments, nil
}

// LoadLab parses a .lab file.
func LoadLab(path string) ([]Segment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseLab(file)
}
