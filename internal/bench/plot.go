package bench

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotSweep draws precision, recall and F-measure against window size and
// saves the chart to path. The image format follows the file extension
// (.png, .svg, .pdf, ...).
func PlotSweep(results []SweepResult, path string) error {
	if len(results) == 0 {
		return errors.New("no sweep results to plot")
	}

	sorted := make([]SweepResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Window < sorted[j].Window })

	prec := make(plotter.XYs, len(sorted))
	rec := make(plotter.XYs, len(sorted))
	f := make(plotter.XYs, len(sorted))
	for i, r := range sorted {
		prec[i] = plotter.XY{X: r.Window, Y: r.Metrics.Precision}
		rec[i] = plotter.XY{X: r.Window, Y: r.Metrics.Recall}
		f[i] = plotter.XY{X: r.Window, Y: r.Metrics.FMeasure}
	}

	p := plot.New()
	p.Title.Text = "Boundary Detection vs. Window"
	p.X.Label.Text = "Window (s)"
	p.Y.Label.Text = "Score"
	p.Y.Min = 0
	p.Y.Max = 1
	p.Add(plotter.NewGrid())

	series := []struct {
		name  string
		pts   plotter.XYs
		color color.RGBA
	}{
		{"Precision", prec, color.RGBA{R: 31, G: 119, B: 180, A: 255}},
		{"Recall", rec, color.RGBA{R: 255, G: 127, B: 14, A: 255}},
		{"F-measure", f, color.RGBA{R: 44, G: 160, B: 44, A: 255}},
	}
	for _, s := range series {
		line, err := plotter.NewLine(s.pts)
		if err != nil {
			return fmt.Errorf("creating %s line: %w", s.name, err)
		}
		line.Color = s.color
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	p.Legend.Top = false
	p.Legend.Left = false

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}
