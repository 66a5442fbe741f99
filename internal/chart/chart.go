// Package chart renders protein requirement curves as PNG images.
package chart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"lg/protein-calc-go-api/internal/protein"
)

// Weight axis covered by RenderProteinCurve.
const (
	MinWeightKg  = 40
	MaxWeightKg  = 150
	WeightStepKg = 5
)

// Params selects the curve to draw.
type Params struct {
	ActivityLevel protein.ActivityLevel
	Goal          protein.Goal
	Age           int
}

// Series holds the daily target and range for each charted body weight.
type Series struct {
	Optimal plotter.XYs
	Min     plotter.XYs
	Max     plotter.XYs
}

// BuildSeries computes the chart points using the protein calculator.
func BuildSeries(p Params) (Series, error) {
	n := (MaxWeightKg-MinWeightKg)/WeightStepKg + 1
	s := Series{
		Optimal: make(plotter.XYs, n),
		Min:     make(plotter.XYs, n),
		Max:     make(plotter.XYs, n),
	}
	for i := 0; i < n; i++ {
		w := float64(MinWeightKg + i*WeightStepKg)
		daily, err := protein.CalculateDailyProtein(w, p.ActivityLevel, p.Goal, p.Age)
		if err != nil {
			return Series{}, err
		}
		rng, err := protein.CalculateProteinRange(w, p.ActivityLevel, p.Goal, p.Age)
		if err != nil {
			return Series{}, err
		}
		s.Optimal[i].X, s.Optimal[i].Y = w, daily
		s.Min[i].X, s.Min[i].Y = w, float64(rng.Min)
		s.Max[i].X, s.Max[i].Y = w, float64(rng.Max)
	}
	return s, nil
}

// RenderProteinCurve writes a PNG chart of daily protein against body weight.
func RenderProteinCurve(w io.Writer, p Params) error {
	s, err := BuildSeries(p)
	if err != nil {
		return err
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Daily protein: %s, %s, age %d", p.ActivityLevel, p.Goal, p.Age)
	pl.X.Label.Text = "Body weight (kg)"
	pl.Y.Label.Text = "Protein (g/day)"
	pl.Add(plotter.NewGrid())

	optimal, err := plotter.NewLine(s.Optimal)
	if err != nil {
		return fmt.Errorf("optimal line: %w", err)
	}
	optimal.Color = color.RGBA{R: 16, G: 185, B: 129, A: 255}
	optimal.Width = vg.Points(2)

	lower, err := plotter.NewLine(s.Min)
	if err != nil {
		return fmt.Errorf("min line: %w", err)
	}
	lower.Color = color.RGBA{R: 107, G: 114, B: 128, A: 255}
	lower.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	upper, err := plotter.NewLine(s.Max)
	if err != nil {
		return fmt.Errorf("max line: %w", err)
	}
	upper.Color = lower.Color
	upper.Dashes = lower.Dashes

	pl.Add(lower, upper, optimal)
	pl.Legend.Add("target", optimal)
	pl.Legend.Add("range", lower)
	pl.Legend.Top = true
	pl.Legend.Left = true

	writerTo, err := pl.WriterTo(8*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if _, err := writerTo.WriteTo(w); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
