package plot

import (
	"fmt"

	"github.com/san-kum/tslab/internal/kinetics"
	"github.com/san-kum/tslab/internal/palette"
)

// Dash styles for series.
type Dash int

const (
	Solid Dash = iota
	Dotted
)

// Series is one styled line.
type Series struct {
	Name  string
	Curve kinetics.Curve
	Color string
	Width float64
	Dash  Dash
}

// Figure is everything a renderer needs to draw one chart.
type Figure struct {
	Title       string
	XLabel      string
	YLabel      string
	XPrecision  int
	Series      []Series
	Annotations []kinetics.Annotation
	Legend      bool
}

// EyringFigure describes the Eyring plot.
func EyringFigure(p kinetics.EyringPlot) Figure {
	return Figure{
		Title:      "Eyring Plot: ln(k/T) vs 1/T",
		XLabel:     "1/T (K⁻¹)",
		YLabel:     "ln(k/T)",
		XPrecision: 4,
		Series: []Series{{
			Name:  "Eyring Plot",
			Curve: p.Curve,
			Color: palette.Blue,
			Width: 3,
		}},
		Annotations: []kinetics.Annotation{p.Annotation},
	}
}

// SaltEffectFigure describes the kinetic salt effect plot. The reference
// lines are drawn first so the selected series stays on top.
func SaltEffectFigure(p kinetics.SaltEffectPlot) Figure {
	refColors := [2]string{palette.Blue, palette.Red}
	series := make([]Series, 0, 3)
	for i, ref := range p.References {
		series = append(series, Series{
			Name:  ref.Name,
			Curve: ref.Curve,
			Color: refColors[i],
			Width: 1,
			Dash:  Dotted,
		})
	}
	series = append(series, Series{
		Name:  p.Name,
		Curve: p.Curve,
		Color: palette.ForProduct(p.Product),
		Width: 4,
	})

	return Figure{
		Title:      fmt.Sprintf("Salt Effect (z_A z_B = %d)", p.Product),
		XLabel:     "√I (M½)",
		YLabel:     "log(k/k₀)",
		XPrecision: 2,
		Series:     series,
		Legend:     true,
	}
}
