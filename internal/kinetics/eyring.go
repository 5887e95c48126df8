package kinetics

import (
	"fmt"
	"math"
)

const (
	GasConstant = 8.314          // J/(mol K)
	Boltzmann   = 1.380649e-23   // J/K
	Planck      = 6.62607015e-34 // J s

	EyringTMin  = 200.0
	EyringTMax  = 400.0
	EyringTStep = 10.0
)

// EyringParams holds the activation parameters.
type EyringParams struct {
	DeltaH float64 // kJ/mol
	DeltaS float64 // J/(mol K)
}

// Annotation marks a point on a curve with a label.
type Annotation struct {
	X, Y float64
	Text string
}

// EyringPlot is the result of [Eyring].
type EyringPlot struct {
	Params     EyringParams
	Curve      Curve
	Slope      float64 // -ΔH‡/R in K
	SlopeK     int     // Slope rounded to the nearest kelvin
	Annotation Annotation
}

// Intercept returns ΔS‡/R + ln(kB/h).
func (p EyringParams) Intercept() float64 {
	return p.DeltaS/GasConstant + math.Log(Boltzmann/Planck)
}

// Slope returns -ΔH‡/R in kelvin.
func (p EyringParams) Slope() float64 {
	return -(p.DeltaH * 1000 / GasConstant)
}

// Eyring samples ln(k/T) = -(ΔH‡/R)(1/T) + ΔS‡/R + ln(kB/h) for
// T = 200..400 K in 10 K steps. The curve is ordered by ascending 1/T.
func Eyring(p EyringParams) EyringPlot {
	n := int((EyringTMax-EyringTMin)/EyringTStep) + 1
	slope := p.Slope()
	intercept := p.Intercept()

	curve := make(Curve, n)
	for i := 0; i < n; i++ {
		// hottest first so that 1/T ascends
		temp := EyringTMax - float64(i)*EyringTStep
		invT := 1 / temp
		curve[i] = Point{X: invT, Y: slope*invT + intercept}
	}

	slopeK := int(math.Round(slope))
	mid := curve[len(curve)/2]

	return EyringPlot{
		Params: p,
		Curve:  curve,
		Slope:  slope,
		SlopeK: slopeK,
		Annotation: Annotation{
			X:    mid.X,
			Y:    mid.Y,
			Text: fmt.Sprintf("Slope = -ΔH‡/R = %d K", slopeK),
		},
	}
}
