package kinetics

// Point is a single sample of a curve.
type Point struct {
	X, Y float64
}

// Curve is an ordered sequence of samples.
type Curve []Point

// XValues returns the x coordinates in order.
func (c Curve) XValues() []float64 {
	xs := make([]float64, len(c))
	for i, p := range c {
		xs[i] = p.X
	}
	return xs
}

// YValues returns the y coordinates in order.
func (c Curve) YValues() []float64 {
	ys := make([]float64, len(c))
	for i, p := range c {
		ys[i] = p.Y
	}
	return ys
}

// Slope returns the slope of the secant between samples i and j.
func (c Curve) Slope(i, j int) float64 {
	return (c[j].Y - c[i].Y) / (c[j].X - c[i].X)
}
