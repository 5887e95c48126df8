package anim

import (
	"math"
	"math/rand"
)

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Lerp moves from p toward q by fraction t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Oscillation maps elapsed seconds onto a smooth periodic value in [0, 1].
func Oscillation(elapsed, speed, phase float64) float64 {
	return (math.Sin(elapsed*speed*20+phase) + 1) / 2
}

// Particle is one animated body. The concrete type is *PairParticle in
// associative mode and *SplittingParticle in dissociative mode.
type Particle interface {
	Mode() Mode
	Oscillation(elapsed float64) float64
	draw(s Surface, t float64, st *Style)
}

// PairParticle is two bodies converging on a shared target.
type PairParticle struct {
	A, B   Point
	Target Point
	Phase  float64
	Speed  float64
}

// PairFrame is the geometry of a pair at one instant.
type PairFrame struct {
	A, B  Point
	Bond  bool
	Label bool
}

func (p *PairParticle) Mode() Mode { return Associative }

func (p *PairParticle) Oscillation(elapsed float64) float64 {
	return Oscillation(elapsed, p.Speed, p.Phase)
}

// Geometry interpolates both origins toward target∓offset by t.
func (p *PairParticle) Geometry(t float64, st *Style) PairFrame {
	left := Point{X: p.Target.X - st.PairOffset, Y: p.Target.Y}
	right := Point{X: p.Target.X + st.PairOffset, Y: p.Target.Y}
	return PairFrame{
		A:     p.A.Lerp(left, t),
		B:     p.B.Lerp(right, t),
		Bond:  t > st.BondThreshold,
		Label: t > st.LabelThreshold,
	}
}

func (p *PairParticle) draw(s Surface, t float64, st *Style) {
	f := p.Geometry(t, st)
	s.FillCircle(f.A.X, f.A.Y, st.Radius, st.AssociativeColor)
	s.FillCircle(f.B.X, f.B.Y, st.Radius, st.AssociativeColor)
	if !f.Bond {
		return
	}
	s.Line(f.A.X, f.A.Y, f.B.X, f.B.Y, st.AssociativeBondWidth, st.AssociativeColor)
	if f.Label {
		m := f.A.Mid(f.B)
		s.Text(m.X-8, m.Y-10, st.Label, st.LabelColor)
	}
}

// SplittingParticle is one body whose halves oscillate apart along a
// fixed axis.
type SplittingParticle struct {
	Center Point
	Angle  float64
	Phase  float64
	Speed  float64
}

// SplitFrame is the geometry of a splitting body at one instant.
type SplitFrame struct {
	A, B       Point
	Separation float64
	Bond       bool
	BondWidth  float64
}

func (p *SplittingParticle) Mode() Mode { return Dissociative }

func (p *SplittingParticle) Oscillation(elapsed float64) float64 {
	return Oscillation(elapsed, p.Speed, p.Phase)
}

// Geometry places the two halves Separation apart about the center.
func (p *SplittingParticle) Geometry(t float64, st *Style) SplitFrame {
	sep := st.MinSeparation + t*(st.MaxSeparation-st.MinSeparation)
	dx := math.Cos(p.Angle) * sep / 2
	dy := math.Sin(p.Angle) * sep / 2
	f := SplitFrame{
		A:          Point{X: p.Center.X - dx, Y: p.Center.Y - dy},
		B:          Point{X: p.Center.X + dx, Y: p.Center.Y + dy},
		Separation: sep,
		Bond:       t < st.BondThreshold,
	}
	if f.Bond {
		f.BondWidth = BondWidth(t, st.DissociativeBondWidth)
	}
	return f
}

// BondWidth is the stroke width of a stretching bond: full at t=0 and
// thinning linearly as t grows.
func BondWidth(t, full float64) float64 {
	return full * (1 - t)
}

func (p *SplittingParticle) draw(s Surface, t float64, st *Style) {
	f := p.Geometry(t, st)
	s.FillCircle(f.A.X, f.A.Y, st.Radius, st.DissociativeColor)
	s.FillCircle(f.B.X, f.B.Y, st.Radius, st.DissociativeColor)
	if f.Bond {
		s.Line(f.A.X, f.A.Y, f.B.X, f.B.Y, f.BondWidth, st.DissociativeColor)
		return
	}
	s.Text(p.Center.X-8, p.Center.Y-10, st.Label, st.LabelColor)
}

func randomPoint(rng *rand.Rand, w, h float64) Point {
	return Point{X: below(rng.Float64()*w, w), Y: below(rng.Float64()*h, h)}
}

// below keeps v inside [0, limit) when the product rounded up.
func below(v, limit float64) float64 {
	if v >= limit {
		return math.Nextafter(limit, 0)
	}
	return v
}

func randomPhase(rng *rand.Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}

func randomSpeed(rng *rand.Rand) float64 {
	return 0.02 + rng.Float64()*0.02
}

func newPair(rng *rand.Rand, w, h float64) *PairParticle {
	return &PairParticle{
		A:      randomPoint(rng, w, h),
		B:      randomPoint(rng, w, h),
		Target: randomPoint(rng, w, h),
		Phase:  randomPhase(rng),
		Speed:  randomSpeed(rng),
	}
}

func newSplitting(rng *rand.Rand, w, h float64) *SplittingParticle {
	return &SplittingParticle{
		Center: randomPoint(rng, w, h),
		Angle:  rng.Float64() * 2 * math.Pi,
		Phase:  randomPhase(rng),
		Speed:  randomSpeed(rng),
	}
}
