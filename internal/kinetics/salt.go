package kinetics

import "fmt"

const (
	// DebyeHuckelA is the limiting-law slope constant for water at 25 °C.
	DebyeHuckelA = 0.509

	SqrtIMax  = 0.5
	SqrtIStep = 0.01
	// SaltSamples covers [0, SqrtIMax] inclusive.
	SaltSamples = 51
)

// SaltParams holds the reactant charges.
type SaltParams struct {
	ZA, ZB int
}

// Product returns zA·zB.
func (p SaltParams) Product() int {
	return p.ZA * p.ZB
}

// ChargeClass is the sign category of a charge product.
type ChargeClass int

const (
	ChargeZero ChargeClass = iota
	ChargePositive
	ChargeNegative
)

func (c ChargeClass) String() string {
	switch c {
	case ChargePositive:
		return "positive"
	case ChargeNegative:
		return "negative"
	default:
		return "zero"
	}
}

// ClassOf returns the sign category of a charge product.
func ClassOf(product int) ChargeClass {
	switch {
	case product > 0:
		return ChargePositive
	case product < 0:
		return ChargeNegative
	default:
		return ChargeZero
	}
}

// Reference is a fixed comparison line for a canonical charge product.
type Reference struct {
	Name    string
	Product int
	Curve   Curve
}

// SaltEffectPlot is the result of [SaltEffect].
type SaltEffectPlot struct {
	Params     SaltParams
	Product    int
	Class      ChargeClass
	Name       string
	Curve      Curve
	References [2]Reference
}

// LogRateRatio returns log10(k/k₀) = 2·A·zA·zB·√I.
func LogRateRatio(product int, sqrtI float64) float64 {
	return 2 * DebyeHuckelA * float64(product) * sqrtI
}

// SaltEffect samples the limiting law over √I ∈ [0, 0.5] in 0.01 steps
// and adds the (+1)(+1) and (+1)(-1) reference lines.
func SaltEffect(p SaltParams) SaltEffectPlot {
	product := p.Product()
	curve := make(Curve, SaltSamples)
	for i := range curve {
		sqrtI := float64(i) * SqrtIStep
		curve[i] = Point{X: sqrtI, Y: LogRateRatio(product, sqrtI)}
	}

	return SaltEffectPlot{
		Params:  p,
		Product: product,
		Class:   ClassOf(product),
		Name:    fmt.Sprintf("zA=%d, zB=%d", p.ZA, p.ZB),
		Curve:   curve,
		References: [2]Reference{
			reference("(+1)(+1)", 1),
			reference("(+1)(-1)", -1),
		},
	}
}

func reference(name string, product int) Reference {
	return Reference{
		Name:    name,
		Product: product,
		Curve: Curve{
			{X: 0, Y: LogRateRatio(product, 0)},
			{X: SqrtIMax, Y: LogRateRatio(product, SqrtIMax)},
		},
	}
}
