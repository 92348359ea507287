// Package curves defines the curve abstraction the approximator and
// renderer consume: two fixed analytic curves and a piecewise-linear
// curve built from user-entered points.
package curves

// Kind identifies the active curve selection.
type Kind uint8

const (
	KindNone Kind = iota
	KindLinear
	KindQuadratic
	KindCustom
)

// String returns the selection name for the status readout.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindQuadratic:
		return "quadratic"
	case KindCustom:
		return "custom"
	default:
		return "none"
	}
}

// Curve evaluates y for a domain x. Analytic curves never fail; the
// piecewise curve fails outside its point range.
type Curve interface {
	Evaluate(x float64) (float64, error)
}

// Linear is y = x/2.
type Linear struct{}

func (Linear) Evaluate(x float64) (float64, error) { return x / 2, nil }

// Quadratic is y = x*x. Values leave the visible window past
// x ≈ 3.16; that is clipped at render time, not an error.
type Quadratic struct{}

func (Quadratic) Evaluate(x float64) (float64, error) { return x * x, nil }
