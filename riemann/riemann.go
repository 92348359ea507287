// Package riemann turns a curve, an interval, a subdivision count and
// an endpoint rule into rectangle geometry plus an area estimate.
//
// Two partition shapes exist. Analytic curves use a uniform N-way
// subdivision of the interval. Custom piecewise curves partition along
// the user's own points and ignore the subdivision count entirely.
package riemann

import "github.com/lixenwraith/riemann-tutor/curves"

// Rule selects the sample point inside each subinterval.
type Rule uint8

const (
	RuleNone Rule = iota
	RuleLeft
	RuleMid
	RuleRight
)

// String returns the rule name for the status readout.
func (r Rule) String() string {
	switch r {
	case RuleLeft:
		return "left"
	case RuleMid:
		return "mid"
	case RuleRight:
		return "right"
	default:
		return "none"
	}
}

// Rectangle is one approximation slab in domain units, anchored on
// the x axis.
type Rectangle struct {
	X0     float64
	Width  float64
	Height float64
}

// Approximation is the per-frame output: rectangle geometry in order
// plus the summed area estimate. The zero value is the valid
// "nothing drawn, area 0" state every error path degrades to.
type Approximation struct {
	Rectangles []Rectangle
	Area       float64
}

// Compute runs the uniform-subdivision sum for curve over [a, b].
// n <= 0 and RuleNone are valid off states yielding the zero
// Approximation; negative n is treated the same as zero. Evaluation
// errors also degrade to the zero Approximation so the frame loop
// never stalls on a bad curve.
func Compute(curve curves.Curve, a, b float64, n int, rule Rule) Approximation {
	if curve == nil || n <= 0 || rule == RuleNone {
		return Approximation{}
	}

	width := (b - a) / float64(n)
	rects := make([]Rectangle, 0, n)
	var area float64

	for i := 0; i < n; i++ {
		x0 := a + float64(i)*width
		s := x0
		switch rule {
		case RuleMid:
			s = x0 + width/2
		case RuleRight:
			s = x0 + width
		}

		h, err := curve.Evaluate(s)
		if err != nil {
			return Approximation{}
		}
		rects = append(rects, Rectangle{X0: x0, Width: width, Height: h})
		area += h * width
	}

	return Approximation{Rectangles: rects, Area: area}
}

// ComputePiecewise sums over the point list itself: one rectangle per
// segment, width taken from consecutive x values. RuleLeft samples
// the segment start, RuleMid the interpolated midpoint value (the
// endpoint average on a linear segment), RuleRight the segment end.
// Fewer than two points is the empty-curve degenerate case.
func ComputePiecewise(points []curves.Point, rule Rule) Approximation {
	if rule == RuleNone || len(points) < 2 {
		return Approximation{}
	}

	rects := make([]Rectangle, 0, len(points)-1)
	var area float64

	for i := 0; i < len(points)-1; i++ {
		p0, p1 := points[i], points[i+1]
		w := p1.X - p0.X

		var h float64
		switch rule {
		case RuleLeft:
			h = p0.Y
		case RuleMid:
			h = (p0.Y + p1.Y) / 2
		case RuleRight:
			h = p1.Y
		}

		rects = append(rects, Rectangle{X0: p0.X, Width: w, Height: h})
		area += h * w
	}

	return Approximation{Rectangles: rects, Area: area}
}
