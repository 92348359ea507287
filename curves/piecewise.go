package curves

// Point is a domain-space coordinate pair.
type Point struct {
	X, Y float64
}

// MaxPoints caps the point list of a custom curve.
const MaxPoints = 10

// Piecewise interpolates linearly between an ordered point list.
// Undefined outside [points[0].X, points[n-1].X].
type Piecewise struct {
	points []Point
}

// NewPiecewise builds a curve from at least two points with strictly
// increasing x. The input slice is copied; the curve is immutable.
func NewPiecewise(points []Point) (*Piecewise, error) {
	if len(points) < 2 {
		return nil, ErrEmptyCurve
	}
	for i := 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			return nil, ErrPointOrder
		}
	}
	ps := make([]Point, len(points))
	copy(ps, points)
	return &Piecewise{points: ps}, nil
}

// Points returns the defining vertices in order. Callers must not
// modify the returned slice.
func (c *Piecewise) Points() []Point { return c.points }

// Evaluate finds the segment containing x and interpolates.
func (c *Piecewise) Evaluate(x float64) (float64, error) {
	if len(c.points) < 2 {
		return 0, ErrEmptyCurve
	}
	for i := 0; i < len(c.points)-1; i++ {
		p0, p1 := c.points[i], c.points[i+1]
		if p0.X <= x && x <= p1.X {
			return lerpY(p0, p1, x), nil
		}
	}
	return 0, ErrOutOfDomain
}

// lerpY returns the y value at x on the segment p0-p1.
func lerpY(p0, p1 Point, x float64) float64 {
	return p0.Y + (x-p0.X)*((p1.Y-p0.Y)/(p1.X-p0.X))
}
