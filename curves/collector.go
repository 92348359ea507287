package curves

// Collector accumulates custom-curve points as the user enters them.
// Entry is all-or-nothing: a point whose x fails to increase discards
// everything collected so far, so no partial curve survives a bad
// sequence.
type Collector struct {
	points []Point
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{points: make([]Point, 0, MaxPoints)}
}

// Add appends a point. The first point is exempt from the ordering
// check. On ErrPointOrder the collector resets to empty. On
// ErrTooManyPoints the collected points are kept unchanged.
func (c *Collector) Add(p Point) error {
	if len(c.points) >= MaxPoints {
		return ErrTooManyPoints
	}
	if n := len(c.points); n > 0 && p.X <= c.points[n-1].X {
		c.points = c.points[:0]
		return ErrPointOrder
	}
	c.points = append(c.points, p)
	return nil
}

// Len returns the number of points collected so far.
func (c *Collector) Len() int { return len(c.points) }

// Full reports whether the collector has reached MaxPoints.
func (c *Collector) Full() bool { return len(c.points) >= MaxPoints }

// Points returns the points collected so far, for preview rendering
// while entry is still in progress.
func (c *Collector) Points() []Point { return c.points }

// Reset discards all collected points.
func (c *Collector) Reset() { c.points = c.points[:0] }

// Build finishes entry and returns the curve. Fewer than two points
// is ErrEmptyCurve; the collector keeps its points either way so the
// caller decides whether to reset.
func (c *Collector) Build() (*Piecewise, error) {
	return NewPiecewise(c.points)
}
