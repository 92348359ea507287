package curves

import "errors"

var (
	// ErrPointOrder reports a custom point whose x does not exceed
	// the previous point's x.
	ErrPointOrder = errors.New("curves: point x not strictly increasing")

	// ErrOutOfDomain reports evaluation outside the piecewise range.
	ErrOutOfDomain = errors.New("curves: x outside curve domain")

	// ErrEmptyCurve reports a piecewise curve with fewer than two points.
	ErrEmptyCurve = errors.New("curves: fewer than two points")

	// ErrTooManyPoints reports an attempt to collect past MaxPoints.
	ErrTooManyPoints = errors.New("curves: point limit reached")
)
