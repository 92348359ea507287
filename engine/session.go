// Package engine owns the single live session: the curve selection,
// subdivision count, endpoint rule and custom point entry, plus the
// per-frame approximation step. The session value is written only by
// input handling and read only by the frame step, both on the main
// loop goroutine, so no locking is involved.
package engine

import (
	"fmt"

	"github.com/lixenwraith/riemann-tutor/curves"
	"github.com/lixenwraith/riemann-tutor/grid"
	"github.com/lixenwraith/riemann-tutor/riemann"
)

// Session is the explicitly owned state value that replaces ambient
// globals: everything a frame needs flows through it.
type Session struct {
	Kind  curves.Kind
	Curve curves.Curve // nil while no curve is active
	Count int          // subdivision count, 0 = rectangles off
	Rule  riemann.Rule

	// Custom point entry in progress. The collector survives across
	// frames; the curve is only built once entry finishes.
	Collector *curves.Collector
	Entering  bool

	// A, B bound the approximation interval for analytic curves.
	A, B float64

	// Status is a transient message for the status strip, cleared on
	// the next accepted input.
	Status string
}

// NewSession starts with no curve selected and rectangles off.
func NewSession() *Session {
	return &Session{
		Collector: curves.NewCollector(),
		A:         0,
		B:         grid.Units,
	}
}

// Select activates one of the analytic curves and drops any custom
// entry in progress.
func (s *Session) Select(kind curves.Kind) {
	s.Collector.Reset()
	s.Entering = false
	s.Status = ""

	switch kind {
	case curves.KindLinear:
		s.Kind = kind
		s.Curve = curves.Linear{}
	case curves.KindQuadratic:
		s.Kind = kind
		s.Curve = curves.Quadratic{}
	default:
		s.clearCurve()
	}
}

// BeginCustom starts custom point entry from scratch.
func (s *Session) BeginCustom() {
	s.Collector.Reset()
	s.Entering = true
	s.Kind = curves.KindCustom
	s.Curve = nil
	s.Status = ""
}

// AddPoint feeds one entered point to the collector. An ordering
// violation aborts the whole entry and reverts to the no-curve state;
// the caller learns about it through the returned error. full reports
// that the point limit is reached and entry should finish.
func (s *Session) AddPoint(p curves.Point) (full bool, err error) {
	if err := s.Collector.Add(p); err != nil {
		s.abortCustom(err)
		return false, err
	}
	s.Status = fmt.Sprintf("point %d: (%g, %g)", s.Collector.Len(), p.X, p.Y)
	return s.Collector.Full(), nil
}

// FinishCustom ends point entry and builds the curve. Fewer than two
// points reverts to the no-curve state.
func (s *Session) FinishCustom() error {
	s.Entering = false
	curve, err := s.Collector.Build()
	if err != nil {
		s.abortCustom(err)
		return err
	}
	s.Curve = curve
	s.Status = fmt.Sprintf("custom curve: %d points", s.Collector.Len())
	return nil
}

// CancelCustom abandons point entry without an error message.
func (s *Session) CancelCustom() {
	s.Collector.Reset()
	s.clearCurve()
	s.Status = ""
}

func (s *Session) abortCustom(err error) {
	s.Collector.Reset()
	s.clearCurve()
	s.Status = err.Error()
}

func (s *Session) clearCurve() {
	s.Kind = curves.KindNone
	s.Curve = nil
	s.Count = 0
	s.Entering = false
}

// Clear drops the active curve and resets rectangles.
func (s *Session) Clear() {
	s.Collector.Reset()
	s.clearCurve()
	s.Rule = riemann.RuleNone
	s.Status = ""
}

// SetCount stores the subdivision count. Negative input collapses to
// the 0 "off" state.
func (s *Session) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	s.Count = n
	s.Status = ""
}

// SetRule stores the endpoint rule.
func (s *Session) SetRule(r riemann.Rule) {
	s.Rule = r
	s.Status = ""
}

// Step recomputes the frame's approximation from current state. It is
// cheap enough to run unconditionally every frame; nothing is cached
// between frames.
func (s *Session) Step() riemann.Approximation {
	switch {
	case s.Kind == curves.KindCustom && s.Curve != nil:
		pw, ok := s.Curve.(*curves.Piecewise)
		if !ok {
			return riemann.Approximation{}
		}
		return riemann.ComputePiecewise(pw.Points(), s.Rule)
	case s.Curve != nil:
		return riemann.Compute(s.Curve, s.A, s.B, s.Count, s.Rule)
	default:
		return riemann.Approximation{}
	}
}
