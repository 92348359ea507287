package curves

import (
	"errors"
	"math"
	"testing"
)

func TestNewPiecewise(t *testing.T) {
	tests := []struct {
		name    string
		points  []Point
		wantErr error
	}{
		{"Two points", []Point{{0, 0}, {2, 4}}, nil},
		{"No points", nil, ErrEmptyCurve},
		{"One point", []Point{{1, 1}}, ErrEmptyCurve},
		{"Decreasing x", []Point{{0, 0}, {2, 4}, {1, 1}}, ErrPointOrder},
		{"Repeated x", []Point{{0, 0}, {0, 4}}, ErrPointOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPiecewise(tt.points)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewPiecewise() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPiecewiseEvaluate(t *testing.T) {
	c, err := NewPiecewise([]Point{{0, 0}, {2, 4}, {4, 2}})
	if err != nil {
		t.Fatalf("NewPiecewise: %v", err)
	}

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"First vertex", 0, 0},
		{"Mid first segment", 1, 2},
		{"Shared vertex", 2, 4},
		{"Mid second segment", 3, 3},
		{"Last vertex", 4, 2},
		{"Quarter point", 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Evaluate(tt.x)
			if err != nil {
				t.Fatalf("Evaluate(%v) returned error: %v", tt.x, err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestPiecewiseEvaluateOutOfDomain(t *testing.T) {
	c, err := NewPiecewise([]Point{{1, 1}, {3, 5}})
	if err != nil {
		t.Fatalf("NewPiecewise: %v", err)
	}

	for _, x := range []float64{0, 0.999, 3.001, 10} {
		if _, err := c.Evaluate(x); !errors.Is(err, ErrOutOfDomain) {
			t.Errorf("Evaluate(%v) error = %v, want ErrOutOfDomain", x, err)
		}
	}
}

func TestPiecewiseImmutable(t *testing.T) {
	src := []Point{{0, 0}, {2, 4}}
	c, err := NewPiecewise(src)
	if err != nil {
		t.Fatalf("NewPiecewise: %v", err)
	}

	src[1].Y = 99
	got, err := c.Evaluate(2)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != 4 {
		t.Errorf("curve shares caller slice: Evaluate(2) = %v, want 4", got)
	}
}

func TestCollectorDiscardOnOrderViolation(t *testing.T) {
	c := NewCollector()

	// (0,0), (2,4) accepted; (1,1) violates ordering and must abort
	// the whole collection.
	if err := c.Add(Point{0, 0}); err != nil {
		t.Fatalf("Add first: %v", err)
	}
	if err := c.Add(Point{2, 4}); err != nil {
		t.Fatalf("Add second: %v", err)
	}
	if err := c.Add(Point{1, 1}); !errors.Is(err, ErrPointOrder) {
		t.Fatalf("Add third error = %v, want ErrPointOrder", err)
	}

	if c.Len() != 0 {
		t.Errorf("collector kept %d points after violation, want 0", c.Len())
	}
	if _, err := c.Build(); !errors.Is(err, ErrEmptyCurve) {
		t.Errorf("Build after violation error = %v, want ErrEmptyCurve", err)
	}
}

func TestCollectorCapacity(t *testing.T) {
	c := NewCollector()
	for i := 0; i < MaxPoints; i++ {
		if err := c.Add(Point{X: float64(i), Y: 1}); err != nil {
			t.Fatalf("Add point %d: %v", i, err)
		}
	}

	if !c.Full() {
		t.Error("collector not full after MaxPoints adds")
	}
	if err := c.Add(Point{X: 100, Y: 1}); !errors.Is(err, ErrTooManyPoints) {
		t.Errorf("Add past limit error = %v, want ErrTooManyPoints", err)
	}
	if c.Len() != MaxPoints {
		t.Errorf("overflow add changed length to %d", c.Len())
	}
}

func TestCollectorBuild(t *testing.T) {
	c := NewCollector()
	if err := c.Add(Point{0, 0}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := c.Build(); !errors.Is(err, ErrEmptyCurve) {
		t.Errorf("Build with one point error = %v, want ErrEmptyCurve", err)
	}

	if err := c.Add(Point{2, 4}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	curve, err := c.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got, err := curve.Evaluate(1)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != 2 {
		t.Errorf("Evaluate(1) = %v, want 2", got)
	}
}
