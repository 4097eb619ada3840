package plot

import (
	"math"
	"testing"

	"github.com/matzehuels/swarmplot/pkg/coords"
	"github.com/matzehuels/swarmplot/pkg/errors"
)

func TestAreaValidation(t *testing.T) {
	if _, err := NewArea([]float64{1}, []float64{1}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("single point: error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
	if _, err := NewArea([]float64{1, 2}, []float64{1}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("length mismatch: error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
	if _, err := NewArea([]float64{1, 2}, []float64{1, math.Inf(1)}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("non-finite y: error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestAreaFillsToBaseline(t *testing.T) {
	a, err := NewArea([]float64{0, 1, 2, 3}, []float64{1, 3, 2, 4})
	if err != nil {
		t.Fatalf("NewArea: %v", err)
	}
	c := canvasFor(t, 100, 100)
	if err := a.Plot(c, coords.Identity()); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if c.OpCount() != 2 {
		t.Errorf("OpCount = %d, want fill + edge", c.OpCount())
	}
}

func TestAreaSmoothDrawsSpline(t *testing.T) {
	a, err := NewArea([]float64{0, 1, 2, 3}, []float64{1, 3, 2, 4})
	if err != nil {
		t.Fatalf("NewArea: %v", err)
	}
	a.Smooth = true
	a.Fill = nil

	c := canvasFor(t, 100, 100)
	if err := a.Plot(c, coords.Identity()); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if c.OpCount() != 1 {
		t.Errorf("OpCount = %d, want edge only with nil fill", c.OpCount())
	}
}

func TestFunctionSamplesAtResolution(t *testing.T) {
	f, err := NewFunction(func(x float64) float64 { return x * x }, 0, 10)
	if err != nil {
		t.Fatalf("NewFunction: %v", err)
	}
	c := canvasFor(t, 100, 100)
	if err := f.Plot(c, coords.Identity()); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if c.OpCount() != 1 {
		t.Errorf("OpCount = %d, want 1 stroke", c.OpCount())
	}
}

func TestFunctionBreaksAtPoles(t *testing.T) {
	sys, err := coords.NewLinear(-2, 2, -10, 10, 200, 200)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}
	f, err := NewFunction(func(x float64) float64 { return 1 / x }, -2, 2)
	if err != nil {
		t.Fatalf("NewFunction: %v", err)
	}

	c := canvasFor(t, 200, 200)
	if err := f.Plot(c, sys); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if c.OpCount() != 1 {
		t.Errorf("OpCount = %d, want 1 stroke with multiple subpaths", c.OpCount())
	}
}

func TestFunctionAllNonFiniteFails(t *testing.T) {
	f, err := NewFunction(func(float64) float64 { return math.NaN() }, 0, 1)
	if err != nil {
		t.Fatalf("NewFunction: %v", err)
	}
	err = f.Plot(canvasFor(t, 100, 100), coords.Identity())
	if !errors.Is(err, errors.ErrCodeInvalidData) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidData)
	}
}

func TestFunctionEmptyRangeFails(t *testing.T) {
	if _, err := NewFunction(func(x float64) float64 { return x }, 5, 5); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}
