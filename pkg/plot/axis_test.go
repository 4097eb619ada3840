package plot

import (
	"strings"
	"testing"

	"github.com/matzehuels/swarmplot/pkg/canvas"
	"github.com/matzehuels/swarmplot/pkg/coords"
	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/geom"
)

func TestAxisValidation(t *testing.T) {
	if _, err := NewAxis(geom.Vector{0, 0}, geom.Vector{0, 0}); !errors.Is(err, errors.ErrCodeInvalidDirection) {
		t.Errorf("coincident endpoints: error = %v, want %s", err, errors.ErrCodeInvalidDirection)
	}

	a, err := NewAxis(geom.Vector{0, 0}, geom.Vector{10, 0})
	if err != nil {
		t.Fatalf("NewAxis: %v", err)
	}
	a.Ticks = []coords.Tick{{Value: 5, Label: "5"}}
	// TickMin == TickMax leaves the tick range empty.
	if err := a.Plot(canvasFor(t, 100, 100), coords.Identity()); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty tick range: error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestAxisDrawsLineAndTickLabels(t *testing.T) {
	a, err := NewAxis(geom.Vector{0, 0}, geom.Vector{10, 0})
	if err != nil {
		t.Fatalf("NewAxis: %v", err)
	}
	a.Ticks = []coords.Tick{{Value: 0, Label: "0"}, {Value: 5, Label: "5"}, {Value: 10, Label: "10"}}
	a.TickMin, a.TickMax = 0, 10

	c := canvasFor(t, 100, 100)
	if err := a.Plot(c, coords.Identity()); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	// Three text ops plus the combined line/arrow/tick stroke.
	if c.OpCount() != 4 {
		t.Errorf("OpCount = %d, want 4", c.OpCount())
	}
}

func TestAxisNilStrokeDrawsNothing(t *testing.T) {
	a, err := NewAxis(geom.Vector{0, 0}, geom.Vector{10, 0})
	if err != nil {
		t.Fatalf("NewAxis: %v", err)
	}
	a.Stroke = nil

	c := canvasFor(t, 100, 100)
	if err := a.Plot(c, coords.Identity()); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if c.OpCount() != 0 {
		t.Errorf("OpCount = %d, want 0", c.OpCount())
	}
}

func TestAxisSamplesCurvedDirections(t *testing.T) {
	sys, err := coords.NewLinLog(coords.AxisLog, coords.AxisLinear, 1, 100, 0, 1, 200, 100)
	if err != nil {
		t.Fatalf("NewLinLog: %v", err)
	}

	// A diagonal across a log x axis bends, so the axis must be sampled
	// rather than drawn as one segment.
	a, err := NewAxis(geom.Vector{1, 0}, geom.Vector{100, 1})
	if err != nil {
		t.Fatalf("NewAxis: %v", err)
	}
	a.ArrowSize = 0

	c := canvasFor(t, 200, 100)
	if err := a.Plot(c, sys); err != nil {
		t.Fatalf("Plot: %v", err)
	}

	svg := string(c.SVG())
	if got := strings.Count(svg, "L "); got <= 2 {
		t.Errorf("curved axis serialized with %d line segments, want a sampled polyline", got)
	}
}

func TestGridConnectsSides(t *testing.T) {
	g, err := NewGrid(
		geom.Vector{0, 0}, geom.Vector{10, 0},
		geom.Vector{0, 10}, geom.Vector{10, 10},
		5,
	)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	c := canvasFor(t, 100, 100)
	if err := g.Plot(c, coords.Identity()); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if c.OpCount() != 1 {
		t.Errorf("OpCount = %d, want 1 combined stroke", c.OpCount())
	}
}

func TestGridValidation(t *testing.T) {
	_, err := NewGrid(geom.Vector{0, 0}, geom.Vector{10, 0}, geom.Vector{0, 10}, geom.Vector{10, 10}, 1)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("count 1: error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestLabelAnchorsAndRotation(t *testing.T) {
	l, err := NewLabel("hello", geom.Vector{5, 5})
	if err != nil {
		t.Fatalf("NewLabel: %v", err)
	}
	l.Angle = 1.2

	c := canvasFor(t, 100, 100)
	if err := l.Plot(c, coords.Identity()); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if c.OpCount() != 1 {
		t.Errorf("OpCount = %d, want 1", c.OpCount())
	}

	svg := string(c.SVG())
	if !strings.Contains(svg, "matrix(") {
		t.Error("rotated label should carry a matrix transform")
	}
	if !strings.Contains(svg, "hello") {
		t.Error("label text missing from output")
	}
}

func TestLabelExtentMatchesMeasure(t *testing.T) {
	l, err := NewLabel("width", geom.Vector{0, 0})
	if err != nil {
		t.Fatalf("NewLabel: %v", err)
	}
	c := canvasFor(t, 100, 100)
	w, h := l.Extent(c)
	mw, mh := c.MeasureText("width", canvas.Font{})
	if w != mw || h != mh {
		t.Errorf("Extent = %v,%v, MeasureText = %v,%v", w, h, mw, mh)
	}
}
