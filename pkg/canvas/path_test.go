package canvas

import (
	"math"
	"testing"

	"github.com/matzehuels/swarmplot/pkg/geom"
)

func TestPolyline(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}
	p := NewPath().Polyline(pts)

	if len(p.Segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(p.Segments))
	}
	if p.Segments[0].Op != OpMoveTo {
		t.Error("first segment is not MoveTo")
	}
	for _, s := range p.Segments[1:] {
		if s.Op != OpLineTo {
			t.Error("subsequent segment is not LineTo")
		}
	}
}

func TestSmoothThroughShortInputs(t *testing.T) {
	two := []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 5}}
	p := NewPath().SmoothThrough(two)
	if len(p.Segments) != 2 || p.Segments[1].Op != OpLineTo {
		t.Errorf("two points should degrade to a line, got %+v", p.Segments)
	}

	if p := NewPath().SmoothThrough(nil); len(p.Segments) != 0 {
		t.Errorf("empty input produced %d segments", len(p.Segments))
	}
}

func TestSmoothThroughInterpolates(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}, {X: 30, Y: 10}}
	p := NewPath().SmoothThrough(pts)

	// MoveTo + one cubic per span.
	if len(p.Segments) != 4 {
		t.Fatalf("got %d segments, want 4", len(p.Segments))
	}
	if p.Segments[0].P3 != pts[0] {
		t.Errorf("start = %v, want %v", p.Segments[0].P3, pts[0])
	}
	for i, s := range p.Segments[1:] {
		if s.Op != OpCubicTo {
			t.Fatalf("segment %d is not CubicTo", i+1)
		}
		if s.P3 != pts[i+1] {
			t.Errorf("cubic %d ends at %v, want %v", i, s.P3, pts[i+1])
		}
	}
}

func TestSmoothThroughIsC1Continuous(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 20}, {X: 25, Y: 5}, {X: 40, Y: 15}, {X: 50, Y: 0}}
	p := NewPath().SmoothThrough(pts)

	// At every interior knot the incoming and outgoing tangents must be
	// collinear: knot - c2(prev) == c1(next) - knot.
	for i := 1; i+1 < len(p.Segments); i++ {
		prev, next := p.Segments[i], p.Segments[i+1]
		knot := prev.P3
		in := knot.Sub(prev.P2)
		out := next.P1.Sub(knot)
		if math.Abs(in.X-out.X) > 1e-9 || math.Abs(in.Y-out.Y) > 1e-9 {
			t.Errorf("tangent break at knot %d: in=%v out=%v", i, in, out)
		}
	}
}
