package canvas

import (
	"github.com/matzehuels/swarmplot/pkg/geom"
)

// SegmentOp identifies a path segment kind.
type SegmentOp int

const (
	OpMoveTo SegmentOp = iota
	OpLineTo
	OpCubicTo
	OpClose
)

// Segment is one drawing instruction of a path. CubicTo uses all three
// points (two controls plus the end point); MoveTo and LineTo use only P3.
type Segment struct {
	Op         SegmentOp
	P1, P2, P3 geom.Point
}

// Path is a sequence of move/line/cubic segments in plot space.
type Path struct {
	Segments []Segment
}

// NewPath returns an empty path.
func NewPath() *Path { return &Path{} }

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(pt geom.Point) *Path {
	p.Segments = append(p.Segments, Segment{Op: OpMoveTo, P3: pt})
	return p
}

// LineTo appends a straight segment to pt.
func (p *Path) LineTo(pt geom.Point) *Path {
	p.Segments = append(p.Segments, Segment{Op: OpLineTo, P3: pt})
	return p
}

// CubicTo appends a cubic Bézier segment with controls c1, c2 ending at pt.
func (p *Path) CubicTo(c1, c2, pt geom.Point) *Path {
	p.Segments = append(p.Segments, Segment{Op: OpCubicTo, P1: c1, P2: c2, P3: pt})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.Segments = append(p.Segments, Segment{Op: OpClose})
	return p
}

// Polyline appends straight segments through pts, starting a new subpath at
// the first point.
func (p *Path) Polyline(pts []geom.Point) *Path {
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	return p
}

// SmoothThrough appends a C2-continuous cubic spline passing through every
// point in pts, starting a new subpath at the first point. With fewer than
// three points it degrades to a polyline.
func (p *Path) SmoothThrough(pts []geom.Point) *Path {
	if len(pts) < 3 {
		return p.Polyline(pts)
	}

	c1, c2 := splineControls(pts)
	p.MoveTo(pts[0])
	for i := 0; i+1 < len(pts); i++ {
		p.CubicTo(c1[i], c2[i], pts[i+1])
	}
	return p
}

// splineControls solves the tridiagonal system for the control points of a
// natural cubic Bézier spline through pts.
func splineControls(pts []geom.Point) (c1, c2 []geom.Point) {
	n := len(pts) - 1
	c1 = make([]geom.Point, n)
	c2 = make([]geom.Point, n)

	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	rx := make([]float64, n)
	ry := make([]float64, n)

	b[0], c[0] = 2, 1
	rx[0] = pts[0].X + 2*pts[1].X
	ry[0] = pts[0].Y + 2*pts[1].Y
	for i := 1; i < n-1; i++ {
		a[i], b[i], c[i] = 1, 4, 1
		rx[i] = 4*pts[i].X + 2*pts[i+1].X
		ry[i] = 4*pts[i].Y + 2*pts[i+1].Y
	}
	a[n-1], b[n-1] = 2, 7
	rx[n-1] = 8*pts[n-1].X + pts[n].X
	ry[n-1] = 8*pts[n-1].Y + pts[n].Y

	// Thomas algorithm, forward sweep then back substitution.
	for i := 1; i < n; i++ {
		m := a[i] / b[i-1]
		b[i] -= m * c[i-1]
		rx[i] -= m * rx[i-1]
		ry[i] -= m * ry[i-1]
	}
	c1[n-1] = geom.Point{X: rx[n-1] / b[n-1], Y: ry[n-1] / b[n-1]}
	for i := n - 2; i >= 0; i-- {
		c1[i] = geom.Point{
			X: (rx[i] - c[i]*c1[i+1].X) / b[i],
			Y: (ry[i] - c[i]*c1[i+1].Y) / b[i],
		}
	}

	for i := 0; i < n-1; i++ {
		c2[i] = geom.Point{X: 2*pts[i+1].X - c1[i+1].X, Y: 2*pts[i+1].Y - c1[i+1].Y}
	}
	c2[n-1] = geom.Point{X: (pts[n].X + c1[n-1].X) / 2, Y: (pts[n].Y + c1[n-1].Y) / 2}
	return c1, c2
}
