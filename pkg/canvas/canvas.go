// Package canvas is the vector drawing surface charts render onto. It
// records fill/stroke/text operations, each optionally tagged for
// downstream element identification, and serializes them with the SVG sink.
//
// The canvas keeps a save/restore transform stack so symbol glyphs can be
// placed at a computed point and size without recomputing their geometry:
//
//	c.Save()
//	c.Translate(pt.X, pt.Y)
//	c.Scale(size, size)
//	c.FillPath(unitCircle, color, tag)
//	c.Restore()
package canvas

import (
	"math"

	"github.com/matzehuels/swarmplot/pkg/fonts"
	"github.com/matzehuels/swarmplot/pkg/geom"
)

// Matrix is a 2D affine transform:
//
//	| A C E |
//	| B D F |
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix { return Matrix{A: 1, D: 1} }

// IsIdentity reports whether m is the identity transform.
func (m Matrix) IsIdentity() bool { return m == Identity() }

// Mul returns m·n (n applied first).
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply transforms a point by m.
func (m Matrix) Apply(p geom.Point) geom.Point {
	return geom.Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// TextAnchor controls horizontal text alignment relative to its anchor point.
type TextAnchor string

const (
	AnchorStart  TextAnchor = "start"
	AnchorMiddle TextAnchor = "middle"
	AnchorEnd    TextAnchor = "end"
)

// Font selects a family and size for text operations.
type Font struct {
	Family string
	Size   float64
}

// DefaultFont is used when an element leaves its font unset.
var DefaultFont = Font{Family: fonts.FamilySans, Size: 12}

type opKind int

const (
	opFillPath opKind = iota
	opStrokePath
	opFillText
	opStrokeText
)

// op is one recorded drawing instruction. Path points are already in device
// space; text keeps its anchor plus the capture-time transform so rotated
// labels serialize correctly.
type op struct {
	kind   opKind
	path   *Path
	fill   Color
	stroke Stroke
	text   string
	at     geom.Point
	font   Font
	anchor TextAnchor
	xform  Matrix
	tag    string
}

// Canvas records drawing operations for a fixed-size plot surface.
// A Canvas is not safe for concurrent use; render each figure on its own.
type Canvas struct {
	Width, Height float64

	ops   []op
	ctm   Matrix
	stack []Matrix
}

// New creates a canvas with the given device size.
func New(width, height float64) *Canvas {
	return &Canvas{Width: width, Height: height, ctm: Identity()}
}

// Save pushes the current transform onto the stack.
func (c *Canvas) Save() { c.stack = append(c.stack, c.ctm) }

// Restore pops the most recently saved transform. Restore without a matching
// Save resets to identity.
func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.ctm = c.stack[n-1]
		c.stack = c.stack[:n-1]
		return
	}
	c.ctm = Identity()
}

// Translate moves the origin by (dx, dy).
func (c *Canvas) Translate(dx, dy float64) {
	c.ctm = c.ctm.Mul(Matrix{A: 1, D: 1, E: dx, F: dy})
}

// Scale scales subsequent drawing by (sx, sy).
func (c *Canvas) Scale(sx, sy float64) {
	c.ctm = c.ctm.Mul(Matrix{A: sx, D: sy})
}

// Rotate rotates subsequent drawing by angle radians.
func (c *Canvas) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	c.ctm = c.ctm.Mul(Matrix{A: cos, B: sin, C: -sin, D: cos})
}

// FillPath records a filled path. The tag, if non-empty, becomes the id of
// the serialized element.
func (c *Canvas) FillPath(p *Path, fill Color, tag string) {
	c.ops = append(c.ops, op{kind: opFillPath, path: c.transformed(p), fill: fill, tag: tag})
}

// StrokePath records a stroked path.
func (c *Canvas) StrokePath(p *Path, stroke Stroke, tag string) {
	c.ops = append(c.ops, op{kind: opStrokePath, path: c.transformed(p), stroke: stroke, tag: tag})
}

// FillText records filled text anchored at pt.
func (c *Canvas) FillText(text string, pt geom.Point, font Font, fill Color, anchor TextAnchor, tag string) {
	c.ops = append(c.ops, op{
		kind: opFillText, text: text, at: pt, font: normFont(font),
		fill: fill, anchor: normAnchor(anchor), xform: c.ctm, tag: tag,
	})
}

// StrokeText records outlined text anchored at pt.
func (c *Canvas) StrokeText(text string, pt geom.Point, font Font, stroke Stroke, anchor TextAnchor, tag string) {
	c.ops = append(c.ops, op{
		kind: opStrokeText, text: text, at: pt, font: normFont(font),
		stroke: stroke, anchor: normAnchor(anchor), xform: c.ctm, tag: tag,
	})
}

// MeasureText estimates the rendered width and height of text in font.
func (c *Canvas) MeasureText(text string, font Font) (w, h float64) {
	f := normFont(font)
	return fonts.Measure(f.Family, text, f.Size)
}

// OpCount returns the number of recorded drawing operations.
func (c *Canvas) OpCount() int { return len(c.ops) }

// transformed returns a copy of p with the current transform applied to
// every segment point.
func (c *Canvas) transformed(p *Path) *Path {
	if c.ctm.IsIdentity() {
		cp := *p
		cp.Segments = append([]Segment(nil), p.Segments...)
		return &cp
	}
	out := &Path{Segments: make([]Segment, len(p.Segments))}
	for i, s := range p.Segments {
		out.Segments[i] = Segment{
			Op: s.Op,
			P1: c.ctm.Apply(s.P1),
			P2: c.ctm.Apply(s.P2),
			P3: c.ctm.Apply(s.P3),
		}
	}
	return out
}

func normFont(f Font) Font {
	if f.Family == "" {
		f.Family = DefaultFont.Family
	}
	if f.Size <= 0 {
		f.Size = DefaultFont.Size
	}
	return f
}

func normAnchor(a TextAnchor) TextAnchor {
	if a == "" {
		return AnchorStart
	}
	return a
}
