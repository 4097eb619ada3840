package canvas

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/swarmplot/pkg/geom"
)

func TestTransformStack(t *testing.T) {
	c := New(100, 100)
	c.Save()
	c.Translate(10, 20)
	c.Scale(2, 2)

	p := NewPath().MoveTo(geom.Point{X: 1, Y: 1}).LineTo(geom.Point{X: 2, Y: 2})
	c.FillPath(p, RGB(0, 0, 0), "")

	got := c.ops[0].path.Segments[0].P3
	if got.X != 12 || got.Y != 22 {
		t.Errorf("transformed point = %v, want (12,22)", got)
	}

	c.Restore()
	c.StrokePath(p, Stroke{Color: RGB(0, 0, 0), Width: 1}, "")
	got = c.ops[1].path.Segments[0].P3
	if got.X != 1 || got.Y != 1 {
		t.Errorf("point after Restore = %v, want (1,1)", got)
	}
}

func TestRotateTransform(t *testing.T) {
	c := New(10, 10)
	c.Rotate(math.Pi / 2)

	p := NewPath().MoveTo(geom.Point{X: 1, Y: 0})
	c.FillPath(p, RGB(0, 0, 0), "")

	got := c.ops[0].path.Segments[0].P3
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-1) > 1e-12 {
		t.Errorf("rotated point = %v, want (0,1)", got)
	}
}

func TestRestoreWithoutSaveResetsToIdentity(t *testing.T) {
	c := New(10, 10)
	c.Translate(5, 5)
	c.Restore()

	p := NewPath().MoveTo(geom.Point{X: 1, Y: 1})
	c.FillPath(p, RGB(0, 0, 0), "")
	got := c.ops[0].path.Segments[0].P3
	if got.X != 1 || got.Y != 1 {
		t.Errorf("point = %v, want (1,1)", got)
	}
}

func TestRecordingDoesNotAliasCallerPath(t *testing.T) {
	c := New(10, 10)
	p := NewPath().MoveTo(geom.Point{X: 1, Y: 1})
	c.FillPath(p, RGB(0, 0, 0), "")

	p.LineTo(geom.Point{X: 9, Y: 9})
	if len(c.ops[0].path.Segments) != 1 {
		t.Error("recorded path aliases the caller's path")
	}
}

func TestMeasureTextScalesWithSize(t *testing.T) {
	c := New(10, 10)
	w1, h1 := c.MeasureText("hello", Font{Size: 10})
	w2, h2 := c.MeasureText("hello", Font{Size: 20})
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("measure = (%v,%v), want positive", w1, h1)
	}
	if math.Abs(w2-2*w1) > 1e-9 || math.Abs(h2-2*h1) > 1e-9 {
		t.Errorf("size 20 measure (%v,%v) is not double size 10 (%v,%v)", w2, h2, w1, h1)
	}
}

func TestSVGOutput(t *testing.T) {
	c := New(200, 100)
	c.FillPath(NewPath().MoveTo(geom.Point{X: 0, Y: 0}).LineTo(geom.Point{X: 10, Y: 0}).LineTo(geom.Point{X: 10, Y: 10}).Close(),
		RGB(255, 0, 0), "tri")
	c.StrokePath(NewPath().MoveTo(geom.Point{X: 0, Y: 50}).LineTo(geom.Point{X: 200, Y: 50}),
		Stroke{Color: RGB(0, 0, 255), Width: 2, Dash: []float64{4, 2}}, "")
	c.FillText("title", geom.Point{X: 100, Y: 10}, Font{Size: 14}, RGB(0, 0, 0), AnchorMiddle, "lbl")

	svg := string(c.SVG(WithBackground(RGB(255, 255, 255))))

	for _, want := range []string{
		`viewBox="0 0 200 100"`,
		`id="tri"`,
		`fill="#ff0000"`,
		`M 0 0 L 10 0 L 10 10 Z`,
		`stroke="#0000ff"`,
		`stroke-dasharray="4 2"`,
		`text-anchor="middle"`,
		`id="lbl"`,
		`>title</text>`,
		`<rect width="100%" height="100%" fill="#ffffff"/>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q\n%s", want, svg)
		}
	}
}

func TestSVGEscapesText(t *testing.T) {
	c := New(10, 10)
	c.FillText("a<b & c", geom.Point{}, Font{}, RGB(0, 0, 0), AnchorStart, `x"y`)
	svg := string(c.SVG())
	if strings.Contains(svg, "a<b") {
		t.Error("text not escaped")
	}
	if !strings.Contains(svg, "a&lt;b &amp; c") {
		t.Errorf("escaped text missing:\n%s", svg)
	}
}

func TestSVGOmitsOpacityWhenOpaque(t *testing.T) {
	c := New(10, 10)
	c.FillPath(NewPath().MoveTo(geom.Point{}), RGB(1, 2, 3), "")
	c.FillPath(NewPath().MoveTo(geom.Point{}), RGBA(1, 2, 3, 0.5), "")
	svg := string(c.SVG())
	if strings.Count(svg, "fill-opacity") != 1 {
		t.Errorf("expected exactly one fill-opacity attribute:\n%s", svg)
	}
}
