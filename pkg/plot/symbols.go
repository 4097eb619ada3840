package plot

import (
	"math"

	"github.com/matzehuels/swarmplot/pkg/canvas"
	"github.com/matzehuels/swarmplot/pkg/geom"
)

// Symbol selects the glyph drawn for a single data point. Glyph geometry is
// built once at unit size; the canvas transform stack places and scales it.
type Symbol string

const (
	SymbolCircle   Symbol = "circle"
	SymbolSquare   Symbol = "square"
	SymbolDiamond  Symbol = "diamond"
	SymbolCross    Symbol = "cross"
	SymbolTriangle Symbol = "triangle"
)

// circle approximation constant: control-point offset for a quarter arc.
const kappa = 0.5522847498307936

// symbolPath returns the unit-radius path for s centered on the origin.
func symbolPath(s Symbol) *canvas.Path {
	switch s {
	case SymbolSquare:
		return canvas.NewPath().
			MoveTo(geom.Point{X: -1, Y: -1}).
			LineTo(geom.Point{X: 1, Y: -1}).
			LineTo(geom.Point{X: 1, Y: 1}).
			LineTo(geom.Point{X: -1, Y: 1}).
			Close()
	case SymbolDiamond:
		return canvas.NewPath().
			MoveTo(geom.Point{X: 0, Y: -1}).
			LineTo(geom.Point{X: 1, Y: 0}).
			LineTo(geom.Point{X: 0, Y: 1}).
			LineTo(geom.Point{X: -1, Y: 0}).
			Close()
	case SymbolCross:
		const a = 0.35
		return canvas.NewPath().
			MoveTo(geom.Point{X: -1, Y: -a}).LineTo(geom.Point{X: -a, Y: -a}).
			LineTo(geom.Point{X: -a, Y: -1}).LineTo(geom.Point{X: a, Y: -1}).
			LineTo(geom.Point{X: a, Y: -a}).LineTo(geom.Point{X: 1, Y: -a}).
			LineTo(geom.Point{X: 1, Y: a}).LineTo(geom.Point{X: a, Y: a}).
			LineTo(geom.Point{X: a, Y: 1}).LineTo(geom.Point{X: -a, Y: 1}).
			LineTo(geom.Point{X: -a, Y: a}).LineTo(geom.Point{X: -1, Y: a}).
			Close()
	case SymbolTriangle:
		h := math.Sqrt(3) / 2
		return canvas.NewPath().
			MoveTo(geom.Point{X: 0, Y: -1}).
			LineTo(geom.Point{X: h, Y: 0.5}).
			LineTo(geom.Point{X: -h, Y: 0.5}).
			Close()
	default: // SymbolCircle
		return canvas.NewPath().
			MoveTo(geom.Point{X: 1, Y: 0}).
			CubicTo(geom.Point{X: 1, Y: kappa}, geom.Point{X: kappa, Y: 1}, geom.Point{X: 0, Y: 1}).
			CubicTo(geom.Point{X: -kappa, Y: 1}, geom.Point{X: -1, Y: kappa}, geom.Point{X: -1, Y: 0}).
			CubicTo(geom.Point{X: -1, Y: -kappa}, geom.Point{X: -kappa, Y: -1}, geom.Point{X: 0, Y: -1}).
			CubicTo(geom.Point{X: kappa, Y: -1}, geom.Point{X: 1, Y: -kappa}, geom.Point{X: 1, Y: 0}).
			Close()
	}
}

// drawSymbol places the glyph at pt scaled to size, filling and/or stroking
// per the presentation pointers. Nil fill and stroke draws nothing.
func drawSymbol(c *canvas.Canvas, s Symbol, pt geom.Point, size float64,
	fill *canvas.Color, stroke *canvas.Stroke, tag string) {

	if fill == nil && stroke == nil {
		return
	}
	path := symbolPath(s)

	c.Save()
	c.Translate(pt.X, pt.Y)
	c.Scale(size, size)
	if fill != nil {
		c.FillPath(path, *fill, tag)
	}
	if stroke != nil {
		// Stroke width is specified in plot units; compensate for the glyph
		// scale so outlines keep their width at any point size.
		sc := *stroke
		if size != 0 {
			sc.Width /= size
		}
		strokeTag := tag
		if fill != nil && tag != "" {
			strokeTag = tag + "-outline"
		}
		c.StrokePath(path, sc, strokeTag)
	}
	c.Restore()
}
