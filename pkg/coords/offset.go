package coords

import "github.com/matzehuels/swarmplot/pkg/geom"

// Offset shifts another system's plot-space output by a fixed amount. It is
// how figures place their plot area inside a margin without the inner system
// knowing about the canvas.
type Offset struct {
	Sys    System
	DX, DY float64
}

// WithOffset wraps sys so every plot-space point is shifted by (dx, dy).
func WithOffset(sys System, dx, dy float64) *Offset {
	return &Offset{Sys: sys, DX: dx, DY: dy}
}

func (o *Offset) ToPlot(v geom.Vector) geom.Point {
	p := o.Sys.ToPlot(v)
	return geom.Point{X: p.X + o.DX, Y: p.Y + o.DY}
}

func (o *Offset) ToData(p geom.Point) geom.Vector {
	return o.Sys.ToData(geom.Point{X: p.X - o.DX, Y: p.Y - o.DY})
}

func (o *Offset) Resolution(axis int) float64 { return o.Sys.Resolution(axis) }

func (o *Offset) Around(v, direction geom.Vector) geom.Vector {
	return o.Sys.Around(v, direction)
}

func (o *Offset) IsDirectionStraight(direction geom.Vector) bool {
	return o.Sys.IsDirectionStraight(direction)
}

func (o *Offset) Dimensions() int { return o.Sys.Dimensions() }

var _ System = (*Offset)(nil)
