package plot

import (
	"math"

	"github.com/matzehuels/swarmplot/pkg/canvas"
	"github.com/matzehuels/swarmplot/pkg/coords"
	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/geom"
)

// Pie draws a pie or doughnut chart. Slice angles are proportional to the
// values; slices are laid out clockwise from StartAngle and colored from
// Fills, cycling the default palette when Fills is empty.
type Pie struct {
	Center geom.Vector // data-space center
	Radius float64     // outer radius in plot-space units
	Values []float64

	// InnerRadius is the hole radius as a fraction of Radius in [0,1).
	// Zero draws a full pie.
	InnerRadius float64

	// StartAngle is where the first slice begins, in radians measured
	// clockwise from the positive x axis.
	StartAngle float64

	Fills  []canvas.Color
	Stroke *canvas.Stroke
	Tag    string
}

// NewPie builds a validated pie with palette fills.
func NewPie(center geom.Vector, radius float64, values []float64) (*Pie, error) {
	p := &Pie{Center: center, Radius: radius, Values: append([]float64(nil), values...)}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pie) Kind() Kind { return KindPie }

func (p *Pie) validate() error {
	if len(p.Values) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "pie has no values")
	}
	total := 0.0
	for _, v := range p.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "pie values must be finite and non-negative, got %v", v)
		}
		total += v
	}
	if total == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "pie values sum to zero")
	}
	if len(p.Center) < 2 || !p.Center.IsFinite() {
		return errors.New(errors.ErrCodeInvalidInput, "pie center must be a finite vector with at least 2 components")
	}
	if p.Radius <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "pie radius must be positive, got %g", p.Radius)
	}
	if p.InnerRadius < 0 || p.InnerRadius >= 1 {
		return errors.New(errors.ErrCodeInvalidInput, "pie inner radius fraction must be in [0,1), got %g", p.InnerRadius)
	}
	return nil
}

func (p *Pie) Plot(c *canvas.Canvas, sys coords.System) error {
	if err := p.validate(); err != nil {
		return err
	}

	total := 0.0
	for _, v := range p.Values {
		total += v
	}
	center := sys.ToPlot(p.Center)
	inner := p.InnerRadius * p.Radius

	angle := p.StartAngle
	for i, v := range p.Values {
		sweep := v / total * 2 * math.Pi
		if sweep == 0 {
			continue
		}
		path := slicePath(center, inner, p.Radius, angle, angle+sweep)
		fill := PaletteColor(i)
		if len(p.Fills) > 0 {
			fill = p.Fills[i%len(p.Fills)]
		}
		tag := p.Tag
		if tag != "" {
			tag = indexedTag(tag, i)
		}
		c.FillPath(path, fill, tag)
		if p.Stroke != nil {
			strokeTag := tag
			if strokeTag != "" {
				strokeTag += "-outline"
			}
			c.StrokePath(path, *p.Stroke, strokeTag)
		}
		angle += sweep
	}
	return nil
}

// slicePath builds a closed pie-slice path: the outer arc from a1 to a2, then
// either back to the center or along the reversed inner arc for a doughnut.
func slicePath(center geom.Point, inner, outer, a1, a2 float64) *canvas.Path {
	path := canvas.NewPath()
	path.MoveTo(arcPoint(center, outer, a1))
	appendArc(path, center, outer, a1, a2)
	if inner > 0 {
		path.LineTo(arcPoint(center, inner, a2))
		appendArc(path, center, inner, a2, a1)
	} else {
		path.LineTo(center)
	}
	return path.Close()
}

func arcPoint(center geom.Point, r, angle float64) geom.Point {
	sin, cos := math.Sincos(angle)
	return geom.Point{X: center.X + r*cos, Y: center.Y + r*sin}
}

// appendArc approximates the circular arc from a1 to a2 with cubic Bézier
// segments of at most a quarter turn each. The control-point distance
// 4/3·tan(Δ/4) makes each segment's midpoint land on the circle.
func appendArc(path *canvas.Path, center geom.Point, r, a1, a2 float64) {
	span := a2 - a1
	segs := int(math.Ceil(math.Abs(span) / (math.Pi / 2)))
	if segs < 1 {
		segs = 1
	}
	step := span / float64(segs)
	k := 4.0 / 3.0 * math.Tan(step/4)

	for i := 0; i < segs; i++ {
		b1 := a1 + float64(i)*step
		b2 := b1 + step
		p1 := arcPoint(center, r, b1)
		p2 := arcPoint(center, r, b2)
		sin1, cos1 := math.Sincos(b1)
		sin2, cos2 := math.Sincos(b2)
		c1 := geom.Point{X: p1.X - k*r*sin1, Y: p1.Y + k*r*cos1}
		c2 := geom.Point{X: p2.X + k*r*sin2, Y: p2.Y - k*r*cos2}
		path.CubicTo(c1, c2, p2)
	}
}
