package plot

import (
	"github.com/matzehuels/swarmplot/pkg/canvas"
	"github.com/matzehuels/swarmplot/pkg/coords"
	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/geom"
)

// Axis draws a line between two data-space positions, with an optional
// arrowhead at the end and optional tick marks with labels. On coordinate
// systems where the direction does not map to a straight line the axis is
// sampled point-wise.
type Axis struct {
	Start, End geom.Vector

	Stroke *canvas.Stroke

	// ArrowSize is the arrowhead length in plot-space units; zero draws none.
	ArrowSize float64

	// Ticks places tick marks along the axis. A tick at Value lands at
	// Start + (Value−TickMin)/(TickMax−TickMin) of the way to End. Leave
	// empty for a bare axis line.
	Ticks            []coords.Tick
	TickMin, TickMax float64

	// TickSize is the tick mark length in plot-space units.
	TickSize float64

	// LabelFont and LabelFill style the tick labels; a nil fill skips them.
	LabelFont   canvas.Font
	LabelFill   *canvas.Color
	LabelOffset float64 // distance from axis to label anchor, plot units

	Tag string
}

// NewAxis builds an axis line with the shared axis color and a small
// arrowhead.
func NewAxis(start, end geom.Vector) (*Axis, error) {
	a := &Axis{
		Start:     start,
		End:       end,
		Stroke:    canvas.SolidStroke(ColorAxis, 1),
		ArrowSize: 6,
		TickSize:  4,
		LabelFill: &ColorLabel,
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Axis) Kind() Kind { return KindAxis }

// curveSamples is how many segments a non-straight direction is sampled
// into.
const curveSamples = 64

func (a *Axis) validate() error {
	dir := delta(a.Start, a.End)
	if err := checkAxisVectors(a.Start, dir); err != nil {
		return err
	}
	if len(a.Ticks) > 0 && a.TickMax <= a.TickMin {
		return errors.New(errors.ErrCodeInvalidInput,
			"axis tick range [%g,%g] is empty", a.TickMin, a.TickMax)
	}
	return nil
}

func (a *Axis) Plot(c *canvas.Canvas, sys coords.System) error {
	if err := a.validate(); err != nil {
		return err
	}
	if a.Stroke == nil {
		return nil
	}

	dir := delta(a.Start, a.End)
	path := canvas.NewPath()
	appendSpan(path, sys, a.Start, a.End, dir)

	endPt := sys.ToPlot(a.End)
	if a.ArrowSize > 0 {
		// Arrowhead along the local tangent at the end of the axis.
		tangent := endPt.Sub(sys.ToPlot(sys.Around(a.End, dir.Scaled(-1)))).Unit()
		if tangent == (geom.Point{}) {
			tangent = endPt.Sub(sys.ToPlot(a.Start)).Unit()
		}
		normal := geom.Point{X: -tangent.Y, Y: tangent.X}
		back := endPt.Sub(tangent.Scale(a.ArrowSize))
		path.MoveTo(back.Add(normal.Scale(a.ArrowSize / 2.5))).
			LineTo(endPt).
			LineTo(back.Sub(normal.Scale(a.ArrowSize / 2.5)))
	}

	for i, tick := range a.Ticks {
		frac := (tick.Value - a.TickMin) / (a.TickMax - a.TickMin)
		pos := a.Start.AddScaled(dir, frac)
		base := sys.ToPlot(pos)
		perp, err := localPerpendicular(sys, pos, base, geom.Perpendicular(dir))
		if err != nil {
			return err
		}
		path.MoveTo(base).LineTo(base.Add(perp.Scale(a.TickSize)))

		if a.LabelFill != nil && tick.Label != "" {
			offset := a.LabelOffset
			if offset == 0 {
				offset = a.TickSize + 12
			}
			at := base.Add(perp.Scale(offset))
			tag := a.Tag
			if tag != "" {
				tag = indexedTag(tag+"-label", i)
			}
			c.FillText(tick.Label, at, a.LabelFont, *a.LabelFill, canvas.AnchorMiddle, tag)
		}
	}

	c.StrokePath(path, *a.Stroke, a.Tag)
	return nil
}

// Grid draws lines connecting matching fractions of two parallel sides, the
// usual background grid between an axis and the opposite edge of the plot
// area. Each line is sampled when its direction is not straight.
type Grid struct {
	// Side1Start/Side1End and Side2Start/Side2End are the two sides; grid
	// line i joins the same interpolated fraction of each.
	Side1Start, Side1End geom.Vector
	Side2Start, Side2End geom.Vector

	// Count is the number of grid lines, spread evenly including both ends.
	Count int

	Stroke *canvas.Stroke
	Tag    string
}

// NewGrid builds a grid with the shared light grid stroke.
func NewGrid(s1Start, s1End, s2Start, s2End geom.Vector, count int) (*Grid, error) {
	g := &Grid{
		Side1Start: s1Start, Side1End: s1End,
		Side2Start: s2Start, Side2End: s2End,
		Count:  count,
		Stroke: canvas.SolidStroke(ColorGrid, 1),
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grid) Kind() Kind { return KindGrid }

func (g *Grid) validate() error {
	if g.Count < 2 {
		return errors.New(errors.ErrCodeInvalidInput, "grid needs at least 2 lines, got %d", g.Count)
	}
	if err := checkAxisVectors(g.Side1Start, delta(g.Side1Start, g.Side1End)); err != nil {
		return err
	}
	return checkAxisVectors(g.Side2Start, delta(g.Side2Start, g.Side2End))
}

func (g *Grid) Plot(c *canvas.Canvas, sys coords.System) error {
	if err := g.validate(); err != nil {
		return err
	}
	if g.Stroke == nil {
		return nil
	}

	d1 := delta(g.Side1Start, g.Side1End)
	d2 := delta(g.Side2Start, g.Side2End)

	path := canvas.NewPath()
	for i := 0; i < g.Count; i++ {
		frac := float64(i) / float64(g.Count-1)
		from := g.Side1Start.AddScaled(d1, frac)
		to := g.Side2Start.AddScaled(d2, frac)
		appendSpan(path, sys, from, to, delta(from, to))
	}
	c.StrokePath(path, *g.Stroke, g.Tag)
	return nil
}

// Label draws a single text label at a data-space position.
type Label struct {
	Text     string
	Position geom.Vector

	Font   canvas.Font
	Fill   *canvas.Color
	Anchor canvas.TextAnchor

	// Angle rotates the label around its anchor, in radians.
	Angle float64

	Tag string
}

// NewLabel builds a middle-anchored label in the default font.
func NewLabel(text string, position geom.Vector) (*Label, error) {
	l := &Label{
		Text:     text,
		Position: position,
		Fill:     &ColorLabel,
		Anchor:   canvas.AnchorMiddle,
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Label) Kind() Kind { return KindLabel }

func (l *Label) validate() error {
	if l.Text == "" {
		return errors.New(errors.ErrCodeInvalidInput, "label has no text")
	}
	if len(l.Position) < 2 || !l.Position.IsFinite() {
		return errors.New(errors.ErrCodeInvalidInput, "label position must be a finite vector with at least 2 components")
	}
	return nil
}

// Extent returns the label's rendered width and height.
func (l *Label) Extent(c *canvas.Canvas) (w, h float64) {
	return c.MeasureText(l.Text, l.Font)
}

func (l *Label) Plot(c *canvas.Canvas, sys coords.System) error {
	if err := l.validate(); err != nil {
		return err
	}
	if l.Fill == nil {
		return nil
	}
	at := sys.ToPlot(l.Position)
	if l.Angle != 0 {
		c.Save()
		c.Translate(at.X, at.Y)
		c.Rotate(l.Angle)
		c.FillText(l.Text, geom.Point{}, l.Font, *l.Fill, l.Anchor, l.Tag)
		c.Restore()
		return nil
	}
	c.FillText(l.Text, at, l.Font, *l.Fill, l.Anchor, l.Tag)
	return nil
}

// delta returns end − start component-wise.
func delta(start, end geom.Vector) geom.Vector {
	return end.AddScaled(start, -1)
}

// appendSpan appends the plot-space image of the data-space segment
// from→to: one straight segment when the coordinate system keeps the
// direction straight, a sampled polyline otherwise.
func appendSpan(path *canvas.Path, sys coords.System, from, to, dir geom.Vector) {
	if sys.IsDirectionStraight(dir) {
		path.MoveTo(sys.ToPlot(from)).LineTo(sys.ToPlot(to))
		return
	}
	pts := make([]geom.Point, 0, curveSamples+1)
	for i := 0; i <= curveSamples; i++ {
		frac := float64(i) / curveSamples
		pts = append(pts, sys.ToPlot(from.AddScaled(dir, frac)))
	}
	path.Polyline(pts)
}
