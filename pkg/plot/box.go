package plot

import (
	"math"

	"github.com/matzehuels/swarmplot/pkg/canvas"
	"github.com/matzehuels/swarmplot/pkg/coords"
	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/geom"
)

// Box draws a box-and-whisker glyph along a data-space direction. The box
// spans the quartiles, the inner line marks the median, whiskers extend to
// the most extreme data within 1.5·IQR of the box, and values beyond the
// whiskers are drawn as outlier symbols.
type Box struct {
	Position  geom.Vector
	Direction geom.Vector
	Data      []float64

	// Width is the full box width in plot-space units.
	Width float64

	Fill   *canvas.Color
	Stroke *canvas.Stroke

	// ShowOutliers draws data beyond the whiskers as symbols. The symbol
	// radius is a quarter of the box width.
	ShowOutliers  bool
	OutlierSymbol Symbol

	Tag string
}

// NewBox builds a validated box element with palette fill, axis-colored
// stroke and outliers enabled.
func NewBox(position, direction geom.Vector, data []float64) (*Box, error) {
	b := &Box{
		Position:      position,
		Direction:     direction,
		Data:          sortedCopy(data),
		Width:         20,
		Fill:          &DefaultPalette[0],
		Stroke:        canvas.SolidStroke(ColorAxis, 1),
		ShowOutliers:  true,
		OutlierSymbol: SymbolCircle,
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Box) Kind() Kind { return KindBox }

func (b *Box) validate() error {
	if len(b.Data) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "box has no data")
	}
	for _, v := range b.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidInput, "box data contains non-finite value %v", v)
		}
	}
	if err := checkAxisVectors(b.Position, b.Direction); err != nil {
		return err
	}
	if b.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "box width must be positive, got %g", b.Width)
	}
	return nil
}

// Summary returns the five-number summary the glyph is drawn from.
func (b *Box) Summary() (fiveNumber, error) {
	if err := b.validate(); err != nil {
		return fiveNumber{}, err
	}
	return summarize(sortedCopy(b.Data)), nil
}

func (b *Box) Plot(c *canvas.Canvas, sys coords.System) error {
	sum, err := b.Summary()
	if err != nil {
		return err
	}

	at := func(v float64) geom.Point {
		return sys.ToPlot(b.Position.AddScaled(b.Direction, v))
	}
	center := b.Position.AddScaled(b.Direction, sum.Median)
	perp, err := localPerpendicular(sys, center, at(sum.Median), geom.Perpendicular(b.Direction))
	if err != nil {
		return err
	}
	half := perp.Scale(b.Width / 2)

	corner := func(v float64, side float64) geom.Point {
		return at(v).Add(half.Scale(side))
	}

	if b.Fill != nil {
		body := canvas.NewPath().
			MoveTo(corner(sum.Q1, -1)).
			LineTo(corner(sum.Q1, 1)).
			LineTo(corner(sum.Q3, 1)).
			LineTo(corner(sum.Q3, -1)).
			Close()
		c.FillPath(body, *b.Fill, b.Tag)
	}

	if b.Stroke != nil {
		lines := canvas.NewPath()
		// box outline
		lines.MoveTo(corner(sum.Q1, -1)).
			LineTo(corner(sum.Q1, 1)).
			LineTo(corner(sum.Q3, 1)).
			LineTo(corner(sum.Q3, -1)).
			Close()
		// median
		lines.MoveTo(corner(sum.Median, -1)).LineTo(corner(sum.Median, 1))
		// whisker stems
		lines.MoveTo(at(sum.Q1)).LineTo(at(sum.WhiskerLo))
		lines.MoveTo(at(sum.Q3)).LineTo(at(sum.WhiskerHi))
		// whisker caps at half width
		lines.MoveTo(corner(sum.WhiskerLo, -0.5)).LineTo(corner(sum.WhiskerLo, 0.5))
		lines.MoveTo(corner(sum.WhiskerHi, -0.5)).LineTo(corner(sum.WhiskerHi, 0.5))

		tag := b.Tag
		if b.Fill != nil && tag != "" {
			tag += "-outline"
		}
		c.StrokePath(lines, *b.Stroke, tag)
	}

	if b.ShowOutliers {
		for i, v := range sum.Outliers {
			tag := b.Tag
			if tag != "" {
				tag = indexedTag(tag+"-outlier", i)
			}
			drawSymbol(c, b.OutlierSymbol, at(v), b.Width/4, b.Fill, b.Stroke, tag)
		}
	}
	return nil
}

// checkAxisVectors validates the position/direction pair shared by elements
// drawn along a data-space axis.
func checkAxisVectors(position, direction geom.Vector) error {
	if len(direction) < 2 || len(position) < 2 {
		return errors.New(errors.ErrCodeInvalidInput, "position and direction need at least 2 components")
	}
	if len(direction) != len(position) {
		return errors.New(errors.ErrCodeInvalidInput,
			"position has %d components, direction has %d", len(position), len(direction))
	}
	if !position.IsFinite() || !direction.IsFinite() {
		return errors.New(errors.ErrCodeInvalidInput, "position or direction contains non-finite components")
	}
	if direction.IsZero() {
		return errors.New(errors.ErrCodeInvalidDirection, "direction is the zero vector")
	}
	return nil
}
