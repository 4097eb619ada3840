package plot

import (
	"math"

	"github.com/matzehuels/swarmplot/pkg/canvas"
	"github.com/matzehuels/swarmplot/pkg/coords"
	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/geom"
)

// Area fills the region between a series and a horizontal baseline, with an
// optional stroked top edge.
type Area struct {
	X, Y []float64

	// Baseline is the data-space y value the fill extends down (or up) to.
	Baseline float64

	// Smooth draws the top edge as a spline through the points instead of a
	// polyline.
	Smooth bool

	Fill   *canvas.Color
	Stroke *canvas.Stroke
	Tag    string
}

// NewArea builds a validated area with a translucent palette fill.
func NewArea(x, y []float64) (*Area, error) {
	fill := DefaultPalette[0].WithAlpha(0.35)
	a := &Area{
		X:      append([]float64(nil), x...),
		Y:      append([]float64(nil), y...),
		Fill:   &fill,
		Stroke: canvas.SolidStroke(DefaultPalette[0], 1.5),
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Area) Kind() Kind { return KindArea }

func (a *Area) validate() error {
	if len(a.X) < 2 {
		return errors.New(errors.ErrCodeInvalidInput, "area needs at least 2 points, got %d", len(a.X))
	}
	if len(a.X) != len(a.Y) {
		return errors.New(errors.ErrCodeInvalidInput, "area has %d x values but %d y values", len(a.X), len(a.Y))
	}
	for i := range a.X {
		if math.IsNaN(a.X[i]) || math.IsInf(a.X[i], 0) || math.IsNaN(a.Y[i]) || math.IsInf(a.Y[i], 0) {
			return errors.New(errors.ErrCodeInvalidInput, "area point %d is non-finite", i)
		}
	}
	if math.IsNaN(a.Baseline) || math.IsInf(a.Baseline, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "area baseline is non-finite")
	}
	return nil
}

func (a *Area) Plot(c *canvas.Canvas, sys coords.System) error {
	if err := a.validate(); err != nil {
		return err
	}

	top := make([]geom.Point, len(a.X))
	for i := range a.X {
		top[i] = sys.ToPlot(geom.Vector{a.X[i], a.Y[i]})
	}

	if a.Fill != nil {
		path := canvas.NewPath()
		if a.Smooth {
			path.SmoothThrough(top)
		} else {
			path.Polyline(top)
		}
		path.LineTo(sys.ToPlot(geom.Vector{a.X[len(a.X)-1], a.Baseline}))
		path.LineTo(sys.ToPlot(geom.Vector{a.X[0], a.Baseline}))
		path.Close()
		c.FillPath(path, *a.Fill, a.Tag)
	}

	if a.Stroke != nil {
		edge := canvas.NewPath()
		if a.Smooth {
			edge.SmoothThrough(top)
		} else {
			edge.Polyline(top)
		}
		tag := a.Tag
		if a.Fill != nil && tag != "" {
			tag += "-edge"
		}
		c.StrokePath(edge, *a.Stroke, tag)
	}
	return nil
}
