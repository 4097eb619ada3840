package plot

import (
	"math"

	"github.com/matzehuels/swarmplot/pkg/canvas"
	"github.com/matzehuels/swarmplot/pkg/coords"
	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/geom"
)

// Function strokes y = F(x) over [MinX, MaxX], sampled at the coordinate
// system's x resolution. Samples where F returns a non-finite value break the
// curve into separate subpaths, so poles render as gaps.
type Function struct {
	F          func(float64) float64
	MinX, MaxX float64

	// Smooth draws each continuous run as a spline instead of a polyline.
	Smooth bool

	Stroke *canvas.Stroke
	Tag    string
}

// NewFunction builds a validated function plot with a palette stroke.
func NewFunction(f func(float64) float64, minX, maxX float64) (*Function, error) {
	fn := &Function{
		F:      f,
		MinX:   minX,
		MaxX:   maxX,
		Stroke: canvas.SolidStroke(DefaultPalette[0], 1.5),
	}
	if err := fn.validate(); err != nil {
		return nil, err
	}
	return fn, nil
}

func (f *Function) Kind() Kind { return KindFunction }

func (f *Function) validate() error {
	if f.F == nil {
		return errors.New(errors.ErrCodeInvalidInput, "function plot has no function")
	}
	if math.IsNaN(f.MinX) || math.IsInf(f.MinX, 0) || math.IsNaN(f.MaxX) || math.IsInf(f.MaxX, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "function range is non-finite")
	}
	if f.MaxX <= f.MinX {
		return errors.New(errors.ErrCodeInvalidInput, "function range [%g,%g] is empty", f.MinX, f.MaxX)
	}
	return nil
}

func (f *Function) Plot(c *canvas.Canvas, sys coords.System) error {
	if err := f.validate(); err != nil {
		return err
	}
	if f.Stroke == nil {
		return nil
	}

	step := sys.Resolution(0)
	if step <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "coordinate system has non-positive x resolution %g", step)
	}

	path := canvas.NewPath()
	var run []geom.Point
	flush := func() {
		if len(run) >= 2 {
			if f.Smooth {
				path.SmoothThrough(run)
			} else {
				path.Polyline(run)
			}
		}
		run = run[:0]
	}

	for x := f.MinX; ; x += step {
		if x > f.MaxX {
			x = f.MaxX
		}
		y := f.F(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			flush()
		} else {
			run = append(run, sys.ToPlot(geom.Vector{x, y}))
		}
		if x == f.MaxX {
			break
		}
	}
	flush()

	if len(path.Segments) == 0 {
		return errors.New(errors.ErrCodeInvalidData,
			"function produced no finite values on [%g,%g]", f.MinX, f.MaxX)
	}
	c.StrokePath(path, *f.Stroke, f.Tag)
	return nil
}
