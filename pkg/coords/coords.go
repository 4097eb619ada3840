// Package coords maps n-dimensional data-space positions to 2D plot-space
// points and back. A coordinate system is built once per figure and shared
// read-only by every element drawn into it, so implementations must be safe
// for concurrent reads.
package coords

import (
	"math"

	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/geom"
)

// System converts between data space and plot space.
type System interface {
	// ToPlot maps a data-space position to plot space.
	ToPlot(v geom.Vector) geom.Point

	// ToData maps a plot-space point back to data space. The result has the
	// system's dimensionality; axes beyond the first two are zero.
	ToData(p geom.Point) geom.Vector

	// Resolution returns the sampling step for the given axis, used for
	// finite-difference tangent estimation and function sampling.
	Resolution(axis int) float64

	// Around returns a position one resolution step away from v along
	// direction. Mapping v and Around(v, direction) to plot space yields a
	// local tangent of the direction at v.
	Around(v, direction geom.Vector) geom.Vector

	// IsDirectionStraight reports whether the direction maps to a straight
	// line in plot space. Elements drawing along a non-straight direction
	// must sample it point-wise instead of drawing a single segment.
	IsDirectionStraight(direction geom.Vector) bool

	// Dimensions returns the data-space dimensionality (at least 2).
	Dimensions() int
}

// Linear is an affine coordinate system: each of the first two data axes is
// scaled and offset independently. Every direction is straight.
type Linear struct {
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64
	StepX, StepY     float64 // resolution per axis
	Dims             int
}

// NewLinear builds a linear system mapping the data rectangle
// [minX,maxX]×[minY,maxY] onto a width×height plot area with y flipped so
// larger data values appear higher on screen.
func NewLinear(minX, maxX, minY, maxY, width, height float64) (*Linear, error) {
	if maxX <= minX || maxY <= minY {
		return nil, errors.New(errors.ErrCodeInvalidInput, "degenerate data range [%g,%g]x[%g,%g]", minX, maxX, minY, maxY)
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "non-positive plot area %gx%g", width, height)
	}
	sx := width / (maxX - minX)
	sy := -height / (maxY - minY)
	return &Linear{
		ScaleX:  sx,
		ScaleY:  sy,
		OffsetX: -minX * sx,
		OffsetY: height - minY*sy,
		StepX:   (maxX - minX) / defaultSamples,
		StepY:   (maxY - minY) / defaultSamples,
		Dims:    2,
	}, nil
}

// Identity returns the 1:1 linear system. Useful in tests and for elements
// that already work in plot units.
func Identity() *Linear {
	return &Linear{ScaleX: 1, ScaleY: 1, StepX: 1, StepY: 1, Dims: 2}
}

const defaultSamples = 100

func (l *Linear) ToPlot(v geom.Vector) geom.Point {
	return geom.Point{
		X: v[0]*l.ScaleX + l.OffsetX,
		Y: v[1]*l.ScaleY + l.OffsetY,
	}
}

func (l *Linear) ToData(p geom.Point) geom.Vector {
	v := make(geom.Vector, l.Dimensions())
	v[0] = (p.X - l.OffsetX) / l.ScaleX
	v[1] = (p.Y - l.OffsetY) / l.ScaleY
	return v
}

func (l *Linear) Resolution(axis int) float64 {
	if axis == 0 {
		return l.StepX
	}
	return l.StepY
}

func (l *Linear) Around(v, direction geom.Vector) geom.Vector {
	return around(l, v, direction)
}

// IsDirectionStraight always reports true: affine maps preserve lines.
func (l *Linear) IsDirectionStraight(geom.Vector) bool { return true }

func (l *Linear) Dimensions() int {
	if l.Dims < 2 {
		return 2
	}
	return l.Dims
}

// around perturbs v by one resolution step along direction, using the
// smallest per-axis step scaled by the direction's components. Shared by all
// System implementations.
func around(s System, v, direction geom.Vector) geom.Vector {
	step := math.Inf(1)
	for i := range direction {
		if direction[i] == 0 {
			continue
		}
		r := s.Resolution(min(i, 1)) / math.Abs(direction[i])
		if r < step {
			step = r
		}
	}
	if math.IsInf(step, 1) {
		return v.Clone()
	}
	return v.AddScaled(direction, step)
}
