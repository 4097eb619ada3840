package coords

import (
	"math"

	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/geom"
)

// AxisKind selects the transform applied to a single data axis.
type AxisKind int

const (
	AxisLinear AxisKind = iota
	AxisLog               // base-10 logarithmic; positive values only
)

// LinLog is a coordinate system where each of the two plotted axes is
// independently linear or base-10 logarithmic. A log axis maps a data value x
// to log10(x) before the affine plot transform, so equal visual spacing
// corresponds to equal ratios.
type LinLog struct {
	KindX, KindY AxisKind
	inner        Linear
	minX, minY   float64
	maxX, maxY   float64
}

// NewLinLog builds a mixed linear/logarithmic system over the data rectangle
// [minX,maxX]×[minY,maxY]. Log axes require strictly positive bounds.
func NewLinLog(kindX, kindY AxisKind, minX, maxX, minY, maxY, width, height float64) (*LinLog, error) {
	tx, err := axisBounds(kindX, minX, maxX, "x")
	if err != nil {
		return nil, err
	}
	ty, err := axisBounds(kindY, minY, maxY, "y")
	if err != nil {
		return nil, err
	}
	inner, err := NewLinear(tx[0], tx[1], ty[0], ty[1], width, height)
	if err != nil {
		return nil, err
	}
	return &LinLog{
		KindX: kindX, KindY: kindY,
		inner: *inner,
		minX:  minX, maxX: maxX,
		minY: minY, maxY: maxY,
	}, nil
}

func axisBounds(kind AxisKind, lo, hi float64, name string) ([2]float64, error) {
	if kind == AxisLog {
		if lo <= 0 || hi <= 0 {
			return [2]float64{}, errors.New(errors.ErrCodeInvalidInput,
				"log %s axis requires positive bounds, got [%g,%g]", name, lo, hi)
		}
		return [2]float64{math.Log10(lo), math.Log10(hi)}, nil
	}
	return [2]float64{lo, hi}, nil
}

func (s *LinLog) forward(axis int, x float64) float64 {
	if s.kind(axis) == AxisLog {
		return math.Log10(x)
	}
	return x
}

func (s *LinLog) inverse(axis int, x float64) float64 {
	if s.kind(axis) == AxisLog {
		return math.Pow(10, x)
	}
	return x
}

func (s *LinLog) kind(axis int) AxisKind {
	if axis == 0 {
		return s.KindX
	}
	return s.KindY
}

func (s *LinLog) ToPlot(v geom.Vector) geom.Point {
	return s.inner.ToPlot(geom.Vector{s.forward(0, v[0]), s.forward(1, v[1])})
}

func (s *LinLog) ToData(p geom.Point) geom.Vector {
	t := s.inner.ToData(p)
	out := make(geom.Vector, s.Dimensions())
	out[0] = s.inverse(0, t[0])
	out[1] = s.inverse(1, t[1])
	return out
}

// Resolution returns the data-space step that advances one transformed-space
// sample near the middle of the axis range. On a log axis the step therefore
// grows with the magnitude of the values.
func (s *LinLog) Resolution(axis int) float64 {
	if s.kind(axis) == AxisLinear {
		return s.inner.Resolution(axis)
	}
	lo, hi := s.minX, s.maxX
	if axis != 0 {
		lo, hi = s.minY, s.maxY
	}
	mid := math.Sqrt(lo * hi) // geometric midpoint
	step := (math.Log10(hi) - math.Log10(lo)) / defaultSamples
	return mid * (math.Pow(10, step) - 1)
}

func (s *LinLog) Around(v, direction geom.Vector) geom.Vector {
	return around(s, v, direction)
}

// IsDirectionStraight reports whether moving along direction traces a
// straight plot-space line. That holds when no log axis participates in the
// motion, or when the motion is confined to a single axis.
func (s *LinLog) IsDirectionStraight(direction geom.Vector) bool {
	nonZero := 0
	logMoves := false
	for i, x := range direction {
		if x == 0 {
			continue
		}
		nonZero++
		if i < 2 && s.kind(i) == AxisLog {
			logMoves = true
		}
	}
	return !logMoves || nonZero <= 1
}

func (s *LinLog) Dimensions() int { return s.inner.Dimensions() }
