package plot

import (
	"math"
	"strconv"

	"github.com/matzehuels/swarmplot/pkg/canvas"
	"github.com/matzehuels/swarmplot/pkg/coords"
	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/geom"
)

// Swarm draws a beeswarm: one glyph per data value positioned along
// Direction, with overlapping glyphs displaced sideways by the minimum
// amount that keeps every pair at least the required separation apart.
//
// Data is stored sorted ascending and never mutated; processing points in
// ascending order packs smaller values closest to the centerline and makes
// placement deterministic.
type Swarm struct {
	Position  geom.Vector // data-space origin of the swarm axis
	Direction geom.Vector // data-space direction of the swarm axis
	Data      []float64   // sorted ascending at construction

	PointSize   float64 // glyph radius in plot-space units
	PointMargin float64 // extra separation as a fraction of PointSize

	Symbol Symbol
	Fill   *canvas.Color
	Stroke *canvas.Stroke
	Tag    string // optional id prefix; point i is tagged "<Tag>-<i>"

	// MaxIterations bounds the per-point relaxation loop. Zero selects
	// DefaultMaxIterations. When the cap is hit the point keeps its
	// best-effort position and the placement result reports it.
	MaxIterations int
}

// DefaultMaxIterations bounds the collision relaxation per point.
const DefaultMaxIterations = 1000

// overshoot pushes each relaxation step slightly past the exact separation
// so floating-point tangency cannot re-trigger the same neighbor.
const overshoot = 1.0001

// NewSwarm builds a validated swarm element with defaults for size, margin
// and symbol. The input data is copied and sorted; the caller's slice is
// never modified.
func NewSwarm(position, direction geom.Vector, data []float64) (*Swarm, error) {
	s := &Swarm{
		Position:    position,
		Direction:   direction,
		Data:        sortedCopy(data),
		PointSize:   3,
		PointMargin: 0.25,
		Symbol:      SymbolCircle,
		Fill:        &DefaultPalette[0],
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Swarm) Kind() Kind { return KindSwarm }

func (s *Swarm) validate() error {
	if len(s.Data) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "swarm has no data")
	}
	for _, v := range s.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidInput, "swarm data contains non-finite value %v", v)
		}
	}
	if len(s.Direction) < 2 || len(s.Position) < 2 {
		return errors.New(errors.ErrCodeInvalidInput, "swarm position and direction need at least 2 components")
	}
	if len(s.Direction) != len(s.Position) {
		return errors.New(errors.ErrCodeInvalidInput,
			"swarm position has %d components, direction has %d", len(s.Position), len(s.Direction))
	}
	if !s.Position.IsFinite() || !s.Direction.IsFinite() {
		return errors.New(errors.ErrCodeInvalidInput, "swarm position or direction contains non-finite components")
	}
	if s.Direction.IsZero() {
		return errors.New(errors.ErrCodeInvalidDirection, "swarm direction is the zero vector")
	}
	if s.PointSize <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "swarm point size must be positive, got %g", s.PointSize)
	}
	if s.PointMargin < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "swarm point margin must be non-negative, got %g", s.PointMargin)
	}
	return nil
}

// RequiredDistance returns the minimum plot-space separation between two
// placed points: two radii plus the margin fraction of one radius.
func (s *Swarm) RequiredDistance() float64 {
	return 2*s.PointSize + s.PointMargin*s.PointSize
}

// Placement is the computed layout of a swarm.
type Placement struct {
	// Points holds one plot-space position per data value, in ascending
	// data order.
	Points []geom.Point

	// NonConverged counts points whose relaxation hit the iteration cap
	// and kept a best-effort position.
	NonConverged int
}

// Placements computes plot-space positions for every data value without
// drawing. The layout is deterministic: identical inputs produce identical
// positions.
func (s *Swarm) Placements(sys coords.System) (*Placement, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	data := sortedCopy(s.Data)
	required := s.RequiredDistance()
	maxIter := s.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	perpData := geom.Perpendicular(s.Direction)

	res := &Placement{Points: make([]geom.Point, 0, len(data))}
	for _, v := range data {
		dataPos := s.Position.AddScaled(s.Direction, v)
		base := sys.ToPlot(dataPos)
		if !base.IsFinite() {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"swarm value %g projects to a non-finite plot position", v)
		}

		pt := base
		if _, d := nearest(res.Points, base); d < required {
			perp, err := localPerpendicular(sys, dataPos, base, perpData)
			if err != nil {
				return nil, err
			}

			// Both sides are relaxed independently; the candidate closer to
			// the unperturbed projection wins. Ties keep the first-computed
			// side, an arbitrary but deterministic choice.
			left, okL := relax(res.Points, base, perp.Scale(-1), required, maxIter)
			right, okR := relax(res.Points, base, perp, required, maxIter)
			if geom.Dist(left, base) <= geom.Dist(right, base) {
				pt = left
				if !okL {
					res.NonConverged++
				}
			} else {
				pt = right
				if !okR {
					res.NonConverged++
				}
			}
		}
		res.Points = append(res.Points, pt)
	}
	return res, nil
}

// Plot computes the placement and draws one glyph per point. Hitting the
// relaxation cap is not an error; the best-effort positions are drawn.
func (s *Swarm) Plot(c *canvas.Canvas, sys coords.System) error {
	placement, err := s.Placements(sys)
	if err != nil {
		return err
	}
	for i, pt := range placement.Points {
		drawSymbol(c, s.Symbol, pt, s.PointSize, s.Fill, s.Stroke, indexedTag(s.Tag, i))
	}
	return nil
}

// localPerpendicular estimates the plot-space direction of the data-space
// perpendicular at dataPos by finite difference, so packing stays visually
// perpendicular even on non-linear axes.
func localPerpendicular(sys coords.System, dataPos geom.Vector, base geom.Point, perpData geom.Vector) (geom.Point, error) {
	nearby := sys.Around(dataPos, perpData)
	tangent := sys.ToPlot(nearby).Sub(base)
	u := tangent.Unit()
	if u == (geom.Point{}) || !u.IsFinite() {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidDirection,
			"coordinate system yields no usable perpendicular at %v", dataPos)
	}
	return u, nil
}

// nearest returns the index and distance of the placed point closest to pt,
// or (-1, +Inf) when none are placed yet. Brute force is fine: swarms are
// visualization-scale.
func nearest(placed []geom.Point, pt geom.Point) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	for i, q := range placed {
		if d := geom.Dist(pt, q); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

// relax displaces pt along dir until it is at least required away from every
// placed point. Each step solves for where the circle of radius required
// around the current nearest neighbor intersects the displacement line, then
// overshoots slightly. Returns the final position and whether the separation
// constraint was satisfied within maxIter steps.
func relax(placed []geom.Point, start, dir geom.Point, required float64, maxIter int) (geom.Point, bool) {
	pt := start
	for iter := 0; iter < maxIter; iter++ {
		i, d := nearest(placed, pt)
		if d >= required {
			return pt, true
		}
		w := pt.Sub(placed[i])
		b := w.Dot(dir)
		disc := b*b - w.Dot(w) + required*required
		// d < required guarantees a positive discriminant; Max guards
		// against rounding at near-tangency.
		t := -b + math.Sqrt(math.Max(disc, 0))
		pt = pt.Add(dir.Scale(t * overshoot))
	}
	_, d := nearest(placed, pt)
	return pt, d >= required
}

func indexedTag(tag string, i int) string {
	if tag == "" {
		return ""
	}
	return tag + "-" + strconv.Itoa(i)
}
