// Package geom provides the small set of geometric primitives shared by the
// coordinate-system and plot packages: 2D plot-space points and n-dimensional
// data-space vectors.
package geom

import "math"

// Point is a position in plot space (device units, y grows downward).
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p with both components multiplied by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q treated as vectors.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Norm returns the Euclidean length of p treated as a vector.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Unit returns p scaled to unit length. The zero point is returned unchanged.
func (p Point) Unit() Point {
	n := p.Norm()
	if n == 0 {
		return p
	}
	return p.Scale(1 / n)
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 { return p.Sub(q).Norm() }

// IsFinite reports whether both components are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Vector is a position or direction in data space. Its length is the
// dimensionality of the coordinate system it belongs to (at least 2).
type Vector []float64

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

// AddScaled returns v + s·w without modifying either operand.
// The result has len(v) components; w must be at least as long as v.
func (v Vector) AddScaled(w Vector, s float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + s*w[i]
	}
	return out
}

// Scaled returns s·v without modifying v.
func (v Vector) Scaled(s float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = s * v[i]
	}
	return out
}

// IsZero reports whether every component of v is exactly zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// IsFinite reports whether every component of v is finite.
func (v Vector) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Perpendicular returns a unit vector perpendicular to v, confined to the 2D
// subspace spanned by the first two non-zero coordinates of v. Swarm layouts
// are inherently 2D, so a single perpendicular suffices even when the ambient
// dimensionality is larger.
//
// The zero vector has no perpendicular; it is returned as-is. Callers that
// need a usable perpendicular must reject zero directions up front.
func Perpendicular(v Vector) Vector {
	tbr := make(Vector, len(v))

	m := -1
	for i, x := range v {
		if x != 0 {
			m = i
			break
		}
	}
	if m < 0 {
		return tbr
	}

	n := 0
	if m == 0 {
		n = 1
	}

	mod := math.Hypot(v[m], v[n])
	tbr[m] = -v[n] / mod
	tbr[n] = v[m] / mod
	return tbr
}
