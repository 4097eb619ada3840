package geom

import (
	"math"
	"testing"
)

func TestPerpendicular(t *testing.T) {
	tests := []struct {
		name string
		in   Vector
		want Vector
	}{
		{
			name: "unit x",
			in:   Vector{1, 0},
			want: Vector{0, 1},
		},
		{
			name: "unit y",
			in:   Vector{0, 1},
			want: Vector{1, 0},
		},
		{
			name: "diagonal",
			in:   Vector{1, 1},
			want: Vector{-math.Sqrt2 / 2, math.Sqrt2 / 2},
		},
		{
			name: "negative direction",
			in:   Vector{-2, 0},
			want: Vector{0, -1},
		},
		{
			name: "zero vector",
			in:   Vector{0, 0},
			want: Vector{0, 0},
		},
		{
			name: "higher dimension, leading zeros",
			in:   Vector{0, 0, 3},
			want: Vector{1, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Perpendicular(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("Perpendicular(%v) has %d components, want %d", tt.in, len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("Perpendicular(%v)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPerpendicularIsOrthogonalAndUnit(t *testing.T) {
	dirs := []Vector{
		{1, 0}, {0, 1}, {3, 4}, {-5, 2}, {0.001, -7}, {2, 3, 5},
	}
	for _, d := range dirs {
		p := Perpendicular(d)

		var dot float64
		for i := range d {
			dot += d[i] * p[i]
		}
		if math.Abs(dot) > 1e-12 {
			t.Errorf("Perpendicular(%v) not orthogonal: dot = %v", d, dot)
		}

		var norm float64
		for _, x := range p {
			norm += x * x
		}
		if math.Abs(math.Sqrt(norm)-1) > 1e-12 {
			t.Errorf("Perpendicular(%v) not unit length: |p| = %v", d, math.Sqrt(norm))
		}
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Point{3, 4}
	if got := p.Norm(); got != 5 {
		t.Errorf("Norm() = %v, want 5", got)
	}
	if got := p.Unit().Norm(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Unit().Norm() = %v, want 1", got)
	}
	if got := Dist(Point{0, 0}, Point{3, 4}); got != 5 {
		t.Errorf("Dist = %v, want 5", got)
	}
	if got := (Point{}).Unit(); got != (Point{}) {
		t.Errorf("Unit of zero point = %v, want zero", got)
	}
}

func TestVectorHelpers(t *testing.T) {
	v := Vector{1, 2}
	w := v.AddScaled(Vector{10, 20}, 0.5)
	if w[0] != 6 || w[1] != 12 {
		t.Errorf("AddScaled = %v, want [6 12]", w)
	}
	if !(Vector{0, 0}).IsZero() {
		t.Error("IsZero() = false for zero vector")
	}
	if (Vector{0, 1}).IsZero() {
		t.Error("IsZero() = true for non-zero vector")
	}
	if (Vector{1, math.NaN()}).IsFinite() {
		t.Error("IsFinite() = true for NaN component")
	}
	if !(Vector{1, 2}).IsFinite() {
		t.Error("IsFinite() = false for finite vector")
	}
}
