package plot

import (
	"math"
	"testing"
)

func TestQuantileInterpolates(t *testing.T) {
	xs := []float64{1, 2, 3, 4}

	tests := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
		{-0.5, 1}, // clamps below
		{1.5, 4},  // clamps above
	}
	for _, tt := range tests {
		if got := quantile(xs, tt.q); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("quantile(%v) = %v, want %v", tt.q, got, tt.want)
		}
	}
}

func TestQuantileSingleValue(t *testing.T) {
	if got := quantile([]float64{7}, 0.5); got != 7 {
		t.Errorf("quantile of single value = %v, want 7", got)
	}
}

func TestSummarize(t *testing.T) {
	// 1..9 plus an outlier far above the upper fence.
	data := sortedCopy([]float64{9, 1, 2, 3, 4, 5, 6, 7, 8, 50})
	s := summarize(data)

	if s.Min != 1 || s.Max != 50 {
		t.Errorf("min/max = %v/%v, want 1/50", s.Min, s.Max)
	}
	if s.Median != 5.5 {
		t.Errorf("median = %v, want 5.5", s.Median)
	}
	if s.Q1 != 3.25 || s.Q3 != 7.75 {
		t.Errorf("quartiles = %v/%v, want 3.25/7.75", s.Q1, s.Q3)
	}
	// Upper fence = 7.75 + 1.5·4.5 = 14.5, so 50 is an outlier and the
	// whisker stops at 9.
	if s.WhiskerHi != 9 {
		t.Errorf("upper whisker = %v, want 9", s.WhiskerHi)
	}
	if s.WhiskerLo != 1 {
		t.Errorf("lower whisker = %v, want 1", s.WhiskerLo)
	}
	if len(s.Outliers) != 1 || s.Outliers[0] != 50 {
		t.Errorf("outliers = %v, want [50]", s.Outliers)
	}
}

func TestSummarizeNoOutliers(t *testing.T) {
	s := summarize(sortedCopy([]float64{1, 2, 3, 4, 5}))
	if len(s.Outliers) != 0 {
		t.Errorf("outliers = %v, want none", s.Outliers)
	}
	if s.WhiskerLo != 1 || s.WhiskerHi != 5 {
		t.Errorf("whiskers = %v/%v, want data range 1/5", s.WhiskerLo, s.WhiskerHi)
	}
}

func TestSortedCopyLeavesInputAlone(t *testing.T) {
	in := []float64{3, 1, 2}
	out := sortedCopy(in)
	if out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Errorf("sortedCopy = %v, want [1 2 3]", out)
	}
	if in[0] != 3 {
		t.Error("input slice was mutated")
	}
}
