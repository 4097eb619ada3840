package plot

import (
	"math"
	"sort"
)

// quantile returns the q-quantile of sorted xs using linear interpolation
// between order statistics. xs must be sorted ascending and non-empty.
func quantile(xs []float64, q float64) float64 {
	if q <= 0 {
		return xs[0]
	}
	if q >= 1 {
		return xs[len(xs)-1]
	}
	pos := q * float64(len(xs)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return xs[lo]
	}
	frac := pos - float64(lo)
	return xs[lo]*(1-frac) + xs[hi]*frac
}

// fiveNumber summarizes sorted data for a box plot: quartiles plus whiskers
// at the most extreme values within 1.5·IQR of the box.
type fiveNumber struct {
	Min, Q1, Median, Q3, Max float64
	WhiskerLo, WhiskerHi     float64
	Outliers                 []float64
}

func summarize(sorted []float64) fiveNumber {
	s := fiveNumber{
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
	iqr := s.Q3 - s.Q1
	loFence := s.Q1 - 1.5*iqr
	hiFence := s.Q3 + 1.5*iqr

	s.WhiskerLo, s.WhiskerHi = s.Max, s.Min
	for _, x := range sorted {
		if x >= loFence && x < s.WhiskerLo {
			s.WhiskerLo = x
		}
		if x <= hiFence && x > s.WhiskerHi {
			s.WhiskerHi = x
		}
		if x < loFence || x > hiFence {
			s.Outliers = append(s.Outliers, x)
		}
	}
	return s
}

// sortedCopy returns xs sorted ascending without modifying the input.
func sortedCopy(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	sort.Float64s(out)
	return out
}
