package coords

import (
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/scale"
)

// Tick is a labeled axis position in data space.
type Tick struct {
	Value float64
	Label string
}

// Ticks chooses at most max nicely-spaced tick positions covering [lo, hi].
// Linear axes use a 1/2/5×10^k step ladder; log axes place ticks at powers of
// ten (falling back to the linear ladder when the range spans less than a
// decade). The step is selected with the tick-level search from
// go-moremath/scale.
func Ticks(kind AxisKind, lo, hi float64, max int) []Tick {
	if !(hi > lo) || max < 1 {
		return nil
	}
	if kind == AxisLog && hi/lo >= 10 {
		return logTicks(lo, hi, max)
	}
	return linearTicks(lo, hi, max)
}

// funcTicker adapts a pair of per-level closures to scale.Ticker so the
// level search in TickOptions.FindLevel can drive them.
type funcTicker struct {
	count func(level int) int
	at    func(level int) []float64
}

func (t funcTicker) CountTicks(level int) int { return t.count(level) }

func (t funcTicker) TicksAtLevel(level int) interface{} { return t.at(level) }

// step ladder: level l selects step {1,2,5}·10^(l/3). Monotonic in l, which
// is what TickOptions.FindLevel requires.
func stepAt(level int) float64 {
	mants := [3]float64{1, 2, 5}
	div := level / 3
	mod := level % 3
	if mod < 0 {
		mod += 3
		div--
	}
	return mants[mod] * math.Pow(10, float64(div))
}

func linearTicks(lo, hi float64, max int) []Tick {
	count := func(level int) int {
		step := stepAt(level)
		n := int(math.Floor(hi/step) - math.Ceil(lo/step) + 1)
		if n < 0 {
			return 0
		}
		return n
	}
	ticksAt := func(level int) []float64 {
		step := stepAt(level)
		first := math.Ceil(lo/step) * step
		var out []float64
		for v := first; v <= hi+step*1e-9; v += step {
			out = append(out, v)
		}
		return out
	}

	opts := scale.TickOptions{Max: max}
	guess := int(math.Round(3 * math.Log10((hi-lo)/float64(max))))
	level, ok := opts.FindLevel(funcTicker{count: count, at: ticksAt}, guess)
	if !ok {
		return nil
	}

	vals := ticksAt(level)
	step := stepAt(level)
	out := make([]Tick, len(vals))
	for i, v := range vals {
		out[i] = Tick{Value: v, Label: formatWithStep(v, step)}
	}
	return out
}

// formatWithStep renders v with just enough decimals to distinguish ticks
// that are step apart, avoiding float artifacts like 0.30000000000000004.
func formatWithStep(v, step float64) string {
	decimals := 0
	if step < 1 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if decimals > 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func logTicks(lo, hi float64, max int) []Tick {
	loExp := int(math.Ceil(math.Log10(lo) - 1e-9))
	hiExp := int(math.Floor(math.Log10(hi) + 1e-9))

	count := func(level int) int {
		if level < 1 {
			level = 1
		}
		return (hiExp-loExp)/level + 1
	}
	ticksAt := func(level int) []float64 {
		if level < 1 {
			level = 1
		}
		var out []float64
		for e := loExp; e <= hiExp; e += level {
			out = append(out, math.Pow(10, float64(e)))
		}
		return out
	}

	opts := scale.TickOptions{Max: max, MinLevel: 1, MaxLevel: 1000}
	level, ok := opts.FindLevel(funcTicker{count: count, at: ticksAt}, 1)
	if !ok {
		return nil
	}

	vals := ticksAt(level)
	out := make([]Tick, len(vals))
	for i, v := range vals {
		out[i] = Tick{Value: v, Label: FormatValue(v)}
	}
	return out
}

// FormatValue renders a tick label: shortest decimal form that round-trips,
// with scientific notation for very large or small magnitudes.
func FormatValue(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e6 || abs < 1e-4 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
