package plot

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/matzehuels/swarmplot/pkg/canvas"
	"github.com/matzehuels/swarmplot/pkg/coords"
	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/geom"
)

// ViolinSide selects which side(s) of the axis the density silhouette is
// drawn on.
type ViolinSide string

const (
	ViolinBoth  ViolinSide = "both"
	ViolinLeft  ViolinSide = "left"
	ViolinRight ViolinSide = "right"
)

// Violin draws a kernel density silhouette along a data-space direction.
// The density is a Gaussian KDE with Scott's bandwidth, sampled uniformly
// over the data range widened by one bandwidth on each end, and scaled so
// the mode reaches MaxWidth.
type Violin struct {
	Position  geom.Vector
	Direction geom.Vector
	Data      []float64

	// MaxWidth is the silhouette's half-width at the density mode, in
	// plot-space units (full width when Side is both).
	MaxWidth float64

	// Samples is the number of density evaluation points. Zero selects 64.
	Samples int

	Side   ViolinSide
	Fill   *canvas.Color
	Stroke *canvas.Stroke
	Tag    string
}

const defaultViolinSamples = 64

// NewViolin builds a validated two-sided violin with palette fill.
func NewViolin(position, direction geom.Vector, data []float64) (*Violin, error) {
	v := &Violin{
		Position:  position,
		Direction: direction,
		Data:      sortedCopy(data),
		MaxWidth:  20,
		Side:      ViolinBoth,
		Fill:      &DefaultPalette[0],
	}
	if err := v.validate(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Violin) Kind() Kind { return KindViolin }

func (v *Violin) validate() error {
	if len(v.Data) < 2 {
		return errors.New(errors.ErrCodeInvalidInput, "violin needs at least 2 data values, got %d", len(v.Data))
	}
	for _, x := range v.Data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errors.New(errors.ErrCodeInvalidInput, "violin data contains non-finite value %v", x)
		}
	}
	if err := checkAxisVectors(v.Position, v.Direction); err != nil {
		return err
	}
	if v.MaxWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "violin max width must be positive, got %g", v.MaxWidth)
	}
	if v.Samples < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "violin sample count must be non-negative, got %d", v.Samples)
	}
	switch v.Side {
	case "", ViolinBoth, ViolinLeft, ViolinRight:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown violin side %q", v.Side)
	}
	return nil
}

// density evaluates the KDE over the widened data range. All densities share
// the sample positions, so the silhouette closes cleanly.
func (v *Violin) density() (xs, ds []float64, err error) {
	sample := stats.Sample{Xs: v.Data}
	bw := stats.BandwidthScott(sample)
	if bw <= 0 || math.IsNaN(bw) {
		return nil, nil, errors.New(errors.ErrCodeInvalidData,
			"violin data has no spread; cannot estimate a density")
	}
	kde := stats.KDE{Sample: sample, Bandwidth: bw}

	n := v.Samples
	if n == 0 {
		n = defaultViolinSamples
	}
	lo, hi := sample.Bounds()
	xs = vec.Linspace(lo-bw, hi+bw, n)
	ds = vec.Map(kde.PDF, xs)
	return xs, ds, nil
}

func (v *Violin) Plot(c *canvas.Canvas, sys coords.System) error {
	if err := v.validate(); err != nil {
		return err
	}
	xs, ds, err := v.density()
	if err != nil {
		return err
	}

	maxD := 0.0
	for _, d := range ds {
		if d > maxD {
			maxD = d
		}
	}
	if maxD <= 0 {
		return errors.New(errors.ErrCodeInvalidData, "violin density is zero everywhere")
	}

	mid := v.Position.AddScaled(v.Direction, xs[len(xs)/2])
	perp, err := localPerpendicular(sys, mid, sys.ToPlot(mid), geom.Perpendicular(v.Direction))
	if err != nil {
		return err
	}

	leftScale, rightScale := -1.0, 1.0
	switch v.Side {
	case ViolinLeft:
		rightScale = 0
	case ViolinRight:
		leftScale = 0
	}

	// Silhouette: up one side, back down the other. One side collapses onto
	// the axis for half violins.
	outline := make([]geom.Point, 0, 2*len(xs))
	for i, x := range xs {
		base := sys.ToPlot(v.Position.AddScaled(v.Direction, x))
		w := ds[i] / maxD * v.MaxWidth
		outline = append(outline, base.Add(perp.Scale(rightScale*w)))
	}
	for i := len(xs) - 1; i >= 0; i-- {
		base := sys.ToPlot(v.Position.AddScaled(v.Direction, xs[i]))
		w := ds[i] / maxD * v.MaxWidth
		outline = append(outline, base.Add(perp.Scale(leftScale*w)))
	}

	path := canvas.NewPath().SmoothThrough(outline).Close()
	if v.Fill != nil {
		c.FillPath(path, *v.Fill, v.Tag)
	}
	if v.Stroke != nil {
		tag := v.Tag
		if v.Fill != nil && tag != "" {
			tag += "-outline"
		}
		c.StrokePath(path, *v.Stroke, tag)
	}
	return nil
}
