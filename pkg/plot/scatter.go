package plot

import (
	"github.com/matzehuels/swarmplot/pkg/canvas"
	"github.com/matzehuels/swarmplot/pkg/coords"
	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/geom"
)

// Scatter draws one symbol glyph per data-space point.
type Scatter struct {
	Points []geom.Vector

	// PointSize is the glyph radius in plot-space units.
	PointSize float64

	Symbol Symbol
	Fill   *canvas.Color
	Stroke *canvas.Stroke
	Tag    string
}

// NewScatter builds a validated scatter with circle glyphs and palette fill.
func NewScatter(points []geom.Vector) (*Scatter, error) {
	s := &Scatter{
		Points:    points,
		PointSize: 3,
		Symbol:    SymbolCircle,
		Fill:      &DefaultPalette[0],
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scatter) Kind() Kind { return KindScatter }

func (s *Scatter) validate() error {
	if len(s.Points) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scatter has no points")
	}
	for i, p := range s.Points {
		if len(p) < 2 {
			return errors.New(errors.ErrCodeInvalidInput, "scatter point %d has fewer than 2 components", i)
		}
		if !p.IsFinite() {
			return errors.New(errors.ErrCodeInvalidInput, "scatter point %d is non-finite", i)
		}
	}
	if s.PointSize <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scatter point size must be positive, got %g", s.PointSize)
	}
	return nil
}

func (s *Scatter) Plot(c *canvas.Canvas, sys coords.System) error {
	if err := s.validate(); err != nil {
		return err
	}
	for i, p := range s.Points {
		drawSymbol(c, s.Symbol, sys.ToPlot(p), s.PointSize, s.Fill, s.Stroke, indexedTag(s.Tag, i))
	}
	return nil
}
