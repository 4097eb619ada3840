package chartspec

import (
	"github.com/matzehuels/swarmplot/pkg/canvas"
	"github.com/matzehuels/swarmplot/pkg/coords"
	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/geom"
	"github.com/matzehuels/swarmplot/pkg/plot"
)

// Figure is a built chart: the renderable plot plus the swarm elements, kept
// separately so callers can dump placements without re-walking the element
// list.
type Figure struct {
	Plot   *plot.Plot
	Swarms []*plot.Swarm
}

// Build turns a validated document into a figure. Relative data_file paths
// resolve against baseDir.
func (d *Document) Build(baseDir string) (*Figure, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	inner, err := coords.NewLinLog(
		axisKind(d.Axes.X.Kind), axisKind(d.Axes.Y.Kind),
		d.Axes.X.Min, d.Axes.X.Max,
		d.Axes.Y.Min, d.Axes.Y.Max,
		d.Width-2*d.Margin, d.Height-2*d.Margin,
	)
	if err != nil {
		return nil, err
	}
	sys := coords.WithOffset(inner, d.Margin, d.Margin)

	fig := &Figure{Plot: plot.New(sys, d.Width, d.Height)}

	// Background decorations first so series paint over them.
	if d.Grid {
		if err := d.addGrid(fig.Plot); err != nil {
			return nil, err
		}
	}
	if !d.Axes.Hide {
		if err := d.addAxes(fig.Plot); err != nil {
			return nil, err
		}
	}

	for i := range d.Series {
		el, err := d.Series[i].build(i, baseDir)
		if err != nil {
			return nil, err
		}
		fig.Plot.Add(el)
		if s, ok := el.(*plot.Swarm); ok {
			fig.Swarms = append(fig.Swarms, s)
		}
	}

	if d.Title != "" {
		title, err := plot.NewLabel(d.Title, geom.Vector{
			(d.Axes.X.Min + d.Axes.X.Max) / 2,
			d.Axes.Y.Max,
		})
		if err != nil {
			return nil, err
		}
		title.Font = canvas.Font{Size: 16}
		title.Tag = "title"
		fig.Plot.Add(title)
	}

	return fig, nil
}

func (d *Document) addGrid(p *plot.Plot) error {
	xTicks := coords.Ticks(axisKind(d.Axes.X.Kind), d.Axes.X.Min, d.Axes.X.Max, d.Axes.MaxTicks)
	yTicks := coords.Ticks(axisKind(d.Axes.Y.Kind), d.Axes.Y.Min, d.Axes.Y.Max, d.Axes.MaxTicks)

	if len(xTicks) >= 2 {
		g, err := plot.NewGrid(
			geom.Vector{xTicks[0].Value, d.Axes.Y.Min},
			geom.Vector{xTicks[len(xTicks)-1].Value, d.Axes.Y.Min},
			geom.Vector{xTicks[0].Value, d.Axes.Y.Max},
			geom.Vector{xTicks[len(xTicks)-1].Value, d.Axes.Y.Max},
			len(xTicks),
		)
		if err != nil {
			return err
		}
		g.Tag = "grid-x"
		p.Add(g)
	}
	if len(yTicks) >= 2 {
		g, err := plot.NewGrid(
			geom.Vector{d.Axes.X.Min, yTicks[0].Value},
			geom.Vector{d.Axes.X.Min, yTicks[len(yTicks)-1].Value},
			geom.Vector{d.Axes.X.Max, yTicks[0].Value},
			geom.Vector{d.Axes.X.Max, yTicks[len(yTicks)-1].Value},
			len(yTicks),
		)
		if err != nil {
			return err
		}
		g.Tag = "grid-y"
		p.Add(g)
	}
	return nil
}

func (d *Document) addAxes(p *plot.Plot) error {
	x, err := plot.NewAxis(
		geom.Vector{d.Axes.X.Min, d.Axes.Y.Min},
		geom.Vector{d.Axes.X.Max, d.Axes.Y.Min},
	)
	if err != nil {
		return err
	}
	x.Ticks = coords.Ticks(axisKind(d.Axes.X.Kind), d.Axes.X.Min, d.Axes.X.Max, d.Axes.MaxTicks)
	x.TickMin, x.TickMax = d.Axes.X.Min, d.Axes.X.Max
	x.Tag = "axis-x"

	y, err := plot.NewAxis(
		geom.Vector{d.Axes.X.Min, d.Axes.Y.Min},
		geom.Vector{d.Axes.X.Min, d.Axes.Y.Max},
	)
	if err != nil {
		return err
	}
	y.Ticks = coords.Ticks(axisKind(d.Axes.Y.Kind), d.Axes.Y.Min, d.Axes.Y.Max, d.Axes.MaxTicks)
	y.TickMin, y.TickMax = d.Axes.Y.Min, d.Axes.Y.Max
	y.Tag = "axis-y"

	p.Add(x, y)
	return nil
}

// build constructs the plot element for one series. The palette index is the
// series position, so uncolored series stay visually distinct.
func (s *Series) build(i int, baseDir string) (plot.Element, error) {
	fill := plot.PaletteColor(i)
	if s.Color != "" {
		parsed, err := ParseColor(s.Color)
		if err != nil {
			return nil, err
		}
		fill = parsed
	}

	switch s.Kind {
	case "swarm":
		data, err := s.ResolveData(baseDir)
		if err != nil {
			return nil, err
		}
		sw, err := plot.NewSwarm(geomVector(s.Position), geomVector(s.Direction), data)
		if err != nil {
			return nil, err
		}
		if s.PointSize > 0 {
			sw.PointSize = s.PointSize
		}
		if s.PointMargin > 0 {
			sw.PointMargin = s.PointMargin
		}
		if s.Symbol != "" {
			sw.Symbol = plot.Symbol(s.Symbol)
		}
		sw.Fill = &fill
		sw.Tag = s.Name
		return sw, nil

	case "box":
		data, err := s.ResolveData(baseDir)
		if err != nil {
			return nil, err
		}
		b, err := plot.NewBox(geomVector(s.Position), geomVector(s.Direction), data)
		if err != nil {
			return nil, err
		}
		if s.Width > 0 {
			b.Width = s.Width
		}
		b.Fill = &fill
		b.Tag = s.Name
		return b, nil

	case "violin":
		data, err := s.ResolveData(baseDir)
		if err != nil {
			return nil, err
		}
		v, err := plot.NewViolin(geomVector(s.Position), geomVector(s.Direction), data)
		if err != nil {
			return nil, err
		}
		if s.Width > 0 {
			v.MaxWidth = s.Width
		}
		if s.Side != "" {
			v.Side = plot.ViolinSide(s.Side)
		}
		v.Fill = &fill
		v.Tag = s.Name
		return v, nil

	case "pie":
		radius := s.Radius
		if radius == 0 {
			radius = 80
		}
		pie, err := plot.NewPie(geomVector(s.Center), radius, s.Values)
		if err != nil {
			return nil, err
		}
		pie.InnerRadius = s.Inner
		pie.Tag = s.Name
		return pie, nil

	case "scatter":
		if len(s.X) != len(s.Y) {
			return nil, errors.New(errors.ErrCodeInvalidSpec,
				"series %d (scatter): %d x values but %d y values", i, len(s.X), len(s.Y))
		}
		pts := make([]geom.Vector, len(s.X))
		for j := range s.X {
			pts[j] = geom.Vector{s.X[j], s.Y[j]}
		}
		sc, err := plot.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		if s.PointSize > 0 {
			sc.PointSize = s.PointSize
		}
		if s.Symbol != "" {
			sc.Symbol = plot.Symbol(s.Symbol)
		}
		sc.Fill = &fill
		sc.Tag = s.Name
		return sc, nil

	case "area", "line":
		a, err := plot.NewArea(s.X, s.Y)
		if err != nil {
			return nil, err
		}
		a.Baseline = s.Baseline
		a.Smooth = s.Smooth
		edge := canvas.SolidStroke(fill, 1.5)
		a.Stroke = edge
		if s.Kind == "line" {
			a.Fill = nil
		} else {
			areaFill := fill.WithAlpha(0.35)
			a.Fill = &areaFill
		}
		a.Tag = s.Name
		return a, nil
	}

	return nil, errors.New(errors.ErrCodeInvalidSpec, "series %d: unknown kind %q", i, s.Kind)
}
