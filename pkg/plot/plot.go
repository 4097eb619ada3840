// Package plot assembles geometric primitives into composite statistical
// charts: swarm (beeswarm), box, violin, pie/doughnut, area, scatter and
// function plots, plus axes, grids and labels.
//
// A figure is a coordinate system plus an ordered list of elements. Elements
// are a closed set of concrete kinds so renderers can dispatch exhaustively;
// each element draws itself onto a canvas through the shared coordinate
// system.
//
//	sys, _ := coords.NewLinear(0, 10, 0, 100, 400, 300)
//	p := plot.New(sys, 400, 300)
//	p.Add(&plot.Scatter{Points: pts, Fill: &plot.DefaultPalette[0]})
//	c, err := p.Render()
//	svg := c.SVG()
package plot

import (
	"github.com/matzehuels/swarmplot/pkg/canvas"
	"github.com/matzehuels/swarmplot/pkg/coords"
	"github.com/matzehuels/swarmplot/pkg/errors"
)

// Kind identifies a concrete element type. The set is closed; renderers and
// spec loaders switch over it exhaustively.
type Kind string

const (
	KindSwarm    Kind = "swarm"
	KindBox      Kind = "box"
	KindViolin   Kind = "violin"
	KindPie      Kind = "pie"
	KindArea     Kind = "area"
	KindScatter  Kind = "scatter"
	KindFunction Kind = "function"
	KindAxis     Kind = "axis"
	KindGrid     Kind = "grid"
	KindLabel    Kind = "label"
)

// Element is a drawable chart component. Plot draws elements in insertion
// order, so later elements paint over earlier ones.
type Element interface {
	Kind() Kind
	// Plot draws the element onto c using the figure's coordinate system.
	Plot(c *canvas.Canvas, sys coords.System) error
}

// Plot is a figure: a coordinate system shared read-only by an ordered list
// of elements, rendered onto a fixed-size canvas.
type Plot struct {
	Sys           coords.System
	Width, Height float64

	elements []Element
}

// New creates an empty figure.
func New(sys coords.System, width, height float64) *Plot {
	return &Plot{Sys: sys, Width: width, Height: height}
}

// Add appends elements to the figure and returns it for chaining.
func (p *Plot) Add(els ...Element) *Plot {
	p.elements = append(p.elements, els...)
	return p
}

// Elements returns the figure's elements in draw order.
func (p *Plot) Elements() []Element { return p.elements }

// Render draws every element onto a fresh canvas. Rendering is synchronous
// and all state is local to the call, so distinct figures may render in
// parallel.
func (p *Plot) Render() (*canvas.Canvas, error) {
	if p.Sys == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "plot has no coordinate system")
	}
	c := canvas.New(p.Width, p.Height)
	for i, el := range p.elements {
		if err := el.Plot(c, p.Sys); err != nil {
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInternal
			}
			return nil, errors.Wrap(code, err, "element %d (%s)", i, el.Kind())
		}
	}
	return c, nil
}
