// Package chartspec loads declarative chart descriptions from TOML and turns
// them into renderable figures.
//
// A minimal document:
//
//	title  = "weights"
//	width  = 600
//	height = 400
//
//	[axes.x]
//	kind = "linear"
//	min  = 0
//	max  = 4
//
//	[axes.y]
//	kind = "linear"
//	min  = 0
//	max  = 100
//
//	[[series]]
//	kind      = "swarm"
//	name      = "control"
//	data      = [61.5, 72.2, 68.0, 80.1]
//	position  = [1, 0]
//	direction = [0, 1]
package chartspec

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/swarmplot/pkg/canvas"
	"github.com/matzehuels/swarmplot/pkg/coords"
	"github.com/matzehuels/swarmplot/pkg/dataio"
	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/geom"
)

// Document is a parsed chart description.
type Document struct {
	Title  string  `toml:"title"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Margin is the blank border around the plot area, in output units.
	Margin float64 `toml:"margin"`

	Axes   Axes     `toml:"axes"`
	Grid   bool     `toml:"grid"`
	Series []Series `toml:"series"`
}

// Axes describes the figure's coordinate system.
type Axes struct {
	X Axis `toml:"x"`
	Y Axis `toml:"y"`

	// Hide suppresses the drawn axis lines; the coordinate system is still
	// built from the ranges.
	Hide bool `toml:"hide"`

	// MaxTicks bounds tick counts per axis. Zero selects 6.
	MaxTicks int `toml:"max_ticks"`
}

// Axis is one axis of the coordinate system.
type Axis struct {
	Kind string  `toml:"kind"` // "linear" (default) or "log"
	Min  float64 `toml:"min"`
	Max  float64 `toml:"max"`
}

// Series is one charted dataset.
type Series struct {
	Kind string `toml:"kind"`
	Name string `toml:"name"`

	// Data is the inline value list. DataFile/Column load from CSV or JSON
	// instead; inline data wins when both are set.
	Data     []float64 `toml:"data"`
	DataFile string    `toml:"data_file"`
	Column   string    `toml:"column"`

	// Swarm, box and violin placement.
	Position  []float64 `toml:"position"`
	Direction []float64 `toml:"direction"`

	// Scatter and area series.
	X []float64 `toml:"x"`
	Y []float64 `toml:"y"`

	// Pie.
	Values []float64 `toml:"values"`
	Center []float64 `toml:"center"`
	Radius float64   `toml:"radius"`
	Inner  float64   `toml:"inner"`

	// Styling.
	PointSize   float64 `toml:"point_size"`
	PointMargin float64 `toml:"point_margin"`
	Width       float64 `toml:"width"`
	Symbol      string  `toml:"symbol"`
	Color       string  `toml:"color"` // "#rrggbb"; empty cycles the palette
	Side        string  `toml:"side"`  // violin: both/left/right
	Baseline    float64 `toml:"baseline"`
	Smooth      bool    `toml:"smooth"`
}

// Load reads and validates a TOML chart description.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse chart description")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile reads a chart description from disk.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Validate fills defaults and rejects documents that cannot build a figure.
func (d *Document) Validate() error {
	if d.Width <= 0 {
		d.Width = 600
	}
	if d.Height <= 0 {
		d.Height = 400
	}
	if d.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "margin must be non-negative, got %g", d.Margin)
	}
	if d.Margin == 0 {
		d.Margin = 40
	}
	if d.Axes.MaxTicks == 0 {
		d.Axes.MaxTicks = 6
	}

	for name, a := range map[string]*Axis{"x": &d.Axes.X, "y": &d.Axes.Y} {
		switch a.Kind {
		case "":
			a.Kind = "linear"
		case "linear", "log":
		default:
			return errors.New(errors.ErrCodeInvalidSpec, "%s axis: unknown kind %q", name, a.Kind)
		}
		if a.Max <= a.Min {
			return errors.New(errors.ErrCodeInvalidSpec, "%s axis: range [%g,%g] is empty", name, a.Min, a.Max)
		}
		if a.Kind == "log" && a.Min <= 0 {
			return errors.New(errors.ErrCodeInvalidSpec, "%s axis: log axes need a positive range, got min %g", name, a.Min)
		}
	}

	if len(d.Series) == 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "chart has no series")
	}
	for i := range d.Series {
		if err := d.Series[i].validate(i); err != nil {
			return err
		}
	}
	return nil
}

func (s *Series) validate(i int) error {
	switch s.Kind {
	case "swarm", "box", "violin":
		if len(s.Position) < 2 || len(s.Direction) < 2 {
			return errors.New(errors.ErrCodeInvalidSpec,
				"series %d (%s): position and direction need at least 2 components", i, s.Kind)
		}
	case "pie":
		if len(s.Values) == 0 {
			return errors.New(errors.ErrCodeInvalidSpec, "series %d (pie): no values", i)
		}
		if len(s.Center) < 2 {
			return errors.New(errors.ErrCodeInvalidSpec, "series %d (pie): center needs 2 components", i)
		}
	case "scatter", "area", "line":
		if len(s.X) == 0 && s.DataFile == "" {
			return errors.New(errors.ErrCodeInvalidSpec, "series %d (%s): no x values", i, s.Kind)
		}
	case "":
		return errors.New(errors.ErrCodeInvalidSpec, "series %d: missing kind", i)
	default:
		return errors.New(errors.ErrCodeInvalidSpec, "series %d: unknown kind %q", i, s.Kind)
	}

	switch s.Symbol {
	case "", "circle", "square", "diamond", "cross", "triangle":
	default:
		return errors.New(errors.ErrCodeInvalidSpec, "series %d: unknown symbol %q", i, s.Symbol)
	}
	if s.Color != "" {
		if _, err := ParseColor(s.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSpec, err, "series %d", i)
		}
	}
	return nil
}

// ParseColor parses a "#rrggbb" hex color.
func ParseColor(s string) (canvas.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return canvas.Color{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return canvas.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return canvas.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// ResolveData returns the series values, loading from DataFile when no
// inline data is given.
func (s *Series) ResolveData(baseDir string) ([]float64, error) {
	if len(s.Data) > 0 {
		return s.Data, nil
	}
	if s.DataFile == "" {
		return nil, errors.New(errors.ErrCodeInvalidSpec, "series %q has neither data nor data_file", s.Name)
	}

	path := s.DataFile
	if baseDir != "" && !os.IsPathSeparator(path[0]) {
		path = baseDir + string(os.PathSeparator) + path
	}

	var (
		list []dataio.Series
		err  error
	)
	if isJSONFile(path) {
		list, err = dataio.ImportJSON(path)
	} else {
		list, err = dataio.ImportCSV(path, true)
	}
	if err != nil {
		return nil, err
	}

	column := s.Column
	if column == "" && len(list) == 1 {
		return list[0].Values, nil
	}
	found, err := dataio.Lookup(list, column)
	if err != nil {
		return nil, err
	}
	return found.Values, nil
}

func isJSONFile(path string) bool {
	const ext = ".json"
	return len(path) > len(ext) && path[len(path)-len(ext):] == ext
}

// geomVector converts a TOML float list to a data-space vector.
func geomVector(xs []float64) geom.Vector {
	return geom.Vector(xs)
}

func axisKind(k string) coords.AxisKind {
	if k == "log" {
		return coords.AxisLog
	}
	return coords.AxisLinear
}
