// Package pipeline provides the core chart pipeline: load a chart
// description, build the figure, compute swarm placements and render the
// requested output formats. CLI and server share it so both entry points
// behave identically.
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    SpecPath: "chart.toml",
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/swarmplot/pkg/chartspec"
	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/plot"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// DefaultScale is the raster scale factor for PNG output.
const DefaultScale = 2.0

// Options configures one pipeline execution.
type Options struct {
	// SpecPath locates the TOML chart description on disk. SpecSource
	// provides it inline instead; SpecSource wins when both are set.
	SpecPath   string
	SpecSource []byte

	// BaseDir resolves relative data_file paths in the description. Empty
	// defaults to the description's directory (or the working directory for
	// inline sources).
	BaseDir string

	// Formats selects the outputs to produce. Empty defaults to ["svg"].
	Formats []string

	// Scale is the PNG raster scale factor. Zero selects DefaultScale.
	Scale float64

	// Refresh bypasses the artifact cache and re-renders.
	Refresh bool

	// Logger overrides the runner's logger for this execution.
	Logger *log.Logger
}

// ValidateAndSetDefaults normalizes opts and rejects unusable combinations.
func (o *Options) ValidateAndSetDefaults() error {
	if o.SpecPath == "" && len(o.SpecSource) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no chart description: set SpecPath or SpecSource")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	for _, f := range o.Formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", f)
		}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	if o.BaseDir == "" && o.SpecPath != "" {
		o.BaseDir = filepath.Dir(o.SpecPath)
	}
	return nil
}

// source returns the chart description bytes.
func (o *Options) source() ([]byte, error) {
	if len(o.SpecSource) > 0 {
		return o.SpecSource, nil
	}
	data, err := os.ReadFile(o.SpecPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read chart description")
	}
	return data, nil
}

// Stats carries per-stage timings and layout counters.
type Stats struct {
	BuildTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration

	ElementCount int
	PointCount   int
	NonConverged int
}

// CacheInfo reports which stages were served from cache.
type CacheInfo struct {
	// ArtifactHits maps format name to whether the artifact came from cache.
	ArtifactHits map[string]bool
}

// Result is the output of a pipeline execution.
type Result struct {
	Document *chartspec.Document
	Figure   *chartspec.Figure

	// ChartHash identifies the chart description; artifact cache keys derive
	// from it.
	ChartHash string

	// Placements holds computed swarm layouts, index-aligned with
	// Figure.Swarms.
	Placements []*plot.Placement

	// Artifacts maps format name to rendered bytes.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}
