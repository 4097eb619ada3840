package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/swarmplot/pkg/cache"
	"github.com/matzehuels/swarmplot/pkg/canvas"
	"github.com/matzehuels/swarmplot/pkg/chartspec"
	"github.com/matzehuels/swarmplot/pkg/dataio"
	"github.com/matzehuels/swarmplot/pkg/observability"
	"github.com/matzehuels/swarmplot/pkg/plot"
	"github.com/matzehuels/swarmplot/pkg/render"
)

// Runner executes the chart pipeline with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

func (r *Runner) logger(opts *Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// Execute runs the complete load → build → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(&opts)

	source, err := opts.source()
	if err != nil {
		return nil, err
	}

	result := &Result{
		ChartHash: cache.Hash(source),
		Artifacts: make(map[string][]byte),
		CacheInfo: CacheInfo{ArtifactHits: make(map[string]bool)},
	}

	// Stage 1: Build
	buildStart := time.Now()
	doc, err := chartspec.Load(bytes.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	observability.Chart().OnBuildStart(ctx, len(doc.Series))

	fig, err := doc.Build(opts.BaseDir)
	result.Stats.BuildTime = time.Since(buildStart)
	elements := 0
	if fig != nil {
		elements = len(fig.Plot.Elements())
	}
	observability.Chart().OnBuildComplete(ctx, elements, result.Stats.BuildTime, err)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Document = doc
	result.Figure = fig
	result.Stats.ElementCount = elements

	logger.Info("built figure",
		"series", len(doc.Series),
		"elements", result.Stats.ElementCount,
		"duration", result.Stats.BuildTime)

	// Stage 2: Layout (swarm placements)
	layoutStart := time.Now()
	if err := r.computePlacements(ctx, result); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Stats.LayoutTime = time.Since(layoutStart)

	logger.Info("computed placements",
		"swarms", len(fig.Swarms),
		"points", result.Stats.PointCount,
		"nonConverged", result.Stats.NonConverged,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Chart().OnRenderStart(ctx, opts.Formats)
	err = r.renderFormats(ctx, result, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Chart().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// computePlacements runs every swarm layout and accumulates counters.
func (r *Runner) computePlacements(ctx context.Context, result *Result) error {
	sys := result.Figure.Plot.Sys
	for _, s := range result.Figure.Swarms {
		observability.Chart().OnLayoutStart(ctx, string(s.Kind()), len(s.Data))
		start := time.Now()
		p, err := s.Placements(sys)
		observability.Chart().OnLayoutComplete(ctx, string(s.Kind()), nonConverged(p), time.Since(start), err)
		if err != nil {
			return err
		}
		result.Placements = append(result.Placements, p)
		result.Stats.PointCount += len(p.Points)
		result.Stats.NonConverged += p.NonConverged
	}
	return nil
}

func nonConverged(p *plot.Placement) int {
	if p == nil {
		return 0
	}
	return p.NonConverged
}

// renderFormats produces every requested artifact, serving repeats from the
// cache. The SVG is rendered at most once and reused for raster conversion.
func (r *Runner) renderFormats(ctx context.Context, result *Result, opts Options) error {
	var svg []byte

	renderSVG := func() ([]byte, error) {
		if svg != nil {
			return svg, nil
		}
		c, err := result.Figure.Plot.Render()
		if err != nil {
			return nil, err
		}
		svg = c.SVG(canvas.WithBackground(canvas.RGB(0xff, 0xff, 0xff)))
		return svg, nil
	}

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(result.ChartHash, cache.ArtifactKeyOpts{
			Format: format,
			Scale:  opts.Scale,
		})

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				result.Artifacts[format] = data
				result.CacheInfo.ArtifactHits[format] = true
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}

		data, err := r.renderOne(format, result, opts, renderSVG)
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
		result.Artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return nil
}

func (r *Runner) renderOne(format string, result *Result, opts Options, renderSVG func() ([]byte, error)) ([]byte, error) {
	switch format {
	case FormatSVG:
		return renderSVG()
	case FormatPNG:
		svg, err := renderSVG()
		if err != nil {
			return nil, err
		}
		return render.ToPNG(svg, opts.Scale)
	case FormatPDF:
		svg, err := renderSVG()
		if err != nil {
			return nil, err
		}
		return render.ToPDF(svg)
	case FormatJSON:
		var buf bytes.Buffer
		if err := dataio.WritePlacements(&buf, result.Figure.Swarms, result.Placements); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}
