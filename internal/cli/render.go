package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/swarmplot/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats: svg, png, pdf, json
	scale   float64  // raster scale factor for PNG
	refresh bool     // bypass the artifact cache and re-render
	noCache bool     // disable the artifact cache entirely
}

// renderCommand creates the render command for generating chart artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a chart description to SVG, PNG, PDF or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor for PNG output")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if a cached artifact exists")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runRender executes the pipeline and writes every artifact to disk.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	runner := c.newRunner(opts.noCache)

	spinner := newSpinnerWithContext(cmd.Context(), "Rendering "+filepath.Base(input))
	spinner.Start()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		SpecPath: input,
		Formats:  opts.formats,
		Scale:    opts.scale,
		Refresh:  opts.refresh,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(opts.formats)))

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := opts.output
		if path == "" || len(opts.formats) > 1 {
			path = base + "." + format
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	cached := false
	for _, hit := range result.CacheInfo.ArtifactHits {
		if hit {
			cached = true
			break
		}
	}
	printStats(result.Stats.ElementCount, result.Stats.PointCount, result.Stats.NonConverged, cached)

	if result.Stats.NonConverged > 0 {
		printWarning("%d point(s) still overlap after the iteration cap; consider a smaller point size", result.Stats.NonConverged)
	}
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output carries
// a known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
