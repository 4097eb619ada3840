// Package cli implements the swarmplot command-line interface.
//
// Commands render TOML chart descriptions to SVG, PNG, PDF or JSON, dump
// computed swarm placements, inspect the series of a chart interactively,
// run the HTTP rendering server and manage the artifact cache. All commands
// support --verbose (-v) for debug-level logging.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/swarmplot/pkg/buildinfo"
	"github.com/matzehuels/swarmplot/pkg/cache"
	"github.com/matzehuels/swarmplot/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "swarmplot"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Swarmplot renders statistical charts from TOML descriptions",
		Long:         `Swarmplot is a charting tool built around beeswarm plots: every data point stays visible, displaced sideways just far enough to avoid overlap. It also draws box plots, violins, pies, scatter, area and function plots, on linear or logarithmic axes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.placementsCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), nil, c.Logger)
}

// newCache builds the artifact cache. Failures to set up the file cache
// degrade to no caching rather than aborting the command.
func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that all requested formats are supported.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !pipeline.ValidFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'png', 'pdf', or 'json')", f)
		}
	}
	return nil
}
