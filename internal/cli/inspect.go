package cli

import (
	"fmt"
	"path/filepath"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/swarmplot/pkg/chartspec"
)

// inspectCommand creates the inspect command. It loads a chart description
// and opens an interactive browser over its series, showing per-series
// summary statistics without rendering anything.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Browse the series of a chart description interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := chartspec.LoadFile(args[0])
			if err != nil {
				return err
			}

			rows, err := buildSeriesRows(doc, filepath.Dir(args[0]))
			if err != nil {
				return err
			}

			model := newSeriesListModel(doc.Title, rows)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// seriesRow is one line of the inspect table.
type seriesRow struct {
	Name   string
	Kind   string
	Source string // "inline" or the data file name
	Count  int
	Min    float64
	Median float64
	Max    float64
}

// buildSeriesRows resolves every series and computes summary statistics.
func buildSeriesRows(doc *chartspec.Document, baseDir string) ([]seriesRow, error) {
	rows := make([]seriesRow, 0, len(doc.Series))
	for i := range doc.Series {
		s := &doc.Series[i]
		row := seriesRow{Name: s.Name, Kind: s.Kind, Source: "inline"}
		if row.Name == "" {
			row.Name = fmt.Sprintf("series-%d", i)
		}
		if s.DataFile != "" && len(s.Data) == 0 {
			row.Source = filepath.Base(s.DataFile)
		}

		values, err := seriesValues(s, baseDir)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", row.Name, err)
		}
		row.Count = len(values)
		if len(values) > 0 {
			row.Min, row.Median, row.Max = summaryStats(values)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// seriesValues picks the value list that drives the series geometry.
func seriesValues(s *chartspec.Series, baseDir string) ([]float64, error) {
	switch s.Kind {
	case "pie":
		return s.Values, nil
	case "scatter", "area", "line":
		return s.Y, nil
	default:
		return s.ResolveData(baseDir)
	}
}

// summaryStats returns min, median and max of xs.
func summaryStats(xs []float64) (min, median, max float64) {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	min = sorted[0]
	max = sorted[len(sorted)-1]
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}
	return min, median, max
}
