package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/swarmplot/pkg/chartspec"
)

func TestSummaryStats(t *testing.T) {
	tests := []struct {
		name             string
		xs               []float64
		min, median, max float64
	}{
		{"odd count", []float64{3, 1, 2}, 1, 2, 3},
		{"even count", []float64{4, 1, 3, 2}, 1, 2.5, 4},
		{"single value", []float64{7}, 7, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, median, max := summaryStats(tt.xs)
			if min != tt.min || median != tt.median || max != tt.max {
				t.Errorf("summaryStats(%v) = %v, %v, %v; want %v, %v, %v",
					tt.xs, min, median, max, tt.min, tt.median, tt.max)
			}
		})
	}
}

func TestBuildSeriesRows(t *testing.T) {
	doc := &chartspec.Document{
		Series: []chartspec.Series{
			{Kind: "swarm", Name: "control", Data: []float64{3, 1, 2}},
			{Kind: "pie", Values: []float64{10, 20}},
			{Kind: "scatter", X: []float64{1, 2}, Y: []float64{5, 9}},
		},
	}

	rows, err := buildSeriesRows(doc, "")
	if err != nil {
		t.Fatalf("buildSeriesRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	if rows[0].Name != "control" || rows[0].Count != 3 || rows[0].Median != 2 {
		t.Errorf("swarm row = %+v", rows[0])
	}
	if rows[1].Name != "series-1" {
		t.Errorf("unnamed series should get a fallback name, got %q", rows[1].Name)
	}
	if rows[2].Count != 2 || rows[2].Max != 9 {
		t.Errorf("scatter row = %+v", rows[2])
	}
}

func TestSeriesListModelNavigation(t *testing.T) {
	rows := []seriesRow{
		{Name: "a", Kind: "swarm", Count: 3},
		{Name: "b", Kind: "box", Count: 5},
	}
	m := newSeriesListModel("Test", rows)

	view := m.View()
	for _, want := range []string{"Test", "a", "b", "swarm", "box"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if !strings.Contains(view, "[1/2]") {
		t.Error("View() should show cursor position")
	}
}
