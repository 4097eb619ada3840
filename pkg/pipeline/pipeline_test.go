package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/swarmplot/pkg/cache"
)

const testSpec = `
width  = 400
height = 300

[axes.x]
min = 0
max = 4

[axes.y]
min = 0
max = 100

[[series]]
kind      = "swarm"
name      = "control"
data      = [61.5, 72.2, 68.0, 68.1, 68.2]
position  = [1, 0]
direction = [0, 1]
`

func quietLogger() *log.Logger {
	logger := log.New(io.Discard)
	logger.SetLevel(log.FatalLevel)
	return logger
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	var empty Options
	if err := empty.ValidateAndSetDefaults(); err == nil {
		t.Error("empty options should fail")
	}

	opts := Options{SpecPath: "/tmp/chart.toml"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", opts.Scale, DefaultScale)
	}
	if opts.BaseDir != "/tmp" {
		t.Errorf("BaseDir = %q, want /tmp", opts.BaseDir)
	}

	bad := Options{SpecSource: []byte("x"), Formats: []string{"gif"}}
	if err := bad.ValidateAndSetDefaults(); err == nil {
		t.Error("unsupported format should fail")
	}
}

func TestExecuteProducesSVGAndJSON(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())

	result, err := runner.Execute(context.Background(), Options{
		SpecSource: []byte(testSpec),
		Formats:    []string{FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	svg := string(result.Artifacts[FormatSVG])
	if !strings.Contains(svg, "<svg") {
		t.Error("svg artifact does not look like SVG")
	}
	if !strings.Contains(string(result.Artifacts[FormatJSON]), "\"points\"") {
		t.Error("json artifact does not contain placements")
	}

	if result.Stats.PointCount != 5 {
		t.Errorf("PointCount = %d, want 5", result.Stats.PointCount)
	}
	if result.Stats.ElementCount == 0 {
		t.Error("ElementCount should be positive")
	}
	if len(result.Placements) != 1 {
		t.Errorf("Placements = %d, want 1", len(result.Placements))
	}
	if result.ChartHash == "" {
		t.Error("ChartHash is empty")
	}
}

func TestExecuteUsesArtifactCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	runner := NewRunner(c, nil, quietLogger())

	opts := Options{SpecSource: []byte(testSpec), Formats: []string{FormatSVG}}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.ArtifactHits[FormatSVG] {
		t.Error("first run should not hit the cache")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.ArtifactHits[FormatSVG] {
		t.Error("second run should hit the cache")
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from rendered artifact")
	}

	// Refresh bypasses the cache.
	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.ArtifactHits[FormatSVG] {
		t.Error("refresh run should not hit the cache")
	}
}

func TestExecuteRejectsBadSpec(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())
	_, err := runner.Execute(context.Background(), Options{
		SpecSource: []byte("width = -1\n"),
	})
	if err == nil {
		t.Error("expected error for invalid chart description")
	}
}
