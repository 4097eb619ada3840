package plot

import (
	"strings"
	"testing"

	"github.com/matzehuels/swarmplot/pkg/canvas"
	"github.com/matzehuels/swarmplot/pkg/coords"
	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/geom"
)

func canvasFor(t *testing.T, w, h float64) *canvas.Canvas {
	t.Helper()
	return canvas.New(w, h)
}

func TestPlotRenderDispatchesAllElements(t *testing.T) {
	sys, err := coords.NewLinear(0, 10, 0, 10, 200, 200)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	scatter, err := NewScatter([]geom.Vector{{1, 1}, {5, 5}})
	if err != nil {
		t.Fatalf("NewScatter: %v", err)
	}
	label, err := NewLabel("title", geom.Vector{5, 9})
	if err != nil {
		t.Fatalf("NewLabel: %v", err)
	}

	p := New(sys, 200, 200).Add(scatter, label)
	c, err := p.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// Two scatter fills plus one text op.
	if c.OpCount() != 3 {
		t.Errorf("OpCount = %d, want 3", c.OpCount())
	}
}

func TestPlotRenderWithoutSystemFails(t *testing.T) {
	p := New(nil, 100, 100)
	_, err := p.Render()
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestPlotRenderWrapsElementErrors(t *testing.T) {
	sys := coords.Identity()
	p := New(sys, 100, 100).Add(&Scatter{PointSize: 3}) // no points

	_, err := p.Render()
	if err == nil {
		t.Fatal("expected error from invalid element")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("code = %q, want %s", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
	if !strings.Contains(err.Error(), string(KindScatter)) {
		t.Errorf("error %q does not name the failing element kind", err)
	}
}

func TestPaletteColorCycles(t *testing.T) {
	if PaletteColor(0) != DefaultPalette[0] {
		t.Error("index 0 should return the first palette entry")
	}
	if PaletteColor(len(DefaultPalette)) != DefaultPalette[0] {
		t.Error("index past the end should wrap to the first entry")
	}
	if PaletteColor(-2) != PaletteColor(2) {
		t.Error("negative indexes should mirror positive ones")
	}
}

func TestElementKinds(t *testing.T) {
	tests := []struct {
		el   Element
		want Kind
	}{
		{&Swarm{}, KindSwarm},
		{&Box{}, KindBox},
		{&Violin{}, KindViolin},
		{&Pie{}, KindPie},
		{&Area{}, KindArea},
		{&Scatter{}, KindScatter},
		{&Function{}, KindFunction},
		{&Axis{}, KindAxis},
		{&Grid{}, KindGrid},
		{&Label{}, KindLabel},
	}
	for _, tt := range tests {
		if got := tt.el.Kind(); got != tt.want {
			t.Errorf("Kind() = %q, want %q", got, tt.want)
		}
	}
}
