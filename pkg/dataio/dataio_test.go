package dataio

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/swarmplot/pkg/coords"
	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/geom"
	"github.com/matzehuels/swarmplot/pkg/plot"
)

func TestReadCSVWithHeader(t *testing.T) {
	in := "weight,height\n1.5,2\n3,4\n"
	series, err := ReadCSV(strings.NewReader(in), true)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("got %d series, want 2", len(series))
	}
	if series[0].Name != "weight" || series[1].Name != "height" {
		t.Errorf("names = %q,%q", series[0].Name, series[1].Name)
	}
	if series[0].Values[0] != 1.5 || series[1].Values[1] != 4 {
		t.Errorf("values = %v / %v", series[0].Values, series[1].Values)
	}
}

func TestReadCSVWithoutHeader(t *testing.T) {
	series, err := ReadCSV(strings.NewReader("1,2\n3,4\n"), false)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if series[0].Name != "col0" || series[1].Name != "col1" {
		t.Errorf("names = %q,%q, want col0,col1", series[0].Name, series[1].Name)
	}
}

func TestReadCSVSkipsEmptyCells(t *testing.T) {
	series, err := ReadCSV(strings.NewReader("a,b\n1,\n2,3\n"), true)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(series[1].Values) != 1 || series[1].Values[0] != 3 {
		t.Errorf("column b = %v, want [3]", series[1].Values)
	}
}

func TestReadCSVRejectsNonNumeric(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a\nnope\n"), true)
	if !errors.Is(err, errors.ErrCodeInvalidData) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidData)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), false)
	if !errors.Is(err, errors.ErrCodeInvalidData) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidData)
	}
}

func TestReadJSONList(t *testing.T) {
	in := `[{"name":"a","values":[1,2,3]}]`
	series, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if series[0].Name != "a" || len(series[0].Values) != 3 {
		t.Errorf("series = %+v", series[0])
	}
}

func TestReadJSONMap(t *testing.T) {
	in := `{"a":[1,2],"b":[3]}`
	series, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("got %d series, want 2", len(series))
	}
	s, err := Lookup(series, "b")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(s.Values) != 1 || s.Values[0] != 3 {
		t.Errorf("series b = %v, want [3]", s.Values)
	}
}

func TestLookupMissing(t *testing.T) {
	_, err := Lookup([]Series{{Name: "a", Values: []float64{1}}}, "z")
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeNotFound)
	}
}

func TestWritePlacements(t *testing.T) {
	s, err := plot.NewSwarm(geom.Vector{0, 0}, geom.Vector{1, 0}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("NewSwarm: %v", err)
	}
	s.Tag = "series-a"
	p, err := s.Placements(coords.Identity())
	if err != nil {
		t.Fatalf("Placements: %v", err)
	}

	var buf bytes.Buffer
	if err := WritePlacements(&buf, []*plot.Swarm{s}, []*plot.Placement{p}); err != nil {
		t.Fatalf("WritePlacements: %v", err)
	}

	var dump PlacementDump
	if err := json.Unmarshal(buf.Bytes(), &dump); err != nil {
		t.Fatalf("round-trip decode: %v", err)
	}
	if len(dump.Swarms) != 1 {
		t.Fatalf("got %d swarms, want 1", len(dump.Swarms))
	}
	got := dump.Swarms[0]
	if got.Tag != "series-a" || len(got.Points) != 3 || len(got.Values) != 3 {
		t.Errorf("dump = %+v", got)
	}
}

func TestWritePlacementsLengthMismatch(t *testing.T) {
	s, err := plot.NewSwarm(geom.Vector{0, 0}, geom.Vector{1, 0}, []float64{1})
	if err != nil {
		t.Fatalf("NewSwarm: %v", err)
	}
	if err := WritePlacements(&bytes.Buffer{}, []*plot.Swarm{s}, nil); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}
