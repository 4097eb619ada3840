package dataio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/swarmplot/pkg/geom"
	"github.com/matzehuels/swarmplot/pkg/plot"
)

// PlacementDump is the JSON layout of computed swarm placements, one entry
// per swarm element in figure order.
type PlacementDump struct {
	Swarms []SwarmPlacement `json:"swarms"`
}

// SwarmPlacement pairs each sorted data value with its plot-space position.
type SwarmPlacement struct {
	Tag          string       `json:"tag,omitempty"`
	Values       []float64    `json:"values"`
	Points       []geom.Point `json:"points"`
	NonConverged int          `json:"non_converged,omitempty"`
}

// WritePlacements encodes swarm placements as indented JSON. The values and
// points slices are index-aligned, so downstream tools can join them without
// recomputing the layout.
func WritePlacements(w io.Writer, swarms []*plot.Swarm, placements []*plot.Placement) error {
	if len(swarms) != len(placements) {
		return fmt.Errorf("have %d swarms but %d placements", len(swarms), len(placements))
	}

	dump := PlacementDump{Swarms: make([]SwarmPlacement, len(swarms))}
	for i, s := range swarms {
		dump.Swarms[i] = SwarmPlacement{
			Tag:          s.Tag,
			Values:       s.Data,
			Points:       placements[i].Points,
			NonConverged: placements[i].NonConverged,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
