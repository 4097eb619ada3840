package server

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/swarmplot/pkg/errors"
)

// Chart is a rendered figure stored in the gallery.
type Chart struct {
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`

	// Spec is the TOML chart description the artifact was rendered from.
	Spec []byte `bson:"spec" json:"-"`

	// SVG is the rendered artifact.
	SVG []byte `bson:"svg" json:"-"`
}

// Gallery stores rendered charts for later retrieval.
type Gallery interface {
	Save(ctx context.Context, chart Chart) error
	Get(ctx context.Context, id string) (Chart, error)
	List(ctx context.Context, limit int) ([]Chart, error)
}

// MemoryGallery keeps charts in process memory; the default for single-node
// deployments and tests.
type MemoryGallery struct {
	mu     sync.RWMutex
	charts map[string]Chart
	order  []string
}

// NewMemoryGallery creates an empty in-memory gallery.
func NewMemoryGallery() *MemoryGallery {
	return &MemoryGallery{charts: make(map[string]Chart)}
}

func (g *MemoryGallery) Save(ctx context.Context, chart Chart) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.charts[chart.ID]; !exists {
		g.order = append(g.order, chart.ID)
	}
	g.charts[chart.ID] = chart
	return nil
}

func (g *MemoryGallery) Get(ctx context.Context, id string) (Chart, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	chart, ok := g.charts[id]
	if !ok {
		return Chart{}, errors.New(errors.ErrCodeChartNotFound, "no chart with id %q", id)
	}
	return chart, nil
}

// List returns the most recently saved charts, newest first.
func (g *MemoryGallery) List(ctx context.Context, limit int) ([]Chart, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.order)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Chart, 0, n)
	for i := len(g.order) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, g.charts[g.order[i]])
	}
	return out, nil
}

var _ Gallery = (*MemoryGallery)(nil)
