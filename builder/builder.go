package builder

import (
	"fmt"

	"github.com/veltran/dwgraph/digraph"
)

// Constructor applies one deterministic topology mutation to g using the
// resolved config. Constructors validate their parameters early, return
// sentinel errors, and never panic.
type Constructor func(g *digraph.Graph[string, int64], cfg config) error

// Build creates a fresh graph, resolves opts into a config, and applies the
// constructors in order. The first constructor error is wrapped with
// "Build: " context and returned; no partial cleanup is attempted.
// Complexity: O(len(opts)) resolution plus the cost of each constructor.
func Build(opts []Option, cons ...Constructor) (*digraph.Graph[string, int64], error) {
	g := digraph.New[string, int64]()
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// addNodes inserts n nodes named by cfg.idFn and returns their IDs in index
// order. Pre-existing nodes (shared between composed constructors) are fine.
func addNodes(g *digraph.Graph[string, int64], cfg config, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		g.InsertNode(ids[i])
	}

	return ids
}

// addEdge emits one edge between index-addressed endpoints, weighted per the
// config's weight policy. A structural duplicate (possible when composed
// constructors overlap) is silently skipped.
func addEdge(g *digraph.Graph[string, int64], cfg config, ids []string, i, j int) error {
	var opts []digraph.EdgeOption[int64]
	if cfg.weightFn != nil {
		opts = append(opts, digraph.WithWeight(cfg.weightFn(i, j)))
	}
	_, err := g.InsertEdge(ids[i], ids[j], opts...)

	return err
}
