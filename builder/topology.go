// Topology factories. Each returns a Constructor closure; Build supplies the
// graph and resolved config. Node indices run 0..n-1 and edges are emitted in
// stable increasing order, so fixtures are reproducible byte-for-byte.

package builder

import (
	"fmt"

	"github.com/veltran/dwgraph/digraph"
)

const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 2
	minStarNodes     = 3
)

// Path builds a simple directed path P_n: edges i -> i+1 for i in 0..n-2.
// Requires n ≥ 2. Complexity: O(n).
func Path(n int) Constructor {
	return func(g *digraph.Graph[string, int64], cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
		}
		ids := addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, ids, i-1, i); err != nil {
				return fmt.Errorf("Path: edge %d->%d: %w", i-1, i, err)
			}
		}

		return nil
	}
}

// Cycle builds a directed cycle C_n: the path edges plus n-1 -> 0.
// Requires n ≥ 3. Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *digraph.Graph[string, int64], cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
		}
		ids := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, ids, i, (i+1)%n); err != nil {
				return fmt.Errorf("Cycle: edge %d->%d: %w", i, (i+1)%n, err)
			}
		}

		return nil
	}
}

// Complete builds the complete directed graph K_n: one edge i -> j for every
// ordered pair of distinct indices. Requires n ≥ 2. Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *digraph.Graph[string, int64], cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
		}
		ids := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(g, cfg, ids, i, j); err != nil {
					return fmt.Errorf("Complete: edge %d->%d: %w", i, j, err)
				}
			}
		}

		return nil
	}
}

// Star builds a directed star S_n: node 0 is the hub with one edge to every
// leaf 1..n-1. Requires n ≥ 3. Complexity: O(n).
func Star(n int) Constructor {
	return func(g *digraph.Graph[string, int64], cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewNodes)
		}
		ids := addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, ids, 0, i); err != nil {
				return fmt.Errorf("Star: edge 0->%d: %w", i, err)
			}
		}

		return nil
	}
}
