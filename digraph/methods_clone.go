// Cloning, ownership transfer, and whole-graph equality.

package digraph

import "slices"

// Clone returns a deep copy: the same nodes and structurally equal edges,
// every edge a fresh instance fully independent of the source. No cursors of
// the source apply to the clone.
// Complexity: O(n + E · (log e + e)).
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	out := New[N, E]()
	out.order = slices.Clone(g.order)
	for _, v := range g.order {
		out.buckets[v] = &bucket[N, E]{}
	}
	for _, v := range g.order {
		for _, e := range g.buckets[v].out {
			from, to := e.Endpoints()
			w, weighted := e.Weight()
			out.insertEdge(from, to, edgeSpec[E]{weight: w, weighted: weighted})
		}
	}

	return out
}

// Move transfers ownership of all nodes and edges into a fresh graph and
// leaves the receiver empty. Cursors issued by the receiver before the move
// become stale; the new graph starts with none.
// Complexity: O(1).
func (g *Graph[N, E]) Move() *Graph[N, E] {
	out := &Graph[N, E]{buckets: g.buckets, order: g.order}
	g.buckets = make(map[N]*bucket[N, E])
	g.order = nil
	g.gen++

	return out
}

// Equal reports whether two graphs hold identical node sequences and
// identical flattened (from, to, weight) edge sequences. Edge identity and
// graph identity are irrelevant; only structure is compared.
// Complexity: O(n + E).
func (g *Graph[N, E]) Equal(other *Graph[N, E]) bool {
	if g == other {
		return true
	}
	if other == nil {
		return false
	}
	if !slices.Equal(g.order, other.order) {
		return false
	}

	return slices.Equal(g.Entries(), other.Entries())
}
