// Edge lifecycle and adjacency queries.
//
// All mutations keep the two-sided invariant: one edge instance is shared by
// its source's outgoing collection and its destination's incoming collection
// (the same node for self-loops), and both collections stay in edge order.

package digraph

import "slices"

// InsertEdge adds a directed edge from src to dst: weighted when WithWeight
// is supplied, unweighted otherwise. The edge is added iff no structurally
// equal edge from src already exists; both sides are updated together.
// Returns true if the edge was added, false on a structural duplicate.
// Returns ErrInsertEdgeMissingNode if either endpoint is absent.
// Invalidates all outstanding cursors on success.
// Complexity: O(log e + e) per side.
func (g *Graph[N, E]) InsertEdge(src, dst N, opts ...EdgeOption[E]) (bool, error) {
	if !g.IsNode(src) || !g.IsNode(dst) {
		return false, ErrInsertEdgeMissingNode
	}

	return g.insertEdge(src, dst, resolveEdgeSpec(opts)), nil
}

// insertEdge performs the dedup check and the two-sided ordered insertion.
// Precondition: both endpoints exist.
func (g *Graph[N, E]) insertEdge(src, dst N, spec edgeSpec[E]) bool {
	e := materialize(src, dst, spec)
	sb := g.buckets[src]
	if _, dup := slices.BinarySearchFunc(sb.out, e, compareEdges[N, E]); dup {
		return false
	}
	sb.out = insertSorted(sb.out, e)
	db := g.buckets[dst]
	db.in = insertSorted(db.in, e) // same instance on both sides
	g.gen++

	return true
}

// EraseEdge removes the unique edge from src to dst matching the optional
// weight (unweighted variant when WithWeight is absent) from both sides.
// Returns true if such an edge existed, false otherwise.
// Returns ErrEraseEdgeMissingNode if either endpoint is absent.
// Invalidates all outstanding cursors on success.
// Complexity: O(log e + e) per side.
func (g *Graph[N, E]) EraseEdge(src, dst N, opts ...EdgeOption[E]) (bool, error) {
	if !g.IsNode(src) || !g.IsNode(dst) {
		return false, ErrEraseEdgeMissingNode
	}

	return g.eraseEdge(src, dst, resolveEdgeSpec(opts)), nil
}

// eraseEdge removes the structural match of spec from both sides.
// Precondition: both endpoints exist.
func (g *Graph[N, E]) eraseEdge(src, dst N, spec edgeSpec[E]) bool {
	probe := materialize(src, dst, spec)
	sb := g.buckets[src]
	out, found := removeSorted(sb.out, probe)
	if !found {
		return false
	}
	sb.out = out
	db := g.buckets[dst]
	db.in, _ = removeSorted(db.in, probe)
	g.gen++

	return true
}

// IsConnected reports whether some outgoing edge of src targets dst,
// regardless of weight or weightedness.
// Returns ErrIsConnectedMissingNode if either node is absent.
// Complexity: O(e).
func (g *Graph[N, E]) IsConnected(src, dst N) (bool, error) {
	if !g.IsNode(src) || !g.IsNode(dst) {
		return false, ErrIsConnectedMissingNode
	}
	for _, e := range g.buckets[src].out {
		_, to := e.Endpoints()
		if to == dst {
			return true, nil
		}
		if to > dst { // outgoing edges are ordered by destination
			break
		}
	}

	return false, nil
}

// Edges returns independent copies of every edge from src to dst, the
// unweighted edge first (if present), then weighted edges ascending by
// weight.
// Returns ErrEdgesMissingNode if either node is absent.
// Complexity: O(e).
func (g *Graph[N, E]) Edges(src, dst N) ([]Edge[N, E], error) {
	if !g.IsNode(src) || !g.IsNode(dst) {
		return nil, ErrEdgesMissingNode
	}
	var out []Edge[N, E]
	for _, e := range g.buckets[src].out {
		_, to := e.Endpoints()
		if to > dst {
			break
		}
		if to == dst {
			out = append(out, copyEdge(e))
		}
	}

	return out, nil
}

// Connections returns the distinct destinations reachable via any outgoing
// edge of src, ascending, as independent copies.
// Returns ErrConnectionsMissingNode if src is absent.
// Complexity: O(e).
func (g *Graph[N, E]) Connections(src N) ([]N, error) {
	b, exists := g.buckets[src]
	if !exists {
		return nil, ErrConnectionsMissingNode
	}
	var out []N
	for _, e := range b.out {
		_, to := e.Endpoints()
		if len(out) == 0 || out[len(out)-1] != to {
			out = append(out, to)
		}
	}

	return out, nil
}

// Find returns the position of the unique edge from src to dst matching the
// optional weight, or the end position if no such edge (or either node)
// exists. A missing node is not an error here; Find is a lenient lookup.
// Complexity: O(log n + log e).
func (g *Graph[N, E]) Find(src, dst N, opts ...EdgeOption[E]) *Cursor[N, E] {
	if !g.IsNode(src) || !g.IsNode(dst) {
		return g.End()
	}

	return g.findSpec(src, dst, resolveEdgeSpec(opts))
}

// findSpec locates the structural match of spec in src's outgoing
// collection. Precondition: both endpoints exist.
func (g *Graph[N, E]) findSpec(src, dst N, spec edgeSpec[E]) *Cursor[N, E] {
	probe := materialize(src, dst, spec)
	ei, found := slices.BinarySearchFunc(g.buckets[src].out, probe, compareEdges[N, E])
	if !found {
		return g.End()
	}
	ni, _ := g.locate(src)

	return &Cursor[N, E]{g: g, gen: g.gen, node: ni, edge: ei}
}

// Entries returns the full flattened edge sequence in iteration order:
// ascending by source node, then by the per-node edge order.
// Complexity: O(E).
func (g *Graph[N, E]) Entries() []Entry[N, E] {
	out := make([]Entry[N, E], 0, g.EdgeCount())
	for _, v := range g.order {
		for _, e := range g.buckets[v].out {
			from, to := e.Endpoints()
			w, weighted := e.Weight()
			out = append(out, Entry[N, E]{From: from, To: to, Weight: w, Weighted: weighted})
		}
	}

	return out
}

// EdgeCount returns the total number of stored edges. Complexity: O(n).
func (g *Graph[N, E]) EdgeCount() int {
	var total int
	for _, v := range g.order {
		total += len(g.buckets[v].out)
	}

	return total
}
