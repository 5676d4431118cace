// Node lifecycle: insertion, cascading erase, replace and merge-replace.
//
// Replace and merge-replace share one re-homing pass: every edge touching
// the old node is re-inserted with the old value substituted at each
// matching endpoint (a self-loop old→old becomes new→new), structural
// duplicates silently dropped, then the old node is erased entirely.

package digraph

import "slices"

// InsertNode adds value as a node if no equal node exists.
// Returns true if the node was added, false on a duplicate (no-op).
// Invalidates all outstanding cursors on success.
// Complexity: O(log n) lookup + O(n) ordered insertion.
func (g *Graph[N, E]) InsertNode(value N) bool {
	if _, exists := g.buckets[value]; exists {
		return false
	}
	g.buckets[value] = &bucket[N, E]{}
	i, _ := g.locate(value)
	g.order = slices.Insert(g.order, i, value)
	g.gen++

	return true
}

// IsNode reports whether a node equal to value exists.
// Complexity: O(1).
func (g *Graph[N, E]) IsNode(value N) bool {
	_, exists := g.buckets[value]

	return exists
}

// Empty reports whether the graph has no nodes.
// Complexity: O(1).
func (g *Graph[N, E]) Empty() bool {
	return len(g.order) == 0
}

// Nodes returns all node values in ascending order.
// The result is an independent copy.
// Complexity: O(n).
func (g *Graph[N, E]) Nodes() []N {
	return slices.Clone(g.order)
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph[N, E]) NodeCount() int {
	return len(g.order)
}

// EraseNode removes the node equal to value together with every edge where
// value is an endpoint, from every collection on both sides.
// Returns false if no such node exists (no-op).
// Invalidates all outstanding cursors on success.
// Complexity: O(deg(v) · log e + n).
func (g *Graph[N, E]) EraseNode(value N) bool {
	b, exists := g.buckets[value]
	if !exists {
		return false
	}
	// Detach each incident edge from the counterpart node's collection.
	// Self-loops live only in this node's own bucket, which is dropped whole.
	for _, e := range b.out {
		if _, to := e.Endpoints(); to != value {
			nb := g.buckets[to]
			nb.in, _ = removeSorted(nb.in, e)
		}
	}
	for _, e := range b.in {
		if from, _ := e.Endpoints(); from != value {
			nb := g.buckets[from]
			nb.out, _ = removeSorted(nb.out, e)
		}
	}
	delete(g.buckets, value)
	i, _ := g.locate(value)
	g.order = slices.Delete(g.order, i, i+1)
	g.gen++

	return true
}

// ReplaceNode renames the node oldValue to newValue, re-homing every edge
// that touches it. Returns ErrReplaceNodeMissing if oldValue is absent and
// false (no-op) if newValue already names a node.
// Invalidates all outstanding cursors on success.
// Complexity: O(deg(v) · (log e + e)).
func (g *Graph[N, E]) ReplaceNode(oldValue, newValue N) (bool, error) {
	if !g.IsNode(oldValue) {
		return false, ErrReplaceNodeMissing
	}
	if g.IsNode(newValue) {
		return false, nil
	}
	g.InsertNode(newValue)
	g.rehome(oldValue, newValue)

	return true, nil
}

// MergeReplaceNode re-homes every edge touching oldValue onto the existing
// node newValue, silently dropping re-homed edges that would duplicate an
// edge already present, then erases oldValue. No node is ever created.
// Returns ErrMergeReplaceMissing if either node is absent; no-op when
// oldValue == newValue.
// Invalidates all outstanding cursors on success.
// Complexity: O(deg(v) · (log e + e)).
func (g *Graph[N, E]) MergeReplaceNode(oldValue, newValue N) error {
	if !g.IsNode(oldValue) || !g.IsNode(newValue) {
		return ErrMergeReplaceMissing
	}
	if oldValue == newValue {
		return nil
	}
	g.rehome(oldValue, newValue)

	return nil
}

// rehome moves every edge touching oldValue onto newValue, substituting
// oldValue at each matching endpoint, then erases oldValue.
// Precondition: both nodes exist and differ.
func (g *Graph[N, E]) rehome(oldValue, newValue N) {
	b := g.buckets[oldValue]
	substitute := func(v N) N {
		if v == oldValue {
			return newValue
		}

		return v
	}

	type candidate struct {
		from, to N
		spec     edgeSpec[E]
	}
	candidates := make([]candidate, 0, len(b.out)+len(b.in))
	collect := func(e Edge[N, E]) {
		from, to := e.Endpoints()
		w, weighted := e.Weight()
		candidates = append(candidates, candidate{
			from: substitute(from),
			to:   substitute(to),
			spec: edgeSpec[E]{weight: w, weighted: weighted},
		})
	}
	for _, e := range b.out {
		collect(e)
	}
	for _, e := range b.in {
		// A self-loop sits in both collections; it was collected above.
		if from, _ := e.Endpoints(); from != oldValue {
			collect(e)
		}
	}

	g.EraseNode(oldValue)
	for _, c := range candidates {
		g.insertEdge(c.from, c.to, c.spec) // duplicates rejected, not duplicated
	}
}

// Degree returns the number of incoming and outgoing edges of value.
// A self-loop counts once in each direction.
// Returns ErrNodeNotFound if value is absent.
// Complexity: O(1).
func (g *Graph[N, E]) Degree(value N) (in, out int, err error) {
	b, exists := g.buckets[value]
	if !exists {
		return 0, 0, ErrNodeNotFound
	}

	return len(b.in), len(b.out), nil
}

// Clear removes all nodes and edges. Invalidates all outstanding cursors.
// Complexity: O(1).
func (g *Graph[N, E]) Clear() {
	g.buckets = make(map[N]*bucket[N, E])
	g.order = nil
	g.gen++
}
