// Cursor: a bidirectional position over the flattened edge sequence.
//
// The flattened order is: nodes ascending, and within each node its outgoing
// edges in edge order. Nodes with no outgoing edges are transparent: both
// stepping directions skip them. The end position is a sentinel one past the
// last node.
//
// Every cursor captures the graph's generation stamp at creation. Any
// mutation anywhere on the graph advances the stamp, and every subsequent
// operation on an older cursor returns ErrStaleCursor instead of touching
// moved storage.

package digraph

import "cmp"

// Cursor denotes either one edge of its owning graph or the end sentinel.
type Cursor[N, E cmp.Ordered] struct {
	g    *Graph[N, E]
	gen  uint64
	node int // index into g.order; len(g.order) is the end sentinel
	edge int // index into the outgoing edges of g.order[node]
}

// Begin returns the position of the first edge in the flattened sequence:
// the first outgoing edge of the lowest node that has one. If the graph has
// no edges, Begin equals End.
// Complexity: O(n) worst case.
func (g *Graph[N, E]) Begin() *Cursor[N, E] {
	for i, v := range g.order {
		if len(g.buckets[v].out) > 0 {
			return &Cursor[N, E]{g: g, gen: g.gen, node: i}
		}
	}

	return g.End()
}

// End returns the past-the-last sentinel position.
// Complexity: O(1).
func (g *Graph[N, E]) End() *Cursor[N, E] {
	return &Cursor[N, E]{g: g, gen: g.gen, node: len(g.order)}
}

// check guards every cursor operation against staleness. A zero-value
// cursor was never issued by a graph and is treated as foreign.
func (c *Cursor[N, E]) check() error {
	if c.g == nil {
		return ErrCursorMismatch
	}
	if c.gen != c.g.gen {
		return ErrStaleCursor
	}

	return nil
}

// atEnd reports whether the cursor is the end sentinel.
// Precondition: cursor is not stale.
func (c *Cursor[N, E]) atEnd() bool {
	return c.node >= len(c.g.order)
}

// clone returns an independent cursor at the same position.
func (c *Cursor[N, E]) clone() *Cursor[N, E] {
	dup := *c

	return &dup
}

// Entry returns the (from, to, weight) value of the edge the cursor denotes.
// Returns ErrStaleCursor after any graph mutation and ErrCursorOutOfRange at
// the end position.
func (c *Cursor[N, E]) Entry() (Entry[N, E], error) {
	if err := c.check(); err != nil {
		return Entry[N, E]{}, err
	}
	if c.atEnd() {
		return Entry[N, E]{}, ErrCursorOutOfRange
	}
	e := c.g.buckets[c.g.order[c.node]].out[c.edge]
	from, to := e.Endpoints()
	w, weighted := e.Weight()

	return Entry[N, E]{From: from, To: to, Weight: w, Weighted: weighted}, nil
}

// Next advances to the following edge: the next outgoing edge of the current
// node, else the first edge of the next node with any outgoing edges, else
// the end position.
// Returns ErrStaleCursor after any graph mutation and ErrCursorOutOfRange
// when already at the end position.
func (c *Cursor[N, E]) Next() error {
	if err := c.check(); err != nil {
		return err
	}
	if c.atEnd() {
		return ErrCursorOutOfRange
	}
	c.edge++
	if c.edge < len(c.g.buckets[c.g.order[c.node]].out) {
		return nil
	}
	c.edge = 0
	for c.node++; c.node < len(c.g.order); c.node++ {
		if len(c.g.buckets[c.g.order[c.node]].out) > 0 {
			return nil
		}
	}
	// Ran past the last populated node: now the end sentinel.

	return nil
}

// Prev retreats to the preceding edge. From the end position it moves to the
// last outgoing edge of the highest node that has one; otherwise to the
// previous edge of the current node, else to the last edge of the nearest
// lower node with any outgoing edges.
// Returns ErrStaleCursor after any graph mutation and ErrCursorOutOfRange
// when no preceding edge exists (first position, or an edgeless graph).
// The cursor is unchanged on error.
func (c *Cursor[N, E]) Prev() error {
	if err := c.check(); err != nil {
		return err
	}
	start := c.node - 1
	if c.atEnd() {
		start = len(c.g.order) - 1
	} else if c.edge > 0 {
		c.edge--

		return nil
	}
	for i := start; i >= 0; i-- {
		if n := len(c.g.buckets[c.g.order[i]].out); n > 0 {
			c.node, c.edge = i, n-1

			return nil
		}
	}

	return ErrCursorOutOfRange
}

// Equal reports whether two cursors reference the same graph and denote the
// same position; all end positions of one graph are equal to each other.
// Staleness does not participate: positions compare by coordinates.
func (c *Cursor[N, E]) Equal(other *Cursor[N, E]) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.g == nil || other.g == nil {
		return c.g == other.g
	}
	if c.g != other.g {
		return false
	}
	if c.atEnd() || other.atEnd() {
		return c.atEnd() && other.atEnd()
	}

	return c.node == other.node && c.edge == other.edge
}

// EraseEdgeAt removes the edge pos denotes and returns the position that
// immediately followed it before the removal, re-resolved against the
// mutated graph (or the end position if none). Removing at the end position
// is a no-op returning End.
// Returns ErrCursorMismatch for a foreign cursor and ErrStaleCursor for an
// outdated one. Invalidates all outstanding cursors, pos included; only the
// returned cursor is valid afterwards.
// Complexity: O(log e + e).
func (g *Graph[N, E]) EraseEdgeAt(pos *Cursor[N, E]) (*Cursor[N, E], error) {
	if pos == nil || pos.g != g {
		return nil, ErrCursorMismatch
	}
	if err := pos.check(); err != nil {
		return nil, err
	}
	if pos.atEnd() {
		return g.End(), nil
	}
	doomed, _ := pos.Entry()
	next := pos.clone()
	_ = next.Next() // cannot fail: pos is not at end
	var follower Entry[N, E]
	hasFollower := !next.atEnd()
	if hasFollower {
		follower, _ = next.Entry()
	}

	g.eraseEdge(doomed.From, doomed.To, edgeSpec[E]{weight: doomed.Weight, weighted: doomed.Weighted})

	if !hasFollower {
		return g.End(), nil
	}

	return g.findSpec(follower.From, follower.To, edgeSpec[E]{weight: follower.Weight, weighted: follower.Weighted}), nil
}

// EraseEdgeSpan removes every edge in the half-open span [from, to) by
// repeated single-edge removal and returns the position immediately
// following the last removed edge, re-resolved after the removals, the
// position equivalent to where to was before the span was erased, or the
// end position if to cannot be reached.
// Returns ErrCursorMismatch for foreign cursors and ErrStaleCursor for
// outdated ones. Invalidates all outstanding cursors when anything was
// removed; only the returned cursor is valid afterwards.
// Complexity: O(d · (log e + e)) for d removed edges.
func (g *Graph[N, E]) EraseEdgeSpan(from, to *Cursor[N, E]) (*Cursor[N, E], error) {
	if from == nil || from.g != g || to == nil || to.g != g {
		return nil, ErrCursorMismatch
	}
	if err := from.check(); err != nil {
		return nil, err
	}
	if err := to.check(); err != nil {
		return nil, err
	}

	var target Entry[N, E]
	bounded := !to.atEnd()
	if bounded {
		target, _ = to.Entry()
	}

	cur := from.clone()
	for !cur.atEnd() {
		entry, err := cur.Entry()
		if err != nil {
			return nil, err
		}
		if bounded && entry == target {
			break
		}
		if cur, err = g.EraseEdgeAt(cur); err != nil {
			return nil, err
		}
	}

	return cur, nil
}
