// Package digraph core types: sentinel errors, the Graph container,
// edge options, and the Entry value produced by cursors.
package digraph

import (
	"cmp"
	"errors"
	"slices"
)

// Sentinel errors for operations that require pre-existing nodes.
//
// The message texts below are a compatibility contract: external callers
// match on the exact strings, so they carry no package prefix and must not
// be reworded.
var (
	// ErrInsertEdgeMissingNode indicates InsertEdge was called with an absent endpoint.
	ErrInsertEdgeMissingNode = errors.New("Cannot call insert_edge when either src or dst node does not exist")

	// ErrReplaceNodeMissing indicates ReplaceNode was called on an absent node.
	ErrReplaceNodeMissing = errors.New("Cannot call replace_node on a node that doesn't exist")

	// ErrMergeReplaceMissing indicates MergeReplaceNode was called with an absent old or new node.
	ErrMergeReplaceMissing = errors.New("Cannot call merge_replace_node on old or new data if they don't exist in the graph")

	// ErrEraseEdgeMissingNode indicates EraseEdge was called with an absent endpoint.
	ErrEraseEdgeMissingNode = errors.New("Cannot call erase_edge on src or dst if they don't exist in the graph")

	// ErrIsConnectedMissingNode indicates IsConnected was called with an absent endpoint.
	ErrIsConnectedMissingNode = errors.New("Cannot call is_connected if src or dst node don't exist in the graph")

	// ErrEdgesMissingNode indicates Edges was called with an absent endpoint.
	ErrEdgesMissingNode = errors.New("Cannot call edges if src or dst node don't exist in the graph")

	// ErrConnectionsMissingNode indicates Connections was called on an absent node.
	ErrConnectionsMissingNode = errors.New("Cannot call connections if src doesn't exist in the graph")
)

// Sentinel errors for cursor misuse and supplemental queries.
var (
	// ErrNodeNotFound indicates a supplemental query referenced an absent node.
	ErrNodeNotFound = errors.New("digraph: node not found")

	// ErrCursorOutOfRange indicates a cursor boundary violation: dereferencing
	// or advancing the end position, or retreating the first position.
	ErrCursorOutOfRange = errors.New("digraph: cursor out of range")

	// ErrStaleCursor indicates the owning graph mutated after the cursor was
	// created; the cursor no longer denotes a valid position.
	ErrStaleCursor = errors.New("digraph: cursor invalidated by graph mutation")

	// ErrCursorMismatch indicates a cursor was applied to a graph other than
	// the one that issued it.
	ErrCursorMismatch = errors.New("digraph: cursor belongs to a different graph")
)

// Entry is the value a Cursor denotes: one directed edge, flattened.
// Weight is meaningful only when Weighted is true. Entry is comparable with
// == for any ordered N and E.
type Entry[N, E cmp.Ordered] struct {
	// From is the source node value.
	From N
	// To is the destination node value.
	To N
	// Weight is the edge weight; zero value when Weighted is false.
	Weight E
	// Weighted distinguishes the weighted edge variant from the unweighted one.
	Weighted bool
}

// edgeSpec captures the optional weight resolved from EdgeOption values.
type edgeSpec[E cmp.Ordered] struct {
	weight   E
	weighted bool
}

// EdgeOption configures the edge variant used by InsertEdge, EraseEdge and
// Find. Without options the unweighted variant is selected.
type EdgeOption[E cmp.Ordered] func(*edgeSpec[E])

// WithWeight selects the weighted edge variant carrying w.
func WithWeight[E cmp.Ordered](w E) EdgeOption[E] {
	return func(s *edgeSpec[E]) {
		s.weight = w
		s.weighted = true
	}
}

// resolveEdgeSpec folds options into a spec; the last WithWeight wins.
func resolveEdgeSpec[E cmp.Ordered](opts []EdgeOption[E]) edgeSpec[E] {
	var s edgeSpec[E]
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// materialize builds the edge variant a spec describes.
func materialize[N, E cmp.Ordered](src, dst N, s edgeSpec[E]) Edge[N, E] {
	if s.weighted {
		return &WeightedEdge[N, E]{from: src, to: dst, weight: s.weight}
	}

	return &UnweightedEdge[N, E]{from: src, to: dst}
}

// bucket holds one node's edge collections, each kept in edge order at all
// times. The same *Edge instance appears in the source's out slice and the
// destination's in slice; a self-loop appears once in each slice of its node.
type bucket[N, E cmp.Ordered] struct {
	out []Edge[N, E]
	in  []Edge[N, E]
}

// Graph is a generic directed multigraph over ordered node values N and
// ordered weight values E. The zero value is not usable; construct with New
// or From.
//
// Invariants:
//   - order is the ascending sequence of node values; buckets has exactly
//     those keys.
//   - Within any out slice no two edges are structurally equal, and each
//     out member also appears in exactly one in slice (its destination's).
//   - gen advances on every mutation; cursors capture it at creation.
type Graph[N, E cmp.Ordered] struct {
	buckets map[N]*bucket[N, E]
	order   []N
	gen     uint64
}

// New creates an empty Graph.
// Complexity: O(1).
func New[N, E cmp.Ordered]() *Graph[N, E] {
	return &Graph[N, E]{buckets: make(map[N]*bucket[N, E])}
}

// From creates a Graph holding the given node values and no edges.
// Duplicate values collapse to a single node; input order is irrelevant.
// Complexity: O(k log k) for k input values.
func From[N, E cmp.Ordered](values ...N) *Graph[N, E] {
	g := New[N, E]()
	for _, v := range values {
		g.InsertNode(v)
	}

	return g
}

// locate returns the position of value in the ascending node order.
func (g *Graph[N, E]) locate(value N) (int, bool) {
	return slices.BinarySearch(g.order, value)
}
