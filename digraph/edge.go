package digraph

import (
	"cmp"
	"fmt"
	"slices"
)

// Edge is one directed connection between two node values. Exactly two
// variants exist, *UnweightedEdge and *WeightedEdge, and the set is closed:
// every Edge held by a Graph is one of the two.
//
// Edges are immutable after construction; all methods are total.
type Edge[N, E cmp.Ordered] interface {
	// Render returns the canonical text form:
	// "src -> dst | U" or "src -> dst | W | weight".
	Render() string

	// IsWeighted reports whether the edge carries a weight.
	IsWeighted() bool

	// Weight returns the weight and true for the weighted variant,
	// the zero value and false otherwise.
	Weight() (E, bool)

	// Endpoints returns the source and destination node values.
	Endpoints() (from, to N)
}

// UnweightedEdge is the edge variant without a weight.
type UnweightedEdge[N, E cmp.Ordered] struct {
	from, to N
}

// NewUnweightedEdge constructs an unweighted edge from src to dst.
func NewUnweightedEdge[N, E cmp.Ordered](src, dst N) *UnweightedEdge[N, E] {
	return &UnweightedEdge[N, E]{from: src, to: dst}
}

// Render returns "src -> dst | U".
func (e *UnweightedEdge[N, E]) Render() string {
	return fmt.Sprintf("%v -> %v | U", e.from, e.to)
}

// IsWeighted reports false.
func (e *UnweightedEdge[N, E]) IsWeighted() bool { return false }

// Weight returns the zero weight and false.
func (e *UnweightedEdge[N, E]) Weight() (E, bool) {
	var zero E

	return zero, false
}

// Endpoints returns the source and destination node values.
func (e *UnweightedEdge[N, E]) Endpoints() (N, N) { return e.from, e.to }

// WeightedEdge is the edge variant carrying a weight of type E.
type WeightedEdge[N, E cmp.Ordered] struct {
	from, to N
	weight   E
}

// NewWeightedEdge constructs a weighted edge from src to dst carrying w.
func NewWeightedEdge[N, E cmp.Ordered](src, dst N, w E) *WeightedEdge[N, E] {
	return &WeightedEdge[N, E]{from: src, to: dst, weight: w}
}

// Render returns "src -> dst | W | weight".
func (e *WeightedEdge[N, E]) Render() string {
	return fmt.Sprintf("%v -> %v | W | %v", e.from, e.to, e.weight)
}

// IsWeighted reports true.
func (e *WeightedEdge[N, E]) IsWeighted() bool { return true }

// Weight returns the carried weight and true.
func (e *WeightedEdge[N, E]) Weight() (E, bool) { return e.weight, true }

// Endpoints returns the source and destination node values.
func (e *WeightedEdge[N, E]) Endpoints() (N, N) { return e.from, e.to }

// EqualEdges reports structural equality: sources and destinations match and
// either both edges are unweighted, or both are weighted with equal weights.
// An unweighted and a weighted edge between the same nodes are never equal.
func EqualEdges[N, E cmp.Ordered](a, b Edge[N, E]) bool {
	return compareEdges(a, b) == 0
}

// compareEdges is the total order kept inside every edge collection:
// source, then destination, then unweighted-before-weighted, then weight
// ascending. Structural duplicates are rejected before insertion, so no two
// distinct stored edges ever compare equal and no identity tie-break is
// needed.
func compareEdges[N, E cmp.Ordered](a, b Edge[N, E]) int {
	aFrom, aTo := a.Endpoints()
	bFrom, bTo := b.Endpoints()
	if c := cmp.Compare(aFrom, bFrom); c != 0 {
		return c
	}
	if c := cmp.Compare(aTo, bTo); c != 0 {
		return c
	}
	aw, aWeighted := a.Weight()
	bw, bWeighted := b.Weight()
	if aWeighted != bWeighted {
		if !aWeighted {
			return -1
		}

		return 1
	}
	if aWeighted {
		return cmp.Compare(aw, bw)
	}

	return 0
}

// copyEdge produces an independent instance structurally equal to e.
func copyEdge[N, E cmp.Ordered](e Edge[N, E]) Edge[N, E] {
	from, to := e.Endpoints()
	if w, ok := e.Weight(); ok {
		return &WeightedEdge[N, E]{from: from, to: to, weight: w}
	}

	return &UnweightedEdge[N, E]{from: from, to: to}
}

// insertSorted places e at its ordered position in s.
// Precondition: no structural duplicate of e is present.
func insertSorted[N, E cmp.Ordered](s []Edge[N, E], e Edge[N, E]) []Edge[N, E] {
	i, _ := slices.BinarySearchFunc(s, e, compareEdges[N, E])

	return slices.Insert(s, i, e)
}

// removeSorted deletes the structural equal of e from s, reporting whether
// one was found.
func removeSorted[N, E cmp.Ordered](s []Edge[N, E], e Edge[N, E]) ([]Edge[N, E], bool) {
	i, ok := slices.BinarySearchFunc(s, e, compareEdges[N, E])
	if !ok {
		return s, false
	}

	return slices.Delete(s, i, i+1), true
}
