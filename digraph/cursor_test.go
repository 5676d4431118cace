package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltran/dwgraph/digraph"
)

// threeEdgeGraph builds nodes {1,2,3} with edges 1→2, 1→3, 2→3 (unweighted).
func threeEdgeGraph(t *testing.T) *digraph.Graph[int, int] {
	t.Helper()
	g := digraph.From[int, int](1, 2, 3)
	for _, e := range [][2]int{{1, 2}, {1, 3}, {2, 3}} {
		added, err := g.InsertEdge(e[0], e[1])
		require.NoError(t, err)
		require.True(t, added)
	}

	return g
}

// TestCursor_EmptyGraph: begin equals end when no edge exists, and retreat
// from end is an out-of-range failure.
func TestCursor_EmptyGraph(t *testing.T) {
	g := digraph.New[int, int]()
	assert.True(t, g.Begin().Equal(g.End()))

	c := g.End()
	assert.ErrorIs(t, c.Prev(), digraph.ErrCursorOutOfRange)
	_, err := c.Entry()
	assert.ErrorIs(t, err, digraph.ErrCursorOutOfRange)
	assert.ErrorIs(t, c.Next(), digraph.ErrCursorOutOfRange)

	// Nodes without edges change nothing: begin still equals end.
	g.InsertNode(7)
	assert.True(t, g.Begin().Equal(g.End()))
	assert.ErrorIs(t, g.End().Prev(), digraph.ErrCursorOutOfRange,
		"no node has outgoing edges, so there is nothing to retreat to")
}

// TestCursor_ForwardBackwardRoundTrip: the backward walk must visit exactly
// the forward walk's entries in reverse.
func TestCursor_ForwardBackwardRoundTrip(t *testing.T) {
	g := threeEdgeGraph(t)

	var forward []digraph.Entry[int, int]
	for c := g.Begin(); !c.Equal(g.End()); {
		entry, err := c.Entry()
		require.NoError(t, err)
		forward = append(forward, entry)
		require.NoError(t, c.Next())
	}
	require.Equal(t, []digraph.Entry[int, int]{
		{From: 1, To: 2},
		{From: 1, To: 3},
		{From: 2, To: 3},
	}, forward)

	var backward []digraph.Entry[int, int]
	c := g.End()
	for !c.Equal(g.Begin()) {
		require.NoError(t, c.Prev())
		entry, err := c.Entry()
		require.NoError(t, err)
		backward = append(backward, entry)
	}
	for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
		backward[i], backward[j] = backward[j], backward[i]
	}
	assert.Equal(t, forward, backward)

	// Retreating the very first position is out of range.
	assert.ErrorIs(t, c.Prev(), digraph.ErrCursorOutOfRange)
}

// TestCursor_SkipsEmptyNodes: nodes with empty outgoing sets interleaved
// between populated ones are transparent in both directions.
func TestCursor_SkipsEmptyNodes(t *testing.T) {
	g := digraph.From[int, int](0, 1, 2, 3, 4, 5, 6)
	// Outgoing edges only on 1 and 5; 0, 2, 3, 4, 6 stay empty.
	for _, e := range [][2]int{{1, 2}, {5, 0}, {5, 6}} {
		_, err := g.InsertEdge(e[0], e[1])
		require.NoError(t, err)
	}

	c := g.Begin()
	entry, err := c.Entry()
	require.NoError(t, err)
	assert.Equal(t, digraph.Entry[int, int]{From: 1, To: 2}, entry, "begin skips node 0")

	require.NoError(t, c.Next())
	entry, err = c.Entry()
	require.NoError(t, err)
	assert.Equal(t, digraph.Entry[int, int]{From: 5, To: 0}, entry, "advance skips 2..4")

	require.NoError(t, c.Next())
	require.NoError(t, c.Next())
	assert.True(t, c.Equal(g.End()), "advance past 5->6 skips node 6")

	require.NoError(t, c.Prev())
	entry, err = c.Entry()
	require.NoError(t, err)
	assert.Equal(t, digraph.Entry[int, int]{From: 5, To: 6}, entry, "retreat from end lands on the last edge")

	require.NoError(t, c.Prev())
	require.NoError(t, c.Prev())
	entry, err = c.Entry()
	require.NoError(t, err)
	assert.Equal(t, digraph.Entry[int, int]{From: 1, To: 2}, entry)
	assert.ErrorIs(t, c.Prev(), digraph.ErrCursorOutOfRange)
}

// TestCursor_Staleness: any mutation invalidates all outstanding cursors;
// stale cursors fail fast on every operation.
func TestCursor_Staleness(t *testing.T) {
	g := threeEdgeGraph(t)
	c := g.Begin()

	g.InsertNode(99) // any mutation counts

	_, err := c.Entry()
	assert.ErrorIs(t, err, digraph.ErrStaleCursor)
	assert.ErrorIs(t, c.Next(), digraph.ErrStaleCursor)
	assert.ErrorIs(t, c.Prev(), digraph.ErrStaleCursor)
	_, err = g.EraseEdgeAt(c)
	assert.ErrorIs(t, err, digraph.ErrStaleCursor)

	fresh := g.Begin()
	_, err = fresh.Entry()
	assert.NoError(t, err, "cursors issued after the mutation are unaffected")
}

// TestCursor_ForeignGraph: cursors never apply across graph instances.
func TestCursor_ForeignGraph(t *testing.T) {
	g1 := threeEdgeGraph(t)
	g2 := threeEdgeGraph(t)

	assert.False(t, g1.Begin().Equal(g2.Begin()), "equal coordinates, different owners")
	assert.False(t, g1.End().Equal(g2.End()))

	_, err := g1.EraseEdgeAt(g2.Begin())
	assert.ErrorIs(t, err, digraph.ErrCursorMismatch)
	_, err = g1.EraseEdgeSpan(g1.Begin(), g2.End())
	assert.ErrorIs(t, err, digraph.ErrCursorMismatch)
}

// TestGraph_EraseEdgeAt: removes the denoted edge and returns the position
// that followed it, re-resolved; End from the last edge; End stays End.
func TestGraph_EraseEdgeAt(t *testing.T) {
	g := threeEdgeGraph(t)

	next, err := g.EraseEdgeAt(g.Begin())
	require.NoError(t, err)
	entry, err := next.Entry()
	require.NoError(t, err)
	assert.Equal(t, digraph.Entry[int, int]{From: 1, To: 3}, entry)
	assert.Equal(t, 2, g.EdgeCount())

	// Erase the (new) last edge: follower is End.
	last := g.Find(2, 3)
	require.False(t, last.Equal(g.End()))
	next, err = g.EraseEdgeAt(last)
	require.NoError(t, err)
	assert.True(t, next.Equal(g.End()))

	// Erasing at End is a no-op.
	next, err = g.EraseEdgeAt(g.End())
	require.NoError(t, err)
	assert.True(t, next.Equal(g.End()))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_EraseEdgeSpan: half-open span erase, bounded and unbounded.
func TestGraph_EraseEdgeSpan(t *testing.T) {
	g := threeEdgeGraph(t)

	// Empty span: nothing removed, position equivalent to `to` returned.
	pos, err := g.EraseEdgeSpan(g.Begin(), g.Begin())
	require.NoError(t, err)
	assert.True(t, pos.Equal(g.Begin()))
	assert.Equal(t, 3, g.EdgeCount())

	// [begin, find(2,3)): removes 1->2 and 1->3, keeps 2->3.
	pos, err = g.EraseEdgeSpan(g.Begin(), g.Find(2, 3))
	require.NoError(t, err)
	entry, err := pos.Entry()
	require.NoError(t, err)
	assert.Equal(t, digraph.Entry[int, int]{From: 2, To: 3}, entry)
	assert.Equal(t, []digraph.Entry[int, int]{{From: 2, To: 3}}, g.Entries())

	// [begin, end): drains the rest.
	pos, err = g.EraseEdgeSpan(g.Begin(), g.End())
	require.NoError(t, err)
	assert.True(t, pos.Equal(g.End()))
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, []int{1, 2, 3}, g.Nodes(), "span erase touches edges only")
}
