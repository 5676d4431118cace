// Package digraph implements a generic, in-memory directed multigraph.
//
// A Graph[N, E] stores a set of unique node values of any ordered type N and
// directed edges between them. Each edge is either unweighted or carries a
// weight of any ordered type E; multiple edges between the same ordered pair
// of nodes may coexist as long as they differ structurally (weightedness or
// weight value). Self-loops are permitted.
//
// Ordering model:
//
// Every node keeps its outgoing and incoming edges in one total order:
// by source, then destination, then unweighted-before-weighted, then weight
// ascending. Structural duplicates are rejected on insert, so no two stored
// edges ever compare equal. Nodes() is ascending, and the Cursor walks the
// whole graph as a single flattened sequence, ascending by source node
// and then by the per-node edge order, both forward and backward.
//
// Concurrency:
//
// A Graph is exclusively owned by its holder. No internal locking is
// performed; wrap the graph in external synchronization if it must cross
// goroutines. Every mutation advances an internal generation stamp, and any
// Cursor created before the mutation fails fast with ErrStaleCursor.
//
// Errors:
//
// Operations that require pre-existing nodes fail with fixed-message
// sentinels (ErrInsertEdgeMissingNode, ErrReplaceNodeMissing, ...); the
// exact message text is a compatibility contract and callers may match on
// it. Expected negative outcomes (duplicate insert, erase of something
// absent, replace onto an existing target) report false, never an error.
// Cursor boundary violations return ErrCursorOutOfRange.
//
// Complexity:
//
//	- InsertNode / EraseNode:   O(log n) / O(deg(v) · log e)
//	- InsertEdge / EraseEdge:   O(log e + e) (ordered-slice insertion)
//	- IsNode / Empty:           O(1)
//	- Nodes / Entries / String: O(n) / O(E) / O(E)
//	- Cursor stepping:          O(1) amortized, O(n) worst case across
//	                            runs of nodes with no outgoing edges
//
// where n = |nodes|, e = edges of one node, E = all edges.
package digraph
