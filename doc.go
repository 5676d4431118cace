// Package dwgraph is an embeddable, generic, directed multigraph container
// for Go: nodes of any ordered type, edges either unweighted or carrying an
// ordered weight, with a deterministic total order over the whole edge set.
//
// What dwgraph gives you:
//
//   - Generic container: Graph[N, E] over any cmp.Ordered node and weight types
//   - Parallel edges between the same pair of nodes, differing in
//     weightedness or weight value; structural deduplication otherwise
//   - Self-loops, cascading node erase, node replace and merge-replace
//   - A bidirectional cursor over the flattened, fully ordered edge sequence
//   - Deep copy (Clone), ownership transfer (Move), structural equality
//   - One canonical text rendering, stable byte-for-byte
//
// Why choose dwgraph?
//
//   - Deterministic everywhere: Nodes(), Edges(), Connections() and cursor
//     traversal are all sorted; equal inputs produce equal output
//   - Fail-fast cursors: every mutation stamps the graph; stale cursors
//     return errors instead of misbehaving
//   - Pure Go library: no services, no persistence, no hidden dependencies
//
// The container lives in the digraph subpackage; builder provides
// deterministic topology fixtures for tests and demos:
//
//	digraph/  - Graph, Edge variants, Cursor, ordering and rendering rules
//	builder/  - Path, Cycle, Complete, Star fixture constructors
//	examples/ - a runnable demo exercising the public API
//
// Quick start:
//
//	g := digraph.From[string, int]("hub", "a", "b")
//	g.InsertEdge("hub", "a")
//	g.InsertEdge("hub", "b", digraph.WithWeight(7))
//	fmt.Print(g)
//
//	go get github.com/veltran/dwgraph/digraph
package dwgraph
