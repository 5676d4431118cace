package digraph_test

import (
	"fmt"

	"github.com/veltran/dwgraph/digraph"
)

// ExampleGraph demonstrates construction, mixed-variant edges, and the
// canonical rendering.
func ExampleGraph() {
	g := digraph.From[int, int](1, 2, 3, 4)
	g.InsertEdge(1, 2, digraph.WithWeight(10))
	g.InsertEdge(1, 3)
	g.InsertEdge(2, 3, digraph.WithWeight(5))
	g.InsertEdge(3, 4, digraph.WithWeight(7))
	g.InsertEdge(4, 1, digraph.WithWeight(3))

	fmt.Print(g)

	// Output:
	// 1 (
	//   1 -> 2 | W | 10
	//   1 -> 3 | U
	// )
	// 2 (
	//   2 -> 3 | W | 5
	// )
	// 3 (
	//   3 -> 4 | W | 7
	// )
	// 4 (
	//   4 -> 1 | W | 3
	// )
}

// ExampleGraph_MergeReplaceNode shows edge re-homing with silent
// deduplication.
func ExampleGraph_MergeReplaceNode() {
	g := digraph.From[string, int]("A", "B")
	g.InsertEdge("B", "A", digraph.WithWeight(10))
	g.InsertEdge("B", "A", digraph.WithWeight(1))
	g.InsertEdge("A", "A", digraph.WithWeight(10))

	if err := g.MergeReplaceNode("B", "A"); err != nil {
		fmt.Println(err)
		return
	}
	edges, _ := g.Edges("A", "A")
	for _, e := range edges {
		fmt.Println(e.Render())
	}

	// Output:
	// A -> A | W | 1
	// A -> A | W | 10
}

// ExampleCursor walks the flattened edge sequence forward.
func ExampleCursor() {
	g := digraph.From[int, int](1, 2, 3)
	g.InsertEdge(1, 2)
	g.InsertEdge(1, 3)
	g.InsertEdge(2, 3)

	for c := g.Begin(); !c.Equal(g.End()); c.Next() {
		entry, _ := c.Entry()
		fmt.Printf("%d -> %d\n", entry.From, entry.To)
	}

	// Output:
	// 1 -> 2
	// 1 -> 3
	// 2 -> 3
}
