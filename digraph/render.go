package digraph

import (
	"fmt"
	"strings"
)

// String renders the graph in its canonical text form: for each node in
// ascending order, the node's text form, " (\n", each outgoing edge indented
// by two spaces in edge order, then ")\n". An empty graph renders as the
// empty string. Node and weight values use their canonical text form,
// numeric types as decimals, strings verbatim.
//
// The format is byte-stable and safe to compare against golden output.
// Complexity: O(E).
func (g *Graph[N, E]) String() string {
	var sb strings.Builder
	for _, v := range g.order {
		fmt.Fprintf(&sb, "%v (\n", v)
		for _, e := range g.buckets[v].out {
			sb.WriteString("  ")
			sb.WriteString(e.Render())
			sb.WriteByte('\n')
		}
		sb.WriteString(")\n")
	}

	return sb.String()
}
