package render

import (
	"bytes"
	"fmt"

	"github.com/dr-livesey/treemat/pkg/tree"
)

// ToDOT converts a tree to Graphviz DOT format. Graph nodes are named by
// pre-order position ("n0", "n1", ...) and labeled with the vertex value,
// so trees with repeated values render every occurrence separately. The
// output is deterministic for a given tree.
func ToDOT(root *tree.Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=16];\n")
	buf.WriteString("\n")

	var edges [][2]int
	next := 0
	var walk func(n *tree.Node) int
	walk = func(n *tree.Node) int {
		id := next
		next++
		fmt.Fprintf(&buf, "  n%d [label=\"%d\"];\n", id, n.Value())
		for _, c := range n.Children() {
			edges = append(edges, [2]int{id, walk(c)})
		}
		return id
	}
	walk(root)

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", e[0], e[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}
