package matrix

import (
	"strconv"
	"strings"

	"github.com/dr-livesey/treemat/pkg/tree"
)

// Separator joins the parent and child values in an edge label.
const Separator = "-"

// Matrix is the incidence matrix of a tree: one column per parent→child
// edge, one row per pre-order vertex occurrence. For a tree of n nodes,
// len(Header) == n-1 and len(Rows) == n; every row has len(Header) cells.
//
// A Matrix is derived once from an immutable tree snapshot and never
// mutated afterwards.
type Matrix struct {
	Header []string
	Rows   [][]bool
}

// Build derives the incidence matrix of the tree rooted at root.
// It is a total function: any valid tree, including a single node,
// produces a well-formed matrix.
func Build(root *tree.Node) *Matrix {
	header := buildHeader(root, nil)
	values := root.Values()

	rows := make([][]bool, len(values))
	for i, v := range values {
		prefix := strconv.Itoa(int(v)) + Separator
		row := make([]bool, len(header))
		for j, label := range header {
			row[j] = strings.HasPrefix(label, prefix)
		}
		rows[i] = row
	}

	return &Matrix{Header: header, Rows: rows}
}

// buildHeader emits edge labels depth-first: first one label per direct
// child of n, in child order, then each child subtree's labels in order.
func buildHeader(n *tree.Node, labels []string) []string {
	value := strconv.Itoa(int(n.Value()))
	for _, c := range n.Children() {
		labels = append(labels, value+Separator+strconv.Itoa(int(c.Value())))
	}
	for _, c := range n.Children() {
		labels = buildHeader(c, labels)
	}
	return labels
}

// EdgeCount returns the number of columns.
func (m *Matrix) EdgeCount() int { return len(m.Header) }

// VertexCount returns the number of rows.
func (m *Matrix) VertexCount() int { return len(m.Rows) }

// String renders the matrix as the fixed debug dump described in dump.go.
func (m *Matrix) String() string { return m.dump() }
