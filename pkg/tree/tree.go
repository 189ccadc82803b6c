package tree

import (
	"strconv"
	"strings"
)

// Node is a single vertex in a rooted, ordered tree. It carries a value in
// the 0-255 range and owns its children in insertion order.
//
// The zero value is a usable node with value 0 and no children, but use
// [New] for symmetry with the rest of the API.
type Node struct {
	value    uint8
	children []*Node
}

// New creates a node with the given value and no children.
func New(value uint8) *Node {
	return &Node{value: value}
}

// Value returns the node's value.
func (n *Node) Value() uint8 { return n.value }

// Children returns the node's children in insertion order.
// The returned slice is a read-only view - do not modify it.
func (n *Node) Children() []*Node { return n.children }

// Add appends child to the node's children, transferring ownership of the
// child to this node. It returns the receiver so calls can be chained:
//
//	tree.New(4).Add(tree.New(3)).Add(tree.New(5))
//
// Add never fails. The caller must not append a node to more than one
// parent, and must not construct cycles; neither is checked at runtime.
func (n *Node) Add(child *Node) *Node {
	n.children = append(n.children, child)
	return n
}

// Count returns the total number of nodes in the subtree rooted at n,
// including n itself.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.children {
		total += c.Count()
	}
	return total
}

// Values returns every value in the subtree in pre-order: the node itself
// first, then each child subtree in insertion order. Occurrences are
// counted with multiplicity - repeated values appear once per position.
func (n *Node) Values() []uint8 {
	values := make([]uint8, 0, n.Count())
	n.appendValues(&values)
	return values
}

func (n *Node) appendValues(values *[]uint8) {
	*values = append(*values, n.value)
	for _, c := range n.children {
		c.appendValues(values)
	}
}

// Equal reports whether two subtrees have identical values and child
// ordering. Nil nodes are only equal to nil.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.value != other.value || len(n.children) != len(other.children) {
		return false
	}
	for i, c := range n.children {
		if !c.Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// String renders the subtree as a deterministic nested diagnostic form:
// the value, a brace-wrapped concatenation of the children's forms, and a
// trailing space, e.g. "1 { 2 { } 3 { } } ". The format is for display
// only and is not a persistence format.
func (n *Node) String() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func (n *Node) writeTo(b *strings.Builder) {
	b.WriteString(strconv.Itoa(int(n.value)))
	b.WriteString(" { ")
	for _, c := range n.children {
		c.writeTo(b)
	}
	b.WriteString("} ")
}
