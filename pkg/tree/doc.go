// Package tree defines the rooted, ordered tree that the rest of treemat
// operates on.
//
// A [Node] holds a small unsigned value (0-255) and an ordered list of
// children. Children are owned exclusively by their parent: there is no
// parent pointer, no sharing, and no API that could introduce a cycle.
// Values are labels, not identities - the same value may appear at any
// number of positions in a tree.
//
// Trees are built by appending children one at a time:
//
//	root := tree.New(1)
//	root.Add(tree.New(2).Add(tree.New(4)))
//
// Once built, a tree is treated as read-only by every consumer (codecs,
// the incidence-matrix builder, renderers).
package tree
