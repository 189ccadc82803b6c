// Package matrix derives an incidence-style matrix from a tree.
//
// Columns are parent→child edges, labeled "<parent>-<child>" and ordered
// so a node's own outgoing edges precede every label contributed by its
// descendants. Rows are vertex occurrences in pre-order, one per node
// position (values may repeat; every position gets its own row). A cell is
// true when the row's vertex value is the parent endpoint of the column's
// edge, determined by matching the value prefix of the label.
//
// The correlation is by value, not node identity: if the same value
// appears at several positions, each of those rows marks every edge whose
// parent carries that value. This mirrors the system the package models
// and is intentional - see the matching note in DESIGN.md before changing
// it.
//
// Building a matrix never fails; a single-node tree yields an empty header
// and one zero-length row.
package matrix
