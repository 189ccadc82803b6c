// Package render turns trees into Graphviz artifacts.
//
// [ToDOT] produces a deterministic DOT document: every vertex occurrence
// becomes its own graph node (values may repeat, so nodes are identified
// by pre-order position, not by value), and every parent→child edge
// becomes a directed edge. [SVG] and [PNG] rasterize a DOT document
// in-process using github.com/goccy/go-graphviz, so no external graphviz
// installation is needed.
package render
