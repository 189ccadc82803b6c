// Package codec is the serialization boundary for trees.
//
// The package defines two capability contracts - [Decoder] turns bytes into
// a [tree.Node], [Encoder] turns a tree back into bytes - plus concrete
// codecs for the JSON, YAML and TOML renditions of the persisted document
// shape:
//
//	{"value": 1, "nodes": [{"value": 2, "nodes": []}]}
//
// Consumers that only need the contracts should accept a Decoder or
// Encoder, never a concrete codec; format selection happens once, at the
// edge, usually through a [Registry].
//
// All failures at this boundary are reported as [*FormatError] values so
// callers can distinguish "the input is not a valid tree document" from
// infrastructure errors. Decoders never panic on malformed input.
package codec
