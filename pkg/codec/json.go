package codec

import (
	"encoding/json"

	"github.com/dr-livesey/treemat/pkg/tree"
)

// JSON is the codec for the original persisted format:
//
//	{"value": 1, "nodes": [{"value": 2, "nodes": []}]}
//
// Decode requires the "value" field on every node; "nodes" may be absent
// and defaults to no children. Encode emits two-space indented output with
// an explicit "nodes" list on every node, so output round-trips through
// Decode unchanged.
type JSON struct{}

// Decode implements [Decoder].
func (JSON) Decode(src []byte) (*tree.Node, error) {
	var doc document
	if err := json.Unmarshal(src, &doc); err != nil {
		return nil, decodeError("json", err)
	}
	n, err := doc.toNode()
	if err != nil {
		return nil, decodeError("json", err)
	}
	return n, nil
}

// Encode implements [Encoder].
func (JSON) Encode(n *tree.Node) ([]byte, error) {
	out, err := json.MarshalIndent(fromNode(n), "", "  ")
	if err != nil {
		return nil, encodeError("json", err)
	}
	return out, nil
}

var _ Codec = JSON{}
