package codec

import (
	"gopkg.in/yaml.v3"

	"github.com/dr-livesey/treemat/pkg/tree"
)

// YAML encodes the persisted document shape as YAML:
//
//	value: 1
//	nodes:
//	  - value: 2
//	    nodes: []
//
// The same field rules as [JSON] apply: "value" is required on decode,
// "nodes" is optional.
type YAML struct{}

// Decode implements [Decoder].
func (YAML) Decode(src []byte) (*tree.Node, error) {
	var doc document
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, decodeError("yaml", err)
	}
	n, err := doc.toNode()
	if err != nil {
		return nil, decodeError("yaml", err)
	}
	return n, nil
}

// Encode implements [Encoder].
func (YAML) Encode(n *tree.Node) ([]byte, error) {
	out, err := yaml.Marshal(fromNode(n))
	if err != nil {
		return nil, encodeError("yaml", err)
	}
	return out, nil
}

var _ Codec = YAML{}
