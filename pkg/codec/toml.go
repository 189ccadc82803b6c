package codec

import (
	"bytes"

	"github.com/BurntSushi/toml"

	"github.com/dr-livesey/treemat/pkg/tree"
)

// TOML encodes the persisted document shape as TOML, with children as an
// array of tables:
//
//	value = 1
//
//	[[nodes]]
//	value = 2
//
// Leaves simply omit the nodes array. The same field rules as [JSON]
// apply: "value" is required on decode, "nodes" is optional.
type TOML struct{}

// Decode implements [Decoder].
func (TOML) Decode(src []byte) (*tree.Node, error) {
	var doc document
	if err := toml.Unmarshal(src, &doc); err != nil {
		return nil, decodeError("toml", err)
	}
	n, err := doc.toNode()
	if err != nil {
		return nil, decodeError("toml", err)
	}
	return n, nil
}

// Encode implements [Encoder].
func (TOML) Encode(n *tree.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(fromNode(n)); err != nil {
		return nil, encodeError("toml", err)
	}
	return buf.Bytes(), nil
}

var _ Codec = TOML{}
