package codec

import (
	"fmt"

	"github.com/dr-livesey/treemat/pkg/tree"
)

// document is the decode-side shape of the persisted format. Value is a
// pointer so a missing field can be told apart from an explicit zero.
type document struct {
	Value *int       `json:"value" yaml:"value" toml:"value"`
	Nodes []document `json:"nodes" yaml:"nodes" toml:"nodes"`
}

// encodedDocument is the encode-side shape. Nodes is always non-nil so the
// output carries an explicit empty list for leaves.
type encodedDocument struct {
	Value int               `json:"value" yaml:"value" toml:"value"`
	Nodes []encodedDocument `json:"nodes" yaml:"nodes" toml:"nodes"`
}

func fromNode(n *tree.Node) encodedDocument {
	children := n.Children()
	doc := encodedDocument{
		Value: int(n.Value()),
		Nodes: make([]encodedDocument, 0, len(children)),
	}
	for _, c := range children {
		doc.Nodes = append(doc.Nodes, fromNode(c))
	}
	return doc
}

// toNode validates the document and converts it to a tree.
// Every node must carry a value in the 0-255 range.
func (d *document) toNode() (*tree.Node, error) {
	if d.Value == nil {
		return nil, ErrMissingValue
	}
	if *d.Value < 0 || *d.Value > 255 {
		return nil, fmt.Errorf("%w: %d", ErrValueRange, *d.Value)
	}
	n := tree.New(uint8(*d.Value))
	for i := range d.Nodes {
		child, err := d.Nodes[i].toNode()
		if err != nil {
			return nil, err
		}
		n.Add(child)
	}
	return n, nil
}
