package matrix

import (
	"strconv"
	"strings"

	"github.com/dr-livesey/treemat/pkg/codec"
	"github.com/dr-livesey/treemat/pkg/tree"
)

// Encoder adapts [Build] to the [codec.Encoder] contract, so deriving a
// matrix can be requested through the same uniform write call as any other
// format. The output is the dump produced by [Matrix.String]; it has no
// failure path.
type Encoder struct{}

// Encode implements [codec.Encoder].
func (Encoder) Encode(n *tree.Node) ([]byte, error) {
	return []byte(Build(n).dump()), nil
}

var _ codec.Encoder = Encoder{}

// dump renders the matrix in a fixed debug form, one string or boolean per
// line with four-space indentation:
//
//	IncidenceMatrix {
//	    header: [
//	        "1-2",
//	    ],
//	    rows: [
//	        [
//	            true,
//	        ],
//	    ],
//	}
//
// Empty lists collapse to "[]". The output is deterministic for a given
// tree and exists for diagnostics, not persistence.
func (m *Matrix) dump() string {
	var b strings.Builder
	b.WriteString("IncidenceMatrix {\n")

	b.WriteString("    header: ")
	if len(m.Header) == 0 {
		b.WriteString("[],\n")
	} else {
		b.WriteString("[\n")
		for _, label := range m.Header {
			b.WriteString("        ")
			b.WriteString(strconv.Quote(label))
			b.WriteString(",\n")
		}
		b.WriteString("    ],\n")
	}

	b.WriteString("    rows: ")
	if len(m.Rows) == 0 {
		b.WriteString("[],\n")
	} else {
		b.WriteString("[\n")
		for _, row := range m.Rows {
			if len(row) == 0 {
				b.WriteString("        [],\n")
				continue
			}
			b.WriteString("        [\n")
			for _, cell := range row {
				b.WriteString("            ")
				b.WriteString(strconv.FormatBool(cell))
				b.WriteString(",\n")
			}
			b.WriteString("        ],\n")
		}
		b.WriteString("    ],\n")
	}

	b.WriteString("}")
	return b.String()
}
