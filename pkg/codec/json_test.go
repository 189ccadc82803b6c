package codec

import (
	"errors"
	"testing"

	"github.com/dr-livesey/treemat/pkg/tree"
)

// buildSample builds the tree 1 → 2 → 4 → {3, 5}.
func buildSample() *tree.Node {
	four := tree.New(4).Add(tree.New(3)).Add(tree.New(5))
	return tree.New(1).Add(tree.New(2).Add(four))
}

const sampleJSON = `{"value":1,"nodes":[{"value":2,"nodes":[{"value":4,"nodes":[{"value":3,"nodes":[]},{"value":5,"nodes":[]}]}]}]}`

func TestJSON_Decode(t *testing.T) {
	got, err := JSON{}.Decode([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !got.Equal(buildSample()) {
		t.Errorf("Decode() = %s, want %s", got, buildSample())
	}
}

func TestJSON_DecodeMissingNodes(t *testing.T) {
	got, err := JSON{}.Decode([]byte(`{"value": 9}`))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got.Value() != 9 || len(got.Children()) != 0 {
		t.Errorf("Decode() = %s, want a lone node with value 9", got)
	}
}

func TestJSON_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error // sentinel to match, nil for any FormatError
	}{
		{"malformed syntax", `{"value": 1,`, nil},
		{"not an object", `[1, 2, 3]`, nil},
		{"missing value", `{"nodes": []}`, ErrMissingValue},
		{"missing nested value", `{"value": 1, "nodes": [{"nodes": []}]}`, ErrMissingValue},
		{"value too large", `{"value": 300, "nodes": []}`, ErrValueRange},
		{"negative value", `{"value": -1, "nodes": []}`, ErrValueRange},
		{"wrong value type", `{"value": "one", "nodes": []}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := JSON{}.Decode([]byte(tt.src))
			if err == nil {
				t.Fatal("Decode() succeeded, want error")
			}
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Fatalf("Decode() error = %T, want *FormatError", err)
			}
			if ferr.Format != "json" || ferr.Op != "decode" {
				t.Errorf("FormatError = %s/%s, want json/decode", ferr.Format, ferr.Op)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestJSON_EncodeLeaf(t *testing.T) {
	out, err := JSON{}.Encode(tree.New(7))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := "{\n  \"value\": 7,\n  \"nodes\": []\n}"
	if string(out) != want {
		t.Errorf("Encode() = %q, want %q", out, want)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	orig := buildSample()
	out, err := JSON{}.Encode(orig)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	back, err := JSON{}.Decode(out)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !back.Equal(orig) {
		t.Errorf("round trip changed the tree: got %s, want %s", back, orig)
	}
}
