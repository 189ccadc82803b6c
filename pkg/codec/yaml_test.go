package codec

import (
	"errors"
	"testing"

	"github.com/dr-livesey/treemat/pkg/tree"
)

func TestYAML_Decode(t *testing.T) {
	src := `
value: 1
nodes:
  - value: 2
    nodes:
      - value: 4
        nodes:
          - value: 3
          - value: 5
`
	got, err := YAML{}.Decode([]byte(src))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !got.Equal(buildSample()) {
		t.Errorf("Decode() = %s, want %s", got, buildSample())
	}
}

func TestYAML_DecodeMissingValue(t *testing.T) {
	_, err := YAML{}.Decode([]byte("nodes: []\n"))
	if !errors.Is(err, ErrMissingValue) {
		t.Errorf("Decode() error = %v, want %v", err, ErrMissingValue)
	}
}

func TestYAML_DecodeMalformed(t *testing.T) {
	_, err := YAML{}.Decode([]byte("value: [unclosed"))
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("Decode() error = %T, want *FormatError", err)
	}
	if ferr.Format != "yaml" {
		t.Errorf("FormatError.Format = %q, want %q", ferr.Format, "yaml")
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	orig := buildSample()
	out, err := YAML{}.Encode(orig)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	back, err := YAML{}.Decode(out)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !back.Equal(orig) {
		t.Errorf("round trip changed the tree: got %s, want %s", back, orig)
	}
}

func TestYAML_RejectsValueRange(t *testing.T) {
	_, err := YAML{}.Decode([]byte("value: 1000\n"))
	if !errors.Is(err, ErrValueRange) {
		t.Errorf("Decode() error = %v, want %v", err, ErrValueRange)
	}
	if _, err = (YAML{}).Decode([]byte("value: 255\n")); err != nil {
		t.Errorf("Decode(value: 255) error = %v, want nil", err)
	}
}

func TestYAML_Encode(t *testing.T) {
	out, err := YAML{}.Encode(tree.New(1).Add(tree.New(2)))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := "value: 1\nnodes:\n    - value: 2\n      nodes: []\n"
	if string(out) != want {
		t.Errorf("Encode() = %q, want %q", out, want)
	}
}
