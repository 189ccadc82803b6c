package codec

import (
	"errors"
	"testing"
)

func TestTOML_Decode(t *testing.T) {
	src := `
value = 1

[[nodes]]
value = 2

[[nodes.nodes]]
value = 4

[[nodes.nodes.nodes]]
value = 3

[[nodes.nodes.nodes]]
value = 5
`
	got, err := TOML{}.Decode([]byte(src))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !got.Equal(buildSample()) {
		t.Errorf("Decode() = %s, want %s", got, buildSample())
	}
}

func TestTOML_DecodeMissingValue(t *testing.T) {
	_, err := TOML{}.Decode([]byte("[[nodes]]\nvalue = 2\n"))
	if !errors.Is(err, ErrMissingValue) {
		t.Errorf("Decode() error = %v, want %v", err, ErrMissingValue)
	}
}

func TestTOML_DecodeMalformed(t *testing.T) {
	_, err := TOML{}.Decode([]byte("value = = 1"))
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("Decode() error = %T, want *FormatError", err)
	}
	if ferr.Format != "toml" || ferr.Op != "decode" {
		t.Errorf("FormatError = %s/%s, want toml/decode", ferr.Format, ferr.Op)
	}
}

func TestTOML_RoundTrip(t *testing.T) {
	orig := buildSample()
	out, err := TOML{}.Encode(orig)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	back, err := TOML{}.Decode(out)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !back.Equal(orig) {
		t.Errorf("round trip changed the tree: got %s, want %s", back, orig)
	}
}
