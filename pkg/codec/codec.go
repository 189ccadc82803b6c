package codec

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dr-livesey/treemat/pkg/tree"
)

// Sentinel causes carried inside a [*FormatError].
var (
	// ErrMissingValue is returned when a decoded document omits the
	// required "value" field.
	ErrMissingValue = errors.New(`missing "value" field`)

	// ErrValueRange is returned when a decoded value falls outside 0-255.
	ErrValueRange = errors.New("value out of range 0-255")

	// ErrUnknownFormat is returned by [Registry] lookups for names that
	// have no registered codec.
	ErrUnknownFormat = errors.New("unknown format")
)

// Decoder turns an external textual representation into a tree.
type Decoder interface {
	// Decode parses src and returns the tree it encodes.
	// Malformed input yields a *FormatError, never a panic.
	Decode(src []byte) (*tree.Node, error)
}

// Encoder turns a tree into an external textual representation.
type Encoder interface {
	// Encode renders n. For a well-formed tree this should not normally
	// fail; when it does, the error is a *FormatError.
	Encode(n *tree.Node) ([]byte, error)
}

// Codec is a format that can both decode and encode trees.
type Codec interface {
	Decoder
	Encoder
}

// FormatError reports a failure at the serialization boundary: input that
// is not a valid tree document, or an encoding that cannot complete.
type FormatError struct {
	Format string // codec name, e.g. "json"
	Op     string // "decode" or "encode"
	Err    error  // underlying cause
}

// Error returns "<format> <op>: <cause>".
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Format, e.Op, e.Err)
}

// Unwrap returns the underlying cause, so errors.Is can match sentinels
// such as [ErrMissingValue].
func (e *FormatError) Unwrap() error { return e.Err }

func decodeError(format string, err error) error {
	return &FormatError{Format: format, Op: "decode", Err: err}
}

func encodeError(format string, err error) error {
	return &FormatError{Format: format, Op: "encode", Err: err}
}

// Registry maps format names to codecs. It is not safe for concurrent
// mutation; populate it during startup, read it afterwards.
type Registry struct {
	decoders map[string]Decoder
	encoders map[string]Encoder
}

// NewRegistry returns a registry pre-populated with the built-in document
// codecs: "json", "yaml" and "toml".
func NewRegistry() *Registry {
	r := &Registry{
		decoders: make(map[string]Decoder),
		encoders: make(map[string]Encoder),
	}
	r.Register("json", JSON{})
	r.Register("yaml", YAML{})
	r.Register("toml", TOML{})
	return r
}

// Register adds a codec under name, replacing any previous registration.
func (r *Registry) Register(name string, c Codec) {
	r.decoders[name] = c
	r.encoders[name] = c
}

// RegisterEncoder adds an encode-only format under name. This is how
// derived representations (such as the incidence-matrix dump) join the
// uniform write path.
func (r *Registry) RegisterEncoder(name string, e Encoder) {
	r.encoders[name] = e
}

// Decoder returns the decoder registered under name.
func (r *Registry) Decoder(name string) (Decoder, error) {
	d, ok := r.decoders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return d, nil
}

// Encoder returns the encoder registered under name.
func (r *Registry) Encoder(name string) (Encoder, error) {
	e, ok := r.encoders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return e, nil
}

// Formats returns the names of all registered encoders in sorted order.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.encoders))
	for name := range r.encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
