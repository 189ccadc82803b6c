// Package cache stores derived artifacts (rendered SVGs, PNGs, matrix
// dumps) keyed by content hash, so repeated runs over the same tree skip
// the expensive graphviz pass.
//
// Three backends implement [Cache]: a file cache for CLI usage, a Redis
// cache for server deployments, and a null cache for tests or --no-cache
// runs. Keys are built with [Key] from a namespace plus the sha256 of the
// content they derive from, so a changed input never hits a stale entry.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// ErrBackend is returned when a cache backend fails for reasons other
// than a miss (I/O errors, connection failures). Misses are not errors -
// Get reports them through its bool result.
var ErrBackend = errors.New("cache backend error")

// Cache is the interface for artifact cache backends.
type Cache interface {
	// Get retrieves a value. The second result is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A zero ttl means the entry
	// does not expire.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Hash computes the SHA-256 hash of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Key builds a cache key from a namespace and the content the cached
// artifact derives from. Format: "<namespace>:<sha256(content)>".
func Key(namespace string, content []byte) string {
	return fmt.Sprintf("%s:%s", namespace, Hash(content))
}
