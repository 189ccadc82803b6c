// Package store persists named trees so they can be shared between runs
// and machines.
//
// The [Store] interface supports saving a tree under a name (upsert),
// loading it back, listing all saved trees, and deleting by name. Two
// backends are provided:
//   - memory: in-process storage for development and testing
//   - mongo: MongoDB-backed storage for shared deployments
//
// Trees are persisted in the JSON document format from [codec], so
// anything stored here can also be exchanged with the convert pipeline.
package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dr-livesey/treemat/pkg/tree"
)

// ErrNotFound is returned when no tree exists under the requested name.
var ErrNotFound = errors.New("tree not found")

// Record is a stored tree with its bookkeeping data.
type Record struct {
	ID        string
	Name      string
	Tree      *tree.Node
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is the interface for tree storage backends.
type Store interface {
	// Save stores root under name, replacing any previous tree with the
	// same name, and returns the stored record.
	Save(ctx context.Context, name string, root *tree.Node) (*Record, error)

	// Load retrieves the tree stored under name.
	// Returns ErrNotFound if no such tree exists.
	Load(ctx context.Context, name string) (*Record, error)

	// List returns all stored records sorted by name. Trees are not
	// populated by every backend; use Load for the full record.
	List(ctx context.Context) ([]*Record, error)

	// Delete removes the tree stored under name.
	// Returns ErrNotFound if no such tree exists.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// MemoryStore is an in-process Store for development and testing.
// It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Record)}
}

// Save implements [Store].
func (s *MemoryStore) Save(ctx context.Context, name string, root *tree.Node) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	rec, ok := s.records[name]
	if !ok {
		rec = &Record{ID: uuid.NewString(), Name: name, CreatedAt: now}
		s.records[name] = rec
	}
	rec.Tree = root
	rec.UpdatedAt = now

	out := *rec
	return &out, nil
}

// Load implements [Store].
func (s *MemoryStore) Load(ctx context.Context, name string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[name]
	if !ok {
		return nil, ErrNotFound
	}
	out := *rec
	return &out, nil
}

// List implements [Store].
func (s *MemoryStore) List(ctx context.Context) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*Record, 0, len(s.records))
	for _, rec := range s.records {
		out := *rec
		records = append(records, &out)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

// Delete implements [Store].
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[name]; !ok {
		return ErrNotFound
	}
	delete(s.records, name)
	return nil
}

// Close does nothing for the memory backend.
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
