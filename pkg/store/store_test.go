package store

import (
	"context"
	"errors"
	"testing"

	"github.com/dr-livesey/treemat/pkg/tree"
)

func buildSample() *tree.Node {
	four := tree.New(4).Add(tree.New(3)).Add(tree.New(5))
	return tree.New(1).Add(tree.New(2).Add(four))
}

func TestMemoryStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	saved, err := s.Save(ctx, "sample", buildSample())
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if saved.ID == "" {
		t.Error("Save should assign an ID")
	}
	if saved.Name != "sample" {
		t.Errorf("Save name = %q, want %q", saved.Name, "sample")
	}

	loaded, err := s.Load(ctx, "sample")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !loaded.Tree.Equal(buildSample()) {
		t.Errorf("Load tree = %s, want %s", loaded.Tree, buildSample())
	}
}

func TestMemoryStore_LoadMissing(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Load(context.Background(), "absent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load error = %v, want %v", err, ErrNotFound)
	}
}

func TestMemoryStore_SaveOverwriteKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first, err := s.Save(ctx, "sample", tree.New(1))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	second, err := s.Save(ctx, "sample", buildSample())
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("overwrite changed ID: %q -> %q", first.ID, second.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Error("overwrite should keep the original creation time")
	}

	loaded, _ := s.Load(ctx, "sample")
	if loaded.Tree.Count() != 5 {
		t.Errorf("Load tree count = %d, want 5", loaded.Tree.Count())
	}
}

func TestMemoryStore_ListSorted(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		if _, err := s.Save(ctx, name, tree.New(1)); err != nil {
			t.Fatalf("Save(%q) error: %v", name, err)
		}
	}

	records, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	want := []string{"alpha", "bravo", "charlie"}
	if len(records) != len(want) {
		t.Fatalf("len(List()) = %d, want %d", len(records), len(want))
	}
	for i := range want {
		if records[i].Name != want[i] {
			t.Errorf("List()[%d].Name = %q, want %q", i, records[i].Name, want[i])
		}
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	if _, err := s.Save(ctx, "sample", tree.New(1)); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := s.Delete(ctx, "sample"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.Load(ctx, "sample"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after Delete error = %v, want %v", err, ErrNotFound)
	}
	if err := s.Delete(ctx, "sample"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete of missing tree error = %v, want %v", err, ErrNotFound)
	}
}
