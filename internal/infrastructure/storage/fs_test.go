package storage

import (
	"context"
	"os"
	"testing"

	"svw.info/termdoku/internal/domain"
)

func TestPuzzleStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := NewFS(t.TempDir())

	p := &domain.Puzzle{
		Seed:       99,
		Difficulty: domain.Hard,
		CreatedAt:  1700000000,
		Name:       "tricky",
	}
	p.Givens[0][0] = 5
	p.Solution[0][0] = 5
	p.Solution[0][1] = 3

	if err := fs.Save(ctx, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if p.ID == "" {
		t.Fatal("Save must assign an ID")
	}

	got, err := fs.Load(ctx, p.ID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Difficulty != domain.Hard || got.Givens != p.Givens || got.Solution != p.Solution {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	metas, err := fs.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != p.ID || metas[0].Difficulty != domain.Hard || metas[0].Name != "tricky" {
		t.Fatalf("List = %+v", metas)
	}
}

func TestLoadMissing(t *testing.T) {
	fs := NewFS(t.TempDir())
	if _, err := fs.Load(context.Background(), "absent"); !os.IsNotExist(err) {
		t.Fatalf("want not-exist error, got %v", err)
	}
}

func TestSaveNil(t *testing.T) {
	fs := NewFS(t.TempDir())
	if err := fs.Save(context.Background(), nil); err == nil {
		t.Fatal("saving nil must error")
	}
}
