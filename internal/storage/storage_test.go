package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()

	if _, ok := store.Get(ctx, RemindersV2Key); ok {
		t.Fatal("expected missing key before first write")
	}

	if err := store.Set(ctx, RemindersV2Key, `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := store.Get(ctx, RemindersV2Key)
	if !ok {
		t.Fatal("expected key to be present after write")
	}
	if got != `[{"id":"1"}]` {
		t.Errorf("Get = %q, want %q", got, `[{"id":"1"}]`)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	store := NewFileStore(dir, zap.NewNop())

	if _, ok := store.Get(ctx, TagsV1Key); ok {
		t.Fatal("expected missing key before first write")
	}

	if err := store.Set(ctx, TagsV1Key, `[]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := store.Get(ctx, TagsV1Key)
	if !ok || got != `[]` {
		t.Fatalf("Get = (%q, %v), want (%q, true)", got, ok, `[]`)
	}

	// The value is durable: a fresh store over the same directory sees it.
	reopened := NewFileStore(dir, zap.NewNop())
	got, ok = reopened.Get(ctx, TagsV1Key)
	if !ok || got != `[]` {
		t.Fatalf("reopened Get = (%q, %v), want (%q, true)", got, ok, `[]`)
	}
}

func TestFileStore_SetLeavesNoTempFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	store := NewFileStore(dir, zap.NewNop())

	if err := store.Set(ctx, LocaleKey, "zh-Hant"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, LocaleKey+".json.tmp")); !os.IsNotExist(err) {
		t.Error("expected temp file to be renamed away after Set")
	}
}

func TestFileStore_CreatesDataDir(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewFileStore(dir, zap.NewNop())

	if err := store.Set(ctx, LocaleKey, "en"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := store.Get(ctx, LocaleKey)
	if !ok || got != "en" {
		t.Fatalf("Get = (%q, %v), want (%q, true)", got, ok, "en")
	}
}
