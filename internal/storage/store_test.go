package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hammamikhairi/recipehaven/internal/domain"
	"github.com/hammamikhairi/recipehaven/internal/logger"
)

// backends returns one fresh store per implementation.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	log := logger.Nop()
	ctx := context.Background()

	fileKV, err := NewFileKV(filepath.Join(t.TempDir(), "kv"), log)
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	sqliteKV, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "haven.db"), log)
	if err != nil {
		t.Fatalf("sqlite store: %v", err)
	}
	t.Cleanup(func() { sqliteKV.Close() })

	return map[string]Store{
		"memory": NewMemoryKV(log),
		"file":   fileKV,
		"sqlite": sqliteKV,
	}
}

func TestStoreGetPut(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			// Get missing key.
			if _, err := store.Get(ctx, "recipes"); !errors.Is(err, domain.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}

			// Put + Get.
			if err := store.Put(ctx, "recipes", []byte(`[1]`)); err != nil {
				t.Fatalf("put: %v", err)
			}
			got, err := store.Get(ctx, "recipes")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if string(got) != `[1]` {
				t.Fatalf("expected [1], got %s", got)
			}

			// Overwrite.
			if err := store.Put(ctx, "recipes", []byte(`[1,2]`)); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, _ = store.Get(ctx, "recipes")
			if string(got) != `[1,2]` {
				t.Fatalf("expected [1,2], got %s", got)
			}

			// Keys are independent.
			if _, err := store.Get(ctx, "other"); !errors.Is(err, domain.ErrNotFound) {
				t.Fatalf("expected ErrNotFound for other key, got %v", err)
			}

			// Empty key.
			if err := store.Put(ctx, "", []byte("x")); !errors.Is(err, domain.ErrInvalidKey) {
				t.Fatalf("expected ErrInvalidKey, got %v", err)
			}
		})
	}
}

func TestMemoryKVCopiesValues(t *testing.T) {
	store := NewMemoryKV(logger.Nop())
	ctx := context.Background()

	buf := []byte("abc")
	if err := store.Put(ctx, "k", buf); err != nil {
		t.Fatal(err)
	}
	buf[0] = 'z'

	got, _ := store.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("stored value changed through caller's slice: %s", got)
	}
}

func TestFileKVRejectsPathKeys(t *testing.T) {
	store, err := NewFileKV(t.TempDir(), logger.Nop())
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"../escape", "a/b", `a\b`, ".."} {
		if err := store.Put(context.Background(), key, []byte("x")); !errors.Is(err, domain.ErrInvalidKey) {
			t.Fatalf("key %q: expected ErrInvalidKey, got %v", key, err)
		}
	}
}

func TestSQLiteKVPersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "haven.db")
	ctx := context.Background()

	first, err := OpenSQLite(ctx, path, logger.Nop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Put(ctx, "recipes", []byte(`[]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	first.Close()

	second, err := OpenSQLite(ctx, path, logger.Nop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	got, err := second.Get(ctx, "recipes")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if string(got) != `[]` {
		t.Fatalf("expected [], got %s", got)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	log := logger.Nop()

	tests := []struct {
		backend string
		path    string
		wantErr error
	}{
		{BackendMemory, "", nil},
		{BackendFile, filepath.Join(t.TempDir(), "files"), nil},
		{BackendSQLite, filepath.Join(t.TempDir(), "kv.db"), nil},
		{"redis", "", domain.ErrUnknownBackend},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			store, err := Open(ctx, tt.backend, tt.path, log)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer store.Close()
			if err := store.Put(ctx, "k", []byte("v")); err != nil {
				t.Fatalf("put: %v", err)
			}
		})
	}
}
