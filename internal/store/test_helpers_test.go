package store

import (
	"context"
	"path/filepath"
	"testing"
)

// createTestSQLite creates a file-backed SQLite stash in a temp dir.
func createTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stash.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustSet writes an entry, failing the test on error.
func mustSet(t *testing.T, s Store, key, value string) {
	t.Helper()
	if err := s.Set(context.Background(), key, value); err != nil {
		t.Fatalf("Set(%q, %q) failed: %v", key, value, err)
	}
}

// keysInOrder walks KeyAt from 0 until absent and returns the keys seen.
func keysInOrder(t *testing.T, s Store) []string {
	t.Helper()
	ctx := context.Background()

	var keys []string
	for i := 0; ; i++ {
		key, ok, err := s.KeyAt(ctx, i)
		if err != nil {
			t.Fatalf("KeyAt(%d) failed: %v", i, err)
		}
		if !ok {
			break
		}
		keys = append(keys, key)
	}
	return keys
}
