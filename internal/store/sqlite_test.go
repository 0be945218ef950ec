package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenSQLite_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stash.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpenSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stash.db")
	ctx := context.Background()

	s1, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("first OpenSQLite() failed: %v", err)
	}
	mustSet(t, s1, "theme", "dark")
	s1.Close()

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("second OpenSQLite() failed: %v", err)
	}
	defer s2.Close()

	value, ok, err := s2.Get(ctx, "theme")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !ok || value != "dark" {
		t.Errorf("Get(theme) = %q, %v; want %q, true", value, ok, "dark")
	}
}

func TestOpenSQLite_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stash.db")

	for i := 0; i < 3; i++ {
		s, err := OpenSQLite(path)
		if err != nil {
			t.Fatalf("OpenSQLite() iteration %d failed: %v", i, err)
		}
		s.Close()
	}
}

func TestSQLite_SetOverwrites(t *testing.T) {
	s := createTestSQLite(t)
	ctx := context.Background()

	mustSet(t, s, "color", "red")
	mustSet(t, s, "color", "blue")

	value, ok, err := s.Get(ctx, "color")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !ok || value != "blue" {
		t.Errorf("Get(color) = %q, %v; want %q, true", value, ok, "blue")
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Count() = %d after overwrite, want 1", n)
	}
}

func TestSQLite_KeyAtInsertionOrder(t *testing.T) {
	s := createTestSQLite(t)

	mustSet(t, s, "foo", "1")
	mustSet(t, s, "bar", "2")
	mustSet(t, s, "baz", "3")

	got := keysInOrder(t, s)
	want := []string{"foo", "bar", "baz"}
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSQLite_OverwriteKeepsOrder(t *testing.T) {
	s := createTestSQLite(t)

	mustSet(t, s, "foo", "1")
	mustSet(t, s, "bar", "2")
	mustSet(t, s, "foo", "updated")

	got := keysInOrder(t, s)
	if len(got) != 2 || got[0] != "foo" || got[1] != "bar" {
		t.Errorf("keys = %v, want [foo bar]", got)
	}
}

func TestSQLite_KeyAtNegativeIndex(t *testing.T) {
	s := createTestSQLite(t)

	_, _, err := s.KeyAt(context.Background(), -1)
	if err == nil {
		t.Error("KeyAt(-1) succeeded, want error")
	}
}

func TestSQLite_RemoveAbsentKey(t *testing.T) {
	s := createTestSQLite(t)

	if err := s.Remove(context.Background(), "ghost"); err != nil {
		t.Errorf("Remove(absent) failed: %v", err)
	}
}

func TestSQLite_Clear(t *testing.T) {
	s := createTestSQLite(t)
	ctx := context.Background()

	mustSet(t, s, "a", "1")
	mustSet(t, s, "b", "2")

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Count() = %d after Clear, want 0", n)
	}
}

func TestOpen_SelectsBackend(t *testing.T) {
	mem, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("Open(%q) failed: %v", MemoryPath, err)
	}
	defer mem.Close()
	if _, ok := mem.(*Memory); !ok {
		t.Errorf("Open(%q) = %T, want *Memory", MemoryPath, mem)
	}

	path := filepath.Join(t.TempDir(), "stash.db")
	file, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%q) failed: %v", path, err)
	}
	defer file.Close()
	if _, ok := file.(*SQLite); !ok {
		t.Errorf("Open(file path) = %T, want *SQLite", file)
	}
}
