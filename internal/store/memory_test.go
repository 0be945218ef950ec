package store

import (
	"context"
	"testing"
)

func TestMemory_GetAbsent(t *testing.T) {
	m := NewMemory()

	value, ok, err := m.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if ok || value != "" {
		t.Errorf("Get(missing) = %q, %v; want empty, false", value, ok)
	}
}

func TestMemory_SetGetRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	mustSet(t, m, "lang", "en")

	value, ok, err := m.Get(ctx, "lang")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !ok || value != "en" {
		t.Errorf("Get(lang) = %q, %v; want %q, true", value, ok, "en")
	}
}

func TestMemory_KeyAtInsertionOrder(t *testing.T) {
	m := NewMemory()

	mustSet(t, m, "zulu", "1")
	mustSet(t, m, "alpha", "2")
	mustSet(t, m, "mike", "3")

	got := keysInOrder(t, m)
	want := []string{"zulu", "alpha", "mike"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMemory_RemoveMaintainsOrder(t *testing.T) {
	m := NewMemory()

	mustSet(t, m, "a", "1")
	mustSet(t, m, "b", "2")
	mustSet(t, m, "c", "3")

	if err := m.Remove(context.Background(), "b"); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}

	got := keysInOrder(t, m)
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("keys = %v, want [a c]", got)
	}
}

func TestMemory_RemoveAbsentKey(t *testing.T) {
	m := NewMemory()

	if err := m.Remove(context.Background(), "ghost"); err != nil {
		t.Errorf("Remove(absent) failed: %v", err)
	}
}

func TestMemory_Clear(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	mustSet(t, m, "a", "1")
	mustSet(t, m, "b", "2")

	if err := m.Clear(ctx); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	n, err := m.Count(ctx)
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Count() = %d after Clear, want 0", n)
	}

	// Cleared stash accepts new writes with fresh ordering.
	mustSet(t, m, "b", "new")
	got := keysInOrder(t, m)
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("keys = %v after clear+set, want [b]", got)
	}
}
