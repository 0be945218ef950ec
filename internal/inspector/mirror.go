package inspector

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kvscope/kvscope/internal/store"
)

// Entry is one row of the projection: a stored key/value pair plus the
// serialized byte size of the record (UTF-8 length of key and value
// concatenated).
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Size  int    `json:"size"`
}

// Mirror holds the in-memory projection of the stash contents, sorted
// ascending by key with a locale-aware comparison.
//
// The projection is replaced wholesale on every Refresh; no incremental
// update path exists. Between refreshes the projection may go stale if the
// store is mutated by another process.
type Mirror struct {
	coll    *collate.Collator
	entries []Entry
}

// NewMirror creates an empty Mirror using the default collation order.
func NewMirror() *Mirror {
	return &Mirror{
		coll: collate.New(language.Und),
	}
}

// Refresh reads every entry currently in the store and replaces the
// projection with the new set, sorted ascending by key.
func (m *Mirror) Refresh(ctx context.Context, s store.Store) error {
	n, err := s.Count(ctx)
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}

	entries := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		key, ok, err := s.KeyAt(ctx, i)
		if err != nil {
			return fmt.Errorf("refresh: %w", err)
		}
		if !ok {
			break
		}

		value, ok, err := s.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("refresh: %w", err)
		}
		if !ok {
			// Entry vanished between KeyAt and Get; drop it.
			continue
		}

		entries = append(entries, Entry{
			Key:   key,
			Value: value,
			Size:  len(key) + len(value),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return m.coll.CompareString(entries[i].Key, entries[j].Key) < 0
	})

	m.entries = entries
	return nil
}

// Entries returns the current projection. The returned slice is the
// Mirror's own; callers must not mutate it.
func (m *Mirror) Entries() []Entry {
	if m.entries == nil {
		return []Entry{}
	}
	return m.entries
}

// Len returns the number of entries in the projection.
func (m *Mirror) Len() int {
	return len(m.entries)
}
