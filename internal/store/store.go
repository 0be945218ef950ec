package store

import (
	"context"
	"errors"
)

// ErrIndexOutOfRange is returned by KeyAt when the index is negative or
// beyond the current entry count.
var ErrIndexOutOfRange = errors.New("index out of range")

// Store is the persistent key/value stash contract.
//
// Set overwrites silently (last write wins). Remove of an absent key is a
// no-op, not an error. Get and KeyAt report absence through their ok result
// rather than an error, so callers can distinguish "not there" from "the
// store broke".
type Store interface {
	// Count returns the number of entries currently in the store.
	Count(ctx context.Context) (int, error)

	// KeyAt returns the key at the given zero-based index in insertion
	// order. ok is false (with a nil error) when the index is past the end.
	KeyAt(ctx context.Context, index int) (key string, ok bool, err error)

	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, overwriting any existing value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the entry for key. Removing an absent key succeeds.
	Remove(ctx context.Context, key string) error

	// Clear removes every entry.
	Clear(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}

// MemoryPath is the store path that selects the in-memory backend.
const MemoryPath = ":memory:"

// Open returns a Store for the given path. The path MemoryPath selects the
// process-local memory backend; anything else opens (creating if needed) a
// SQLite stash at that file path.
func Open(path string) (Store, error) {
	if path == MemoryPath {
		return NewMemory(), nil
	}
	return OpenSQLite(path)
}
