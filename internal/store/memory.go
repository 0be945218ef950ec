package store

import (
	"context"
	"fmt"
	"sync"
)

// Memory implements Store with process-local in-memory storage.
// Uses sync.RWMutex for thread-safe concurrent access.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
	order  []string // keys in insertion order, backing KeyAt
}

// NewMemory creates a new empty in-memory stash.
func NewMemory() *Memory {
	return &Memory{
		values: make(map[string]string),
	}
}

// Count returns the number of entries.
func (m *Memory) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order), nil
}

// KeyAt returns the key at the given index in insertion order.
func (m *Memory) KeyAt(_ context.Context, index int) (string, bool, error) {
	if index < 0 {
		return "", false, fmt.Errorf("key at %d: %w", index, ErrIndexOutOfRange)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if index >= len(m.order) {
		return "", false, nil
	}
	return m.order[index], true, nil
}

// Get returns the value stored under key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

// Set stores value under key. Overwriting an existing key keeps its position
// in the enumeration order.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.values[key]; !exists {
		m.order = append(m.order, key)
	}
	m.values[key] = value
	return nil
}

// Remove deletes the entry for key. Removing an absent key is a no-op.
func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.values[key]; !exists {
		return nil
	}
	delete(m.values, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes every entry.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values = make(map[string]string)
	m.order = nil
	return nil
}

// Close is a no-op for the memory backend.
func (m *Memory) Close() error {
	return nil
}
