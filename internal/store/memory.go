package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/go-secure-storage/models"
)

type memoryEntry struct {
	value  string
	access models.AccessPolicy
}

// memoryStore is an in-process [KeyedStore]. Entries live only as long as
// the process.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	closed  bool
}

// NewMemoryStore returns an empty in-memory [KeyedStore].
func NewMemoryStore() KeyedStore {
	return &memoryStore{entries: make(map[string]memoryEntry)}
}

func (m *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", false, fmt.Errorf("%w: %w", ErrBackend, ErrStoreClosed)
	}

	entry, ok := m.entries[key]
	return entry.value, ok, nil
}

func (m *memoryStore) Set(_ context.Context, key, value string, access models.AccessPolicy) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("%w: %w", ErrBackend, ErrStoreClosed)
	}

	m.entries[key] = memoryEntry{value: value, access: access}
	return nil
}

func (m *memoryStore) Remove(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false, fmt.Errorf("%w: %w", ErrBackend, ErrStoreClosed)
	}

	_, ok := m.entries[key]
	delete(m.entries, key)
	return ok, nil
}

func (m *memoryStore) KeysWithPrefix(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, fmt.Errorf("%w: %w", ErrBackend, ErrStoreClosed)
	}

	keys := make([]string, 0)
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *memoryStore) ClearWithPrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("%w: %w", ErrBackend, ErrStoreClosed)
	}

	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	return nil
}

// Close drops all entries; later calls fail with ErrStoreClosed.
func (m *memoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.entries = nil
	return nil
}
