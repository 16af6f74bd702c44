package keychain

import (
	"context"
	"sort"
	"sync"

	"github.com/MKhiriev/go-secure-storage/models"
)

type memoryItem struct {
	value  string
	access models.AccessPolicy
}

// MemoryKeychain is an in-memory implementation of Keychain for testing.
type MemoryKeychain struct {
	mu    sync.RWMutex
	items map[bool]map[string]memoryItem
}

// NewMemoryKeychain creates an empty in-memory keychain.
func NewMemoryKeychain() *MemoryKeychain {
	return &MemoryKeychain{items: map[bool]map[string]memoryItem{
		false: {},
		true:  {},
	}}
}

func (m *MemoryKeychain) Get(_ context.Context, account string, sync bool) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.items[sync][account]
	return item.value, ok, nil
}

func (m *MemoryKeychain) Set(_ context.Context, account, value string, sync bool, access models.AccessPolicy) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[sync][account] = memoryItem{value: value, access: access}
	return nil
}

func (m *MemoryKeychain) Delete(_ context.Context, account string, sync bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[sync][account]
	delete(m.items[sync], account)
	return ok, nil
}

func (m *MemoryKeychain) Accounts(_ context.Context, sync bool) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	accounts := make([]string, 0, len(m.items[sync]))
	for account := range m.items[sync] {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)
	return accounts, nil
}

// Access returns the access policy an item was stored with.
func (m *MemoryKeychain) Access(account string, sync bool) (models.AccessPolicy, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.items[sync][account]
	return item.access, ok
}
