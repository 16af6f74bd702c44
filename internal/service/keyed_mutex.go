package service

import "sync"

// keyedMutex hands out one mutex per namespaced key. Entries are reference
// counted and dropped once nobody holds or waits for them, so the map only
// ever contains keys with work in flight.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

// NewKeyedMutex returns an empty per-key locker.
func NewKeyedMutex() KeyLocker {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

// Lock implements KeyLocker. The returned unlock is safe to call twice.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()

	return sync.OnceFunc(func() {
		m.Unlock()

		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	})
}

// held reports how many keys currently have a holder or a waiter.
func (k *keyedMutex) held() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
