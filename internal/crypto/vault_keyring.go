// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/99designs/keyring"
)

// keyringVault stores key material in the OS secret store through
// 99designs/keyring.
//
// The keyring handle is process-wide state opened on first use and never
// closed. Concurrent first calls are serialized; a failed open is retried on
// the next call. Backends are not safe for concurrent use (the array keyring
// is a bare map), so every call on the handle goes through ringMu.
type keyringVault struct {
	open func() (keyring.Keyring, error)

	mu   sync.Mutex
	ring keyring.Keyring

	ringMu sync.RWMutex

	logger *logger.Logger
}

// NewKeyringVault returns a vault backed by the OS keyring described by cfg.
func NewKeyringVault(cfg keyring.Config, log *logger.Logger) KeyVault {
	return &keyringVault{
		open:   func() (keyring.Keyring, error) { return keyring.Open(cfg) },
		logger: log,
	}
}

// NewMemoryVault returns a keyring vault over an in-memory array keyring.
func NewMemoryVault(log *logger.Logger) KeyVault {
	ring := keyring.NewArrayKeyring(nil)
	return &keyringVault{
		open:   func() (keyring.Keyring, error) { return ring, nil },
		logger: log,
	}
}

func (v *keyringVault) handle() (keyring.Keyring, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.ring != nil {
		return v.ring, nil
	}

	ring, err := v.open()
	if err != nil {
		v.logger.Err(err).Str("func", "keyringVault.handle").Msg("error opening keyring")
		return nil, fmt.Errorf("%w: open keyring: %w", ErrKeyVault, err)
	}
	v.ring = ring

	return ring, nil
}

// Lookup implements [KeyVault].
func (v *keyringVault) Lookup(_ context.Context, alias string) KeyLookup {
	ring, err := v.handle()
	if err != nil {
		return Failed(err)
	}

	v.ringMu.RLock()
	item, err := ring.Get(alias)
	v.ringMu.RUnlock()
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return NotFound()
	}
	if err != nil {
		return Failed(fmt.Errorf("%w: get %q: %w", ErrKeyVault, alias, err))
	}

	if len(item.Data) != KeySize {
		return Failed(fmt.Errorf("%w: stored key for %q has %d bytes", ErrKeyUnrecoverable, alias, len(item.Data)))
	}

	return Found(bytes.Clone(item.Data))
}

// Store implements [KeyVault].
func (v *keyringVault) Store(_ context.Context, alias string, key []byte) error {
	ring, err := v.handle()
	if err != nil {
		return err
	}

	v.ringMu.Lock()
	defer v.ringMu.Unlock()

	err = ring.Set(keyring.Item{
		Key:                         alias,
		Data:                        bytes.Clone(key),
		Label:                       alias,
		Description:                 "secure storage entry key",
		KeychainNotSynchronizable:   true,
		KeychainNotTrustApplication: false,
	})
	if err != nil {
		return fmt.Errorf("%w: set %q: %w", ErrKeyVault, alias, err)
	}

	return nil
}

// Delete implements [KeyVault].
func (v *keyringVault) Delete(_ context.Context, alias string) error {
	ring, err := v.handle()
	if err != nil {
		return err
	}

	v.ringMu.Lock()
	defer v.ringMu.Unlock()

	if err = ring.Remove(alias); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("%w: remove %q: %w", ErrKeyVault, alias, err)
	}

	return nil
}

// Aliases implements [KeyVault].
func (v *keyringVault) Aliases(_ context.Context) ([]string, error) {
	ring, err := v.handle()
	if err != nil {
		return nil, err
	}

	v.ringMu.RLock()
	keys, err := ring.Keys()
	v.ringMu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("%w: list keys: %w", ErrKeyVault, err)
	}
	sort.Strings(keys)

	return keys, nil
}
