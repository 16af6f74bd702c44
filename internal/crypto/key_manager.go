// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/awnumar/memguard"
)

// secretKeyManager is the private implementation of [SecretKeyManager].
type secretKeyManager struct {
	vault KeyVault

	// createMu serializes the lookup-then-create sequence so two goroutines
	// never both generate a key for the same alias.
	createMu sync.Mutex

	logger *logger.Logger
}

// NewSecretKeyManager returns a [SecretKeyManager] over vault.
func NewSecretKeyManager(vault KeyVault, log *logger.Logger) SecretKeyManager {
	return &secretKeyManager{vault: vault, logger: log}
}

// GetOrCreateKey implements [SecretKeyManager].
func (m *secretKeyManager) GetOrCreateKey(ctx context.Context, alias string) (*SecretKey, error) {
	key, found, err := m.resolve(ctx, alias)
	if err != nil || found {
		return key, err
	}

	m.createMu.Lock()
	defer m.createMu.Unlock()

	// another goroutine may have created it while we waited
	key, found, err = m.resolve(ctx, alias)
	if err != nil || found {
		return key, err
	}

	buf := memguard.NewBufferRandom(KeySize)
	if err = m.vault.Store(ctx, alias, buf.Bytes()); err != nil {
		buf.Destroy()
		m.logger.Err(err).Str("func", "secretKeyManager.GetOrCreateKey").Msg("error persisting new secret key")
		return nil, fmt.Errorf("persist secret key: %w", err)
	}

	m.logger.Debug().Str("func", "secretKeyManager.GetOrCreateKey").Msg("generated new secret key")

	return &SecretKey{alias: alias, enclave: buf.Seal()}, nil
}

// GetKeyIfExists implements [SecretKeyManager].
func (m *secretKeyManager) GetKeyIfExists(ctx context.Context, alias string) (*SecretKey, error) {
	key, _, err := m.resolve(ctx, alias)
	return key, err
}

// DeleteKey implements [SecretKeyManager].
func (m *secretKeyManager) DeleteKey(ctx context.Context, alias string) error {
	if err := m.vault.Delete(ctx, alias); err != nil {
		return fmt.Errorf("delete secret key: %w", err)
	}
	return nil
}

// Aliases implements [SecretKeyManager].
func (m *secretKeyManager) Aliases(ctx context.Context) ([]string, error) {
	aliases, err := m.vault.Aliases(ctx)
	if err != nil {
		return nil, fmt.Errorf("list secret keys: %w", err)
	}
	return aliases, nil
}

// resolve maps a vault lookup onto (key, found, err). Only NotFound yields
// (nil, false, nil).
func (m *secretKeyManager) resolve(ctx context.Context, alias string) (*SecretKey, bool, error) {
	lookup := m.vault.Lookup(ctx, alias)

	switch lookup.Status {
	case LookupFound:
		key, err := newSecretKey(alias, lookup.Key)
		if err != nil {
			return nil, false, err
		}
		return key, true, nil

	case LookupFailed:
		m.logger.Err(lookup.Err).Str("func", "secretKeyManager.resolve").Msg("secret key lookup failed")
		return nil, false, fmt.Errorf("lookup secret key: %w", lookup.Err)
	}

	return nil, false, nil
}
