// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the key-management and authenticated-encryption
// pipeline of the secure storage.
//
// Every namespaced key owns a dedicated 256-bit AES key. Keys are created
// lazily on first write by [SecretKeyManager], persisted in a [KeyVault]
// backed by an OS or passphrase-protected secret store, and only ever held in
// process memory inside a memguard enclave. [CipherCodec] turns plaintext
// payloads into the encoded ciphertext strings the keyed stores persist.
package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyVault persists raw key material under an alias. It is the only place
// key bytes are stored at rest.
//
// Implementations must copy key material they retain: callers wipe the
// slices they pass in and the slices they receive.
type KeyVault interface {
	// Lookup resolves alias into one of three outcomes: Found, NotFound or
	// Failed. NotFound is reserved for genuine absence; any other problem,
	// including a key that exists but cannot be recovered, is Failed.
	Lookup(ctx context.Context, alias string) KeyLookup

	// Store persists key under alias, replacing any previous value.
	Store(ctx context.Context, alias string, key []byte) error

	// Delete removes alias. Deleting a missing alias is not an error.
	Delete(ctx context.Context, alias string) error

	// Aliases lists every alias currently held by the vault.
	Aliases(ctx context.Context) ([]string, error)
}

// SecretKeyManager obtains the per-key AES key for a namespaced key.
type SecretKeyManager interface {
	// GetOrCreateKey returns the existing key for alias or generates and
	// persists a new one when the vault reports it absent. A key that exists
	// but is unrecoverable is reported as an error and never replaced.
	GetOrCreateKey(ctx context.Context, alias string) (*SecretKey, error)

	// GetKeyIfExists returns the key for alias, or nil when none exists.
	// It never generates.
	GetKeyIfExists(ctx context.Context, alias string) (*SecretKey, error)

	// DeleteKey removes the key for alias.
	DeleteKey(ctx context.Context, alias string) error

	// Aliases lists all aliases that currently own a key.
	Aliases(ctx context.Context) ([]string, error)
}
