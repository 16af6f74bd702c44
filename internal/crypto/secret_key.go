// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/awnumar/memguard"
)

// KeySize is the size of every per-entry key: AES-256.
const KeySize = 32

// SecretKey is an AES-256 key bound to one namespaced key. The key bytes live
// in an encrypted memguard enclave and are only decrypted into locked memory
// for the duration of a single cipher operation.
type SecretKey struct {
	alias   string
	enclave *memguard.Enclave
}

// newSecretKey seals material into an enclave. material is wiped.
func newSecretKey(alias string, material []byte) (*SecretKey, error) {
	if len(material) != KeySize {
		memguard.WipeBytes(material)
		return nil, fmt.Errorf("%w: key for %q has %d bytes", ErrKeyUnrecoverable, alias, len(material))
	}

	return &SecretKey{alias: alias, enclave: memguard.NewEnclave(material)}, nil
}

// Alias returns the namespaced key this secret key belongs to.
func (k *SecretKey) Alias() string {
	return k.alias
}

// aead builds an AES-GCM instance with a 128-bit tag for the given nonce size.
func (k *SecretKey) aead(nonceSize int) (cipher.AEAD, error) {
	if k == nil || k.enclave == nil {
		return nil, ErrInvalidKey
	}

	buf, err := k.enclave.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open enclave: %w", ErrKeyUnrecoverable, err)
	}
	defer buf.Destroy()

	block, err := aes.NewCipher(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	if nonceSize == NonceSize {
		return cipher.NewGCM(block)
	}
	return cipher.NewGCMWithNonceSize(block, nonceSize)
}
