// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

const (
	// Separator joins the two base64 parts of an encoded ciphertext. It is
	// outside the base64 alphabet, so a valid value always splits in two.
	Separator = "\u0010"

	// NonceSize is the size of the IV generated for every encryption.
	NonceSize = 12

	// TagSize is the GCM authentication tag size (128 bits).
	TagSize = 16
)

// b64 encodes without padding and without line wraps.
var b64 = base64.RawStdEncoding

// Envelope is a parsed encoded ciphertext.
type Envelope struct {
	// Ciphertext holds the ciphertext with the authentication tag appended.
	Ciphertext []byte
	IV         []byte
}

// CipherCodec performs AES-256-GCM encryption of payloads and produces the
// encoded form cipherB64 + Separator + ivB64.
type CipherCodec struct {
	random io.Reader
}

// NewCipherCodec returns a codec that draws IVs from crypto/rand.
func NewCipherCodec() *CipherCodec {
	return &CipherCodec{random: rand.Reader}
}

// Encrypt seals plaintext under key with a fresh random IV.
func (c *CipherCodec) Encrypt(plaintext []byte, key *SecretKey) (string, error) {
	iv := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandom, err)
	}

	aead, err := key.aead(len(iv))
	if err != nil {
		return "", err
	}

	sealed := aead.Seal(nil, iv, plaintext, nil)

	return b64.EncodeToString(sealed) + Separator + b64.EncodeToString(iv), nil
}

// Parse splits and decodes an encoded ciphertext without touching any key.
// Structural problems are reported as ErrInvalidCiphertext.
func (c *CipherCodec) Parse(encoded string) (Envelope, error) {
	parts := strings.Split(encoded, Separator)
	if len(parts) != 2 {
		return Envelope{}, fmt.Errorf("%w: expected 2 parts, got %d", ErrInvalidCiphertext, len(parts))
	}

	ciphertext, err := decodeBase64(parts[0])
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: ciphertext: %w", ErrInvalidCiphertext, err)
	}

	iv, err := decodeBase64(parts[1])
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: iv: %w", ErrInvalidCiphertext, err)
	}
	if len(iv) == 0 {
		return Envelope{}, fmt.Errorf("%w: empty iv", ErrInvalidCiphertext)
	}

	return Envelope{Ciphertext: ciphertext, IV: iv}, nil
}

// Open authenticates and decrypts env. Any tag mismatch is ErrAuthentication;
// no plaintext is ever returned in that case.
func (c *CipherCodec) Open(env Envelope, key *SecretKey) ([]byte, error) {
	aead, err := key.aead(len(env.IV))
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, env.IV, env.Ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return plaintext, nil
}

// Decrypt is Parse followed by Open. A nil key yields (nil, nil): without a
// key the entry cannot be this store's data.
func (c *CipherCodec) Decrypt(encoded string, key *SecretKey) ([]byte, error) {
	env, err := c.Parse(encoded)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, nil
	}

	return c.Open(env, key)
}

// decodeBase64 accepts both padded and unpadded input.
func decodeBase64(s string) ([]byte, error) {
	return b64.DecodeString(strings.TrimRight(s, "="))
}
