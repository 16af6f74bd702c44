// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/awnumar/memguard"
	"golang.org/x/crypto/argon2"
)

// sealedCheckMarker is wrapped under the KEK and stored in the vault file so
// that a wrong passphrase is detected before a key is added under it.
var sealedCheckMarker = []byte("go-secure-storage sealed vault v1")

// sealedFile is the on-disk layout of the sealed vault.
type sealedFile struct {
	Version int               `json:"version"`
	Salt    []byte            `json:"salt"`
	Check   []byte            `json:"check"`
	Keys    map[string][]byte `json:"keys"`
}

// argonParams are the Argon2id tuning parameters of the KEK derivation.
type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
}

// sealedVault keeps every per-entry key in a single JSON file, each key
// wrapped with AES-256-GCM under a key-encryption key (KEK) derived from a
// passphrase with Argon2id. Blobs are stored as nonce || ciphertext.
//
// A key that is present in the file but fails to unwrap is reported as
// Failed; it is never regenerated.
type sealedVault struct {
	path       string
	passphrase *memguard.Enclave
	params     argonParams

	mu sync.Mutex
	// kek caches the derived KEK together with the salt it was derived for.
	kek     *memguard.Enclave
	kekSalt []byte

	logger *logger.Logger
}

// NewSealedVault returns a passphrase-protected file vault at path. The
// passphrase slice is wiped.
//
// Argon2id parameters follow the OWASP (2024) recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewSealedVault(path string, passphrase []byte, log *logger.Logger) KeyVault {
	return newSealedVault(path, passphrase, argonParams{time: 1, memory: 64 * 1024, threads: 4}, log)
}

func newSealedVault(path string, passphrase []byte, params argonParams, log *logger.Logger) *sealedVault {
	return &sealedVault{
		path:       path,
		passphrase: memguard.NewEnclave(passphrase),
		params:     params,
		logger:     log,
	}
}

// Lookup implements [KeyVault].
func (v *sealedVault) Lookup(_ context.Context, alias string) KeyLookup {
	v.mu.Lock()
	defer v.mu.Unlock()

	file, err := v.load()
	if err != nil {
		return Failed(err)
	}
	if file == nil {
		return NotFound()
	}

	blob, ok := file.Keys[alias]
	if !ok {
		return NotFound()
	}

	key, err := v.unwrap(file, blob)
	if err != nil {
		v.logger.Err(err).Str("func", "sealedVault.Lookup").Str("alias", alias).Msg("stored key cannot be unwrapped")
		return Failed(fmt.Errorf("%w: unwrap %q: %w", ErrKeyUnrecoverable, alias, err))
	}
	if len(key) != KeySize {
		memguard.WipeBytes(key)
		return Failed(fmt.Errorf("%w: stored key for %q has wrong size", ErrKeyUnrecoverable, alias))
	}

	return Found(key)
}

// Store implements [KeyVault].
func (v *sealedVault) Store(_ context.Context, alias string, key []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	file, err := v.load()
	if err != nil {
		return err
	}
	if file == nil {
		if file, err = v.initFile(); err != nil {
			return err
		}
	} else if err = v.verify(file); err != nil {
		return err
	}

	blob, err := v.wrap(file, key)
	if err != nil {
		return err
	}
	file.Keys[alias] = blob

	return v.save(file)
}

// Delete implements [KeyVault].
func (v *sealedVault) Delete(_ context.Context, alias string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	file, err := v.load()
	if err != nil || file == nil {
		return err
	}
	if _, ok := file.Keys[alias]; !ok {
		return nil
	}

	delete(file.Keys, alias)
	return v.save(file)
}

// Aliases implements [KeyVault].
func (v *sealedVault) Aliases(_ context.Context) ([]string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	file, err := v.load()
	if err != nil || file == nil {
		return nil, err
	}

	aliases := make([]string, 0, len(file.Keys))
	for alias := range file.Keys {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	return aliases, nil
}

// load reads the vault file. A missing file yields (nil, nil).
func (v *sealedVault) load() (*sealedFile, error) {
	data, err := os.ReadFile(v.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read vault file: %w", ErrKeyVault, err)
	}

	var file sealedFile
	if err = json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: decode vault file: %w", ErrKeyVault, err)
	}
	if file.Keys == nil {
		file.Keys = make(map[string][]byte)
	}

	return &file, nil
}

// save writes the file atomically through a temporary file and rename.
func (v *sealedVault) save(file *sealedFile) error {
	data, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("%w: encode vault file: %w", ErrKeyVault, err)
	}

	if err = os.MkdirAll(filepath.Dir(v.path), 0o700); err != nil {
		return fmt.Errorf("%w: create vault dir: %w", ErrKeyVault, err)
	}

	tmp := v.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("%w: write vault file: %w", ErrKeyVault, err)
	}
	if err = os.Rename(tmp, v.path); err != nil {
		return fmt.Errorf("%w: replace vault file: %w", ErrKeyVault, err)
	}

	return nil
}

// initFile creates a fresh vault with a random 16-byte salt.
func (v *sealedVault) initFile() (*sealedFile, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandom, err)
	}

	file := &sealedFile{Version: 1, Salt: salt, Keys: make(map[string][]byte)}

	check, err := v.wrap(file, sealedCheckMarker)
	if err != nil {
		return nil, err
	}
	file.Check = check

	return file, nil
}

// verify fails with ErrKeyUnrecoverable when the passphrase does not open
// the vault's check value.
func (v *sealedVault) verify(file *sealedFile) error {
	marker, err := v.unwrap(file, file.Check)
	if err != nil || subtle.ConstantTimeCompare(marker, sealedCheckMarker) != 1 {
		return fmt.Errorf("%w: passphrase does not open the vault", ErrKeyUnrecoverable)
	}
	return nil
}

// wrap seals plaintext with the KEK: nonce || ciphertext.
func (v *sealedVault) wrap(file *sealedFile, plaintext []byte) ([]byte, error) {
	gcm, err := v.kekCipher(file.Salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandom, err)
	}

	return append(nonce, gcm.Seal(nil, nonce, plaintext, nil)...), nil
}

// unwrap reverses wrap.
func (v *sealedVault) unwrap(file *sealedFile, blob []byte) ([]byte, error) {
	gcm, err := v.kekCipher(file.Salt)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// kekCipher derives (once per salt) the KEK and returns an AES-GCM over it.
func (v *sealedVault) kekCipher(salt []byte) (cipher.AEAD, error) {
	if v.kek == nil || !bytes.Equal(v.kekSalt, salt) {
		pass, err := v.passphrase.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open passphrase: %w", ErrKeyVault, err)
		}
		kek := argon2.IDKey(pass.Bytes(), salt, v.params.time, v.params.memory, v.params.threads, KeySize)
		pass.Destroy()

		v.kek = memguard.NewEnclave(kek)
		v.kekSalt = bytes.Clone(salt)
	}

	buf, err := v.kek.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open kek: %w", ErrKeyVault, err)
	}
	defer buf.Destroy()

	block, err := aes.NewCipher(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyVault, err)
	}

	return cipher.NewGCM(block)
}
