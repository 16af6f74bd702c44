// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-storage/internal/crypto"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/store"
	"github.com/MKhiriev/go-secure-storage/internal/validators"
	"github.com/MKhiriev/go-secure-storage/models"
)

// cipherItemStore encrypts every payload with a per-key AES-256-GCM key
// before handing the encoded ciphertext to the keyed store of the requested
// variant.
type cipherItemStore struct {
	// keys resolves the secret key owned by a namespaced key.
	keys crypto.SecretKeyManager

	// codec seals and opens payloads.
	codec *crypto.CipherCodec

	// storages holds the local and the synchronizable keyed store.
	storages *store.Storages

	// locks serializes operations on the same namespaced key.
	locks KeyLocker

	logger *logger.Logger
}

// NewCipherItemStore builds the application-cipher ItemStore. Requests are
// validated before any lower layer is touched and every error is mapped to
// an *app.StorageError.
func NewCipherItemStore(keys crypto.SecretKeyManager, codec *crypto.CipherCodec, storages *store.Storages,
	locks KeyLocker, log *logger.Logger) ItemStore {
	core := &cipherItemStore{
		keys:     keys,
		codec:    codec,
		storages: storages,
		locks:    locks,
		logger:   log,
	}

	return wrapItemStore(core,
		NewValidationItemStore(validators.NewStorageRequestValidator()),
		NewErrorMappingItemStore(),
	)
}

// SetItem obtains or creates the key of request.PrefixedKey, encrypts the
// payload and writes it. Nothing is written when encryption fails.
func (s *cipherItemStore) SetItem(ctx context.Context, request models.SetItemRequest) error {
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(request.PrefixedKey)
	defer unlock()

	key, err := s.keys.GetOrCreateKey(ctx, request.PrefixedKey)
	if err != nil {
		log.Err(err).Str("func", "cipherItemStore.SetItem").Msg("error obtaining secret key")
		return fmt.Errorf("obtain secret key: %w", err)
	}

	encoded, err := s.codec.Encrypt([]byte(*request.Data), key)
	if err != nil {
		log.Err(err).Str("func", "cipherItemStore.SetItem").Msg("error encrypting payload")
		return fmt.Errorf("encrypt payload: %w", err)
	}

	variant := models.VariantFor(models.SyncOr(request.Sync, false))
	if err = s.storages.Variant(variant).Set(ctx, request.PrefixedKey, encoded, request.Access); err != nil {
		log.Err(err).Str("func", "cipherItemStore.SetItem").Str("variant", variant.String()).Msg("error writing entry")
		return fmt.Errorf("write entry: %w", err)
	}

	return nil
}

// GetItem reads and decrypts the entry. A missing entry and a missing key
// both yield a nil Data.
func (s *cipherItemStore) GetItem(ctx context.Context, request models.GetItemRequest) (models.GetItemResponse, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(request.PrefixedKey)
	defer unlock()

	variant := models.VariantFor(models.SyncOr(request.Sync, false))
	encoded, found, err := s.storages.Variant(variant).Get(ctx, request.PrefixedKey)
	if err != nil {
		log.Err(err).Str("func", "cipherItemStore.GetItem").Str("variant", variant.String()).Msg("error reading entry")
		return models.GetItemResponse{}, fmt.Errorf("read entry: %w", err)
	}
	if !found {
		return models.GetItemResponse{}, nil
	}

	envelope, err := s.codec.Parse(encoded)
	if err != nil {
		log.Err(err).Str("func", "cipherItemStore.GetItem").Msg("stored entry is not an encoded ciphertext")
		return models.GetItemResponse{}, err
	}

	key, err := s.keys.GetKeyIfExists(ctx, request.PrefixedKey)
	if err != nil {
		log.Err(err).Str("func", "cipherItemStore.GetItem").Msg("error looking up secret key")
		return models.GetItemResponse{}, fmt.Errorf("look up secret key: %w", err)
	}
	if key == nil {
		log.Warn().Str("func", "cipherItemStore.GetItem").Msg("entry exists without a secret key")
		return models.GetItemResponse{}, nil
	}

	plaintext, err := s.codec.Open(envelope, key)
	if err != nil {
		log.Err(err).Str("func", "cipherItemStore.GetItem").Msg("error decrypting entry")
		return models.GetItemResponse{}, fmt.Errorf("decrypt entry: %w", err)
	}

	return models.GetItemResponse{Data: models.StringPtr(string(plaintext))}, nil
}

// RemoveItem deletes the entry and keeps its secret key.
func (s *cipherItemStore) RemoveItem(ctx context.Context, request models.RemoveItemRequest) (models.RemoveItemResponse, error) {
	unlock := s.locks.Lock(request.PrefixedKey)
	defer unlock()

	existed, err := s.storages.Variant(models.VariantFor(models.SyncOr(request.Sync, false))).Remove(ctx, request.PrefixedKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cipherItemStore.RemoveItem").Msg("error removing entry")
		return models.RemoveItemResponse{}, fmt.Errorf("remove entry: %w", err)
	}

	return models.RemoveItemResponse{Success: existed}, nil
}

func (s *cipherItemStore) ClearItemsWithPrefix(ctx context.Context, request models.ClearItemsRequest) error {
	if err := s.storages.Variant(models.VariantFor(models.SyncOr(request.Sync, false))).ClearWithPrefix(ctx, request.Prefix); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cipherItemStore.ClearItemsWithPrefix").Msg("error clearing entries")
		return fmt.Errorf("clear entries: %w", err)
	}
	return nil
}

func (s *cipherItemStore) GetPrefixedKeys(ctx context.Context, request models.PrefixedKeysRequest) (models.PrefixedKeysResponse, error) {
	keys, err := s.storages.Variant(models.VariantFor(models.SyncOr(request.Sync, false))).KeysWithPrefix(ctx, request.Prefix)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cipherItemStore.GetPrefixedKeys").Msg("error listing keys")
		return models.PrefixedKeysResponse{}, fmt.Errorf("list keys: %w", err)
	}
	if keys == nil {
		keys = []string{}
	}

	return models.PrefixedKeysResponse{Keys: keys}, nil
}

// SetSynchronizeKeychain is accepted and ignored: both variants are always
// open, and a request without a sync flag goes to the local one.
func (s *cipherItemStore) SetSynchronizeKeychain(ctx context.Context, request models.SynchronizeRequest) error {
	logger.FromContext(ctx).Debug().Bool("sync", request.Sync).Msg("synchronize flag ignored by cipher item store")
	return nil
}
