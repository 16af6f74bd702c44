// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/config"
	"github.com/MKhiriev/go-secure-storage/internal/validators"
	"github.com/MKhiriev/go-secure-storage/models"
)

// StorageService is the typed facade over an ItemStore. It namespaces user
// keys with a prefix, fills omitted options from its defaults and converts
// values to and from their JSON payload.
//
// The defaults are the only mutable state; they are safe for concurrent use.
type StorageService struct {
	items ItemStore

	mu     sync.RWMutex
	prefix string
	sync   bool
	access models.AccessPolicy
}

// NewStorageService returns a facade over items with defaults taken from cfg.
func NewStorageService(items ItemStore, cfg config.App) *StorageService {
	return &StorageService{
		items:  items,
		prefix: cfg.KeyPrefix,
		sync:   cfg.Synchronize,
		access: cfg.DefaultAccess,
	}
}

// Option overrides a facade default for one call.
type Option func(*callOptions)

type callOptions struct {
	sync        *bool
	access      *models.AccessPolicy
	convertDate bool
}

// WithSync selects the store variant for one call.
func WithSync(sync bool) Option {
	return func(o *callOptions) {
		o.sync = &sync
	}
}

// WithAccess sets the access policy of one write.
func WithAccess(access models.AccessPolicy) Option {
	return func(o *callOptions) {
		o.access = &access
	}
}

// WithoutDateConversion disables date handling in Get and Set.
func WithoutDateConversion() Option {
	return func(o *callOptions) {
		o.convertDate = false
	}
}

// resolve applies opts over the current defaults.
func (s *StorageService) resolve(opts []Option) (prefix string, sync bool, access models.AccessPolicy, convertDate bool) {
	o := callOptions{convertDate: true}
	for _, opt := range opts {
		opt(&o)
	}

	s.mu.RLock()
	prefix, sync, access = s.prefix, s.sync, s.access
	s.mu.RUnlock()

	if o.sync != nil {
		sync = *o.sync
	}
	if o.access != nil {
		access = *o.access
	}

	return prefix, sync, access, o.convertDate
}

// Get returns the decoded value stored under key, or nil when there is none.
// Date payloads come back as time.Time unless date conversion is disabled;
// everything else is JSON-decoded into a generic value.
func (s *StorageService) Get(ctx context.Context, key string, opts ...Option) (any, error) {
	payload, err := s.GetItem(ctx, key, opts...)
	if err != nil || payload == nil {
		return nil, err
	}

	_, _, _, convertDate := s.resolve(opts)
	if convertDate {
		if t, ok := parseDate(*payload); ok {
			return t, nil
		}
	}

	var value any
	if err = json.Unmarshal([]byte(*payload), &value); err != nil {
		return nil, MapError(err)
	}

	return value, nil
}

// GetItem returns the raw payload stored under key, or nil when there is none.
func (s *StorageService) GetItem(ctx context.Context, key string, opts ...Option) (*string, error) {
	if key == "" {
		return nil, MapError(validators.ErrEmptyKey)
	}

	prefix, sync, _, _ := s.resolve(opts)

	response, err := s.items.GetItem(ctx, models.GetItemRequest{PrefixedKey: prefix + key, Sync: models.BoolPtr(sync)})
	if err != nil {
		return nil, MapError(err)
	}

	return response.Data, nil
}

// Set JSON-encodes value and stores it under key. A time.Time is first
// rendered in the stored date form unless date conversion is disabled.
func (s *StorageService) Set(ctx context.Context, key string, value any, opts ...Option) error {
	if key == "" {
		return MapError(validators.ErrEmptyKey)
	}

	_, _, _, convertDate := s.resolve(opts)
	if convertDate {
		switch v := value.(type) {
		case time.Time:
			value = formatDate(v)
		case *time.Time:
			if v != nil {
				value = formatDate(*v)
			}
		}
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return MapError(err)
	}

	return s.SetItem(ctx, key, string(payload), opts...)
}

// SetItem stores value verbatim under key.
func (s *StorageService) SetItem(ctx context.Context, key, value string, opts ...Option) error {
	if key == "" {
		return MapError(validators.ErrEmptyKey)
	}

	prefix, sync, access, _ := s.resolve(opts)

	err := s.items.SetItem(ctx, models.SetItemRequest{
		PrefixedKey: prefix + key,
		Data:        &value,
		Sync:        models.BoolPtr(sync),
		Access:      access,
	})

	return MapError(err)
}

// Remove deletes the entry under key and reports whether it existed.
func (s *StorageService) Remove(ctx context.Context, key string, opts ...Option) (bool, error) {
	if key == "" {
		return false, MapError(validators.ErrEmptyKey)
	}

	prefix, sync, _, _ := s.resolve(opts)

	response, err := s.items.RemoveItem(ctx, models.RemoveItemRequest{PrefixedKey: prefix + key, Sync: models.BoolPtr(sync)})
	if err != nil {
		return false, MapError(err)
	}

	return response.Success, nil
}

// RemoveItem is Remove without the existence result.
func (s *StorageService) RemoveItem(ctx context.Context, key string, opts ...Option) error {
	_, err := s.Remove(ctx, key, opts...)
	return err
}

// Clear deletes every entry under the facade prefix.
func (s *StorageService) Clear(ctx context.Context, opts ...Option) error {
	prefix, sync, _, _ := s.resolve(opts)

	return MapError(s.items.ClearItemsWithPrefix(ctx, models.ClearItemsRequest{Prefix: prefix, Sync: models.BoolPtr(sync)}))
}

// Keys lists the user keys under the facade prefix, prefix stripped.
func (s *StorageService) Keys(ctx context.Context, opts ...Option) ([]string, error) {
	prefix, sync, _, _ := s.resolve(opts)

	response, err := s.items.GetPrefixedKeys(ctx, models.PrefixedKeysRequest{Prefix: prefix, Sync: models.BoolPtr(sync)})
	if err != nil {
		return nil, MapError(err)
	}

	keys := make([]string, 0, len(response.Keys))
	for _, k := range response.Keys {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, strings.TrimPrefix(k, prefix))
		}
	}

	return keys, nil
}

func (s *StorageService) KeyPrefix() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefix
}

func (s *StorageService) SetKeyPrefix(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefix = prefix
}

func (s *StorageService) Synchronize() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sync
}

// SetSynchronize changes the default store variant and forwards the flag to
// the item store. The default is only changed when the item store accepts it.
func (s *StorageService) SetSynchronize(ctx context.Context, sync bool) error {
	if err := s.items.SetSynchronizeKeychain(ctx, models.SynchronizeRequest{Sync: sync}); err != nil {
		return MapError(err)
	}

	s.mu.Lock()
	s.sync = sync
	s.mu.Unlock()

	return nil
}

func (s *StorageService) DefaultAccess() models.AccessPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

// SetDefaultKeychainAccess changes the access policy used by writes that do
// not name one.
func (s *StorageService) SetDefaultKeychainAccess(access models.AccessPolicy) error {
	if !access.Valid() {
		return MapError(validators.ErrInvalidAccess)
	}

	s.mu.Lock()
	s.access = access
	s.mu.Unlock()

	return nil
}
